// Package catalog holds the built-in search operator reference, the quick
// templates and example requests, and seeds them into an operator repository.
package catalog
