package core

//go:generate go run ../cmd/musgen

import (
	"encoding/binary"
	"fmt"
	"strings"

	"github.com/go-crypt/x/blake2b"
)

// ID is a unique identifier for catalog entries.
// It is derived from the operator token so re-seeding is idempotent.
type ID uint64

// IDFromContent generates a deterministic ID from text content using BLAKE2b hashing.
// This ensures that identical content produces identical IDs.
func IDFromContent(text string) ID {
	h, _ := blake2b.New(8, nil) // 8 bytes = 64 bits
	h.Write([]byte(text))
	sum := h.Sum(nil)
	return ID(binary.LittleEndian.Uint64(sum))
}

// Category groups search operators by what they act on.
type Category string

const (
	CategoryDomain   Category = "Domain"
	CategoryFile     Category = "File"
	CategoryTitle    Category = "Title"
	CategoryURL      Category = "URL"
	CategoryContent  Category = "Content"
	CategorySpecial  Category = "Special"
	CategoryModifier Category = "Modifier"
	CategoryLogic    Category = "Logic"
	CategoryRange    Category = "Range"
	CategorySecurity Category = "Security"
)

var categories = []Category{
	CategoryDomain,
	CategoryFile,
	CategoryTitle,
	CategoryURL,
	CategoryContent,
	CategorySpecial,
	CategoryModifier,
	CategoryLogic,
	CategoryRange,
	CategorySecurity,
}

// Categories returns every known category in display order.
func Categories() []Category {
	out := make([]Category, len(categories))
	copy(out, categories)
	return out
}

// ParseCategory resolves a category name case-insensitively.
func ParseCategory(name string) (Category, error) {
	for _, c := range categories {
		if strings.EqualFold(string(c), strings.TrimSpace(name)) {
			return c, nil
		}
	}
	return "", fmt.Errorf("%w: value %q", ErrInvalidCategory, name)
}

// Operator documents a single search operator or dork pattern.
type Operator struct {
	Id          ID
	Token       string // Operator syntax as typed, e.g. "site:" or `intitle:"index of"`
	Description string
	Example     string
	Category    Category
	Usage       string // Syntax template, e.g. "site:example.com"
	Position    int    // Display order within the catalog
}

// NewOperator builds an operator whose Id is derived from its token.
func NewOperator(token, description, example string, category Category, usage string) *Operator {
	return &Operator{
		Id:          IDFromContent(token),
		Token:       token,
		Description: description,
		Example:     example,
		Category:    category,
		Usage:       usage,
	}
}

// Matches reports whether query occurs in the token or description,
// ignoring case. An empty query matches everything.
func (o *Operator) Matches(query string) bool {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return true
	}
	return strings.Contains(strings.ToLower(o.Token), query) ||
		strings.Contains(strings.ToLower(o.Description), query)
}
