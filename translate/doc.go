// Copyright 2025 Poiesic Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


// Package translate converts natural-language search requests into search
// engine dork queries.
//
// Translation happens in two stages:
//   - An ordered rule table is matched against the raw input. The first rule
//     whose pattern matches fills its template and wins.
//   - When no rule matches, a fallback extractor runs a fixed sequence of
//     passes over a lowercased copy of the input. Each pass recognises one kind
//     of fragment (file types, sites, URL keywords, titles, content keywords,
//     directory listings, years, quoted phrases), emits the matching operator
//     or search term and strips the recognised text before the next pass runs.
//
// Translation is a total function: every input, including the empty string,
// produces a query string and no error. Translators hold no mutable state and
// are safe for concurrent use.
package translate
