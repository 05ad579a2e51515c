package domain

import (
	"strings"
	"unicode"
)

// RawQuery is the untrusted keyed input a Query is built from: an
// optional "search" keyword, an optional "sortBy" field name, and an
// optional category value per schema category field. Any key may be
// absent and any value may be of the wrong type.
type RawQuery map[string]any

// Query is sanitized, immutable filter and sort intent. Construction
// is total: invalid input degrades field by field to the zero value
// ("no filter"), never to an error. A Query is reusable against any
// number of Collections built under the same Schema.
type Query struct {
	schema     Schema
	search     string
	sortBy     string
	categories map[string]Category
}

// Raw query keys shared with RawQuery producers (CLI flags, MCP tool
// input). Category values are keyed by the schema category field names.
const (
	QueryKeySearch = "search"
	QueryKeySortBy = "sortBy"
)

// NewQuery assembles a Query from raw input by running every field
// through its sanitizer. It never fails.
func NewQuery(schema Schema, raw RawQuery) *Query {
	q := &Query{
		schema:     schema,
		search:     SanitizeSearch(raw[QueryKeySearch]),
		sortBy:     SanitizeSortField(schema, raw[QueryKeySortBy]),
		categories: make(map[string]Category, 2),
	}
	for _, cf := range schema.CategoryFields() {
		if cat := SanitizeCategory(raw[cf]); cat != CategoryNone {
			q.categories[cf] = cat
		}
	}
	return q
}

// Schema returns the schema this Query was built under.
func (q *Query) Schema() Schema {
	return q.schema
}

// Search returns the sanitized keyword, empty when no keyword filter
// applies.
func (q *Query) Search() string {
	return q.search
}

// SortBy returns the validated sort field name, empty when no sort
// applies.
func (q *Query) SortBy() string {
	return q.sortBy
}

// Category returns the sanitized category filter for the named schema
// category field, CategoryNone when no filter applies.
func (q *Query) Category(field string) Category {
	return q.categories[field]
}

// asciiPunct is the ASCII punctuation set stripped by SanitizeSearch.
const asciiPunct = "!\"#$%&'()*+,-./:;<=>?@[\\]^_`{|}~"

// SanitizeSearch reduces raw input to a keyword safe for a literal
// case-insensitive substring match. Non-string and empty input yields
// the empty keyword. Otherwise every Unicode punctuation character,
// every ASCII punctuation character and every ASCII digit is stripped;
// letters, marks and whitespace survive. The result is guaranteed to
// contain nothing with special meaning in a search pattern.
func SanitizeSearch(input any) string {
	s, ok := input.(string)
	if !ok || s == "" {
		return ""
	}
	return strings.Map(func(r rune) rune {
		if unicode.IsPunct(r) {
			return -1
		}
		if r >= '0' && r <= '9' {
			return -1
		}
		if strings.ContainsRune(asciiPunct, r) {
			return -1
		}
		return r
	}, s)
}

// SanitizeCategory returns input as a Category when it exactly equals
// one of the four standardized values, CategoryNone otherwise. No
// trimming, no case folding: "Enjoy'" is not "Enjoy".
func SanitizeCategory(input any) Category {
	s, ok := input.(string)
	if !ok {
		return CategoryNone
	}
	if c := Category(s); c.Valid() {
		return c
	}
	return CategoryNone
}

// SanitizeSortField returns input unchanged when it exactly equals one
// of the schema's sortable field names, empty otherwise.
func SanitizeSortField(schema Schema, input any) string {
	s, ok := input.(string)
	if !ok {
		return ""
	}
	if schema.IsSortableField(s) {
		return s
	}
	return ""
}
