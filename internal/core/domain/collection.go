package domain

import (
	"fmt"
	"slices"
	"sort"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// Order is the sort direction token accepted by SortByField.
type Order string

const (
	// OrderAscending sorts smallest collation key first.
	OrderAscending Order = "ascending"
	// OrderDescending sorts largest collation key first.
	OrderDescending Order = "descending"
)

// Collection is an ordered sequence of validated Foods. Insertion
// order is significant: filters preserve it, SortByField reorders it
// in place. Filter methods return new Collections (or the receiver
// itself when the filter is a no-op), so chaining filters before a
// sort keeps the original collection's order intact.
type Collection struct {
	schema Schema
	foods  []*Food
}

// NewCollection constructs a validated Collection. items may be a
// single slice of raw inputs, or a variadic mix of *Food and RawFood
// values. If the first argument is itself a slice, any remaining
// arguments are ignored. Every element is validated eagerly; no
// partially valid Collection is ever returned.
func NewCollection(schema Schema, items ...any) (*Collection, error) {
	if len(items) > 0 {
		switch first := items[0].(type) {
		case []any:
			items = first
		case []*Food:
			items = make([]any, len(first))
			for i, f := range first {
				items[i] = f
			}
		case []RawFood:
			items = make([]any, len(first))
			for i, r := range first {
				items[i] = r
			}
		case []map[string]any:
			items = make([]any, len(first))
			for i, r := range first {
				items[i] = r
			}
		}
	}

	foods := make([]*Food, 0, len(items))
	for i, item := range items {
		switch v := item.(type) {
		case *Food:
			if v == nil {
				return nil, fmt.Errorf("%w: collection element %d is not a record", ErrFieldType, i)
			}
			if v.Schema() != schema {
				return nil, fmt.Errorf("%w: record %q was built under a different schema", ErrSchemaMismatch, v.Alias())
			}
			f, err := v.Validate()
			if err != nil {
				return nil, err
			}
			foods = append(foods, f)
		case RawFood:
			f, err := NewFood(schema, v)
			if err != nil {
				return nil, err
			}
			foods = append(foods, f)
		case map[string]any:
			f, err := NewFood(schema, RawFood(v))
			if err != nil {
				return nil, err
			}
			foods = append(foods, f)
		default:
			return nil, fmt.Errorf("%w: collection element %d is not a record", ErrFieldType, i)
		}
	}

	return &Collection{schema: schema, foods: foods}, nil
}

// Schema returns the schema this Collection was built under.
func (c *Collection) Schema() Schema {
	return c.schema
}

// Len returns the number of records.
func (c *Collection) Len() int {
	return len(c.foods)
}

// Foods returns the records in current order. The returned slice is
// shared with the Collection; callers must not modify it.
func (c *Collection) Foods() []*Food {
	return c.foods
}

// Clone returns a new Collection with the same records in the same
// order. Sorting the clone leaves the original untouched.
func (c *Collection) Clone() *Collection {
	return &Collection{schema: c.schema, foods: slices.Clone(c.foods)}
}

// FilterByCategory returns the records whose named category field
// equals value exactly, preserving relative order. field must be one
// of the two schema category field names regardless of value. An
// empty value returns the receiver itself, not a copy.
func (c *Collection) FilterByCategory(field string, value Category) (*Collection, error) {
	if !c.schema.IsCategoryField(field) {
		return nil, fmt.Errorf("%w: %q is not a category field of this schema", ErrInvalidArgument, field)
	}
	if value == CategoryNone {
		return c, nil
	}
	foods := make([]*Food, 0, len(c.foods))
	for _, f := range c.foods {
		if cat, ok := f.Category(field); ok && cat == value {
			foods = append(foods, f)
		}
	}
	return &Collection{schema: c.schema, foods: foods}, nil
}

// FilterByKeyword returns the records whose English or native name
// contains keyword, case-insensitively, preserving relative order.
// The match is a literal substring test, never a pattern: SanitizeSearch
// output is always safe here. An empty keyword returns the receiver.
func (c *Collection) FilterByKeyword(keyword string) *Collection {
	if keyword == "" {
		return c
	}
	needle := strings.ToLower(keyword)
	foods := make([]*Food, 0, len(c.foods))
	for _, f := range c.foods {
		if strings.Contains(strings.ToLower(f.NameEn()), needle) ||
			strings.Contains(strings.ToLower(f.NameNative()), needle) {
			foods = append(foods, f)
		}
	}
	return &Collection{schema: c.schema, foods: foods}
}

// SortByField reorders the receiver in place by the named field using
// locale-aware collation, so accented characters sort next to their
// base letters instead of by code point. The sort is stable; the
// descending order is the exact reverse of the ascending one.
//
// The order token is checked before the field no-op short-circuit:
// a malformed order always fails, even with an empty field. An empty
// field returns the receiver unchanged.
func (c *Collection) SortByField(field string, order Order) (*Collection, error) {
	if order != OrderAscending && order != OrderDescending {
		return nil, fmt.Errorf("%w: order must be %q or %q, got %q", ErrInvalidArgument, OrderAscending, OrderDescending, order)
	}
	if field == "" {
		return c, nil
	}
	if !c.schema.IsSortableField(field) {
		return nil, fmt.Errorf("%w: %q is not a sortable field", ErrInvalidArgument, field)
	}

	col := collate.New(language.Und)
	sort.SliceStable(c.foods, func(i, j int) bool {
		a, _ := c.foods[i].Field(field)
		b, _ := c.foods[j].Field(field)
		return col.CompareString(a, b) < 0
	})
	if order == OrderDescending {
		slices.Reverse(c.foods)
	}
	return c, nil
}

// Digest applies query as a fixed pipeline: filter by the first
// person's category, then the second person's, then by keyword, then
// sort ascending by the query's sort field. The cheap category
// equality checks run before the keyword scan on purpose.
//
// The result may be the receiver itself when every stage was a no-op,
// or a new Collection otherwise; callers must not rely on identity.
func (c *Collection) Digest(q *Query) (*Collection, error) {
	if q == nil {
		return nil, fmt.Errorf("%w: digest requires a query", ErrInvalidArgument)
	}
	if q.Schema() != c.schema {
		return nil, fmt.Errorf("%w: query was built under a different schema", ErrInvalidArgument)
	}

	fields := c.schema.CategoryFields()
	out, err := c.FilterByCategory(fields[0], q.Category(fields[0]))
	if err != nil {
		return nil, err
	}
	out, err = out.FilterByCategory(fields[1], q.Category(fields[1]))
	if err != nil {
		return nil, err
	}
	out = out.FilterByKeyword(q.Search())
	return out.SortByField(q.SortBy(), OrderAscending)
}
