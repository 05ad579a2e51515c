package domain

import "fmt"

// Category is one of the four standardized food classifications.
// The zero value means "no category" and acts as a no-op in filters.
type Category string

const (
	// CategoryNone is the absence of a category. Filtering by it is
	// an identity operation.
	CategoryNone Category = ""
	// CategorySuperfood marks foods to actively seek out.
	CategorySuperfood Category = "Superfood"
	// CategoryEnjoy marks foods that are fine in normal amounts.
	CategoryEnjoy Category = "Enjoy"
	// CategoryMinimize marks foods to cut back on.
	CategoryMinimize Category = "Minimize"
	// CategoryAvoid marks foods to stay away from.
	CategoryAvoid Category = "Avoid"
)

// Categories returns the four standardized categories in display order.
func Categories() []Category {
	return []Category{CategorySuperfood, CategoryEnjoy, CategoryMinimize, CategoryAvoid}
}

// Valid reports whether c is one of the four standardized categories.
// CategoryNone is not valid: it is an absence, not a classification.
func (c Category) Valid() bool {
	switch c {
	case CategorySuperfood, CategoryEnjoy, CategoryMinimize, CategoryAvoid:
		return true
	}
	return false
}

// String returns the category as its standardized string value.
func (c Category) String() string {
	return string(c)
}

// ParseCategory strictly parses a standardized category value.
// Unknown values return ErrCategoryValue. This is the record-side
// entry point; queries use SanitizeCategory instead.
func ParseCategory(value string) (Category, error) {
	c := Category(value)
	if !c.Valid() {
		return CategoryNone, fmt.Errorf("%w: %q", ErrCategoryValue, value)
	}
	return c, nil
}
