package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrSchemaMismatch indicates raw record data lacks the category
	// fields the active schema expects. The catalog file and the
	// configured person keys do not agree.
	ErrSchemaMismatch = errors.New("schema mismatch")

	// ErrFieldType indicates a record field holds a non-string value
	// where a string is required, or a required field is absent.
	ErrFieldType = errors.New("field must be a string")

	// ErrCategoryValue indicates a category field holds a value outside
	// the four standardized categories.
	ErrCategoryValue = errors.New("unknown category value")

	// ErrInvalidArgument indicates a method received a structurally
	// wrong argument (unrecognized field name, bad order token,
	// nil or foreign-schema query).
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrCatalogUnavailable indicates the catalog could not be loaded.
	ErrCatalogUnavailable = errors.New("catalog unavailable")
)
