package domain

import "fmt"

// RawFood is the language-native wire shape a Food is built from:
// a keyed map with string values for alias, nameEn, serving, the two
// schema category fields, and optionally imageFile and nameNative.
// Values are typed any so that non-string input can be rejected with
// a precise error rather than silently coerced.
type RawFood map[string]any

// Food is one validated catalog record. It is immutable after
// construction; consumers treat it as a value. A Food may be shared
// across any number of Collections.
type Food struct {
	schema Schema
	fields map[string]string
}

// NewFood constructs and validates a Food from raw keyed input.
// Defaulting happens before validation: a missing imageFile becomes
// the empty string and a missing nameNative falls back to nameEn.
//
// Validation order, each stage fatal:
//  1. both schema category fields present, else ErrSchemaMismatch
//  2. every field a string, else ErrFieldType naming field and alias
//  3. category values standardized, else ErrCategoryValue
//
// No partially built Food is ever returned.
func NewFood(schema Schema, raw RawFood) (*Food, error) {
	catFields := schema.CategoryFields()
	for _, cf := range catFields {
		if _, ok := raw[cf]; !ok {
			return nil, fmt.Errorf("%w: record is missing category field %q", ErrSchemaMismatch, cf)
		}
	}

	// Best-effort alias for error messages; its own type is checked
	// like any other field below.
	alias, _ := raw[FieldAlias].(string)

	fields := make(map[string]string, 5+len(catFields))
	var err error
	if fields[FieldAlias], err = stringField(raw, FieldAlias, alias); err != nil {
		return nil, err
	}
	if _, ok := raw[FieldImageFile]; !ok {
		fields[FieldImageFile] = ""
	} else if fields[FieldImageFile], err = stringField(raw, FieldImageFile, alias); err != nil {
		return nil, err
	}
	if fields[FieldNameEn], err = stringField(raw, FieldNameEn, alias); err != nil {
		return nil, err
	}
	if _, ok := raw[FieldNameNative]; !ok {
		fields[FieldNameNative] = fields[FieldNameEn]
	} else if fields[FieldNameNative], err = stringField(raw, FieldNameNative, alias); err != nil {
		return nil, err
	}
	if fields[FieldServing], err = stringField(raw, FieldServing, alias); err != nil {
		return nil, err
	}
	for _, cf := range catFields {
		if fields[cf], err = stringField(raw, cf, alias); err != nil {
			return nil, err
		}
	}
	for _, cf := range catFields {
		if _, err := ParseCategory(fields[cf]); err != nil {
			return nil, fmt.Errorf("%w in field %q on record %q", err, cf, alias)
		}
	}

	return &Food{schema: schema, fields: fields}, nil
}

// stringField extracts a required string field, rejecting absent
// values and non-string types alike.
func stringField(raw RawFood, name, alias string) (string, error) {
	v, ok := raw[name]
	if !ok {
		return "", fmt.Errorf("%w: field %q on record %q", ErrFieldType, name, alias)
	}
	s, ok := v.(string)
	if !ok {
		return "", fmt.Errorf("%w: field %q on record %q", ErrFieldType, name, alias)
	}
	return s, nil
}

// Validate re-checks an already constructed Food and returns it
// unchanged when valid. It is idempotent: a Food built by NewFood
// always passes.
func (f *Food) Validate() (*Food, error) {
	for _, cf := range f.schema.CategoryFields() {
		v, ok := f.fields[cf]
		if !ok {
			return nil, fmt.Errorf("%w: record is missing category field %q", ErrSchemaMismatch, cf)
		}
		if _, err := ParseCategory(v); err != nil {
			return nil, fmt.Errorf("%w in field %q on record %q", err, cf, f.Alias())
		}
	}
	return f, nil
}

// Schema returns the schema this Food was built under.
func (f *Food) Schema() Schema {
	return f.schema
}

// Alias returns the unique record identifier.
func (f *Food) Alias() string {
	return f.fields[FieldAlias]
}

// ImageFile returns the image file name, empty when none was given.
func (f *Food) ImageFile() string {
	return f.fields[FieldImageFile]
}

// NameEn returns the English name.
func (f *Food) NameEn() string {
	return f.fields[FieldNameEn]
}

// NameNative returns the native-language name. It defaults to the
// English name when the raw record carried none.
func (f *Food) NameNative() string {
	return f.fields[FieldNameNative]
}

// Serving returns the serving description.
func (f *Food) Serving() string {
	return f.fields[FieldServing]
}

// Category returns the category held in the named schema category
// field, or false if name is not a category field of this schema.
func (f *Food) Category(name string) (Category, bool) {
	if !f.schema.IsCategoryField(name) {
		return CategoryNone, false
	}
	return Category(f.fields[name]), true
}

// Field returns the value of any record field by name, for sorting
// and display. The second return is false for unknown field names.
func (f *Food) Field(name string) (string, bool) {
	v, ok := f.fields[name]
	return v, ok
}
