package domain

import "fmt"

// Fixed field names shared by every Food record.
const (
	FieldAlias      = "alias"
	FieldImageFile  = "imageFile"
	FieldNameEn     = "nameEn"
	FieldNameNative = "nameNative"
	FieldServing    = "serving"
)

// categoryFieldPrefix is prepended to a person key to derive that
// person's category field name.
const categoryFieldPrefix = "category"

// Schema binds two person keys to the pair of category field names
// shared by Food, Collection and Query. It is an explicit descriptor
// threaded through every constructor: the three types only make sense
// together when built from the same Schema value.
//
// Schema is a comparable value type; two Schemas built from the same
// person keys compare equal with ==.
type Schema struct {
	people [2]string
	fields [2]string
}

// NewSchema creates a schema for the two tracked people.
// Person keys must be non-empty and distinct.
func NewSchema(person1, person2 string) (Schema, error) {
	if person1 == "" || person2 == "" {
		return Schema{}, fmt.Errorf("%w: person keys must be non-empty", ErrInvalidArgument)
	}
	if person1 == person2 {
		return Schema{}, fmt.Errorf("%w: person keys must be distinct", ErrInvalidArgument)
	}
	return Schema{
		people: [2]string{person1, person2},
		fields: [2]string{categoryFieldPrefix + person1, categoryFieldPrefix + person2},
	}, nil
}

// People returns the two person keys in declaration order.
func (s Schema) People() [2]string {
	return s.people
}

// CategoryFields returns the two derived category field names in
// declaration order.
func (s Schema) CategoryFields() [2]string {
	return s.fields
}

// CategoryField returns the category field name for the given person
// key, or false if the person is not tracked by this schema.
func (s Schema) CategoryField(person string) (string, bool) {
	for i, p := range s.people {
		if p == person {
			return s.fields[i], true
		}
	}
	return "", false
}

// IsCategoryField reports whether name is one of the two category
// field names of this schema.
func (s Schema) IsCategoryField(name string) bool {
	return name != "" && (name == s.fields[0] || name == s.fields[1])
}

// SortableFields returns the field names records can be sorted by:
// alias, nameEn, nameNative and the two category fields.
func (s Schema) SortableFields() []string {
	return []string{FieldAlias, FieldNameEn, FieldNameNative, s.fields[0], s.fields[1]}
}

// IsSortableField reports whether name is a sortable field.
func (s Schema) IsSortableField(name string) bool {
	switch name {
	case FieldAlias, FieldNameEn, FieldNameNative:
		return true
	}
	return s.IsCategoryField(name)
}
