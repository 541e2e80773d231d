package core

// ExtraField stores repository-specific metadata the canonical schema has no
// dedicated field for. It is a tagged union: an entry holds either exactly one
// value or an ordered list of values, never both.
type ExtraField struct {
	one    string
	many   []string
	isMany bool
}

// OneValue returns a single-valued extra field.
func OneValue(value string) ExtraField {
	return ExtraField{one: value}
}

// ManyValues returns a multi-valued extra field holding values in order.
func ManyValues(values []string) ExtraField {
	return ExtraField{many: values, isMany: true}
}

// IsMany reports whether the field holds a list rather than a single value.
func (f ExtraField) IsMany() bool {
	return f.isMany
}

// One returns the single value. It returns "" for multi-valued fields.
func (f ExtraField) One() string {
	if f.isMany {
		return ""
	}
	return f.one
}

// Many returns the value list. It returns nil for single-valued fields.
func (f ExtraField) Many() []string {
	if !f.isMany {
		return nil
	}
	return f.many
}

// Equal reports whether two extra fields have the same arity and contents.
func (f ExtraField) Equal(other ExtraField) bool {
	if f.isMany != other.isMany {
		return false
	}
	if !f.isMany {
		return f.one == other.one
	}
	if len(f.many) != len(other.many) {
		return false
	}
	for i, v := range f.many {
		if other.many[i] != v {
			return false
		}
	}
	return true
}
