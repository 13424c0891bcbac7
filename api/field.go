package api

import "strconv"

// AnonymousFieldName is the reserved sentinel under which the implicit
// field of a type alias is configured.
const AnonymousFieldName = "_"

// FieldKind discriminates FieldIdentifier variants.
type FieldKind int

const (
	// FieldAnonymous is the implicit single field of a type alias.
	FieldAnonymous FieldKind = iota
	// FieldNamed is a named struct field.
	FieldNamed
	// FieldIndexed is a positional tuple field.
	FieldIndexed
)

// FieldIdentifier keys the per-field template configuration. It is
// comparable and usable as a map key.
type FieldIdentifier struct {
	Kind  FieldKind
	Name  string
	Index int
}

// AnonymousField returns the identifier of a type alias's implicit field.
func AnonymousField() FieldIdentifier {
	return FieldIdentifier{Kind: FieldAnonymous}
}

// NamedFieldID returns the identifier of a named field.
func NamedFieldID(name string) FieldIdentifier {
	return FieldIdentifier{Kind: FieldNamed, Name: name}
}

// IndexedField returns the identifier of a positional tuple field.
func IndexedField(index int) FieldIdentifier {
	return FieldIdentifier{Kind: FieldIndexed, Index: index}
}

// ParseFieldIdentifier converts a configuration key into an identifier:
// "_" is anonymous, a decimal number is indexed, anything else is named.
func ParseFieldIdentifier(s string) FieldIdentifier {
	if s == AnonymousFieldName {
		return AnonymousField()
	}
	if index, err := strconv.Atoi(s); err == nil && index >= 0 {
		return IndexedField(index)
	}
	return NamedFieldID(s)
}

// String is the inverse of ParseFieldIdentifier.
func (f FieldIdentifier) String() string {
	switch f.Kind {
	case FieldNamed:
		return f.Name
	case FieldIndexed:
		return strconv.Itoa(f.Index)
	default:
		return AnonymousFieldName
	}
}
