package api

// ShapeKind discriminates Shape variants.
type ShapeKind int

const (
	// ShapeUnit is a record without a field list.
	ShapeUnit ShapeKind = iota
	// ShapeTypeAlias is a record with exactly one anonymous value.
	ShapeTypeAlias
	// ShapeNamedFields is a record with an ordered list of named fields.
	ShapeNamedFields
	// ShapeTupleFields is a record with an ordered list of unnamed fields.
	ShapeTupleFields
)

// NamedField pairs a field name with its payload.
type NamedField[T any] struct {
	Name  string `json:"name"`
	Value T      `json:"value"`
}

// Shape describes the target record's field structure, parameterized
// over a per-field payload: Unit during shape discovery, a resolved
// template or populator afterwards. Exactly the variant selected by
// Kind is meaningful.
type Shape[T any] struct {
	Kind  ShapeKind       `json:"kind"`
	Alias T               `json:"alias,omitempty"`
	Named []NamedField[T] `json:"named,omitempty"`
	Tuple []T             `json:"tuple,omitempty"`
}

// UnitShape returns the shape of a record without fields.
func UnitShape[T any]() Shape[T] {
	return Shape[T]{Kind: ShapeUnit}
}

// AliasShape returns the shape of a type alias carrying one value.
func AliasShape[T any](value T) Shape[T] {
	return Shape[T]{Kind: ShapeTypeAlias, Alias: value}
}

// NamedShape returns the shape of a record with named fields.
func NamedShape[T any](fields ...NamedField[T]) Shape[T] {
	return Shape[T]{Kind: ShapeNamedFields, Named: fields}
}

// TupleShape returns the shape of a record with positional fields.
func TupleShape[T any](values ...T) Shape[T] {
	return Shape[T]{Kind: ShapeTupleFields, Tuple: values}
}

// MapShape applies transform to every field payload, preserving the
// shape. The transform receives the field's identifier: anonymous for
// a type alias, the name for named fields, the position for tuple
// fields. The first error aborts the mapping.
func MapShape[A, B any](shape Shape[A], transform func(FieldIdentifier, A) (B, error)) (Shape[B], error) {
	switch shape.Kind {
	case ShapeTypeAlias:
		value, err := transform(AnonymousField(), shape.Alias)
		if err != nil {
			return Shape[B]{}, err
		}
		return AliasShape(value), nil

	case ShapeNamedFields:
		fields := make([]NamedField[B], 0, len(shape.Named))
		for _, field := range shape.Named {
			value, err := transform(NamedFieldID(field.Name), field.Value)
			if err != nil {
				return Shape[B]{}, err
			}
			fields = append(fields, NamedField[B]{Name: field.Name, Value: value})
		}
		return Shape[B]{Kind: ShapeNamedFields, Named: fields}, nil

	case ShapeTupleFields:
		values := make([]B, 0, len(shape.Tuple))
		for index, payload := range shape.Tuple {
			value, err := transform(IndexedField(index), payload)
			if err != nil {
				return Shape[B]{}, err
			}
			values = append(values, value)
		}
		return Shape[B]{Kind: ShapeTupleFields, Tuple: values}, nil

	default:
		return UnitShape[B](), nil
	}
}
