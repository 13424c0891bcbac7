package api

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMapShape_PreservesStructure(t *testing.T) {
	shape := NamedShape(
		NamedField[int]{Name: "a", Value: 1},
		NamedField[int]{Name: "b", Value: 2},
	)

	mapped, err := MapShape(shape, func(field FieldIdentifier, v int) (string, error) {
		return field.String(), nil
	})
	require.NoError(t, err)

	assert.Equal(t, ShapeNamedFields, mapped.Kind)
	assert.Equal(t, []NamedField[string]{
		{Name: "a", Value: "a"},
		{Name: "b", Value: "b"},
	}, mapped.Named)
}

func TestMapShape_FieldIdentifiers(t *testing.T) {
	alias, err := MapShape(AliasShape(0), func(field FieldIdentifier, _ int) (FieldIdentifier, error) {
		return field, nil
	})
	require.NoError(t, err)
	assert.Equal(t, AnonymousField(), alias.Alias)

	tuple, err := MapShape(TupleShape(0, 0, 0), func(field FieldIdentifier, _ int) (int, error) {
		return field.Index, nil
	})
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 2}, tuple.Tuple)
}

func TestMapShape_StopsOnError(t *testing.T) {
	sentinel := errors.New("boom")
	calls := 0

	_, err := MapShape(TupleShape(0, 1, 2), func(_ FieldIdentifier, v int) (int, error) {
		calls++
		if v == 1 {
			return 0, sentinel
		}
		return v, nil
	})

	assert.ErrorIs(t, err, sentinel)
	assert.Equal(t, 2, calls)
}

func TestMapShape_Unit(t *testing.T) {
	mapped, err := MapShape(UnitShape[int](), func(FieldIdentifier, int) (string, error) {
		t.Fatal("transform must not run for unit shapes")
		return "", nil
	})
	require.NoError(t, err)
	assert.Equal(t, ShapeUnit, mapped.Kind)
}
