package resolve

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/filedex/filedex/api"
)

func TestStandardFieldPopulators_StrictlyOrdered(t *testing.T) {
	for i := 1; i < len(standardFieldPopulators); i++ {
		assert.Less(t, standardFieldPopulators[i-1].Field, standardFieldPopulators[i].Field)
	}
}

func TestDeriveInitializer_StandardFields(t *testing.T) {
	shape := api.NamedShape(
		api.NamedField[api.Unit]{Name: "relative_path"},
		api.NamedField[api.Unit]{Name: "contents_str"},
	)

	derived, err := DeriveInitializer(shape)
	require.NoError(t, err)
	assert.Equal(t, PopulateRelativePath, derived.Named[0].Value)
	assert.Equal(t, PopulateContentsStr, derived.Named[1].Value)
}

func TestDeriveInitializer_EveryStandardField(t *testing.T) {
	fields := make([]api.NamedField[api.Unit], 0, len(standardFieldPopulators))
	for _, entry := range standardFieldPopulators {
		fields = append(fields, api.NamedField[api.Unit]{Name: entry.Field})
	}

	derived, err := DeriveInitializer(api.NamedShape(fields...))
	require.NoError(t, err)
	for i, entry := range standardFieldPopulators {
		assert.Equal(t, entry.Populator, derived.Named[i].Value)
	}
}

func TestDeriveInitializer_NonstandardField(t *testing.T) {
	shape := api.NamedShape(
		api.NamedField[api.Unit]{Name: "relative_path"},
		api.NamedField[api.Unit]{Name: "abc"},
	)

	_, err := DeriveInitializer(shape)
	var nonstandard *api.NonstandardFieldError
	require.ErrorAs(t, err, &nonstandard)
	assert.Equal(t, "abc", nonstandard.Field)
}

func TestDeriveInitializer_Shapes(t *testing.T) {
	_, err := DeriveInitializer(api.AliasShape(api.Unit{}))
	assert.ErrorIs(t, err, api.ErrNoInitializer)

	_, err = DeriveInitializer(api.TupleShape(api.Unit{}))
	assert.ErrorIs(t, err, api.ErrNoInitializer)

	derived, err := DeriveInitializer(api.TupleShape[api.Unit]())
	require.NoError(t, err)
	assert.Equal(t, api.ShapeTupleFields, derived.Kind)
	assert.Empty(t, derived.Tuple)

	derived, err = DeriveInitializer(api.UnitShape[api.Unit]())
	require.NoError(t, err)
	assert.Equal(t, api.ShapeUnit, derived.Kind)
}
