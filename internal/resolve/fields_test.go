package resolve

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/filedex/filedex/api"
)

func TestFields_StandardVocabularyFallback(t *testing.T) {
	shape := api.NamedShape(
		api.NamedField[api.Unit]{Name: "relative_path"},
		api.NamedField[api.Unit]{Name: "contents_str"},
	)

	resolved, err := Fields(api.Configuration{}, shape)
	require.NoError(t, err)

	// relative_path hits the predefined table, contents_str only the
	// standard-field vocabulary.
	assert.Equal(t, api.TemplateRelativePath, resolved.Named[0].Value.Kind)
	assert.Equal(t, api.TemplateContent, resolved.Named[1].Value.Kind)
}

func TestFields_EveryStandardField(t *testing.T) {
	shape := api.NamedShape(
		api.NamedField[api.Unit]{Name: "contents_bytes"},
		api.NamedField[api.Unit]{Name: "contents_str"},
		api.NamedField[api.Unit]{Name: "get_bytes"},
		api.NamedField[api.Unit]{Name: "get_str"},
		api.NamedField[api.Unit]{Name: "relative_path"},
	)

	resolved, err := Fields(api.Configuration{}, shape)
	require.NoError(t, err)

	kinds := make([]api.TemplateKind, 0, len(resolved.Named))
	for _, field := range resolved.Named {
		kinds = append(kinds, field.Value.Kind)
	}
	assert.Equal(t, []api.TemplateKind{
		api.TemplateRawContent,
		api.TemplateContent,
		api.TemplateGetRawContent,
		api.TemplateGetContent,
		api.TemplateRelativePath,
	}, kinds)
}

func TestFields_ExplicitWinsOverVocabulary(t *testing.T) {
	cfg := api.Configuration{
		FieldTemplates: map[api.FieldIdentifier]api.Template{
			api.NamedFieldID("contents_str"): {Kind: api.TemplateRelativePath},
		},
	}
	shape := api.NamedShape(api.NamedField[api.Unit]{Name: "contents_str"})

	resolved, err := Fields(cfg, shape)
	require.NoError(t, err)
	assert.Equal(t, api.TemplateRelativePath, resolved.Named[0].Value.Kind)
}

func TestFields_NonstandardName(t *testing.T) {
	shape := api.NamedShape(api.NamedField[api.Unit]{Name: "abc"})

	_, err := Fields(api.Configuration{}, shape)
	require.Error(t, err)

	var nonstandard *api.NonstandardFieldError
	require.ErrorAs(t, err, &nonstandard)
	assert.Equal(t, "abc", nonstandard.Field)
}

func TestFields_AnonymousWithoutConfig(t *testing.T) {
	_, err := Fields(api.Configuration{}, api.AliasShape(api.Unit{}))

	// The sentinel name is neither predefined nor standard; the error
	// names the anonymous field rather than calling it nonstandard.
	var missing *api.MissingTemplateError
	require.ErrorAs(t, err, &missing)
	assert.Equal(t, api.AnonymousField(), missing.Field)
}

func TestFields_IndexedWithoutConfig(t *testing.T) {
	_, err := Fields(api.Configuration{}, api.TupleShape(api.Unit{}))

	var missing *api.MissingTemplateError
	require.ErrorAs(t, err, &missing)
	assert.Equal(t, api.IndexedField(0), missing.Field)
}
