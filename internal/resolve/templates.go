// Package resolve decides, per field of the target record shape, which
// inclusion template applies, and derives default initializers from
// standard field names.
package resolve

import (
	"sort"

	"github.com/filedex/filedex/api"
)

// predefinedTemplates is the fixed fallback table, keyed by field
// name. Entries are strictly ordered lexicographically; binary search
// depends on it and a test enforces it.
var predefinedTemplates = []struct {
	Name     string
	Template api.Template
}{
	{"content", api.Template{Kind: api.TemplateContent}},
	{"get_content", api.Template{Kind: api.TemplateGetContent}},
	{"get_raw_content", api.Template{Kind: api.TemplateGetRawContent}},
	{"raw_content", api.Template{Kind: api.TemplateRawContent}},
	{"relative_path", api.Template{Kind: api.TemplateRelativePath}},
}

// PredefinedTemplate looks the name up in the fixed table.
func PredefinedTemplate(name string) (api.Template, bool) {
	i := sort.Search(len(predefinedTemplates), func(i int) bool {
		return predefinedTemplates[i].Name >= name
	})
	if i < len(predefinedTemplates) && predefinedTemplates[i].Name == name {
		return predefinedTemplates[i].Template, true
	}
	return api.Template{}, false
}

// Templates resolves a template for every field of the shape:
// an explicit configuration entry first, then the predefined table by
// field name, else a missing-template error naming the field. This
// priority is user-visible behavior and must not change.
func Templates(cfg api.Configuration, shape api.Shape[api.Unit]) (api.Shape[api.Template], error) {
	return api.MapShape(shape, func(field api.FieldIdentifier, _ api.Unit) (api.Template, error) {
		if template, ok := cfg.FieldTemplates[field]; ok {
			return template, nil
		}
		if template, ok := PredefinedTemplate(field.String()); ok {
			return template, nil
		}
		return api.Template{}, &api.MissingTemplateError{Field: field}
	})
}
