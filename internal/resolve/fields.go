package resolve

import "github.com/filedex/filedex/api"

// populatorTemplates maps each standard-field populator to the
// equivalent inclusion template.
var populatorTemplates = map[Populator]api.Template{
	PopulateContentsBytes: {Kind: api.TemplateRawContent},
	PopulateContentsStr:   {Kind: api.TemplateContent},
	PopulateGetBytes:      {Kind: api.TemplateGetRawContent},
	PopulateGetStr:        {Kind: api.TemplateGetContent},
	PopulateRelativePath:  {Kind: api.TemplateRelativePath},
}

// Fields is the full per-field resolution the pipeline uses: an
// explicit configuration entry first, then the predefined template
// table, then, for named fields only, the standard-field vocabulary.
// A named field outside all three fails as nonstandard; anonymous and
// indexed fields without an explicit or predefined template fail as
// missing.
func Fields(cfg api.Configuration, shape api.Shape[api.Unit]) (api.Shape[api.Template], error) {
	return api.MapShape(shape, func(field api.FieldIdentifier, _ api.Unit) (api.Template, error) {
		if template, ok := cfg.FieldTemplates[field]; ok {
			return template, nil
		}
		if template, ok := PredefinedTemplate(field.String()); ok {
			return template, nil
		}
		if field.Kind == api.FieldNamed {
			populator, err := standardPopulator(field.Name)
			if err != nil {
				return api.Template{}, err
			}
			return populatorTemplates[populator], nil
		}
		return api.Template{}, &api.MissingTemplateError{Field: field}
	})
}
