// Package config loads the tool's HCL settings file and produces the
// pre-parsed Configuration the engine consumes.
package config

import (
	"fmt"
	"strings"

	"github.com/hashicorp/hcl/v2/hclsimple"

	"github.com/filedex/filedex/api"
	"github.com/filedex/filedex/internal/resolve"
)

// DefaultRootFolderVariable is the environment variable the root
// folder is resolved from when the settings do not name one. PWD is
// what go:generate leaves pointing at the package directory.
const DefaultRootFolderVariable = "PWD"

type settingsFile struct {
	BaseFolder         string            `hcl:"base_folder,optional"`
	RootFolderVariable string            `hcl:"root_folder_variable,optional"`
	Paths              string            `hcl:"paths"`
	FieldTemplates     map[string]string `hcl:"field_templates,optional"`
	Templates          []templateBlock   `hcl:"template,block"`
	Identifiers        *bool             `hcl:"identifiers,optional"`
	Debug              bool              `hcl:"debug,optional"`
	Asset              *assetBlock       `hcl:"asset,block"`
}

// templateBlock is a user-supplied rule: a text/template body over
// {RelativePath, AbsolutePath}, referenced by name from field_templates.
type templateBlock struct {
	Name string `hcl:"name,label"`
	Body string `hcl:"body"`
}

// assetBlock stands in for inspecting a type declaration: it declares
// the target record's field shape.
type assetBlock struct {
	Kind   string   `hcl:"kind"`
	Fields []string `hcl:"fields,optional"`
	Arity  int      `hcl:"arity,optional"`
}

// Load reads a settings file and returns the engine configuration and
// the declared record shape.
func Load(path string) (api.Configuration, api.Shape[api.Unit], error) {
	var settings settingsFile
	if err := hclsimple.DecodeFile(path, nil, &settings); err != nil {
		return api.Configuration{}, api.Shape[api.Unit]{}, fmt.Errorf("decode settings %s: %w", path, err)
	}
	return convert(settings)
}

// Parse decodes settings from memory; filename only labels diagnostics.
func Parse(src []byte, filename string) (api.Configuration, api.Shape[api.Unit], error) {
	var settings settingsFile
	if err := hclsimple.Decode(filename, src, nil, &settings); err != nil {
		return api.Configuration{}, api.Shape[api.Unit]{}, fmt.Errorf("decode settings %s: %w", filename, err)
	}
	return convert(settings)
}

func convert(settings settingsFile) (api.Configuration, api.Shape[api.Unit], error) {
	cfg := api.Configuration{
		BaseFolder:          settings.BaseFolder,
		RootFolderVariable:  settings.RootFolderVariable,
		PathPatterns:        strings.Split(settings.Paths, "\n"),
		GenerateIdentifiers: settings.Identifiers == nil || *settings.Identifiers,
		EmitDebugInfo:       settings.Debug,
	}
	if cfg.RootFolderVariable == "" {
		cfg.RootFolderVariable = DefaultRootFolderVariable
	}

	if len(settings.FieldTemplates) > 0 {
		cfg.FieldTemplates = make(map[api.FieldIdentifier]api.Template, len(settings.FieldTemplates))
		for field, name := range settings.FieldTemplates {
			template, ok := resolve.PredefinedTemplate(name)
			if !ok {
				template = api.CustomTemplate(name)
			}
			cfg.FieldTemplates[api.ParseFieldIdentifier(field)] = template
		}
	}

	if len(settings.Templates) > 0 {
		cfg.CustomTemplates = make(map[string]string, len(settings.Templates))
		for _, block := range settings.Templates {
			cfg.CustomTemplates[block.Name] = block.Body
		}
	}

	shape, err := convertShape(settings.Asset)
	if err != nil {
		return api.Configuration{}, api.Shape[api.Unit]{}, err
	}
	return cfg, shape, nil
}

func convertShape(asset *assetBlock) (api.Shape[api.Unit], error) {
	if asset == nil {
		return api.UnitShape[api.Unit](), nil
	}
	switch asset.Kind {
	case "unit":
		return api.UnitShape[api.Unit](), nil
	case "alias":
		return api.AliasShape(api.Unit{}), nil
	case "fields":
		fields := make([]api.NamedField[api.Unit], 0, len(asset.Fields))
		for _, name := range asset.Fields {
			fields = append(fields, api.NamedField[api.Unit]{Name: name})
		}
		return api.NamedShape(fields...), nil
	case "tuple":
		return api.TupleShape(make([]api.Unit, asset.Arity)...), nil
	default:
		return api.Shape[api.Unit]{}, fmt.Errorf("unknown asset kind %q", asset.Kind)
	}
}
