// Package emit serializes the assembled model into Go source. It is a
// thin consumer of the model: every invariant it relies on (sort
// order, identifier validity, uniqueness) is established upstream.
package emit

import (
	"bytes"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"text/template"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/util"

	"github.com/filedex/filedex/api"
)

// ArrayName is the identifier of the generated ordered asset slice.
const ArrayName = "Assets"

// BaseName is the identifier of the generated reference tree root.
const BaseName = "Base"

// DebugName is the identifier of the generated debug dump.
const DebugName = "Debug"

// Options controls Go source emission.
type Options struct {
	// Package is the generated file's package clause.
	Package string
	// Type is the asset record type instantiated once per file.
	Type string
	// Dev makes deferred accessors re-read files from disk at call
	// time instead of returning the embedded contents.
	Dev bool
	// Custom holds user-supplied rule bodies by name.
	Custom map[string]string
}

// GoSource renders the model as a formatted Go file: the ordered
// asset slice, the nested reference tree when present, and the debug
// dump when requested. File contents are read through fsys.
func GoSource(fsys billy.Filesystem, model *api.Model, opts Options) ([]byte, error) {
	var b bytes.Buffer
	fmt.Fprintf(&b, "// Code generated by filedex. DO NOT EDIT.\n\npackage %s\n\n", opts.Package)
	if opts.Dev && usesAccessor(model.Templates) {
		b.WriteString("import \"os\"\n\n")
	}

	fmt.Fprintf(&b, "var %s = []%s{\n", ArrayName, opts.Type)
	for _, file := range model.Files {
		term, err := resourceTerm(fsys, model.Templates, file, opts)
		if err != nil {
			return nil, err
		}
		fmt.Fprintf(&b, "%s,\n", term)
	}
	b.WriteString("}\n\n")

	if model.Forest != nil {
		typeExpr, valueExpr := forestExprs(model.Forest, opts.Type)
		fmt.Fprintf(&b, "var %s = %s%s\n\n", BaseName, typeExpr, valueExpr)
	}

	if model.Debug {
		dump, err := DebugJSON(model)
		if err != nil {
			return nil, err
		}
		fmt.Fprintf(&b, "var %s = %s\n", DebugName, strconv.Quote(dump))
	}

	return formatGoSource(b.Bytes())
}

// resourceTerm renders one element of the asset slice.
func resourceTerm(fsys billy.Filesystem, templates api.Shape[api.Template], file api.File, opts Options) (string, error) {
	switch templates.Kind {
	case api.ShapeUnit:
		return fmt.Sprintf("%s{}", opts.Type), nil

	case api.ShapeTypeAlias:
		value, err := fieldTerm(fsys, templates.Alias, file, opts)
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("%s(%s)", opts.Type, value), nil

	case api.ShapeNamedFields:
		var b strings.Builder
		fmt.Fprintf(&b, "%s{", opts.Type)
		for _, field := range templates.Named {
			value, err := fieldTerm(fsys, field.Value, file, opts)
			if err != nil {
				return "", err
			}
			fmt.Fprintf(&b, "%s: %s, ", field.Name, value)
		}
		b.WriteString("}")
		return b.String(), nil

	default:
		var b strings.Builder
		fmt.Fprintf(&b, "%s{", opts.Type)
		for _, tmpl := range templates.Tuple {
			value, err := fieldTerm(fsys, tmpl, file, opts)
			if err != nil {
				return "", err
			}
			fmt.Fprintf(&b, "%s, ", value)
		}
		b.WriteString("}")
		return b.String(), nil
	}
}

// fieldTerm renders one field's initializer expression.
func fieldTerm(fsys billy.Filesystem, tmpl api.Template, file api.File, opts Options) (string, error) {
	switch tmpl.Kind {
	case api.TemplateRelativePath:
		return strconv.Quote(file.RelativePath), nil

	case api.TemplateContent:
		contents, err := readContents(fsys, file)
		if err != nil {
			return "", err
		}
		return strconv.Quote(string(contents)), nil

	case api.TemplateRawContent:
		contents, err := readContents(fsys, file)
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("[]byte(%s)", strconv.Quote(string(contents))), nil

	case api.TemplateGetContent:
		if opts.Dev {
			return fmt.Sprintf(
				"func() string { contents, err := os.ReadFile(%s); if err != nil { panic(err) }; return string(contents) }",
				strconv.Quote(file.AbsolutePath)), nil
		}
		contents, err := readContents(fsys, file)
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("func() string { return %s }", strconv.Quote(string(contents))), nil

	case api.TemplateGetRawContent:
		if opts.Dev {
			return fmt.Sprintf(
				"func() []byte { contents, err := os.ReadFile(%s); if err != nil { panic(err) }; return contents }",
				strconv.Quote(file.AbsolutePath)), nil
		}
		contents, err := readContents(fsys, file)
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("func() []byte { return []byte(%s) }", strconv.Quote(string(contents))), nil

	default:
		return customTerm(tmpl, file, opts)
	}
}

// usesAccessor reports whether any field resolves to a deferred
// accessor template.
func usesAccessor(templates api.Shape[api.Template]) bool {
	found := false
	_, _ = api.MapShape(templates, func(_ api.FieldIdentifier, t api.Template) (struct{}, error) {
		if t.Kind == api.TemplateGetContent || t.Kind == api.TemplateGetRawContent {
			found = true
		}
		return struct{}{}, nil
	})
	return found
}

// customTerm renders a user-supplied rule with the file's paths.
func customTerm(tmpl api.Template, file api.File, opts Options) (string, error) {
	body, ok := opts.Custom[tmpl.Custom]
	if !ok {
		return "", fmt.Errorf("custom template %q is not defined", tmpl.Custom)
	}
	parsed, err := template.New(tmpl.Custom).Parse(body)
	if err != nil {
		return "", fmt.Errorf("parse custom template %q: %w", tmpl.Custom, err)
	}
	var b bytes.Buffer
	if err := parsed.Execute(&b, file); err != nil {
		return "", fmt.Errorf("render custom template %q for %s: %w", tmpl.Custom, file.RelativePath, err)
	}
	return b.String(), nil
}

func readContents(fsys billy.Filesystem, file api.File) ([]byte, error) {
	contents, err := util.ReadFile(fsys, file.AbsolutePath)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", file.AbsolutePath, err)
	}
	return contents, nil
}

// forestExprs renders the nested reference tree as one anonymous
// struct literal. Children appear in relative-path order, keyed by the
// smallest asset index under each subtree.
func forestExprs(forest api.Forest, typeName string) (typeExpr, valueExpr string) {
	names := make([]string, 0, len(forest))
	for name := range forest {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool {
		return minIndex(forest[names[i]]) < minIndex(forest[names[j]])
	})

	var t, v strings.Builder
	t.WriteString("struct {\n")
	v.WriteString("{\n")
	for _, name := range names {
		node := forest[name]
		if node.IsLeaf() {
			fmt.Fprintf(&t, "%s *%s\n", name, typeName)
			fmt.Fprintf(&v, "%s: &%s[%d],\n", name, ArrayName, node.Leaf.Index)
			continue
		}
		subType, subValue := forestExprs(node.Folder, typeName)
		fmt.Fprintf(&t, "%s %s\n", name, subType)
		fmt.Fprintf(&v, "%s: %s%s,\n", name, subType, subValue)
	}
	t.WriteString("}")
	v.WriteString("}")
	return t.String(), v.String()
}

// minIndex is the smallest asset index reachable under a tree node.
func minIndex(node api.Tree) int {
	if node.IsLeaf() {
		return node.Leaf.Index
	}
	lowest := int(^uint(0) >> 1)
	for _, child := range node.Folder {
		if i := minIndex(child); i < lowest {
			lowest = i
		}
	}
	return lowest
}
