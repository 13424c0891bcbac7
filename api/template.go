package api

// TemplateKind identifies an inclusion strategy for one field.
type TemplateKind int

const (
	// TemplateContent embeds the file contents decoded as text.
	TemplateContent TemplateKind = iota
	// TemplateGetContent embeds a deferred text accessor: it re-reads
	// the file in development mode and returns the embedded text
	// otherwise.
	TemplateGetContent
	// TemplateGetRawContent is TemplateGetContent for raw bytes.
	TemplateGetRawContent
	// TemplateRawContent embeds the file contents as raw bytes.
	TemplateRawContent
	// TemplateRelativePath embeds the relative path string itself.
	TemplateRelativePath
	// TemplateCustom delegates to a user-supplied rule identified by
	// name, given the relative and absolute path as input.
	TemplateCustom
)

// Template is the resolved inclusion strategy of one field.
type Template struct {
	Kind TemplateKind `json:"kind"`
	// Custom names the user-supplied rule for TemplateCustom.
	Custom string `json:"custom,omitempty"`
}

// CustomTemplate returns a template delegating to the named user rule.
func CustomTemplate(name string) Template {
	return Template{Kind: TemplateCustom, Custom: name}
}
