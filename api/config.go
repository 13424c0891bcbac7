package api

// Configuration drives one compilation. It is immutable once
// constructed and read by every stage without synchronization.
type Configuration struct {
	// BaseFolder is the folder all patterns and relative paths are
	// interpreted against. A relative value is joined onto the root
	// folder supplied by the host.
	BaseFolder string `json:"base_folder,omitempty"`
	// RootFolderVariable names the environment variable the host
	// resolves the root folder from.
	RootFolderVariable string `json:"root_folder_variable,omitempty"`
	// PathPatterns is the ordered list of gitignore-style pattern
	// lines deciding file inclusion.
	PathPatterns []string `json:"path_patterns"`
	// FieldTemplates overrides the predefined template per field.
	FieldTemplates map[FieldIdentifier]Template `json:"field_templates,omitempty"`
	// CustomTemplates holds user-supplied rule bodies by name, each a
	// text/template over {RelativePath, AbsolutePath}.
	CustomTemplates map[string]string `json:"custom_templates,omitempty"`
	// GenerateIdentifiers enables the named reference forest. When
	// false, tree building is skipped and only the ordered file array
	// is produced.
	GenerateIdentifiers bool `json:"generate_identifiers"`
	// EmitDebugInfo requests a debug dump of the assembled model.
	EmitDebugInfo bool `json:"emit_debug_info,omitempty"`
}
