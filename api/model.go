package api

// File is one filesystem entry matched during discovery.
type File struct {
	// RelativePath is slash-separated and relative to the base folder.
	// Never empty, never contains backslashes.
	RelativePath string `json:"relative_path"`
	// AbsolutePath is the OS path, RelativePath joined onto the base folder.
	AbsolutePath string `json:"absolute_path"`
}

// Forest maps sanitized segment names to subtrees. The root forest
// represents the base folder.
type Forest map[string]Tree

// Tree is either a file leaf or a nested folder.
// Exactly one of Leaf and Folder is set.
type Tree struct {
	Leaf   *Leaf  `json:"leaf,omitempty"`
	Folder Forest `json:"folder,omitempty"`
}

// IsLeaf reports whether the tree node is a file leaf.
func (t Tree) IsLeaf() bool {
	return t.Leaf != nil
}

// Leaf refers to one element of the ordered file array.
type Leaf struct {
	// Index is the position of the file in Model.Files.
	Index int  `json:"index"`
	File  File `json:"file"`
}

// Model is the assembled output: the ordered file array, the named
// reference forest, and the per-field templates. Consumers may rely on
// Files being sorted by relative path, on every forest leaf index
// being valid, and on forest keys being valid identifiers.
type Model struct {
	Files []File `json:"files"`
	// Forest is nil when identifier generation is disabled.
	Forest    Forest          `json:"forest,omitempty"`
	Templates Shape[Template] `json:"templates"`
	// Debug requests a debug dump alongside the generated output.
	Debug bool `json:"debug,omitempty"`
}

// Unit is the payload of a shape whose fields carry no data yet.
type Unit = struct{}
