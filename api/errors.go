package api

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors shared by the compilation stages. Every error is
// fatal to the invocation; no partial model is ever exposed.
var (
	// ErrPattern indicates malformed path-pattern syntax.
	ErrPattern = errors.New("invalid path pattern")
	// ErrPathEncoding indicates a discovered path that is not valid UTF-8.
	ErrPathEncoding = errors.New("path is not valid UTF-8")
	// ErrPathPrefix indicates a path that could not be made relative
	// to the base folder.
	ErrPathPrefix = errors.New("path is outside the base folder")
	// ErrNoInitializer indicates a shape that structurally cannot
	// derive a default initializer.
	ErrNoInitializer = errors.New("shape cannot derive a default initializer")
)

// MissingTemplateError reports a field for which neither an explicit
// nor a predefined template resolves.
type MissingTemplateError struct {
	Field FieldIdentifier
}

func (e *MissingTemplateError) Error() string {
	return fmt.Sprintf("no template for field %q: configure one under field_templates", e.Field)
}

// NonstandardFieldError reports a field name outside the standard
// vocabulary during default-initializer derivation.
type NonstandardFieldError struct {
	Field string
}

func (e *NonstandardFieldError) Error() string {
	return fmt.Sprintf("field %q is not a standard field: configure an explicit initializer", e.Field)
}

// Collision records two paths whose sanitized identifiers coincide.
type Collision struct {
	// RelativePath is the file whose insertion collided.
	RelativePath string `json:"relative_path"`
	// Existing is the file already present under the identifier, or
	// empty when the identifier names a folder.
	Existing string `json:"existing,omitempty"`
	// Identifier is the shared sanitized name.
	Identifier string `json:"identifier"`
}

// CollisionError enumerates every identifier collision found in one
// pass so all of them can be fixed at once.
type CollisionError struct {
	Collisions []Collision
}

func (e *CollisionError) Error() string {
	var b strings.Builder
	b.WriteString("files collide on generated identifiers:")
	for _, c := range e.Collisions {
		fmt.Fprintf(&b, "\n- %q collides with", c.RelativePath)
		if c.Existing == "" {
			fmt.Fprintf(&b, " a folder on %q", c.Identifier)
		} else {
			fmt.Fprintf(&b, " %q on %q", c.Existing, c.Identifier)
		}
	}
	b.WriteString("\nrename the affected files or disable identifier generation")
	return b.String()
}
