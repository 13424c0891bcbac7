// Package ident converts arbitrary path segments into valid,
// convention-cased identifiers.
package ident

import "strings"

// Convention selects the case applied before sanitization.
type Convention int

const (
	// LowerSnakeCase is used for folder segments, which become
	// namespace identifiers.
	LowerSnakeCase Convention = iota
	// UpperSnakeCase is used for file segments, which become record
	// identifiers.
	UpperSnakeCase
)

// reserved holds names that are not usable as bare identifiers in the
// generated code. They get a trailing underscore appended.
var reserved = map[string]bool{
	"_":           true,
	"break":       true,
	"case":        true,
	"chan":        true,
	"const":       true,
	"continue":    true,
	"default":     true,
	"defer":       true,
	"else":        true,
	"fallthrough": true,
	"for":         true,
	"func":        true,
	"go":          true,
	"goto":        true,
	"if":          true,
	"import":      true,
	"interface":   true,
	"map":         true,
	"package":     true,
	"range":       true,
	"return":      true,
	"select":      true,
	"struct":      true,
	"switch":      true,
	"type":        true,
	"var":         true,
}

// Sanitize maps a raw path segment to a valid identifier. It is total,
// deterministic, and idempotent on its own output. Collisions between
// distinct inputs are the caller's concern.
func Sanitize(raw string, convention Convention) string {
	s := foldCase(raw, convention)
	s = replaceSpecialCharacters(s)
	s = guardFirstCharacter(s)
	return guardSpecialCases(s)
}

func foldCase(s string, convention Convention) string {
	if convention == UpperSnakeCase {
		return strings.ToUpper(s)
	}
	return strings.ToLower(s)
}

// replaceSpecialCharacters maps every rune outside ASCII letters and
// digits to "_".
func replaceSpecialCharacters(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z' || r >= '0' && r <= '9' {
			b.WriteRune(r)
		} else {
			b.WriteByte('_')
		}
	}
	return b.String()
}

func guardFirstCharacter(s string) string {
	if s != "" && s[0] >= '0' && s[0] <= '9' {
		return "_" + s
	}
	return s
}

func guardSpecialCases(s string) string {
	if s == "" {
		return "__"
	}
	if reserved[s] {
		return s + "_"
	}
	return s
}
