// Package pattern evaluates ordered gitignore-style pattern lines
// against candidate relative paths.
//
// Unlike a plain gitignore, the default decision is inverted: a path
// matching a plain pattern is included, a path matching a negated
// pattern ("!…") is excluded, and a path matching no pattern at all is
// excluded. The last matching pattern in declaration order decides.
package pattern

import "strings"

// Rule is one parsed pattern line.
type Rule struct {
	// Pattern is the pattern body with negation and escapes stripped.
	Pattern string
	// Negated reports a leading "!": a match excludes the path.
	Negated bool
}

// ParseLines parses ordered pattern lines. Blank lines and "#"
// comments are skipped; "\#" and "\!" escape the leading token;
// unescaped trailing spaces are trimmed.
func ParseLines(lines []string) []Rule {
	rules := make([]Rule, 0, len(lines))
	for _, line := range lines {
		line = strings.TrimRight(line, "\r")
		line = trimTrailingSpaces(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if strings.HasPrefix(line, `\#`) {
			line = line[1:]
		}

		negated := false
		if strings.HasPrefix(line, "!") {
			negated = true
			line = line[1:]
		} else if strings.HasPrefix(line, `\!`) {
			line = line[1:]
		}
		if line == "" {
			continue
		}

		rules = append(rules, Rule{Pattern: line, Negated: negated})
	}
	return rules
}

// trimTrailingSpaces removes trailing spaces unless escaped by "\".
func trimTrailingSpaces(s string) string {
	for len(s) > 0 && (s[len(s)-1] == ' ' || s[len(s)-1] == '\t') {
		if len(s) >= 2 && s[len(s)-2] == '\\' {
			return s[:len(s)-2] + s[len(s)-1:]
		}
		s = s[:len(s)-1]
	}
	return s
}

// normalizePath brings a candidate path into slash-separated relative
// clean form for matching. Spaces are significant: file names may
// legitimately end in one.
func normalizePath(raw string) string {
	raw = strings.TrimPrefix(raw, "./")
	raw = strings.TrimPrefix(raw, "/")
	return strings.TrimSuffix(raw, "/")
}
