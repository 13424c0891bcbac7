package pattern

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/filedex/filedex/api"
)

// compiledRule is the matcher-internal representation of one rule.
type compiledRule struct {
	source Rule
	// segmentRE matches one path segment for patterns without a slash.
	segmentRE *regexp.Regexp
	// pathSelfRE matches the whole path for slash patterns.
	pathSelfRE *regexp.Regexp
	// pathDescRE matches strict descendants for dir-only and "/**"
	// slash patterns; nil otherwise.
	pathDescRE *regexp.Regexp
	// dirOnly means the source pattern ends with "/".
	dirOnly bool
}

// compileRule compiles one rule. Slash-containing patterns (and
// patterns anchored with a leading "/") match against the full path
// from the base folder; others match individual path segments.
func compileRule(rule Rule) (*compiledRule, error) {
	// Parsing already normalized whitespace, keeping spaces escaped with
	// a backslash; trimming again here would strip those.
	pat := rule.Pattern
	anchored := strings.HasPrefix(pat, "/")
	dirOnly := strings.HasSuffix(pat, "/")
	pat = strings.Trim(pat, "/")
	if pat == "" {
		return nil, fmt.Errorf("%w: empty after normalization (%q)", api.ErrPattern, rule.Pattern)
	}
	if err := checkCharClasses(pat); err != nil {
		return nil, err
	}

	cr := &compiledRule{source: rule, dirOnly: dirOnly}

	if !anchored && !strings.Contains(pat, "/") {
		body, err := globToSegmentRegex(pat)
		if err != nil {
			return nil, err
		}
		re, err := regexp.Compile("^" + body + "$")
		if err != nil {
			return nil, fmt.Errorf("%w: compile %q: %v", api.ErrPattern, rule.Pattern, err)
		}
		cr.segmentRE = re
		return cr, nil
	}

	body, descendants, err := globToPathRegex(pat)
	if err != nil {
		return nil, err
	}
	self, err := regexp.Compile("^" + body + "$")
	if err != nil {
		return nil, fmt.Errorf("%w: compile %q: %v", api.ErrPattern, rule.Pattern, err)
	}
	cr.pathSelfRE = self
	if dirOnly || descendants {
		desc, err := regexp.Compile("^" + body + "/.+$")
		if err != nil {
			return nil, fmt.Errorf("%w: compile %q: %v", api.ErrPattern, rule.Pattern, err)
		}
		cr.pathDescRE = desc
		if descendants {
			// "a/b/**" matches descendants only, never a/b itself.
			cr.pathSelfRE = nil
		}
	}
	return cr, nil
}

// matches reports whether the rule matches the normalized candidate.
func (r *compiledRule) matches(candidate string, isDir bool) bool {
	if candidate == "" {
		return false
	}

	if r.segmentRE != nil {
		segments := strings.Split(candidate, "/")
		for i, segment := range segments {
			final := i == len(segments)-1
			if r.dirOnly && final && !isDir {
				continue
			}
			if r.segmentRE.MatchString(segment) {
				return true
			}
		}
		return false
	}

	if r.pathDescRE != nil && r.pathDescRE.MatchString(candidate) {
		return true
	}
	if r.pathSelfRE == nil || !r.pathSelfRE.MatchString(candidate) {
		return false
	}
	if r.dirOnly && !isDir {
		return false
	}
	return true
}

// globToSegmentRegex converts a segment pattern to a regexp body.
// "**" degrades to "*" since a segment cannot span separators.
func globToSegmentRegex(pat string) (string, error) {
	var b strings.Builder
	for i := 0; i < len(pat); i++ {
		if next, ok := appendCharClassRegex(pat, i, &b); ok {
			i = next
			continue
		}
		switch c := pat[i]; c {
		case '*':
			for i+1 < len(pat) && pat[i+1] == '*' {
				i++
			}
			b.WriteString(`[^/]*`)
		case '?':
			b.WriteString(`[^/]`)
		default:
			b.WriteString(regexEscapeByte(c))
		}
	}
	return b.String(), nil
}

// globToPathRegex converts a slash pattern to a regexp body. The
// second result reports a trailing "/**", which the caller turns into
// a descendants-only match.
func globToPathRegex(pat string) (body string, descendants bool, err error) {
	if prefix, ok := strings.CutSuffix(pat, "/**"); ok && prefix != "" {
		pat = prefix
		descendants = true
	}

	var b strings.Builder
	for i := 0; i < len(pat); i++ {
		// "**/" matches zero or more whole directories.
		if pat[i] == '*' && i+2 < len(pat) && pat[i+1] == '*' && pat[i+2] == '/' {
			b.WriteString(`(?:.*/)?`)
			i += 2
			continue
		}
		if next, ok := appendCharClassRegex(pat, i, &b); ok {
			i = next
			continue
		}
		switch c := pat[i]; c {
		case '*':
			if i+1 < len(pat) && pat[i+1] == '*' {
				b.WriteString(`.*`)
				i++
				continue
			}
			b.WriteString(`[^/]*`)
		case '?':
			b.WriteString(`[^/]`)
		default:
			b.WriteString(regexEscapeByte(c))
		}
	}
	return b.String(), descendants, nil
}

// checkCharClasses rejects unterminated "[…]" classes as malformed.
func checkCharClasses(pat string) error {
	for i := 0; i < len(pat); i++ {
		if pat[i] != '[' {
			continue
		}
		end := findCharClassEnd(pat, i)
		if end < 0 {
			return fmt.Errorf("%w: unterminated character class in %q", api.ErrPattern, pat)
		}
		i = end
	}
	return nil
}

// appendCharClassRegex appends a parsed glob char class as a regexp class.
func appendCharClassRegex(pat string, start int, b *strings.Builder) (int, bool) {
	if start >= len(pat) || pat[start] != '[' {
		return start, false
	}
	end := findCharClassEnd(pat, start)
	if end < 0 {
		return start, false
	}

	b.WriteByte('[')
	idx := start + 1
	if idx < end && pat[idx] == '!' {
		// gitignore class negation "[!x]" maps to regexp "[^x]".
		b.WriteByte('^')
		idx++
	} else if idx < end && pat[idx] == '^' {
		b.WriteString(`\^`)
		idx++
	}
	if idx < end && pat[idx] == ']' {
		b.WriteByte(']')
		idx++
	}
	for ; idx < end; idx++ {
		if pat[idx] == '\\' {
			b.WriteString(`\\`)
			continue
		}
		b.WriteByte(pat[idx])
	}
	b.WriteByte(']')
	return end, true
}

// findCharClassEnd locates the closing bracket of a glob char class.
func findCharClassEnd(pat string, start int) int {
	idx := start + 1
	if idx < len(pat) && (pat[idx] == '!' || pat[idx] == '^') {
		idx++
	}
	if idx < len(pat) && pat[idx] == ']' {
		idx++
	}
	for ; idx < len(pat); idx++ {
		if pat[idx] == ']' {
			return idx
		}
	}
	return -1
}

// regexEscapeByte escapes one byte for regexp source.
func regexEscapeByte(c byte) string {
	switch c {
	case '.', '+', '(', ')', '|', '{', '}', '[', ']', '^', '$', '\\':
		return `\` + string(c)
	default:
		return string(c)
	}
}
