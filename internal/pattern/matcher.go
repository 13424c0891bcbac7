package pattern

// Matcher evaluates ordered compiled rules against candidate paths.
type Matcher struct {
	compiled []compiledRule
}

// NewMatcher parses and compiles ordered pattern lines. A malformed
// pattern fails the whole compilation; there are no partial matchers.
func NewMatcher(lines []string) (*Matcher, error) {
	rules := ParseLines(lines)
	compiled := make([]compiledRule, 0, len(rules))
	for _, rule := range rules {
		cr, err := compileRule(rule)
		if err != nil {
			return nil, err
		}
		compiled = append(compiled, *cr)
	}
	return &Matcher{compiled: compiled}, nil
}

// Decision is the deterministic outcome for one path.
type Decision struct {
	// Included reports the final decision. The default, with no
	// matching rule, is exclusion.
	Included bool
	// Matched reports whether any rule matched at all.
	Matched bool
	// RuleIndex is the deciding rule's position, -1 without a match.
	RuleIndex int
}

// Decide evaluates the path against every rule in order; the last
// matching rule wins.
func (m *Matcher) Decide(path string, isDir bool) Decision {
	candidate := normalizePath(path)
	res := Decision{RuleIndex: -1}
	for i := range m.compiled {
		if !m.compiled[i].matches(candidate, isDir) {
			continue
		}
		res.Matched = true
		res.RuleIndex = i
		res.Included = !m.compiled[i].source.Negated
	}
	return res
}

// Included reports whether the path ends up included.
func (m *Matcher) Included(path string, isDir bool) bool {
	return m.Decide(path, isDir).Included
}
