package pattern

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/filedex/filedex/api"
)

func TestMatcher_DefaultIsExclude(t *testing.T) {
	m, err := NewMatcher([]string{"included_file"})
	require.NoError(t, err)

	assert.True(t, m.Included("included_file", false))
	assert.False(t, m.Included("other_file", false))

	decision := m.Decide("other_file", false)
	assert.False(t, decision.Matched)
	assert.Equal(t, -1, decision.RuleIndex)
}

func TestMatcher_LastMatchWins(t *testing.T) {
	cases := []struct {
		name     string
		lines    []string
		path     string
		included bool
	}{
		{"include then exclude", []string{"**", "!a.txt"}, "a.txt", false},
		{"exclude then include", []string{"!a.txt", "**"}, "a.txt", true},
		{"later non-matching pattern keeps decision", []string{"**", "!a.txt", "zzz"}, "a.txt", false},
		{"no match at all", []string{"!a.txt"}, "b.txt", false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			m, err := NewMatcher(tc.lines)
			require.NoError(t, err)
			assert.Equal(t, tc.included, m.Included(tc.path, false))
		})
	}
}

func TestMatcher_Globs(t *testing.T) {
	cases := []struct {
		pattern  string
		path     string
		isDir    bool
		included bool
	}{
		{"**", "a", false, true},
		{"**", "a/b/c", false, true},
		{"*.txt", "a.txt", false, true},
		{"*.txt", "sub/a.txt", false, true},
		{"*.txt", "a.md", false, false},
		{"a/b/*", "a/b/c", false, true},
		{"a/b/*", "a/b/c/d", false, false},
		{"a/b/**", "a/b/c", false, true},
		{"a/b/**", "a/b/c/d", false, true},
		{"a/b/**", "a/b", true, false},
		{"**/c", "a/b/c", false, true},
		{"**/c", "c", false, true},
		{"a/**/d", "a/b/c/d", false, true},
		{"?.txt", "a.txt", false, true},
		{"?.txt", "ab.txt", false, false},
		{"[ab].txt", "a.txt", false, true},
		{"[!ab].txt", "c.txt", false, true},
		{"[!ab].txt", "a.txt", false, false},
		{"/top", "top", false, true},
		{"/top", "sub/top", false, false},
		{"dir/", "dir", true, true},
		{"dir/", "dir", false, false},
		{"dir/", "dir/nested", false, true},
	}
	for _, tc := range cases {
		t.Run(tc.pattern+" "+tc.path, func(t *testing.T) {
			m, err := NewMatcher([]string{tc.pattern})
			require.NoError(t, err)
			assert.Equal(t, tc.included, m.Included(tc.path, tc.isDir))
		})
	}
}

func TestMatcher_DotfileExclusion(t *testing.T) {
	m, err := NewMatcher([]string{"**", "!.*"})
	require.NoError(t, err)

	assert.True(t, m.Included("a.txt", false))
	assert.True(t, m.Included("sub/deep/file", false))
	assert.False(t, m.Included(".hidden", false))
	assert.False(t, m.Included("sub/.hidden", false))
	assert.False(t, m.Included(".git", true))
}

func TestMatcher_EscapedTrailingSpace(t *testing.T) {
	m, err := NewMatcher([]string{`name\ `})
	require.NoError(t, err)

	// The escaped space is part of the pattern and must survive
	// compilation.
	assert.True(t, m.Included("name ", false))
	assert.False(t, m.Included("name", false))
}

func TestMatcher_MalformedPattern(t *testing.T) {
	_, err := NewMatcher([]string{"broken[class"})
	require.Error(t, err)
	assert.ErrorIs(t, err, api.ErrPattern)

	_, err = NewMatcher([]string{"/"})
	require.Error(t, err)
	assert.ErrorIs(t, err, api.ErrPattern)
}
