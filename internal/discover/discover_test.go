package discover

import (
	"testing"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/memfs"
	"github.com/go-git/go-billy/v5/util"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/filedex/filedex/api"
	"github.com/filedex/filedex/internal/pattern"
)

func writeFiles(t *testing.T, fsys billy.Filesystem, paths ...string) {
	t.Helper()
	for _, p := range paths {
		require.NoError(t, util.WriteFile(fsys, p, []byte("contents of "+p+"\n"), 0o644))
	}
}

func matcher(t *testing.T, lines ...string) *pattern.Matcher {
	t.Helper()
	m, err := pattern.NewMatcher(lines)
	require.NoError(t, err)
	return m
}

func relatives(files []api.File) []string {
	out := make([]string, 0, len(files))
	for _, f := range files {
		out = append(out, f.RelativePath)
	}
	return out
}

func TestFiles_SortedByRelativePath(t *testing.T) {
	fsys := memfs.New()
	writeFiles(t, fsys,
		"/base/subfolder/file_c",
		"/base/file_b",
		"/base/file_a",
	)

	files, err := Files(fsys, "/base", matcher(t, "**"))
	require.NoError(t, err)

	assert.Equal(t, []string{"file_a", "file_b", "subfolder/file_c"}, relatives(files))
	assert.Equal(t, "/base/subfolder/file_c", files[2].AbsolutePath)
}

func TestFiles_StableAcrossRuns(t *testing.T) {
	fsys := memfs.New()
	writeFiles(t, fsys, "/base/b", "/base/a", "/base/sub/c", "/base/sub/a")

	first, err := Files(fsys, "/base", matcher(t, "**"))
	require.NoError(t, err)
	second, err := Files(fsys, "/base", matcher(t, "**"))
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestFiles_ExcludedDirectoryIsPruned(t *testing.T) {
	fsys := memfs.New()
	writeFiles(t, fsys,
		"/base/kept/file",
		"/base/skipped/file",
		"/base/skipped/deep/file",
	)

	// The nested re-inclusion ("skipped/deep/file") never surfaces:
	// directory pruning takes precedence.
	m := matcher(t, "**", "!skipped/", "skipped/deep/file")
	files, err := Files(fsys, "/base", m)
	require.NoError(t, err)

	assert.Equal(t, []string{"kept/file"}, relatives(files))
}

func TestFiles_DotfilesExcluded(t *testing.T) {
	fsys := memfs.New()
	writeFiles(t, fsys,
		"/base/file",
		"/base/.hidden",
		"/base/.git/config",
		"/base/sub/file",
	)

	files, err := Files(fsys, "/base", matcher(t, "**", "!.*"))
	require.NoError(t, err)
	assert.Equal(t, []string{"file", "sub/file"}, relatives(files))
}

func TestFiles_NoMatchMeansExcluded(t *testing.T) {
	fsys := memfs.New()
	writeFiles(t, fsys, "/base/a", "/base/b")

	files, err := Files(fsys, "/base", matcher(t, "a"))
	require.NoError(t, err)
	assert.Equal(t, []string{"a"}, relatives(files))
}

func TestFiles_InvalidUTF8Name(t *testing.T) {
	fsys := memfs.New()
	writeFiles(t, fsys, "/base/ok", "/base/bad_\xff_name")

	_, err := Files(fsys, "/base", matcher(t, "**"))
	require.Error(t, err)
	assert.ErrorIs(t, err, api.ErrPathEncoding)
}
