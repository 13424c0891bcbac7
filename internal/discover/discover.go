// Package discover walks a base folder and produces the ordered set of
// included files.
package discover

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/util"

	"github.com/filedex/filedex/api"
	"github.com/filedex/filedex/internal/pattern"
)

// Files enumerates every entry under baseFolder, classifies it with
// the matcher, and returns the included files sorted bytewise by
// relative path. Excluded directories are pruned without descending,
// so a directory-level exclusion hides its whole subtree even when a
// deeper pattern would re-include a file inside it.
func Files(fsys billy.Filesystem, baseFolder string, matcher *pattern.Matcher) ([]api.File, error) {
	var files []api.File

	err := util.Walk(fsys, baseFolder, func(full string, info os.FileInfo, err error) error {
		if err != nil {
			return fmt.Errorf("walk %s: %w", full, err)
		}
		if full == baseFolder {
			return nil
		}

		rel, err := relativize(baseFolder, full)
		if err != nil {
			return err
		}
		if !utf8.ValidString(rel) {
			return fmt.Errorf("%w: %q", api.ErrPathEncoding, rel)
		}

		decision := matcher.Decide(rel, info.IsDir())
		if info.IsDir() {
			if decision.Matched && !decision.Included {
				return filepath.SkipDir
			}
			return nil
		}
		if decision.Matched && decision.Included {
			files = append(files, api.File{RelativePath: rel, AbsolutePath: full})
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	// Traversal order is filesystem-dependent; the ordering contract
	// is established here, once, for every later consumer.
	sort.Slice(files, func(i, j int) bool {
		return files[i].RelativePath < files[j].RelativePath
	})
	return files, nil
}

// relativize strips the base folder prefix, yielding the slash-separated
// relative path.
func relativize(baseFolder, full string) (string, error) {
	rel, err := filepath.Rel(baseFolder, full)
	if err != nil {
		return "", fmt.Errorf("%w: %s under %s: %v", api.ErrPathPrefix, full, baseFolder, err)
	}
	rel = filepath.ToSlash(rel)
	if rel == ".." || strings.HasPrefix(rel, "../") {
		return "", fmt.Errorf("%w: %s under %s", api.ErrPathPrefix, full, baseFolder)
	}
	return rel, nil
}
