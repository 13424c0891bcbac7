// Package compile runs the full pipeline: pattern compilation, file
// discovery, tree building, template resolution, and model assembly.
package compile

import (
	"path/filepath"
	"time"

	"github.com/go-git/go-billy/v5"

	"github.com/filedex/filedex/api"
	"github.com/filedex/filedex/internal/discover"
	"github.com/filedex/filedex/internal/logging"
	"github.com/filedex/filedex/internal/pattern"
	"github.com/filedex/filedex/internal/resolve"
	"github.com/filedex/filedex/internal/tree"
)

// Run compiles the filtered view of the base folder into a model. Any
// failure aborts the invocation; no partial model is returned. The
// shape describes the target record's fields with no values yet.
func Run(fsys billy.Filesystem, rootFolder string, cfg api.Configuration, shape api.Shape[api.Unit]) (*api.Model, error) {
	logger := logging.Logger("compile")
	start := time.Now()

	matcher, err := pattern.NewMatcher(cfg.PathPatterns)
	if err != nil {
		return nil, err
	}

	baseFolder := BaseFolder(rootFolder, cfg)
	files, err := discover.Files(fsys, baseFolder, matcher)
	if err != nil {
		return nil, err
	}
	logger.Debug().
		Int("files", len(files)).
		Str("base_folder", baseFolder).
		Msg("discovery done")

	var forest api.Forest
	if cfg.GenerateIdentifiers {
		var collisions []api.Collision
		forest, collisions = tree.Build(files)
		if len(collisions) > 0 {
			return nil, &api.CollisionError{Collisions: collisions}
		}
	}

	templates, err := resolve.Fields(cfg, shape)
	if err != nil {
		return nil, err
	}

	logger.Debug().Dur("elapsed", time.Since(start)).Msg("model assembled")
	return &api.Model{
		Files:     files,
		Forest:    forest,
		Templates: templates,
		Debug:     cfg.EmitDebugInfo,
	}, nil
}

// BaseFolder resolves the configured base folder against the host's
// root folder. An absolute base folder stands alone.
func BaseFolder(rootFolder string, cfg api.Configuration) string {
	if filepath.IsAbs(cfg.BaseFolder) {
		return filepath.Clean(cfg.BaseFolder)
	}
	return filepath.Join(rootFolder, cfg.BaseFolder)
}
