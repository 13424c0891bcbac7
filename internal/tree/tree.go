// Package tree folds the ordered file list into the named reference
// forest, detecting identifier collisions.
package tree

import (
	"strings"

	"github.com/filedex/filedex/api"
	"github.com/filedex/filedex/internal/ident"
)

// Build inserts every file into a forest, sanitizing folder segments
// with the lower convention and the final segment with the upper one.
// Collisions are accumulated instead of failing fast so a caller can
// report all of them in one pass; colliding files never overwrite
// existing entries.
func Build(files []api.File) (api.Forest, []api.Collision) {
	forest := api.Forest{}
	var collisions []api.Collision

	for index, file := range files {
		segments := strings.Split(file.RelativePath, "/")
		current := forest
		blocked := false

		for _, segment := range segments[:len(segments)-1] {
			name := ident.Sanitize(segment, ident.LowerSnakeCase)
			node, ok := current[name]
			if !ok {
				node = api.Tree{Folder: api.Forest{}}
				current[name] = node
			} else if node.IsLeaf() {
				// A folder segment landed on an existing file leaf.
				collisions = append(collisions, api.Collision{
					RelativePath: file.RelativePath,
					Existing:     node.Leaf.File.RelativePath,
					Identifier:   name,
				})
				blocked = true
				break
			}
			current = node.Folder
		}
		if blocked {
			continue
		}

		name := ident.Sanitize(segments[len(segments)-1], ident.UpperSnakeCase)
		if existing, ok := current[name]; ok {
			collision := api.Collision{
				RelativePath: file.RelativePath,
				Identifier:   name,
			}
			if existing.IsLeaf() {
				collision.Existing = existing.Leaf.File.RelativePath
			}
			collisions = append(collisions, collision)
			continue
		}
		current[name] = api.Tree{Leaf: &api.Leaf{Index: index, File: file}}
	}

	return forest, collisions
}
