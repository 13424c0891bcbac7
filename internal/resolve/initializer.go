package resolve

import (
	"sort"

	"github.com/filedex/filedex/api"
)

// Populator selects how a default initializer fills one standard field.
type Populator int

const (
	// PopulateContentsBytes embeds the file contents as raw bytes.
	PopulateContentsBytes Populator = iota
	// PopulateContentsStr embeds the file contents as UTF-8 text.
	PopulateContentsStr
	// PopulateGetBytes embeds a deferred raw-bytes accessor.
	PopulateGetBytes
	// PopulateGetStr embeds a deferred text accessor.
	PopulateGetStr
	// PopulateRelativePath embeds the relative path string.
	PopulateRelativePath
)

// standardFieldPopulators is the fixed standard-field vocabulary,
// strictly ordered lexicographically for binary search.
var standardFieldPopulators = []struct {
	Field     string
	Populator Populator
}{
	{"contents_bytes", PopulateContentsBytes},
	{"contents_str", PopulateContentsStr},
	{"get_bytes", PopulateGetBytes},
	{"get_str", PopulateGetStr},
	{"relative_path", PopulateRelativePath},
}

// DeriveInitializer picks a per-field populator purely from field
// names. Shapes that structurally cannot support one (a type alias, a
// non-empty tuple) fail; a field outside the standard vocabulary fails
// naming the field.
func DeriveInitializer(shape api.Shape[api.Unit]) (api.Shape[Populator], error) {
	switch shape.Kind {
	case api.ShapeTypeAlias:
		return api.Shape[Populator]{}, api.ErrNoInitializer
	case api.ShapeTupleFields:
		if len(shape.Tuple) > 0 {
			return api.Shape[Populator]{}, api.ErrNoInitializer
		}
	}

	return api.MapShape(shape, func(field api.FieldIdentifier, _ api.Unit) (Populator, error) {
		return standardPopulator(field.Name)
	})
}

func standardPopulator(field string) (Populator, error) {
	i := sort.Search(len(standardFieldPopulators), func(i int) bool {
		return standardFieldPopulators[i].Field >= field
	})
	if i < len(standardFieldPopulators) && standardFieldPopulators[i].Field == field {
		return standardFieldPopulators[i].Populator, nil
	}
	return 0, &api.NonstandardFieldError{Field: field}
}
