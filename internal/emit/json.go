package emit

import (
	"github.com/ohler55/ojg/oj"

	"github.com/filedex/filedex/api"
)

// DebugJSON dumps the assembled model as indented JSON for inspection
// and for the generated debug identifier.
func DebugJSON(model *api.Model) (string, error) {
	out, err := oj.Marshal(model, 2)
	if err != nil {
		return "", err
	}
	return string(out), nil
}
