package emit

import (
	"mvdan.cc/gofumpt/format"
)

// formatGoSource formats generated Go source in-memory with gofumpt.
// A formatting failure is reported rather than swallowed: generated
// code that does not format does not parse either.
func formatGoSource(src []byte) ([]byte, error) {
	return format.Source(src, format.Options{})
}
