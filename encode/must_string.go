package encode

import (
	"strings"

	"github.com/versa-format/go-versa/ir"
)

// MustString renders node and panics on failure, trimming surrounding
// whitespace. Intended for tests and debug output.
func MustString(node *ir.Node) string {
	s, err := String(node)
	if err != nil {
		panic(err)
	}
	return strings.TrimSpace(s)
}
