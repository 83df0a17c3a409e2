package encode

import "github.com/versa-format/go-versa/format"

type EncodeOption func(*EncState)

// EncodeFormat renders in f instead of the tree's own language.
func EncodeFormat(f format.Format) EncodeOption {
	return func(es *EncState) {
		es.format = f
		es.hasFormat = true
	}
}

// EncodeIndentUnit overrides the spaces-per-level recorded on the tree.
func EncodeIndentUnit(n int) EncodeOption {
	return func(es *EncState) { es.unit = n }
}

// Depth starts rendering at the given nesting depth.
func Depth(n int) EncodeOption {
	return func(es *EncState) { es.depth = n }
}

// EncodeColors turns on ANSI coloring for terminal display. Colored output
// is not meant to be parsed back.
func EncodeColors(c *Colors) EncodeOption {
	return func(es *EncState) { es.Color = c.Color }
}
