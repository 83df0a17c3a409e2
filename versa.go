package versa

import (
	"os"
	"path/filepath"

	"github.com/versa-format/go-versa/encode"
	"github.com/versa-format/go-versa/format"
	"github.com/versa-format/go-versa/ir"
	"github.com/versa-format/go-versa/parse"
)

// Parse builds a tree from src. The syntax is detected from the content
// unless a parse.WithFormat option forces one.
func Parse(src []byte, options ...parse.Option) (*ir.Node, error) {
	return parse.Parse(src, options...)
}

// ParseString is Parse for string input.
func ParseString(s string, options ...parse.Option) (*ir.Node, error) {
	return parse.ParseString(s, options...)
}

// Load parses the file at path. A recognized file extension picks the
// syntax; otherwise the content decides.
func Load(path string, options ...parse.Option) (*ir.Node, error) {
	return parse.File(path, options...)
}

// String renders n in the syntax it was parsed from.
func String(n *ir.Node) (string, error) {
	return encode.String(n)
}

// Render renders n in an explicit syntax regardless of its language.
func Render(n *ir.Node, f format.Format) (string, error) {
	return encode.String(n, encode.EncodeFormat(f))
}

// Save renders n and writes it to path, creating parent directories as
// needed. A recognized file extension picks the output syntax;
// otherwise the node's own language is used.
func Save(n *ir.Node, path string) error {
	f := n.Language
	if pf, ok := format.FromPath(path); ok {
		f = pf
	}
	out, err := encode.String(n, encode.EncodeFormat(f))
	if err != nil {
		return err
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	return os.WriteFile(path, []byte(out), 0o644)
}

// Detect reports which syntax src appears to be written in.
func Detect(src []byte) format.Format {
	return format.Detect(src)
}
