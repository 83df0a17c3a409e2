package parse

import (
	"io"
	"os"

	"github.com/versa-format/go-versa/format"
	"github.com/versa-format/go-versa/ir"
)

// Parse builds a document tree from d.  The input format is detected
// with format.Detect unless overridden by WithFormat.  The resulting
// root node records the format it was parsed from in its Language
// field and whether the input ended with a newline.
func Parse(d []byte, options ...Option) (*ir.Node, error) {
	o := newOpts()
	for _, opt := range options {
		opt(o)
	}
	f := format.Detect(d)
	if o.hasFormat {
		f = o.format
	}
	if f.IsYAML() {
		return parseYAML(string(d), o)
	}
	return parseVersa(string(d), o)
}

// ParseString is Parse for string input.
func ParseString(s string, options ...Option) (*ir.Node, error) {
	return Parse([]byte(s), options...)
}

// Reader parses everything readable from r.
func Reader(r io.Reader, options ...Option) (*ir.Node, error) {
	d, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return Parse(d, options...)
}

// File parses the file at path.  When no WithFormat option is given
// and the file extension names a format, the extension wins over
// content detection.
func File(path string, options ...Option) (*ir.Node, error) {
	d, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	if f, ok := format.FromPath(path); ok {
		options = append([]Option{WithFormat(f)}, options...)
	}
	return Parse(d, options...)
}
