package main

import (
	"fmt"
	"io"
	"os"

	"github.com/scott-cotton/cli"

	"github.com/versa-format/go-versa/encode"
	"github.com/versa-format/go-versa/format"
	"github.com/versa-format/go-versa/ir"
	"github.com/versa-format/go-versa/parse"
)

// getDocFile parses the file at path, "-" meaning the command input.
// For real files a recognized extension picks the syntax unless the
// options already force one.
func getDocFile(cc *cli.Context, path string, opts ...parse.Option) (*ir.Node, error) {
	if path == "-" {
		d, err := io.ReadAll(cc.In)
		if err != nil {
			return nil, fmt.Errorf("error reading stdin: %w", err)
		}
		return parse.Parse(d, opts...)
	}
	return parse.File(path, opts...)
}

// outFormat resolves the syntax to write path in: explicit options
// first, then the path suffix, then the node's own language.
func outFormat(cfg *MainConfig, path string, n *ir.Node) format.Format {
	switch {
	case cfg.OutFormat != nil:
		return *cfg.OutFormat
	case cfg.V:
		return format.VersaFormat
	case cfg.Y:
		return format.YAMLFormat
	}
	if f, ok := format.FromPath(path); ok {
		return f
	}
	return n.Language
}

func writeDocFile(path string, data string) error {
	return os.WriteFile(path, []byte(data), 0644)
}

// renderDoc renders n for path in the resolved output syntax.
func renderDoc(cfg *MainConfig, n *ir.Node, path string) (string, error) {
	f := outFormat(cfg, path, n)
	return encode.String(n, encode.EncodeFormat(f))
}
