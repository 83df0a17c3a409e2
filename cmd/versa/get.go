package main

import (
	"fmt"

	"github.com/scott-cotton/cli"

	"github.com/versa-format/go-versa/encode"
	"github.com/versa-format/go-versa/ir"
)

func get(cfg *GetConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Get.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: get requires a dotted path", cli.ErrUsage)
	}
	path := args[0]
	files := args[1:]
	if len(files) == 0 {
		files = []string{"-"}
	}
	for _, file := range files {
		n, err := getDocFile(cc, file, cfg.parseOpts()...)
		if err != nil {
			return fmt.Errorf("error processing %s: %w", file, err)
		}
		if err := printPath(cfg, cc, n, path); err != nil {
			return fmt.Errorf("error querying %s with %s: %w", file, path, err)
		}
	}
	return nil
}

func printPath(cfg *GetConfig, cc *cli.Context, n *ir.Node, path string) error {
	if b := n.GetPathBranch(path); b != nil {
		sub := b.Clone()
		sub.Language = n.Language
		return encode.Encode(sub, cc.Out, cfg.encOpts(cc.Out)...)
	}
	out, err := pathOutput(n, path)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(cc.Out, out)
	return err
}

// pathOutput renders the scalar at path as bare value text, without a
// key or list-item prefix, in the document's own syntax.
func pathOutput(n *ir.Node, path string) (string, error) {
	v := n.GetValue(path)
	if v == nil {
		return "", fmt.Errorf("no value at %q", path)
	}
	return encode.Value(v, encode.EncodeFormat(n.Language))
}
