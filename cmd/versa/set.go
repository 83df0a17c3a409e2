package main

import (
	"fmt"
	"strings"

	"github.com/scott-cotton/cli"

	"github.com/versa-format/go-versa/ir"
	"github.com/versa-format/go-versa/parse"
)

func set(cfg *SetConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Set.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) < 2 {
		return fmt.Errorf("%w: set requires a dotted path and a value", cli.ErrUsage)
	}
	path, text := args[0], args[1]
	file := "-"
	if len(args) > 2 {
		file = args[2]
	}
	n, err := getDocFile(cc, file, cfg.parseOpts()...)
	if err != nil {
		return fmt.Errorf("error processing %s: %w", file, err)
	}
	v, err := decodeArg(cfg, text)
	if err != nil {
		return err
	}
	setPath(n, path, v)
	out, err := renderDoc(cfg.MainConfig, n, file)
	if err != nil {
		return err
	}
	if file == "-" {
		_, err = fmt.Fprint(cc.Out, out)
		return err
	}
	return writeDocFile(file, out)
}

// decodeArg turns the command line text into a value with the same
// rules the Versa parser applies to an assignment's right side, so
// lists and quoted strings work from the shell. -s skips decoding.
func decodeArg(cfg *SetConfig, text string) (*ir.Value, error) {
	if cfg.Str {
		return ir.FromString(text), nil
	}
	doc, err := parse.ParseString("x = " + text)
	if err != nil {
		return nil, fmt.Errorf("error decoding value %q: %w", text, err)
	}
	v := doc.Lookup("x")
	if v == nil {
		return nil, fmt.Errorf("error decoding value %q", text)
	}
	return v, nil
}

// setPath descends branches along path, creating any that are
// missing, and binds the final segment on the innermost one.
func setPath(n *ir.Node, path string, v *ir.Value) {
	segs := strings.Split(path, ".")
	for _, seg := range segs[:len(segs)-1] {
		b := n.GetBranch(seg)
		if b == nil {
			b = n.AddBranch(seg)
		}
		n = b
	}
	n.SetVal(segs[len(segs)-1], v)
}
