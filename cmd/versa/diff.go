package main

import (
	"fmt"
	"strings"

	"github.com/scott-cotton/cli"
	diffpatch "github.com/sergi/go-diff/diffmatchpatch"

	"github.com/versa-format/go-versa/encode"
	"github.com/versa-format/go-versa/ir"
)

func diff(cfg *DiffConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Diff.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: diff requires exactly two files", cli.ErrUsage)
	}
	a, err := getDocFile(cc, args[0], cfg.parseOpts()...)
	if err != nil {
		return fmt.Errorf("error processing %s: %w", args[0], err)
	}
	b, err := getDocFile(cc, args[1], cfg.parseOpts()...)
	if err != nil {
		return fmt.Errorf("error processing %s: %w", args[1], err)
	}
	aText, bText := canonical(cfg.MainConfig, a), canonical(cfg.MainConfig, b)
	if aText == bText {
		return nil
	}
	fmt.Fprintf(cc.Out, "--- %s\n+++ %s\n", args[0], args[1])
	_, err = fmt.Fprint(cc.Out, lineDiff(aText, bText))
	return err
}

// canonical renders n with normalized indentation so layout-only
// differences between the inputs fall away.
func canonical(cfg *MainConfig, n *ir.Node) string {
	c := n.Clone()
	c.IndentUnit = -1
	c.Language = outFormat(cfg, "", n)
	return encode.MustString(c)
}

// lineDiff produces a +/- prefixed line diff of a against b.
func lineDiff(a, b string) string {
	dmp := diffpatch.New()
	ca, cb, lines := dmp.DiffLinesToChars(a, b)
	diffs := dmp.DiffCharsToLines(dmp.DiffMain(ca, cb, false), lines)
	var sb strings.Builder
	for _, d := range diffs {
		prefix := " "
		switch d.Type {
		case diffpatch.DiffInsert:
			prefix = "+"
		case diffpatch.DiffDelete:
			prefix = "-"
		}
		for _, line := range splitKeepNonEmpty(d.Text) {
			sb.WriteString(prefix)
			sb.WriteString(line)
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}

func splitKeepNonEmpty(s string) []string {
	s = strings.TrimSuffix(s, "\n")
	return strings.Split(s, "\n")
}
