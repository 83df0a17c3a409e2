package main

import (
	"fmt"
	"io"

	"github.com/scott-cotton/cli"

	"github.com/versa-format/go-versa/encode"
)

func view(cfg *ViewConfig, cc *cli.Context, args []string) error {
	args, err := cfg.View.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		args = []string{"-"}
	}
	for _, file := range args {
		if err := viewFile(cfg, cc, file); err != nil {
			return fmt.Errorf("error processing %s: %w", file, err)
		}
	}
	return nil
}

func viewFile(cfg *ViewConfig, cc *cli.Context, file string) error {
	n, err := getDocFile(cc, file, cfg.parseOpts()...)
	if err != nil {
		return err
	}
	return encode.Encode(n, cc.Out, cfg.encOpts(cc.Out)...)
}

func convert(cfg *ConvertConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Convert.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		args = []string{"-"}
	}
	for _, file := range args {
		if err := convertFile(cfg, cc, file); err != nil {
			return fmt.Errorf("error converting %s: %w", file, err)
		}
	}
	return nil
}

// convertFile renders file in the requested output syntax; without an
// explicit one it flips to the other syntax.
func convertFile(cfg *ConvertConfig, cc *cli.Context, file string) error {
	n, err := getDocFile(cc, file, cfg.parseOpts()...)
	if err != nil {
		return err
	}
	f := n.Language.Other()
	if cfg.OutFormat != nil || cfg.V || cfg.Y {
		f = outFormat(cfg.MainConfig, "", n)
	}
	out, err := encode.String(n, encode.EncodeFormat(f))
	if err != nil {
		return err
	}
	if cfg.W && file != "-" {
		return writeDocFile(file, out)
	}
	_, err = io.WriteString(cc.Out, out)
	return err
}

func fmtRun(cfg *FmtConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Fmt.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		args = []string{"-"}
	}
	for _, file := range args {
		if err := fmtFile(cfg, cc, file); err != nil {
			return fmt.Errorf("error formatting %s: %w", file, err)
		}
	}
	return nil
}

// fmtFile re-renders file in its own syntax, which normalizes
// indentation and spacing while keeping comments and order.
func fmtFile(cfg *FmtConfig, cc *cli.Context, file string) error {
	n, err := getDocFile(cc, file, cfg.parseOpts()...)
	if err != nil {
		return err
	}
	n.IndentUnit = -1
	out, err := encode.String(n, encode.EncodeFormat(n.Language))
	if err != nil {
		return err
	}
	if cfg.W && file != "-" {
		return writeDocFile(file, out)
	}
	_, err = io.WriteString(cc.Out, out)
	return err
}
