package main

import (
	"fmt"

	"github.com/scott-cotton/cli"

	versa "github.com/versa-format/go-versa"
	"github.com/versa-format/go-versa/encode"
)

func merge(cfg *MergeConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Merge.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: merge requires a defaults file and a user file", cli.ErrUsage)
	}
	defaults, err := getDocFile(cc, args[0], cfg.parseOpts()...)
	if err != nil {
		return fmt.Errorf("error processing %s: %w", args[0], err)
	}
	user, err := getDocFile(cc, args[1], cfg.parseOpts()...)
	if err != nil {
		return fmt.Errorf("error processing %s: %w", args[1], err)
	}
	merged := versa.Merge(defaults, user)
	return encode.Encode(merged, cc.Out, cfg.encOpts(cc.Out)...)
}
