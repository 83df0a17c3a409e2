package main

import (
	"fmt"
	"runtime/debug"

	"github.com/scott-cotton/cli"
)

// overridden at release time via -ldflags "-X main.version=..."
var version = ""

func VersionCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &VersionConfig{MainConfig: mainCfg}
	return cli.NewCommandAt(&cfg.Version, "version").
		WithSynopsis("version").
		WithDescription("print the versa version").
		WithRun(func(cc *cli.Context, args []string) error {
			fmt.Fprintf(cc.Out, "versa %s\n", versionString())
			return nil
		})
}

func versionString() string {
	if version != "" {
		return version
	}
	if bi, ok := debug.ReadBuildInfo(); ok && bi.Main.Version != "" {
		return bi.Main.Version
	}
	return "(devel)"
}
