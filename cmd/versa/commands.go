package main

import (
	"github.com/scott-cotton/cli"
)

func MainCommand() *cli.Command {
	cfg := &MainConfig{}
	sOpts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	opts := append(sOpts, []*cli.Opt{
		{
			Name:        "o",
			Description: "output file (default stdout)",
			Type:        cli.NamedFuncOpt(cfg.outOpt, "(filepath)"),
		},
		{
			Name:        "I",
			Aliases:     []string{"ifmt"},
			Description: "input syntax: versa/v, yaml/y",
			Type:        cli.NamedFuncOpt(cfg.fmtFunc(&cfg.InFormat), "(format)"),
		}, {
			Name:        "O",
			Aliases:     []string{"ofmt"},
			Description: "output syntax: versa/v, yaml/y",
			Type:        cli.NamedFuncOpt(cfg.fmtFunc(&cfg.OutFormat), "(format)"),
		}}...)

	return cli.NewCommandAt(&cfg.Main, "versa").
		WithSynopsis("versa [opts] command [opts]").
		WithDescription("versa is a tool for working with configuration documents.").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return versaMain(cfg, cc, args)
		}).
		WithSubs(
			ViewCommand(cfg),
			ConvertCommand(cfg),
			GetCommand(cfg),
			SetCommand(cfg),
			FmtCommand(cfg),
			DiffCommand(cfg),
			MergeCommand(cfg),
			VersionCommand(cfg))
}

func ViewCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &ViewConfig{MainConfig: mainCfg}
	return cli.NewCommandAt(&cfg.View, "view").
		WithAliases("v").
		WithSynopsis("view [files]").
		WithDescription("render documents, colorized on a terminal").
		WithRun(func(cc *cli.Context, args []string) error {
			return view(cfg, cc, args)
		})
}

func ConvertCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &ConvertConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Convert, "convert").
		WithAliases("c", "conv").
		WithSynopsis("convert [-O fmt] [files]").
		WithDescription("convert documents between the two syntaxes").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return convert(cfg, cc, args)
		})
}

func GetCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &GetConfig{MainConfig: mainCfg}
	return cli.NewCommandAt(&cfg.Get, "get").
		WithAliases("g").
		WithSynopsis("get <path> [files]").
		WithDescription("print the value at a dotted path").
		WithRun(func(cc *cli.Context, args []string) error {
			return get(cfg, cc, args)
		})
}

func SetCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &SetConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Set, "set").
		WithSynopsis("set <path> <value> <file>").
		WithDescription("set the value at a dotted path, keeping layout").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return set(cfg, cc, args)
		})
}

func FmtCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &FmtConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Fmt, "fmt").
		WithSynopsis("fmt [-w] [files]").
		WithDescription("re-render documents in canonical layout").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return fmtRun(cfg, cc, args)
		})
}

func DiffCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &DiffConfig{MainConfig: mainCfg}
	return cli.NewCommandAt(&cfg.Diff, "diff").
		WithAliases("d").
		WithSynopsis("diff <a> <b>").
		WithDescription("diff two documents over their canonical renders").
		WithRun(func(cc *cli.Context, args []string) error {
			return diff(cfg, cc, args)
		})
}

func MergeCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &MergeConfig{MainConfig: mainCfg}
	return cli.NewCommandAt(&cfg.Merge, "merge").
		WithAliases("m").
		WithSynopsis("merge <defaults> <user>").
		WithDescription("overlay a user document onto a defaults document").
		WithRun(func(cc *cli.Context, args []string) error {
			return merge(cfg, cc, args)
		})
}
