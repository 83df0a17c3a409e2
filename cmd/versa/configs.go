package main

import (
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/scott-cotton/cli"

	"github.com/versa-format/go-versa/encode"
	"github.com/versa-format/go-versa/format"
	"github.com/versa-format/go-versa/parse"
)

type MainConfig struct {
	Color bool `cli:"name=color desc='colorize output'"`
	Lax   bool `cli:"name=lax desc='recover from parse errors line by line'"`

	V bool `cli:"name=v aliases=versa desc='do i/o in versa syntax'"`
	Y bool `cli:"name=y aliases=yaml desc='do i/o in yaml syntax'"`

	InFormat, OutFormat *format.Format

	Out      string
	CloseOut func() error

	Main *cli.Command
}

func (cfg *MainConfig) fmtFunc(fps ...**format.Format) cli.FuncOpt {
	return cli.FuncOpt(func(_ *cli.Context, v string) (any, error) {
		f, err := format.ParseFormat(v)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", cli.ErrUsage, err)
		}
		for _, fp := range fps {
			*fp = &f
		}
		return f, nil
	})
}

func (cfg *MainConfig) outOpt(cc *cli.Context, a string) (any, error) {
	cfg.Out = a
	if a == "-" {
		return nil, nil
	}
	f, err := os.OpenFile(cfg.Out, os.O_CREATE|os.O_TRUNC|os.O_RDWR, 0644)
	if err != nil {
		return nil, err
	}
	cc.Out = f
	cfg.CloseOut = f.Close
	return nil, nil
}

// parseOpts builds parse options from the global flags. The explicit
// -I format wins over the -v/-y shorthands; with neither, content
// detection applies.
func (cfg *MainConfig) parseOpts() []parse.Option {
	var res []parse.Option
	switch {
	case cfg.InFormat != nil:
		res = append(res, parse.WithFormat(*cfg.InFormat))
	case cfg.V:
		res = append(res, parse.WithFormat(format.VersaFormat))
	case cfg.Y:
		res = append(res, parse.WithFormat(format.YAMLFormat))
	}
	if cfg.Lax {
		res = append(res,
			parse.WithStrict(false),
			parse.WithErrorSink(func(e *parse.Error) {
				fmt.Fprintln(os.Stderr, e)
			}))
	}
	return res
}

// encOpts builds encode options from the global flags. Color turns on
// for a terminal unless -color was given explicitly.
func (cfg *MainConfig) encOpts(w io.Writer) []encode.EncodeOption {
	var res []encode.EncodeOption
	switch {
	case cfg.OutFormat != nil:
		res = append(res, encode.EncodeFormat(*cfg.OutFormat))
	case cfg.V:
		res = append(res, encode.EncodeFormat(format.VersaFormat))
	case cfg.Y:
		res = append(res, encode.EncodeFormat(format.YAMLFormat))
	}
	if cfg.Color {
		return append(res, encode.EncodeColors(encode.NewColors()))
	}
	f, ok := w.(*os.File)
	if !ok {
		return res
	}
	if isatty.IsTerminal(f.Fd()) {
		res = append(res, encode.EncodeColors(encode.NewColors()))
	}
	return res
}

type ViewConfig struct {
	*MainConfig

	View *cli.Command
}

type ConvertConfig struct {
	*MainConfig

	W bool `cli:"name=w desc='rewrite files in place'"`

	Convert *cli.Command
}

type GetConfig struct {
	*MainConfig

	Get *cli.Command
}

type SetConfig struct {
	*MainConfig

	Str bool `cli:"name=s desc='treat the value as a string'"`

	Set *cli.Command
}

type FmtConfig struct {
	*MainConfig

	W bool `cli:"name=w desc='rewrite files in place'"`

	Fmt *cli.Command
}

type DiffConfig struct {
	*MainConfig

	Diff *cli.Command
}

type MergeConfig struct {
	*MainConfig

	Merge *cli.Command
}

type VersionConfig struct {
	*MainConfig

	Version *cli.Command
}
