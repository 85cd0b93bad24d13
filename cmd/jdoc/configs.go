package main

import (
	"fmt"
	"io"
	"os"

	"github.com/signadot/jsondoc/doc"
	"github.com/signadot/jsondoc/encode"
	"github.com/signadot/jsondoc/format"
	"github.com/signadot/jsondoc/parse"

	"github.com/scott-cotton/cli"

	"github.com/mattn/go-isatty"
)

type MainConfig struct {
	Color   bool `cli:"name=color desc='encode with color'"`
	WireOut bool `cli:"name=wire desc='output in compact format'"`
	Indent  int  `cli:"name=indent desc='indentation width'"`

	J bool `cli:"name=j aliases=json desc='output json'"`
	Y bool `cli:"name=y aliases=yaml desc='output yaml'"`

	Base    int  `cli:"name=base desc='index of the first array element in paths'"`
	Depth   int  `cli:"name=depth desc='maximum nesting depth'"`
	Verbose bool `cli:"name=v desc='log progress to stderr'"`

	OutFormat *format.Format
	// fileFormat is implied by the extension of the -o file.
	fileFormat *format.Format

	Out      string
	CloseOut func() error

	Main *cli.Command
}

func newMainConfig() *MainConfig {
	return &MainConfig{
		Indent: 2,
		Base:   1,
		Depth:  parse.DefaultMaxDepth,
	}
}

func (cfg *MainConfig) fmtFunc(fp **format.Format) cli.FuncOpt {
	return cli.FuncOpt(func(_ *cli.Context, v string) (any, error) {
		f, err := format.ParseFormat(v)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", cli.ErrUsage, err)
		}
		*fp = &f
		return f, nil
	})
}

func (cfg *MainConfig) docOpts() []doc.Option {
	return []doc.Option{doc.IndexBase(cfg.Base), doc.MaxDepth(cfg.Depth)}
}

// format picks the output format: -O, then -j or -y, then the -o file
// extension.
func (cfg *MainConfig) format() format.Format {
	switch {
	case cfg.OutFormat != nil:
		return *cfg.OutFormat
	case cfg.J:
		return format.JSONFormat
	case cfg.Y:
		return format.YAMLFormat
	case cfg.fileFormat != nil:
		return *cfg.fileFormat
	}
	return format.JSONFormat
}

// optSet reports whether the option name was given on the command line.
func (cfg *MainConfig) optSet(name string) bool {
	if cfg.Main == nil {
		return false
	}
	for _, opt := range cfg.Main.Opts {
		if opt.Name == name {
			return opt.Value != nil
		}
	}
	return false
}

func (cfg *MainConfig) encOpts(w io.Writer) []encode.EncodeOption {
	res := []encode.EncodeOption{
		encode.EncodeFormat(cfg.format()),
		encode.EncodeWire(cfg.WireOut),
		encode.Indent(cfg.Indent),
	}
	if cfg.colors(w) {
		res = append(res, encode.EncodeColors(encode.NewColors()))
	}
	return res
}

// colors reports whether output to w is colored: -color forces it and
// otherwise terminals get color.
func (cfg *MainConfig) colors(w io.Writer) bool {
	if cfg.Color {
		return true
	}
	if cfg.optSet("color") {
		return false
	}
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd())
}

type FetchConfig struct {
	*MainConfig

	Fetch *cli.Command
}

type InfoConfig struct {
	*MainConfig

	Info *cli.Command
}

type ValuesConfig struct {
	*MainConfig

	Path  string `cli:"name=p aliases=path desc='start at path'"`
	Where string `cli:"name=where desc='expression selecting leaves, with value, path and key in scope'"`
	Paths bool   `cli:"name=paths desc='print the path of each leaf'"`

	Values *cli.Command
}

type BranchesConfig struct {
	*MainConfig

	Path string `cli:"name=p aliases=path desc='start at path'"`

	Branches *cli.Command
}

type QueryConfig struct {
	*MainConfig

	First bool `cli:"name=first desc='output only the first result'"`

	Query *cli.Command
}

type DiffConfig struct {
	*MainConfig

	Path  string `cli:"name=p aliases=path desc='compare the values at path'"`
	Merge bool   `cli:"name=merge desc='output a json merge patch'"`

	Diff *cli.Command
}

type MatchConfig struct {
	*cli.Command
	*MainConfig

	Trim   bool `cli:"name=trim desc='trim the results to the match'"`
	String bool `cli:"name=s desc='consider match a string argument'"`
	File   bool `cli:"name=f desc='consider match a file path'"`
}

type PatchConfig struct {
	*MainConfig

	String bool `cli:"name=s desc='patch arg as string'"`
	File   bool `cli:"name=f desc='patch arg as file'"`

	Patch *cli.Command
}
