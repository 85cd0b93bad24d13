package main

import (
	"fmt"
	"io"

	"github.com/signadot/jsondoc/encode"
	"github.com/signadot/jsondoc/format"
	"github.com/signadot/jsondoc/value"

	"github.com/scott-cotton/cli"
)

func fetch(cfg *FetchConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Fetch.Parse(cc, args)
	if err != nil {
		cfg.Fetch.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: fetch requires one argument, a document path", cli.ErrUsage)
	}
	path := args[0]
	for i, file := range files(args[1:]) {
		v, err := cfg.loadFile(cc.In, file, path)
		if err != nil {
			return fmt.Errorf("error fetching %q: %w", path, err)
		}
		if err := cfg.output(cc.Out, v, i > 0); err != nil {
			return err
		}
	}
	return nil
}

// output encodes v to w, preceded by a document separator in yaml when sep
// is set.
func (cfg *MainConfig) output(w io.Writer, v value.Value, sep bool) error {
	if sep && cfg.format() == format.YAMLFormat {
		if _, err := io.WriteString(w, "---\n"); err != nil {
			return fmt.Errorf("unable to write separator: %w", err)
		}
	}
	if err := encode.Encode(v, w, cfg.encOpts(w)...); err != nil {
		return fmt.Errorf("error encoding output: %w", err)
	}
	return nil
}
