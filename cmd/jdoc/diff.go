package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/signadot/jsondoc"
	"github.com/signadot/jsondoc/encode"
	"github.com/signadot/jsondoc/value"

	jsonpatch "github.com/evanphx/json-patch"
	"github.com/fatih/color"
	"github.com/scott-cotton/cli"
	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

func diff(cfg *DiffConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Diff.Parse(cc, args)
	if err != nil {
		cfg.Diff.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: diff requires 2 args, got %v", cli.ErrUsage, args)
	}
	path := cfg.Path
	if path == "" {
		path = "/"
	}
	a, err := cfg.loadFile(cc.In, args[0], path)
	if err != nil {
		return fmt.Errorf("error decoding %s: %w", args[0], err)
	}
	b, err := cfg.loadFile(cc.In, args[1], path)
	if err != nil {
		return fmt.Errorf("error decoding %s: %w", args[1], err)
	}
	differs, err := cfg.diffValues(cc.Out, a, b)
	if err != nil {
		return err
	}
	if differs {
		return cli.ExitCodeErr(1)
	}
	return nil
}

// diffValues writes the difference between a and b to w and reports
// whether there is one. Object member order is not significant.
func (cfg *DiffConfig) diffValues(w io.Writer, a, b value.Value) (bool, error) {
	wa := encode.MustString(a, encode.EncodeWire(true))
	wb := encode.MustString(b, encode.EncodeWire(true))
	if jsonpatch.Equal([]byte(wa), []byte(wb)) {
		return false, nil
	}
	if cfg.Merge {
		d, err := jsonpatch.CreateMergePatch([]byte(wa), []byte(wb))
		if err != nil {
			return true, fmt.Errorf("error creating merge patch: %w", err)
		}
		p, err := jsondoc.Load(d)
		if err != nil {
			return true, err
		}
		return true, cfg.output(w, p, false)
	}
	return true, lineDiff(w, encode.MustString(a), encode.MustString(b), cfg.colors(w))
}

// lineDiff writes a unified style listing of the lines of from and to.
func lineDiff(w io.Writer, from, to string, colorize bool) error {
	dmp := diffpatch.New()
	ca, cb, lines := dmp.DiffLinesToChars(from+"\n", to+"\n")
	diffs := dmp.DiffCharsToLines(dmp.DiffMain(ca, cb, false), lines)
	del, ins := color.New(color.FgRed), color.New(color.FgGreen)
	for _, d := range diffs {
		prefix, c := " ", (*color.Color)(nil)
		switch d.Type {
		case diffpatch.DiffDelete:
			prefix, c = "-", del
		case diffpatch.DiffInsert:
			prefix, c = "+", ins
		}
		for _, ln := range strings.SplitAfter(strings.TrimSuffix(d.Text, "\n"), "\n") {
			ln = prefix + strings.TrimSuffix(ln, "\n")
			if colorize && c != nil {
				ln = c.Sprint(ln)
			}
			if _, err := io.WriteString(w, ln+"\n"); err != nil {
				return err
			}
		}
	}
	return nil
}
