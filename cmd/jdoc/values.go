package main

import (
	"fmt"
	"io"

	"github.com/signadot/jsondoc/doc"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
	"github.com/scott-cotton/cli"
)

// leafEnv is the environment of -where expressions.
type leafEnv struct {
	Value any    `expr:"value"`
	Path  string `expr:"path"`
	Key   any    `expr:"key"`
}

func values(cfg *ValuesConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Values.Parse(cc, args)
	if err != nil {
		cfg.Values.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	where, err := compileWhere(cfg.Where)
	if err != nil {
		return fmt.Errorf("%w: %w", cli.ErrUsage, err)
	}
	for _, file := range files(args) {
		err := cfg.withDoc(cc.In, file, func(d *doc.Document) error {
			return cfg.eachLeaf(cc.Out, d.Cursor, where)
		})
		if err != nil {
			return err
		}
	}
	return nil
}

func compileWhere(src string) (*vm.Program, error) {
	if src == "" {
		return nil, nil
	}
	prg, err := expr.Compile(src, expr.Env(leafEnv{}), expr.AsBool())
	if err != nil {
		return nil, fmt.Errorf("invalid -where expression %q: %w", src, err)
	}
	return prg, nil
}

func (cfg *ValuesConfig) eachLeaf(w io.Writer, c *doc.Cursor, where *vm.Program) error {
	n := 0
	visit := func(lc *doc.Cursor) error {
		v, err := lc.Fetch()
		if err != nil {
			return err
		}
		if where != nil {
			k, err := lc.LocalKey()
			if err != nil {
				return err
			}
			env := leafEnv{Value: v.Interface(), Path: lc.Where(), Key: k.Interface()}
			ok, err := expr.Run(where, env)
			if err != nil {
				return fmt.Errorf("evaluating -where at %s: %w", lc.Where(), err)
			}
			if !ok.(bool) {
				return nil
			}
		}
		n++
		if cfg.Paths {
			_, err := fmt.Fprintf(w, "%s\t%s\n", lc.Where(), v)
			return err
		}
		return cfg.output(w, v, n > 1)
	}
	var paths []string
	if cfg.Path != "" {
		paths = append(paths, cfg.Path)
	}
	return c.EachLeaf(visit, paths...)
}
