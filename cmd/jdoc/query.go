package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/signadot/jsondoc"
	"github.com/signadot/jsondoc/value"

	"github.com/scott-cotton/cli"
	"github.com/theory/jsonpath"
)

func query(cfg *QueryConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Query.Parse(cc, args)
	if err != nil {
		cfg.Query.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: query requires one argument, a jsonpath expression", cli.ErrUsage)
	}
	path, err := jsonpath.Parse(args[0])
	if err != nil {
		return fmt.Errorf("%w: invalid jsonpath %q: %w", cli.ErrUsage, args[0], err)
	}
	for _, file := range files(args[1:]) {
		v, err := cfg.loadFile(cc.In, file, "/")
		if err != nil {
			return err
		}
		if err := cfg.selectPath(cc.Out, path, v); err != nil {
			return fmt.Errorf("error querying %s: %w", file, err)
		}
	}
	return nil
}

// selectPath writes the nodes path selects from v, one document each.
func (cfg *QueryConfig) selectPath(w io.Writer, path *jsonpath.Path, v value.Value) error {
	var data any
	if err := json.Unmarshal([]byte(v.String()), &data); err != nil {
		return err
	}
	res := path.Select(data)
	cfg.logf("%s selected %d nodes", path, len(res))
	for i, r := range res {
		d, err := json.Marshal(r)
		if err != nil {
			return err
		}
		rv, err := jsondoc.Load(d)
		if err != nil {
			return err
		}
		if err := cfg.output(w, rv, i > 0); err != nil {
			return err
		}
		if cfg.First {
			break
		}
	}
	return nil
}
