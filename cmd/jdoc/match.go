package main

import (
	"fmt"

	"github.com/signadot/jsondoc"
	"github.com/signadot/jsondoc/value"

	"github.com/scott-cotton/cli"
)

func match(cfg *MatchConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Command.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: match requires 1 argument, a match object", cli.ErrUsage)
	}
	d, err := getish(cfg.String, cfg.File, cc.In, args[0])
	if err != nil {
		return err
	}
	pattern, err := jsondoc.Load(d, jsondoc.WithMaxDepth(cfg.Depth))
	if err != nil {
		return fmt.Errorf("error decoding match: %w", err)
	}
	n := 0
	for _, file := range files(args[1:]) {
		v, err := cfg.loadFile(cc.In, file, "/")
		if err != nil {
			return fmt.Errorf("error matching %s: %w", file, err)
		}
		res, ok := cfg.matchValue(pattern, v)
		if !ok {
			cfg.logf("%s does not match", file)
			continue
		}
		if err := cfg.output(cc.Out, res, n > 0); err != nil {
			return err
		}
		n++
	}
	return nil
}

// matchValue reports whether v matches pattern, returning v trimmed to
// the pattern under -trim.
func (cfg *MatchConfig) matchValue(pattern, v value.Value) (value.Value, bool) {
	if !jsondoc.Match(v, pattern) {
		return value.Value{}, false
	}
	if cfg.Trim {
		v = jsondoc.Trim(pattern, v)
	}
	return v, true
}
