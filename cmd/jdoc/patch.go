package main

import (
	"fmt"

	"github.com/signadot/jsondoc"
	"github.com/signadot/jsondoc/value"

	jsonpatch "github.com/evanphx/json-patch"
	"github.com/scott-cotton/cli"
)

func patch(cfg *PatchConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Patch.Parse(cc, args)
	if err != nil {
		cfg.Patch.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: patch requires a json patch and optionally files to which to apply it", cli.ErrUsage)
	}
	d, err := getish(cfg.String, cfg.File, cc.In, args[0])
	if err != nil {
		return err
	}
	ops, err := jsonpatch.DecodePatch(d)
	if err != nil {
		return fmt.Errorf("%w: error decoding patch: %w", cli.ErrUsage, err)
	}
	for i, file := range files(args[1:]) {
		target, err := cfg.loadFile(cc.In, file, "/")
		if err != nil {
			return fmt.Errorf("error decoding %s: %w", file, err)
		}
		res, err := applyPatch(ops, target)
		if err != nil {
			return fmt.Errorf("error patching %s: %w", file, err)
		}
		if err := cfg.output(cc.Out, res, i > 0); err != nil {
			return err
		}
	}
	return nil
}

// applyPatch applies an RFC 6902 patch to v.
func applyPatch(ops jsonpatch.Patch, v value.Value) (value.Value, error) {
	out, err := ops.Apply([]byte(v.String()))
	if err != nil {
		return value.Value{}, err
	}
	return jsondoc.Load(out)
}
