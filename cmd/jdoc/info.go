package main

import (
	"fmt"
	"io"

	"github.com/signadot/jsondoc/doc"
	"github.com/signadot/jsondoc/value"

	"github.com/scott-cotton/cli"
)

func info(cfg *InfoConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Info.Parse(cc, args)
	if err != nil {
		cfg.Info.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: info requires one argument, a document path", cli.ErrUsage)
	}
	path := args[0]
	for i, file := range files(args[1:]) {
		err := cfg.withDoc(cc.In, file, func(d *doc.Document) error {
			return cfg.describe(cc.Out, d.Cursor, path, i > 0)
		})
		if err != nil {
			return err
		}
	}
	return nil
}

// describe writes the path, type, key and length of the node at path.
func (cfg *MainConfig) describe(w io.Writer, c *doc.Cursor, path string, sep bool) error {
	c = c.Clone()
	if err := c.Move(path); err != nil {
		return err
	}
	t, err := c.Type()
	if err != nil {
		return err
	}
	k, err := c.LocalKey()
	if err != nil {
		return err
	}
	n, err := c.Len()
	if err != nil {
		return err
	}
	res := value.NewObject(
		value.Member{Key: "path", Value: value.FromString(c.Where())},
		value.Member{Key: "type", Value: value.FromString(t.String())},
		value.Member{Key: "key", Value: keyValue(k.Interface())},
		value.Member{Key: "len", Value: value.FromInt(int64(n))},
	)
	return cfg.output(w, value.FromObject(res), sep)
}

func keyValue(k any) value.Value {
	switch x := k.(type) {
	case string:
		return value.FromString(x)
	case int:
		return value.FromInt(int64(x))
	}
	return value.Null()
}
