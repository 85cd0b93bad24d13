package main

import (
	"fmt"
	"io"

	"github.com/signadot/jsondoc/doc"

	"github.com/scott-cotton/cli"
)

func branches(cfg *BranchesConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Branches.Parse(cc, args)
	if err != nil {
		cfg.Branches.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	for _, file := range files(args) {
		err := cfg.withDoc(cc.In, file, func(d *doc.Document) error {
			return listBranches(cc.Out, d.Cursor, cfg.Path)
		})
		if err != nil {
			return err
		}
	}
	return nil
}

// listBranches writes the path and type of each child of the node at path.
func listBranches(w io.Writer, c *doc.Cursor, path string) error {
	var paths []string
	if path != "" {
		paths = append(paths, path)
	}
	bs, err := c.Branches(paths...)
	if err != nil {
		return err
	}
	for b := range bs {
		t, err := b.Type()
		if err != nil {
			return err
		}
		if _, err := fmt.Fprintf(w, "%s\t%s\n", b.Where(), t); err != nil {
			return err
		}
	}
	return nil
}
