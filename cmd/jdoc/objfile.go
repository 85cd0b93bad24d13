package main

import (
	"fmt"
	"io"
	"os"

	"github.com/signadot/jsondoc/doc"
	"github.com/signadot/jsondoc/value"

	"github.com/scott-cotton/cli"
)

// files returns args, or stdin when args is empty.
func files(args []string) []string {
	if len(args) == 0 {
		return []string{"-"}
	}
	return args
}

func readFile(in io.Reader, path string) ([]byte, error) {
	var r io.Reader
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		r = f
	} else {
		r = in
	}
	d, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("error reading %q: %w", path, err)
	}
	return d, nil
}

// withDoc opens the document in path and calls fn with it.
func (cfg *MainConfig) withDoc(in io.Reader, path string, fn func(*doc.Document) error) error {
	d, err := readFile(in, path)
	if err != nil {
		return err
	}
	err = doc.With(d, func(dd *doc.Document) error {
		cfg.logf("opened %s: %d nodes", path, dd.Size())
		return fn(dd)
	}, cfg.docOpts()...)
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	return nil
}

// loadFile materializes the value at path within the document in file.
func (cfg *MainConfig) loadFile(in io.Reader, file, path string) (value.Value, error) {
	var res value.Value
	err := cfg.withDoc(in, file, func(dd *doc.Document) error {
		v, err := dd.Fetch(path)
		if err != nil {
			return err
		}
		res = v
		return nil
	})
	return res, err
}

// getish reads an argument given inline (-s, the default) or from a file
// (-f).
func getish(s, f bool, in io.Reader, arg string) ([]byte, error) {
	if s && f {
		return nil, fmt.Errorf("%w: only one of -s, -f may be specified", cli.ErrUsage)
	}
	if !f {
		return []byte(arg), nil
	}
	return readFile(in, arg)
}
