package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/signadot/jsondoc/debug"
	"github.com/signadot/jsondoc/format"

	"github.com/charmbracelet/log"
	"github.com/scott-cotton/cli"
)

func jdocMain(cfg *MainConfig, cc *cli.Context, args []string) error {
	defer cfg.closeOut()
	args, err := cfg.Main.Parse(cc, args)
	if err != nil {
		return err
	}
	if count(cfg.J, cfg.Y) > 1 {
		return fmt.Errorf("%w: must specify at most one of -j[son] -y[aml]", cli.ErrUsage)
	}
	if cfg.Base < 0 {
		return fmt.Errorf("%w: -base must not be negative, got %d", cli.ErrUsage, cfg.Base)
	}
	if cfg.Verbose {
		debug.SetLogger(debug.NewLogger(os.Stderr, log.InfoLevel))
	}
	if len(args) == 0 {
		return cli.ErrNoCommandProvided
	}
	sub := cfg.Main.FindSub(cc, args[0])
	if sub == nil {
		return fmt.Errorf("%w: %q not found", cli.ErrNoSuchCommand, args[0])
	}
	err = sub.Run(cc, args[1:])
	if errors.Is(err, cli.ErrUsage) {
		sub.Usage(cc, err)
		code := sub.Exit(cc, err)
		cfg.closeOut()
		os.Exit(code)
	}
	return err
}

func count(vs ...bool) int {
	ttl := 0
	for _, v := range vs {
		if v {
			ttl++
		}
	}
	return ttl
}

func (cfg *MainConfig) outOpt(cc *cli.Context, a string) (any, error) {
	cfg.Out = a
	if a == "-" {
		return nil, nil
	}
	f, err := os.OpenFile(cfg.Out, os.O_CREATE|os.O_TRUNC|os.O_RDWR, 0644)
	if err != nil {
		return nil, err
	}
	cc.Out = f
	cfg.CloseOut = f.Close
	if of, ok := format.FromPath(a); ok {
		cfg.fileFormat = &of
	}
	return nil, nil
}

// closeOut closes the -o file, once.
func (cfg *MainConfig) closeOut() error {
	if cfg.CloseOut == nil {
		return nil
	}
	f := cfg.CloseOut
	cfg.CloseOut = nil
	return f()
}

// logf reports progress when -v is given.
func (cfg *MainConfig) logf(format string, args ...any) {
	if !cfg.Verbose {
		return
	}
	debug.Logger().Infof(format, args...)
}
