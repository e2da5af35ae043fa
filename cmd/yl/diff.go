package main

import (
	"fmt"
	"io"

	yamlet "github.com/yamlet-format/go-yamlet"

	"github.com/scott-cotton/cli"
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
	a, err := getDocFile(cc, args[0])
	if err != nil {
		return fmt.Errorf("error decoding %s: %w", args[0], err)
	}
	b, err := getDocFile(cc, args[1])
	if err != nil {
		return fmt.Errorf("error decoding %s: %w", args[1], err)
	}
	d, err := yamlet.Diff(a, b)
	if err != nil {
		return err
	}
	if d == "" {
		return nil
	}
	if !cfg.Quiet {
		if _, err := io.WriteString(cc.Out, d); err != nil {
			return err
		}
	}
	return cli.ExitCodeErr(1)
}
