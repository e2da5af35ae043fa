package main

import (
	"fmt"

	yamlet "github.com/yamlet-format/go-yamlet"

	"github.com/scott-cotton/cli"
)

func patch(cfg *PatchConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Patch.Parse(cc, args)
	if err != nil {
		cfg.Patch.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: patch requires 2 arguments, a patch and a file to which to apply it", cli.ErrUsage)
	}
	var patchJSON []byte
	if cfg.String {
		patchJSON = []byte(args[0])
	} else {
		patchJSON, err = readInput(cc, args[0])
		if err != nil {
			return fmt.Errorf("error reading patch %s: %w", args[0], err)
		}
	}
	target, err := getDocFile(cc, args[1])
	if err != nil {
		return fmt.Errorf("error decoding %s: %w", args[1], err)
	}
	res, err := yamlet.Patch(target, patchJSON)
	if err != nil {
		return fmt.Errorf("error patching %s: %w", args[1], err)
	}
	if err := res.Encode(cc.Out, cfg.encOpts(cc.Out)...); err != nil {
		return fmt.Errorf("error encoding result: %w", err)
	}
	return nil
}
