package main

import (
	"fmt"
	"runtime/debug"

	"github.com/scott-cotton/cli"
)

func version(cfg *VersionConfig, cc *cli.Context, args []string) error {
	if _, err := cfg.Version.Parse(cc, args); err != nil {
		return err
	}
	v := "devel"
	if bi, ok := debug.ReadBuildInfo(); ok && bi.Main.Version != "" {
		v = bi.Main.Version
	}
	fmt.Fprintf(cc.Out, "yl %s\n", v)
	return nil
}
