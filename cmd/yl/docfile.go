package main

import (
	"fmt"
	"io"
	"os"

	yamlet "github.com/yamlet-format/go-yamlet"
	"github.com/yamlet-format/go-yamlet/parse"

	"github.com/scott-cotton/cli"
)

func getDocFile(cc *cli.Context, path string) (*yamlet.Document, error) {
	var (
		r io.Reader
	)
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		r = f
	} else {
		r = cc.In
	}

	d, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("error reading %q: %w", path, err)
	}
	return yamlet.Parse(d, parse.WithFilename(path))
}

func readInput(cc *cli.Context, path string) ([]byte, error) {
	if path == "-" {
		return io.ReadAll(cc.In)
	}
	return os.ReadFile(path)
}
