package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"

	"github.com/yamlet-format/go-yamlet/encode"
	"github.com/yamlet-format/go-yamlet/ir"
	"github.com/yamlet-format/go-yamlet/parse"

	"github.com/goccy/go-yaml"
	"github.com/scott-cotton/cli"
)

func convert(cfg *ConvertConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Convert.Parse(cc, args)
	if err != nil {
		cfg.Convert.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) > 1 {
		return fmt.Errorf("%w: convert takes at most one file, got %v", cli.ErrUsage, args)
	}
	file := "-"
	if len(args) == 1 {
		file = args[0]
	}
	in, err := readInput(cc, file)
	if err != nil {
		return fmt.Errorf("error reading %s: %w", file, err)
	}
	root, err := decodeAs(cfg.From, in, file)
	if err != nil {
		return err
	}
	return encodeAs(cfg, cc.Out, root)
}

func decodeAs(from string, in []byte, name string) (ir.Node, error) {
	switch from {
	case "", "yamlet", "yl":
		m, err := parse.Parse(in, parse.WithFilename(name))
		if err != nil {
			return nil, err
		}
		return m, nil
	case "yaml", "y":
		var v any
		if err := yaml.Unmarshal(in, &v); err != nil {
			return nil, fmt.Errorf("error decoding yaml: %w", err)
		}
		return ir.FromAny(v)
	case "json", "j":
		return ir.FromJSON(in)
	}
	return nil, fmt.Errorf("%w: unknown input format %q", cli.ErrUsage, from)
}

func encodeAs(cfg *ConvertConfig, w io.Writer, root ir.Node) error {
	switch cfg.To {
	case "", "yamlet", "yl":
		if _, err := ir.AsMapping(root); err != nil {
			return fmt.Errorf("cannot render input as a document: %w", err)
		}
		return encode.Encode(root, w, cfg.encOpts(w)...)
	case "json", "j":
		data, err := ir.ToJSON(root)
		if err != nil {
			return err
		}
		var buf bytes.Buffer
		if err := json.Indent(&buf, data, "", "  "); err != nil {
			return err
		}
		buf.WriteByte('\n')
		_, err = w.Write(buf.Bytes())
		return err
	}
	return fmt.Errorf("%w: unknown output format %q", cli.ErrUsage, cfg.To)
}
