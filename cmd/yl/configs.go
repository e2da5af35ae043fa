package main

import (
	"io"
	"os"

	"github.com/yamlet-format/go-yamlet/encode"

	"github.com/scott-cotton/cli"

	"github.com/mattn/go-isatty"
)

type MainConfig struct {
	Color  bool `cli:"name=color desc='encode with color'"`
	Indent int  `cli:"name=indent desc='spaces per nesting level'"`
	Flow   int  `cli:"name=flow desc='largest collection encoded in flow form'"`

	Out      string
	CloseOut func() error

	Main *cli.Command
}

func (cfg *MainConfig) encOpts(w io.Writer) []encode.EncodeOption {
	var res []encode.EncodeOption
	if cfg.Indent > 0 {
		res = append(res, encode.Indent(cfg.Indent))
	}
	if cfg.Flow > 0 {
		res = append(res, encode.FlowLimit(cfg.Flow))
	}
	if cfg.Color {
		res = append(res, encode.EncodeColors(encode.NewColors()))
		return res
	}
	colorsSet := false
	for _, opt := range cfg.Main.Opts {
		if opt.Name != "color" {
			continue
		}
		colorsSet = opt.Value != nil
		break
	}
	if colorsSet {
		return res
	}
	f, ok := w.(*os.File)
	if !ok {
		return res
	}
	if isatty.IsTerminal(f.Fd()) {
		res = append(res, encode.EncodeColors(encode.NewColors()))
		return res
	}
	return res
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
	return nil, nil
}

type FmtConfig struct {
	*MainConfig

	Fmt *cli.Command
}

type GetConfig struct {
	*MainConfig

	Get *cli.Command
}

type QueryConfig struct {
	*MainConfig
	Env map[string]any

	Query *cli.Command
}

type DiffConfig struct {
	*MainConfig
	Quiet bool `cli:"name=q aliases=quiet desc='suppress output, report via exit status'"`

	Diff *cli.Command
}

type PatchConfig struct {
	*MainConfig
	String bool `cli:"name=s desc='patch arg is a literal patch document'"`

	Patch *cli.Command
}

type ConvertConfig struct {
	*MainConfig
	From string `cli:"name=from aliases=f desc='input format: yamlet, yaml, json'"`
	To   string `cli:"name=to aliases=t desc='output format: yamlet, json'"`

	Convert *cli.Command
}

type VersionConfig struct {
	*MainConfig

	Version *cli.Command
}
