package main

import (
	"io"
	"os"

	"github.com/mattn/go-isatty"

	"github.com/kdl-tools/kdlview/project"
	"github.com/scott-cotton/cli"
)

type MainConfig struct {
	Color  bool `cli:"name=color desc='colorize json output'"`
	Indent int  `cli:"name=indent desc='indent width for json output'"`

	Out      string
	CloseOut func() error

	Main *cli.Command
}

func (cfg *MainConfig) encOpts(w io.Writer) []project.EncodeOption {
	res := []project.EncodeOption{
		project.EncodeIndent(cfg.Indent),
	}
	if cfg.Color {
		res = append(res, project.EncodeColors(project.NewColors()))
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
		res = append(res, project.EncodeColors(project.NewColors()))
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

type ReplConfig struct {
	*MainConfig

	View string `cli:"name=view desc='initial output view: ast or json'"`

	Repl *cli.Command
}

type JSONConfig struct {
	*MainConfig

	JSON *cli.Command
}

type YAMLConfig struct {
	*MainConfig

	YAML *cli.Command
}

type HTMLConfig struct {
	*MainConfig

	Collapsed bool `cli:"name=collapsed desc='render child node lists collapsed'"`
	Page      bool `cli:"name=page desc='wrap the tree in a complete html page'"`

	HTML *cli.Command
}

type TreeConfig struct {
	*MainConfig

	Collapsed bool `cli:"name=collapsed desc='show only top-level nodes'"`

	Tree *cli.Command
}
