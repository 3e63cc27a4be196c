package main

import (
	"github.com/kdl-tools/kdlview/ir"
	"github.com/kdl-tools/kdlview/project"
	"github.com/scott-cotton/cli"
)

func yamlRun(cfg *YAMLConfig, cc *cli.Context, args []string) error {
	args, err := cfg.YAML.Parse(cc, args)
	if err != nil {
		return err
	}
	return eachInput(cc, args, func(doc *ir.Document) error {
		d, err := project.YAML(doc)
		if err != nil {
			return err
		}
		_, err = cc.Out.Write(d)
		return err
	})
}
