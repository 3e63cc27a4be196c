package main

import (
	"github.com/kdl-tools/kdlview/ir"
	"github.com/kdl-tools/kdlview/project"
	"github.com/scott-cotton/cli"
)

func jsonRun(cfg *JSONConfig, cc *cli.Context, args []string) error {
	args, err := cfg.JSON.Parse(cc, args)
	if err != nil {
		return err
	}
	opts := cfg.encOpts(cc.Out)
	return eachInput(cc, args, func(doc *ir.Document) error {
		return project.Encode(project.Project(doc), cc.Out, opts...)
	})
}
