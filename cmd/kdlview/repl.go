package main

import (
	"fmt"

	"github.com/kdl-tools/kdlview/kdl"
	"github.com/kdl-tools/kdlview/repl"
	"github.com/kdl-tools/kdlview/tui"
	"github.com/scott-cotton/cli"
)

func replRun(cfg *ReplConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Repl.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) != 0 {
		return fmt.Errorf("%w: repl takes no arguments", cli.ErrUsage)
	}
	view := repl.ASTView
	if cfg.View != "" {
		view, err = repl.ParseView(cfg.View)
		if err != nil {
			return fmt.Errorf("%w: %w", cli.ErrUsage, err)
		}
	}
	return tui.Run(kdl.Parse, view)
}
