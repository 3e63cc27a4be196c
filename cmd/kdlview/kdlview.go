package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/mattn/go-isatty"

	"github.com/kdl-tools/kdlview/kdl"
	"github.com/kdl-tools/kdlview/repl"
	"github.com/kdl-tools/kdlview/tui"
	"github.com/scott-cotton/cli"
)

func kdlviewMain(cfg *MainConfig, cc *cli.Context, args []string) error {
	defer func() {
		if cfg.CloseOut != nil {
			cfg.CloseOut()
		}
	}()
	args, err := cfg.Main.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		// interactive terminal: drop into the repl. piped input: render
		// it as a one-shot tree.
		if f, ok := cc.In.(*os.File); ok && isatty.IsTerminal(f.Fd()) {
			return tui.Run(kdl.Parse, repl.ASTView)
		}
		doc, err := parseReader(cc.In)
		if err != nil {
			return err
		}
		return writeTree(cc.Out, doc, nil)
	}
	sub := cfg.Main.FindSub(cc, args[0])
	if sub == nil {
		return fmt.Errorf("%w: %q not found", cli.ErrNoSuchCommand, args[0])
	}
	err = sub.Run(cc, args[1:])
	if errors.Is(err, cli.ErrUsage) {
		sub.Usage(cc, err)
		os.Exit(sub.Exit(cc, err))
	}
	return err
}
