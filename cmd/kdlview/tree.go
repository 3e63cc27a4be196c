package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/kdl-tools/kdlview/ir"
	"github.com/kdl-tools/kdlview/render"
	"github.com/scott-cotton/cli"
)

func treeRun(cfg *TreeConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Tree.Parse(cc, args)
	if err != nil {
		return err
	}
	var st *render.State
	if cfg.Collapsed {
		st = render.NewState()
	}
	return eachInput(cc, args, func(doc *ir.Document) error {
		return writeTree(cc.Out, doc, st)
	})
}

func writeTree(w io.Writer, doc *ir.Document, st *render.State) error {
	lines := render.Lines(doc, st)
	if len(lines) == 0 {
		_, err := fmt.Fprintln(w, render.NoNodesPlaceholder)
		return err
	}
	for _, l := range lines {
		_, err := fmt.Fprintf(w, "%s%s %s\n",
			strings.Repeat("  ", l.Depth), l.Glyph(), l.Text)
		if err != nil {
			return err
		}
	}
	return nil
}
