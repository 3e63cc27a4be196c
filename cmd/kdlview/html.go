package main

import (
	"io"

	"github.com/kdl-tools/kdlview/ir"
	"github.com/kdl-tools/kdlview/render"
	"github.com/scott-cotton/cli"
)

const pageHead = `<!doctype html>
<html>
<head>
<meta charset="utf-8">
<title>kdlview</title>
<style>
ul.tree, ul.children { list-style: none; padding-left: 1.25em; }
span.toggle { cursor: pointer; user-select: none; }
span.name { font-weight: bold; }
span.argument, span.property { margin-left: 0.5em; font-family: monospace; }
div.error { color: #b00; }
</style>
</head>
<body>
`

const pageFoot = `</body>
</html>
`

func htmlRun(cfg *HTMLConfig, cc *cli.Context, args []string) error {
	args, err := cfg.HTML.Parse(cc, args)
	if err != nil {
		return err
	}
	// a nil state renders everything expanded; a fresh one renders the
	// interactive default, everything collapsed
	var st *render.State
	if cfg.Collapsed {
		st = render.NewState()
	}
	return eachInput(cc, args, func(doc *ir.Document) error {
		return writeHTML(cc.Out, doc, st, cfg.Page)
	})
}

func writeHTML(w io.Writer, doc *ir.Document, st *render.State, page bool) error {
	if page {
		if _, err := io.WriteString(w, pageHead); err != nil {
			return err
		}
	}
	if err := render.WriteHTML(w, render.Render(doc, st)); err != nil {
		return err
	}
	if _, err := io.WriteString(w, "\n"); err != nil {
		return err
	}
	if page {
		if _, err := io.WriteString(w, pageFoot); err != nil {
			return err
		}
	}
	return nil
}
