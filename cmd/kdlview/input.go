package main

import (
	"fmt"
	"io"
	"os"

	"github.com/kdl-tools/kdlview/ir"
	"github.com/kdl-tools/kdlview/kdl"
	"github.com/scott-cotton/cli"
)

func parseReader(r io.Reader) (*ir.Document, error) {
	in, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("error reading: %w", err)
	}
	return kdl.Parse(string(in))
}

func parseFile(file string) (*ir.Document, error) {
	if file == "-" {
		return parseReader(os.Stdin)
	}
	f, err := os.Open(file)
	if err != nil {
		return nil, fmt.Errorf("could not open %q: %w", file, err)
	}
	defer f.Close()
	doc, err := parseReader(f)
	if err != nil {
		return nil, fmt.Errorf("error processing %s: %w", file, err)
	}
	return doc, nil
}

// eachInput applies fn to the document parsed from each file argument, or
// from cc.In when there are no arguments. "-" names stdin.
func eachInput(cc *cli.Context, args []string, fn func(*ir.Document) error) error {
	if len(args) == 0 {
		doc, err := parseReader(cc.In)
		if err != nil {
			return err
		}
		return fn(doc)
	}
	for _, file := range args {
		doc, err := parseFile(file)
		if err != nil {
			return err
		}
		if err := fn(doc); err != nil {
			return err
		}
	}
	return nil
}
