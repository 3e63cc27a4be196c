package render

import (
	"strings"

	"github.com/kdl-tools/kdlview/ir"
)

// Line is one visible tree row for terminal display.
type Line struct {
	Path       string
	Depth      int
	Expandable bool
	Expanded   bool
	Text       string
	Node       *ir.Node
}

// Glyph returns the toggle glyph for the line, or the spacer for leaves.
func (l Line) Glyph() string {
	if !l.Expandable {
		return spacerGlyph
	}
	if l.Expanded {
		return expandedGlyph
	}
	return collapsedGlyph
}

// Lines flattens the visible part of a document into rows: children of
// collapsed nodes are excluded. With a nil state everything is visible.
func Lines(doc *ir.Document, st *State) []Line {
	if doc == nil {
		return nil
	}
	var res []Line
	appendLines(&res, doc.Nodes, "", 0, st)
	return res
}

func appendLines(res *[]Line, nodes []*ir.Node, parent string, depth int, st *State) {
	for i, n := range nodes {
		path := ChildPath(parent, n.Name, i)
		expanded := st.Expanded(path)
		*res = append(*res, Line{
			Path:       path,
			Depth:      depth,
			Expandable: n.HasChildren(),
			Expanded:   expanded,
			Text:       Label(n),
			Node:       n,
		})
		if n.HasChildren() && expanded {
			appendLines(res, n.Children, path, depth+1, st)
		}
	}
}

// Label returns the inline text for a node: its name, then its arguments,
// then its properties, separated by single spaces.
func Label(n *ir.Node) string {
	parts := []string{n.Name}
	for _, v := range n.Arguments() {
		parts = append(parts, FormatValue(v))
	}
	for _, e := range n.Properties() {
		parts = append(parts, FormatEntry(e))
	}
	return strings.Join(parts, " ")
}
