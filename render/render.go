package render

import (
	"github.com/kdl-tools/kdlview/ir"
)

// Placeholder texts for the three top-level rendered states.
const (
	EmptyPlaceholder   = "Enter KDL text to see the parse tree."
	NoNodesPlaceholder = "Document has no nodes."
	ErrorPrefix        = "Error parsing KDL: "
)

// Toggle glyphs. Nodes without children get a fixed-width spacer in the
// same column so sibling labels stay aligned.
const (
	collapsedGlyph = "▸"
	expandedGlyph  = "▾"
	spacerGlyph    = " "
)

// RenderEmpty returns the markup for the empty-input state. No parse is
// attempted for empty or whitespace-only input.
func RenderEmpty() *Markup {
	return El("div", Text(EmptyPlaceholder)).WithAttr("class", "placeholder")
}

// RenderError returns the markup for the parse-failure state: a fixed
// prefix label plus the parser's message verbatim. Escaping happens in the
// backend like everywhere else.
func RenderError(msg string) *Markup {
	return El("div",
		El("span", Text(ErrorPrefix)).WithAttr("class", "error-label"),
		El("span", Text(msg)).WithAttr("class", "error-message"),
	).WithAttr("class", "error")
}

// Render returns the markup for a successfully parsed document. A document
// with zero nodes gets a distinct placeholder instead of an empty tree.
// Child containers are shown or hidden according to st; nodes default to
// collapsed.
func Render(doc *ir.Document, st *State) *Markup {
	if doc == nil || len(doc.Nodes) == 0 {
		return El("div", Text(NoNodesPlaceholder)).WithAttr("class", "placeholder")
	}
	return El("ul", renderNodes(doc.Nodes, "", st)...).WithAttr("class", "tree")
}

func renderNodes(nodes []*ir.Node, parent string, st *State) []*Markup {
	res := make([]*Markup, 0, len(nodes))
	for i, n := range nodes {
		res = append(res, renderNode(n, ChildPath(parent, n.Name, i), st))
	}
	return res
}

func renderNode(n *ir.Node, path string, st *State) *Markup {
	li := El("li").WithAttr("class", "node")

	if n.HasChildren() {
		glyph := collapsedGlyph
		if st.Expanded(path) {
			glyph = expandedGlyph
		}
		li.Append(El("span", Text(glyph)).
			WithAttr("class", "toggle").
			WithAttr("data-path", path))
	} else {
		li.Append(El("span", Text(spacerGlyph)).WithAttr("class", "spacer"))
	}

	li.Append(El("span", Text(n.Name)).WithAttr("class", "name"))

	// arguments first, then properties, regardless of source interleaving
	for _, v := range n.Arguments() {
		li.Append(El("span", Text(FormatValue(v))).WithAttr("class", "argument"))
	}
	for _, e := range n.Properties() {
		li.Append(El("span", Text(FormatEntry(e))).WithAttr("class", "property"))
	}

	if n.HasChildren() {
		children := El("ul", renderNodes(n.Children, path, st)...).
			WithAttr("class", "children")
		if !st.Expanded(path) {
			children.WithAttr("hidden", "")
		}
		li.Append(children)
	}
	return li
}
