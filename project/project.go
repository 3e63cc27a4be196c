package project

import (
	"github.com/kdl-tools/kdlview/ir"
)

// Projection is the plain form of a document. Nodes is never nil, so an
// empty document serializes as {"nodes": []}.
type Projection struct {
	Nodes []*ProjectedNode `json:"nodes" yaml:"nodes"`
}

// ProjectedNode is the plain form of a single node. The arguments,
// properties, and children fields are omitted entirely when empty, never
// emitted as empty collections.
type ProjectedNode struct {
	Name       string           `json:"name" yaml:"name"`
	Arguments  []any            `json:"arguments,omitempty" yaml:"arguments,omitempty"`
	Properties map[string]any   `json:"properties,omitempty" yaml:"properties,omitempty"`
	Children   []*ProjectedNode `json:"children,omitempty" yaml:"children,omitempty"`
}

// Project converts a document into its plain form. A nil document or a
// document with no nodes projects to a Projection with an empty node list.
// Project has no side effects and never fails.
func Project(doc *ir.Document) *Projection {
	res := &Projection{Nodes: []*ProjectedNode{}}
	if doc == nil {
		return res
	}
	for _, n := range doc.Nodes {
		res.Nodes = append(res.Nodes, projectNode(n))
	}
	return res
}

func projectNode(n *ir.Node) *ProjectedNode {
	res := &ProjectedNode{Name: n.Name}
	for i := range n.Entries {
		e := &n.Entries[i]
		switch e.Kind {
		case ir.ArgumentEntry:
			res.Arguments = append(res.Arguments, e.Value.Plain())
		case ir.PropertyEntry:
			if res.Properties == nil {
				res.Properties = map[string]any{}
			}
			// later duplicate keys overwrite earlier ones
			res.Properties[e.Key] = e.Value.Plain()
		}
	}
	for _, c := range n.Children {
		res.Children = append(res.Children, projectNode(c))
	}
	return res
}
