package ir

// Document is an ordered sequence of top-level nodes. A Document with zero
// nodes is valid and distinct from a parse failure.
type Document struct {
	Nodes []*Node
}

// Node is a named element with an ordered list of entries and optional
// children. Name is always non-empty in well-formed documents. A nil or
// empty Children slice means the node is a leaf.
type Node struct {
	Name     string
	Entries  []Entry
	Children []*Node
}

// EntryKind discriminates arguments from properties.
type EntryKind int

const (
	ArgumentEntry EntryKind = iota
	PropertyEntry
)

func (k EntryKind) String() string {
	switch k {
	case ArgumentEntry:
		return "argument"
	case PropertyEntry:
		return "property"
	}
	return "entry"
}

// Entry is either a positional argument or a named property. Key is only
// meaningful for PropertyEntry.
type Entry struct {
	Kind  EntryKind
	Key   string
	Value *Value
}

// Argument wraps a value as a positional argument entry.
func Argument(v *Value) Entry {
	return Entry{Kind: ArgumentEntry, Value: v}
}

// Property wraps a key and value as a property entry.
func Property(key string, v *Value) Entry {
	return Entry{Kind: PropertyEntry, Key: key, Value: v}
}

// Arguments returns the node's argument values in source order.
func (n *Node) Arguments() []*Value {
	var res []*Value
	for i := range n.Entries {
		if n.Entries[i].Kind == ArgumentEntry {
			res = append(res, n.Entries[i].Value)
		}
	}
	return res
}

// Properties returns the node's property entries in source order. Later
// duplicate keys shadow earlier ones only on projection; here every entry
// is preserved.
func (n *Node) Properties() []Entry {
	var res []Entry
	for i := range n.Entries {
		if n.Entries[i].Kind == PropertyEntry {
			res = append(res, n.Entries[i])
		}
	}
	return res
}

// HasChildren reports whether the node has at least one child node.
func (n *Node) HasChildren() bool {
	return len(n.Children) > 0
}

// Visit walks the node and its descendants in document order. f is called
// before and after each node's children; returning false from the pre call
// skips the children.
func (n *Node) Visit(f func(n *Node, isPost bool) (bool, error)) error {
	dive, err := f(n, false)
	if err != nil {
		return err
	}
	if dive {
		for _, c := range n.Children {
			if err := c.Visit(f); err != nil {
				return err
			}
		}
	}
	if _, err := f(n, true); err != nil {
		return err
	}
	return nil
}

// Clone returns a deep copy of the node.
func (n *Node) Clone() *Node {
	res := &Node{Name: n.Name}
	if len(n.Entries) > 0 {
		res.Entries = make([]Entry, len(n.Entries))
		for i, e := range n.Entries {
			res.Entries[i] = Entry{Kind: e.Kind, Key: e.Key, Value: e.Value.Clone()}
		}
	}
	if len(n.Children) > 0 {
		res.Children = make([]*Node, len(n.Children))
		for i, c := range n.Children {
			res.Children[i] = c.Clone()
		}
	}
	return res
}

// Clone returns a deep copy of the document.
func (d *Document) Clone() *Document {
	if d == nil {
		return nil
	}
	res := &Document{}
	if len(d.Nodes) > 0 {
		res.Nodes = make([]*Node, len(d.Nodes))
		for i, n := range d.Nodes {
			res.Nodes[i] = n.Clone()
		}
	}
	return res
}
