package render

// Markup is an abstract description of a rendered node tree. A Markup value
// is either an element (Tag set, possibly with attributes and children) or
// a text node (Tag empty, Text set). Backends decide how the description
// becomes output; none of the text held here is escaped yet.
type Markup struct {
	Tag      string            `json:"tag,omitempty"`
	Attrs    map[string]string `json:"attrs,omitempty"`
	Text     string            `json:"text,omitempty"`
	Children []*Markup         `json:"children,omitempty"`
}

// El returns an element node.
func El(tag string, children ...*Markup) *Markup {
	return &Markup{Tag: tag, Children: children}
}

// Text returns a text node.
func Text(s string) *Markup {
	return &Markup{Text: s}
}

// WithAttr sets an attribute and returns the node for chaining.
func (m *Markup) WithAttr(key, value string) *Markup {
	if m.Attrs == nil {
		m.Attrs = map[string]string{}
	}
	m.Attrs[key] = value
	return m
}

// Append adds children and returns the node for chaining.
func (m *Markup) Append(children ...*Markup) *Markup {
	m.Children = append(m.Children, children...)
	return m
}

// Attr returns the value of an attribute, or "" when unset.
func (m *Markup) Attr(key string) string {
	return m.Attrs[key]
}

// HasAttr reports whether an attribute is present, including boolean
// attributes with empty values.
func (m *Markup) HasAttr(key string) bool {
	_, ok := m.Attrs[key]
	return ok
}

// Find returns the first descendant element (in document order, self
// included) whose "class" attribute equals class, or nil.
func (m *Markup) Find(class string) *Markup {
	if m.Attr("class") == class {
		return m
	}
	for _, c := range m.Children {
		if res := c.Find(class); res != nil {
			return res
		}
	}
	return nil
}

// FindAll returns all descendant elements (self included) whose "class"
// attribute equals class, in document order.
func (m *Markup) FindAll(class string) []*Markup {
	var res []*Markup
	if m.Attr("class") == class {
		res = append(res, m)
	}
	for _, c := range m.Children {
		res = append(res, c.FindAll(class)...)
	}
	return res
}

// InnerText returns the concatenated text of the node and its descendants.
func (m *Markup) InnerText() string {
	res := m.Text
	for _, c := range m.Children {
		res += c.InnerText()
	}
	return res
}
