package render

import (
	"html"
	"io"
	"maps"
	"slices"
	"strings"
)

// WriteHTML serializes a markup tree as HTML. All text content and
// attribute values pass through HTML escaping, so user-controlled text can
// never become live markup. Attributes are written in sorted order for
// deterministic output; an attribute with an empty value is written as a
// bare boolean attribute.
func WriteHTML(w io.Writer, m *Markup) error {
	if m == nil {
		return nil
	}
	if m.Tag == "" {
		_, err := io.WriteString(w, html.EscapeString(m.Text))
		return err
	}
	if _, err := io.WriteString(w, "<"+m.Tag); err != nil {
		return err
	}
	for _, key := range slices.Sorted(maps.Keys(m.Attrs)) {
		v := m.Attrs[key]
		if v == "" {
			if _, err := io.WriteString(w, " "+key); err != nil {
				return err
			}
			continue
		}
		if _, err := io.WriteString(w, " "+key+`="`+html.EscapeString(v)+`"`); err != nil {
			return err
		}
	}
	if _, err := io.WriteString(w, ">"); err != nil {
		return err
	}
	for _, c := range m.Children {
		if err := WriteHTML(w, c); err != nil {
			return err
		}
	}
	_, err := io.WriteString(w, "</"+m.Tag+">")
	return err
}

// HTML returns the HTML serialization of a markup tree.
func HTML(m *Markup) string {
	var sb strings.Builder
	WriteHTML(&sb, m)
	return sb.String()
}
