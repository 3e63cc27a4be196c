package project

import (
	"bytes"
	"encoding/json"
	"io"
	"maps"
	"slices"
	"strings"

	"github.com/kdl-tools/kdlview/ir"
)

type EncState struct {
	depth, indent int

	Color func(TokenKind, string) string
}

type EncodeOption func(*EncState)

// EncodeIndent sets the indentation width in spaces. The default is 2.
func EncodeIndent(n int) EncodeOption {
	return func(es *EncState) {
		es.indent = n
	}
}

// EncodeColors enables terminal-colored output.
func EncodeColors(cs *Colors) EncodeOption {
	return func(es *EncState) {
		es.Color = cs.Color
	}
}

// Encode writes p as pretty-printed JSON. Output is deterministic: fields
// appear in a fixed order and property keys are sorted. A trailing newline
// is always written.
func Encode(p *Projection, w io.Writer, opts ...EncodeOption) error {
	es := &EncState{
		indent: 2,
	}
	for _, opt := range opts {
		opt(es)
	}
	if err := encodeProjection(p, w, es); err != nil {
		return err
	}
	return writeString(w, "\n")
}

// JSON returns the pretty-printed JSON text for a document's projection.
func JSON(doc *ir.Document) string {
	buf := bytes.NewBuffer(nil)
	// bytes.Buffer writes cannot fail
	Encode(Project(doc), buf)
	return buf.String()
}

func encodeProjection(p *Projection, w io.Writer, es *EncState) error {
	if err := writeSep(w, "{", es); err != nil {
		return err
	}
	es.depth++
	if err := writeNL(w, es); err != nil {
		return err
	}
	if err := writeField(w, "nodes", es); err != nil {
		return err
	}
	if err := encodeNodeList(p.Nodes, w, es); err != nil {
		return err
	}
	es.depth--
	if err := writeNL(w, es); err != nil {
		return err
	}
	return writeSep(w, "}", es)
}

func encodeNodeList(nodes []*ProjectedNode, w io.Writer, es *EncState) error {
	if len(nodes) == 0 {
		return writeSep(w, "[]", es)
	}
	if err := writeSep(w, "[", es); err != nil {
		return err
	}
	es.depth++
	for i, n := range nodes {
		if i > 0 {
			if err := writeSep(w, ",", es); err != nil {
				return err
			}
		}
		if err := writeNL(w, es); err != nil {
			return err
		}
		if err := encodeNode(n, w, es); err != nil {
			return err
		}
	}
	es.depth--
	if err := writeNL(w, es); err != nil {
		return err
	}
	return writeSep(w, "]", es)
}

func encodeNode(n *ProjectedNode, w io.Writer, es *EncState) error {
	if err := writeSep(w, "{", es); err != nil {
		return err
	}
	es.depth++
	if err := writeNL(w, es); err != nil {
		return err
	}
	if err := writeField(w, "name", es); err != nil {
		return err
	}
	if err := writeScalar(w, n.Name, es); err != nil {
		return err
	}
	if len(n.Arguments) > 0 {
		if err := writeSep(w, ",", es); err != nil {
			return err
		}
		if err := writeNL(w, es); err != nil {
			return err
		}
		if err := writeField(w, "arguments", es); err != nil {
			return err
		}
		if err := encodeArguments(n.Arguments, w, es); err != nil {
			return err
		}
	}
	if len(n.Properties) > 0 {
		if err := writeSep(w, ",", es); err != nil {
			return err
		}
		if err := writeNL(w, es); err != nil {
			return err
		}
		if err := writeField(w, "properties", es); err != nil {
			return err
		}
		if err := encodeProperties(n.Properties, w, es); err != nil {
			return err
		}
	}
	if len(n.Children) > 0 {
		if err := writeSep(w, ",", es); err != nil {
			return err
		}
		if err := writeNL(w, es); err != nil {
			return err
		}
		if err := writeField(w, "children", es); err != nil {
			return err
		}
		if err := encodeNodeList(n.Children, w, es); err != nil {
			return err
		}
	}
	es.depth--
	if err := writeNL(w, es); err != nil {
		return err
	}
	return writeSep(w, "}", es)
}

func encodeArguments(args []any, w io.Writer, es *EncState) error {
	if err := writeSep(w, "[", es); err != nil {
		return err
	}
	es.depth++
	for i, v := range args {
		if i > 0 {
			if err := writeSep(w, ",", es); err != nil {
				return err
			}
		}
		if err := writeNL(w, es); err != nil {
			return err
		}
		if err := writeScalar(w, v, es); err != nil {
			return err
		}
	}
	es.depth--
	if err := writeNL(w, es); err != nil {
		return err
	}
	return writeSep(w, "]", es)
}

func encodeProperties(props map[string]any, w io.Writer, es *EncState) error {
	if err := writeSep(w, "{", es); err != nil {
		return err
	}
	es.depth++
	keys := slices.Sorted(maps.Keys(props))
	for i, key := range keys {
		if i > 0 {
			if err := writeSep(w, ",", es); err != nil {
				return err
			}
		}
		if err := writeNL(w, es); err != nil {
			return err
		}
		if err := writeField(w, key, es); err != nil {
			return err
		}
		if err := writeScalar(w, props[key], es); err != nil {
			return err
		}
	}
	es.depth--
	if err := writeNL(w, es); err != nil {
		return err
	}
	return writeSep(w, "}", es)
}

// Helper functions for writing

func writeNL(w io.Writer, es *EncState) error {
	indentString := strings.Repeat(strings.Repeat(" ", es.indent), es.depth)
	return writeString(w, "\n"+indentString)
}

func writeString(w io.Writer, s string) error {
	_, err := w.Write([]byte(s))
	return err
}

func writeSep(w io.Writer, sep string, es *EncState) error {
	if es.Color != nil {
		sep = es.Color(SepToken, sep)
	}
	return writeString(w, sep)
}

func writeField(w io.Writer, name string, es *EncState) error {
	d, err := json.Marshal(name)
	if err != nil {
		return err
	}
	field := string(d)
	if es.Color != nil {
		field = es.Color(FieldToken, field)
	}
	if err := writeString(w, field); err != nil {
		return err
	}
	return writeSep(w, ": ", es)
}

func writeScalar(w io.Writer, v any, es *EncState) error {
	d, err := json.Marshal(v)
	if err != nil {
		return err
	}
	s := string(d)
	if es.Color != nil {
		s = es.Color(scalarToken(v), s)
	}
	return writeString(w, s)
}

func scalarToken(v any) TokenKind {
	switch v.(type) {
	case nil:
		return NullToken
	case bool:
		return BoolToken
	case string:
		return StringToken
	case int64, float64, json.Number, int, uint64:
		return NumberToken
	default:
		return ExtensionToken
	}
}
