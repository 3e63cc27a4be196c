package project

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/google/go-cmp/cmp"

	"github.com/kdl-tools/kdlview/ir"
)

func decode(t *testing.T, s string) map[string]any {
	t.Helper()
	dec := json.NewDecoder(strings.NewReader(s))
	dec.UseNumber()
	var res map[string]any
	if err := dec.Decode(&res); err != nil {
		t.Fatalf("invalid JSON %q: %v", s, err)
	}
	return res
}

func TestProjectEmpty(t *testing.T) {
	want := map[string]any{"nodes": []any{}}
	for _, doc := range []*ir.Document{nil, {}, {Nodes: []*ir.Node{}}} {
		got := decode(t, JSON(doc))
		if d := cmp.Diff(want, got); d != "" {
			t.Errorf("JSON(%v): (-want +got):\n%s", doc, d)
		}
	}
}

func TestProjectOmitsEmptyFields(t *testing.T) {
	doc := &ir.Document{Nodes: []*ir.Node{{Name: "bare"}}}
	p := Project(doc)
	n := p.Nodes[0]
	if n.Arguments != nil || n.Properties != nil || n.Children != nil {
		t.Errorf("empty fields not omitted: %+v", n)
	}
	out := JSON(doc)
	for _, field := range []string{"arguments", "properties", "children"} {
		if strings.Contains(out, field) {
			t.Errorf("output contains %q for a bare node:\n%s", field, out)
		}
	}
	want := map[string]any{
		"nodes": []any{map[string]any{"name": "bare"}},
	}
	if d := cmp.Diff(want, decode(t, out)); d != "" {
		t.Errorf("(-want +got):\n%s", d)
	}
}

func TestProjectPackageExample(t *testing.T) {
	doc := &ir.Document{Nodes: []*ir.Node{{
		Name: "package",
		Entries: []ir.Entry{
			ir.Argument(ir.FromString("my-app")),
			ir.Property("version", ir.FromString("1.0.0")),
		},
	}}}
	want := map[string]any{
		"nodes": []any{map[string]any{
			"name":       "package",
			"arguments":  []any{"my-app"},
			"properties": map[string]any{"version": "1.0.0"},
		}},
	}
	if d := cmp.Diff(want, decode(t, JSON(doc))); d != "" {
		t.Errorf("(-want +got):\n%s", d)
	}
}

func TestProjectNestedExample(t *testing.T) {
	doc := &ir.Document{Nodes: []*ir.Node{{
		Name: "parent",
		Children: []*ir.Node{{
			Name:    "child",
			Entries: []ir.Entry{ir.Argument(ir.FromString("value"))},
		}},
	}}}
	want := map[string]any{
		"nodes": []any{map[string]any{
			"name": "parent",
			"children": []any{map[string]any{
				"name":      "child",
				"arguments": []any{"value"},
			}},
		}},
	}
	if d := cmp.Diff(want, decode(t, JSON(doc))); d != "" {
		t.Errorf("(-want +got):\n%s", d)
	}
}

func TestProjectDuplicatePropertyOverwrites(t *testing.T) {
	doc := &ir.Document{Nodes: []*ir.Node{{
		Name: "node",
		Entries: []ir.Entry{
			ir.Property("key", ir.FromString("old")),
			ir.Property("key", ir.FromString("new")),
		},
	}}}
	p := Project(doc)
	if got := p.Nodes[0].Properties["key"]; got != "new" {
		t.Errorf("duplicate key: got %v, want %q", got, "new")
	}
}

func TestProjectArgumentOrder(t *testing.T) {
	doc := &ir.Document{Nodes: []*ir.Node{{
		Name: "node",
		Entries: []ir.Entry{
			ir.Argument(ir.FromInt(1)),
			ir.Property("p", ir.FromBool(true)),
			ir.Argument(ir.FromInt(2)),
			ir.Argument(ir.FromInt(3)),
		},
	}}}
	want := []any{int64(1), int64(2), int64(3)}
	if d := cmp.Diff(want, Project(doc).Nodes[0].Arguments); d != "" {
		t.Errorf("argument order (-want +got):\n%s", d)
	}
}

func TestProjectValueKinds(t *testing.T) {
	doc := &ir.Document{Nodes: []*ir.Node{{
		Name: "values",
		Entries: []ir.Entry{
			ir.Argument(ir.Null()),
			ir.Argument(ir.FromBool(false)),
			ir.Argument(ir.FromInt(7)),
			ir.Argument(ir.FromFloat(1.5)),
			ir.Argument(ir.FromString("s")),
			ir.Argument(ir.FromExtension(map[string]any{"a": "b"})),
		},
	}}}
	want := map[string]any{
		"nodes": []any{map[string]any{
			"name": "values",
			"arguments": []any{
				nil, false, json.Number("7"), json.Number("1.5"), "s",
				map[string]any{"a": "b"},
			},
		}},
	}
	if d := cmp.Diff(want, decode(t, JSON(doc))); d != "" {
		t.Errorf("(-want +got):\n%s", d)
	}
}

func TestProjectDeterministic(t *testing.T) {
	mk := func() *ir.Document {
		return &ir.Document{Nodes: []*ir.Node{{
			Name: "node",
			Entries: []ir.Entry{
				ir.Property("zeta", ir.FromInt(1)),
				ir.Property("alpha", ir.FromInt(2)),
				ir.Argument(ir.FromString("x")),
			},
			Children: []*ir.Node{{Name: "child"}},
		}}}
	}
	a, b := mk(), mk()
	if d := cmp.Diff(Project(a), Project(b)); d != "" {
		t.Errorf("projections differ (-a +b):\n%s", d)
	}
	if JSON(a) != JSON(b) {
		t.Error("JSON text differs for structurally equal documents")
	}
	// sorted property keys
	out := JSON(a)
	if strings.Index(out, "alpha") > strings.Index(out, "zeta") {
		t.Errorf("property keys not sorted:\n%s", out)
	}
}

func TestProjectDoesNotMutate(t *testing.T) {
	doc := &ir.Document{Nodes: []*ir.Node{{
		Name:    "node",
		Entries: []ir.Entry{ir.Argument(ir.FromInt(1))},
	}}}
	clone := doc.Clone()
	Project(doc)
	JSON(doc)
	if ir.CompareDocuments(doc, clone) != 0 {
		t.Error("projection mutated its input")
	}
}

func TestEncodeIndent(t *testing.T) {
	doc := &ir.Document{Nodes: []*ir.Node{{Name: "a"}}}
	buf := bytes.NewBuffer(nil)
	if err := Encode(Project(doc), buf, EncodeIndent(4)); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(buf.String(), "\n    \"nodes\"") {
		t.Errorf("4-space indent not applied:\n%s", buf.String())
	}
}

func TestEncodeColorsStrippable(t *testing.T) {
	// fatih/color disables escape sequences when NoColor is set, so the
	// colored encoding must then be byte-identical to the plain one.
	prev := color.NoColor
	color.NoColor = true
	defer func() { color.NoColor = prev }()

	doc := &ir.Document{Nodes: []*ir.Node{{
		Name: "node",
		Entries: []ir.Entry{
			ir.Argument(ir.FromString("v")),
			ir.Property("k", ir.FromInt(3)),
		},
	}}}
	plain := bytes.NewBuffer(nil)
	colored := bytes.NewBuffer(nil)
	if err := Encode(Project(doc), plain); err != nil {
		t.Fatal(err)
	}
	if err := Encode(Project(doc), colored, EncodeColors(NewColors())); err != nil {
		t.Fatal(err)
	}
	if plain.String() != colored.String() {
		t.Errorf("colored output differs with colors disabled:\n%q\n%q",
			plain.String(), colored.String())
	}
}

func TestYAML(t *testing.T) {
	doc := &ir.Document{Nodes: []*ir.Node{{
		Name:    "package",
		Entries: []ir.Entry{ir.Argument(ir.FromString("my-app"))},
	}}}
	out, err := YAML(doc)
	if err != nil {
		t.Fatal(err)
	}
	s := string(out)
	if !strings.Contains(s, "name: package") || !strings.Contains(s, "my-app") {
		t.Errorf("unexpected YAML:\n%s", s)
	}
	if strings.Contains(s, "properties") || strings.Contains(s, "children") {
		t.Errorf("empty fields present in YAML:\n%s", s)
	}
}
