package repl

import (
	"errors"
	"strings"
	"testing"

	"github.com/kdl-tools/kdlview/ir"
	"github.com/kdl-tools/kdlview/render"
)

// fakeParse understands two inputs: "boom" fails, anything else yields a
// parent/child document built from the first word.
func fakeParse(text string) (*ir.Document, error) {
	word := strings.Fields(text)[0]
	if word == "boom" {
		return nil, errors.New(`unexpected EOF: unterminated "{"`)
	}
	if word == "none" {
		return &ir.Document{}, nil
	}
	return &ir.Document{Nodes: []*ir.Node{{
		Name:     word,
		Children: []*ir.Node{{Name: "child"}},
	}}}, nil
}

func TestSessionInitial(t *testing.T) {
	s := NewSession(fakeParse)
	if s.State() != StateEmpty {
		t.Errorf("initial state: got %v", s.State())
	}
	if s.ActiveView() != ASTView {
		t.Errorf("initial view: got %v", s.ActiveView())
	}
	if s.JSONText() != "" {
		t.Errorf("initial JSON surface not empty: %q", s.JSONText())
	}
}

func TestSessionEmptyInput(t *testing.T) {
	s := NewSession(fakeParse)
	for _, text := range []string{"", "   ", "\n\t  \n"} {
		s.SetInput(text)
		if s.State() != StateEmpty {
			t.Errorf("SetInput(%q): state %v, want empty", text, s.State())
		}
		if got := s.Markup().InnerText(); got != render.EmptyPlaceholder {
			t.Errorf("SetInput(%q): tree surface %q", text, got)
		}
		if s.JSONText() != "" {
			t.Errorf("SetInput(%q): JSON surface %q", text, s.JSONText())
		}
	}
}

func TestSessionParseFailureDiscardsDocument(t *testing.T) {
	s := NewSession(fakeParse)
	s.SetInput("good")
	if s.State() != StateTree || s.Document() == nil {
		t.Fatalf("setup: state %v", s.State())
	}

	s.SetInput("boom")
	if s.State() != StateError {
		t.Fatalf("state: got %v, want error", s.State())
	}
	if s.Document() != nil {
		t.Error("stale document retained after parse failure")
	}
	if s.JSONText() != "" {
		t.Errorf("stale JSON retained: %q", s.JSONText())
	}
	text := s.Markup().InnerText()
	if !strings.HasPrefix(text, render.ErrorPrefix) {
		t.Errorf("tree surface missing error prefix: %q", text)
	}
	if !strings.Contains(text, `unterminated "{"`) {
		t.Errorf("parser message not verbatim: %q", text)
	}
	if len(s.Lines()) != 0 {
		t.Error("stale tree lines after parse failure")
	}
}

func TestSessionRecoversAfterError(t *testing.T) {
	s := NewSession(fakeParse)
	s.SetInput("boom")
	s.SetInput("good")
	if s.State() != StateTree {
		t.Fatalf("state: got %v, want tree", s.State())
	}
	if s.Err() != "" {
		t.Errorf("error message survived recovery: %q", s.Err())
	}
	if !strings.Contains(s.JSONText(), `"good"`) {
		t.Errorf("JSON surface: %q", s.JSONText())
	}
}

func TestSessionNoNodes(t *testing.T) {
	s := NewSession(fakeParse)
	s.SetInput("none")
	if s.State() != StateTree {
		t.Fatalf("state: got %v, want tree", s.State())
	}
	if got := s.Markup().InnerText(); got != render.NoNodesPlaceholder {
		t.Errorf("tree surface: %q", got)
	}
}

func TestSessionToggleSurvivesEdits(t *testing.T) {
	s := NewSession(fakeParse)
	s.SetInput("node")
	lines := s.Lines()
	if len(lines) != 1 || !lines[0].Expandable || lines[0].Expanded {
		t.Fatalf("initial lines: %+v", lines)
	}

	s.Toggle(lines[0].Path)
	if got := len(s.Lines()); got != 2 {
		t.Fatalf("after toggle: %d lines, want 2", got)
	}

	// an edit producing a structurally equal document keeps the state
	s.SetInput("node ")
	if got := len(s.Lines()); got != 2 {
		t.Errorf("after re-parse: %d lines, want 2", got)
	}

	s.Toggle(lines[0].Path)
	if got := len(s.Lines()); got != 1 {
		t.Errorf("after collapse: %d lines, want 1", got)
	}
}

func TestSessionCollapseAll(t *testing.T) {
	s := NewSession(fakeParse)
	s.SetInput("node")
	s.Toggle(s.Lines()[0].Path)
	s.CollapseAll()
	if got := len(s.Lines()); got != 1 {
		t.Errorf("after collapse all: %d lines, want 1", got)
	}
}

func TestSessionViewSelector(t *testing.T) {
	s := NewSession(fakeParse)
	if s.ActiveView() != ASTView {
		t.Fatalf("initial view %v", s.ActiveView())
	}
	s.ToggleView()
	if s.ActiveView() != JSONView {
		t.Fatalf("after toggle %v", s.ActiveView())
	}
	s.ToggleView()
	if s.ActiveView() != ASTView {
		t.Fatalf("after second toggle %v", s.ActiveView())
	}
	s.SelectView(JSONView)
	if s.ActiveView() != JSONView {
		t.Fatalf("after select %v", s.ActiveView())
	}
}

func TestSessionPageExactlyOneVisible(t *testing.T) {
	s := NewSession(fakeParse)
	s.SetInput("node")

	checkOne := func(wantHidden string) {
		t.Helper()
		page := s.Page()
		ast := page.Find("view-ast")
		json := page.Find("view-json")
		if ast == nil || json == nil {
			t.Fatal("page missing a surface")
		}
		hidden := 0
		if ast.HasAttr("hidden") {
			hidden++
			if wantHidden != "ast" {
				t.Error("ast surface hidden")
			}
		}
		if json.HasAttr("hidden") {
			hidden++
			if wantHidden != "json" {
				t.Error("json surface hidden")
			}
		}
		if hidden != 1 {
			t.Errorf("%d surfaces hidden, want exactly 1", hidden)
		}
	}

	checkOne("json")
	s.ToggleView()
	checkOne("ast")
	s.ToggleView()
	checkOne("json")
}

func TestParseView(t *testing.T) {
	for _, tc := range []struct {
		in   string
		want ViewKind
		err  bool
	}{
		{"ast", ASTView, false},
		{"json", JSONView, false},
		{"tree", 0, true},
		{"", 0, true},
	} {
		got, err := ParseView(tc.in)
		if (err != nil) != tc.err {
			t.Errorf("ParseView(%q): err %v", tc.in, err)
			continue
		}
		if err == nil && got != tc.want {
			t.Errorf("ParseView(%q): got %v, want %v", tc.in, got, tc.want)
		}
	}
}
