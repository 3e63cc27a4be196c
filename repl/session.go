package repl

import (
	"fmt"
	"strings"

	"github.com/kdl-tools/kdlview/debug"
	"github.com/kdl-tools/kdlview/ir"
	"github.com/kdl-tools/kdlview/project"
	"github.com/kdl-tools/kdlview/render"
)

// ViewKind selects which output surface is visible: the collapsible tree or
// the projected JSON. Exactly one is visible at a time.
type ViewKind int

const (
	ASTView ViewKind = iota
	JSONView
)

func (v ViewKind) String() string {
	switch v {
	case ASTView:
		return "ast"
	case JSONView:
		return "json"
	}
	return "<err: invalid view>"
}

// ParseView parses a view name as used by the view selector.
func ParseView(s string) (ViewKind, error) {
	switch s {
	case "ast":
		return ASTView, nil
	case "json":
		return JSONView, nil
	}
	return 0, fmt.Errorf("bad view %q: want ast or json", s)
}

// StateKind is the top-level rendered state. The three states are mutually
// exclusive.
type StateKind int

const (
	// StateEmpty means the raw input was empty or whitespace-only; no
	// parse was attempted.
	StateEmpty StateKind = iota
	// StateError means parsing the raw input failed.
	StateError
	// StateTree means parsing succeeded (possibly with zero nodes).
	StateTree
)

func (k StateKind) String() string {
	switch k {
	case StateEmpty:
		return "empty"
	case StateError:
		return "error"
	case StateTree:
		return "tree"
	}
	return "<err: invalid state>"
}

// ParseFunc turns raw KDL text into a document or a descriptive error. The
// grammar behind it is a black box to the session.
type ParseFunc func(text string) (*ir.Document, error)

// Session is the state for one interactive inspection session.
type Session struct {
	parse ParseFunc

	view     ViewKind
	tree     *render.State
	state    StateKind
	doc      *ir.Document
	errMsg   string
	jsonText string
}

// NewSession returns a session in the empty-input state showing the ast
// view, with every node collapsed.
func NewSession(parse ParseFunc) *Session {
	return &Session{
		parse: parse,
		view:  ASTView,
		tree:  render.NewState(),
	}
}

// SetInput re-parses raw input text and replaces the session's document.
// Empty or whitespace-only text moves to the empty state without parsing;
// a parse failure moves to the error state and discards the previous
// document. Expand/collapse state is left alone either way.
func (s *Session) SetInput(text string) {
	if strings.TrimSpace(text) == "" {
		s.state = StateEmpty
		s.doc = nil
		s.errMsg = ""
		s.jsonText = ""
		return
	}
	doc, err := s.parse(text)
	if err != nil {
		if debug.Parse() {
			debug.Logf("parse failed: %v\n", err)
		}
		s.state = StateError
		s.doc = nil
		s.errMsg = err.Error()
		s.jsonText = ""
		return
	}
	if debug.Parse() {
		debug.Logf("parsed %d top-level nodes\n", len(doc.Nodes))
	}
	s.state = StateTree
	s.doc = doc
	s.errMsg = ""
	s.jsonText = project.JSON(doc)
}

// State returns the current top-level rendered state.
func (s *Session) State() StateKind {
	return s.state
}

// Err returns the parser's message for the error state, "" otherwise.
func (s *Session) Err() string {
	return s.errMsg
}

// Document returns the current document, nil outside the tree state.
func (s *Session) Document() *ir.Document {
	return s.doc
}

// JSONText returns the JSON surface's text: the pretty-printed projection
// in the tree state, empty text otherwise.
func (s *Session) JSONText() string {
	return s.jsonText
}

// ActiveView returns the selected output view.
func (s *Session) ActiveView() ViewKind {
	return s.view
}

// SelectView selects which output surface is visible.
func (s *Session) SelectView(v ViewKind) {
	s.view = v
}

// ToggleView flips between the ast and json views.
func (s *Session) ToggleView() {
	if s.view == ASTView {
		s.view = JSONView
		return
	}
	s.view = ASTView
}

// Toggle flips the expand/collapse state of the node at path. The next
// Markup or Lines call re-renders the whole tree from the current document.
func (s *Session) Toggle(path string) {
	if debug.State() {
		debug.Logf("toggle %s\n", path)
	}
	s.tree.Toggle(path)
}

// CollapseAll collapses every node.
func (s *Session) CollapseAll() {
	s.tree.Reset()
}

// TreeState exposes the expand/collapse state for renderers.
func (s *Session) TreeState() *render.State {
	return s.tree
}

// Markup returns the tree surface for the current state.
func (s *Session) Markup() *render.Markup {
	switch s.state {
	case StateError:
		return render.RenderError(s.errMsg)
	case StateTree:
		return render.Render(s.doc, s.tree)
	}
	return render.RenderEmpty()
}

// Lines returns the visible tree rows, empty outside the tree state.
func (s *Session) Lines() []render.Line {
	if s.state != StateTree {
		return nil
	}
	return render.Lines(s.doc, s.tree)
}

// Page returns the full output markup: both surfaces under one root, with
// the inactive one hidden, mirroring the two-state view selector.
func (s *Session) Page() *render.Markup {
	ast := render.El("div", s.Markup()).WithAttr("class", "view-ast")
	json := render.El("div",
		render.El("pre", render.Text(s.jsonText)).WithAttr("class", "json"),
	).WithAttr("class", "view-json")
	if s.view == ASTView {
		json.WithAttr("hidden", "")
	} else {
		ast.WithAttr("hidden", "")
	}
	return render.El("div", ast, json).WithAttr("class", "output")
}
