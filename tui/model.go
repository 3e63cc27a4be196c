package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/kdl-tools/kdlview/render"
	"github.com/kdl-tools/kdlview/repl"
)

// Focus selects which pane receives navigation keys.
type Focus int

const (
	FocusInput Focus = iota
	FocusOutput
)

// Model is the interactive inspector: a KDL input pane on the left and an
// output pane on the right showing either the collapsible tree or the
// projected JSON. Every keystroke in the input re-parses synchronously.
type Model struct {
	Session *repl.Session
	Input   textarea.Model

	Focus  Focus
	Cursor int
	Width  int
	Height int
}

// NewModel returns a model in the empty-input state with the input pane
// focused.
func NewModel(parse repl.ParseFunc) Model {
	ti := textarea.New()
	ti.Placeholder = `node "argument" key=value { child; }`
	ti.ShowLineNumbers = false
	ti.Focus()
	return Model{
		Session: repl.NewSession(parse),
		Input:   ti,
	}
}

func (m Model) Init() tea.Cmd {
	return textarea.Blink
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Height = msg.Height
		paneWidth := max(msg.Width/2-4, 20)
		m.Input.SetWidth(paneWidth)
		m.Input.SetHeight(max(msg.Height-6, 3))
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "tab":
			// the two-state view selector
			m.Session.ToggleView()
			return m, nil
		case "esc":
			if m.Focus == FocusInput {
				m.Focus = FocusOutput
				m.Input.Blur()
			} else {
				m.Focus = FocusInput
				m.Input.Focus()
			}
			return m, nil
		}
		if m.Focus == FocusOutput {
			return m.updateOutput(msg), nil
		}
		return m.updateInput(msg)
	}

	var cmd tea.Cmd
	m.Input, cmd = m.Input.Update(msg)
	return m, cmd
}

func (m Model) updateInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	m.Input, cmd = m.Input.Update(msg)
	m.Session.SetInput(m.Input.Value())
	m.Cursor = clamp(m.Cursor, len(m.Session.Lines()))
	return m, cmd
}

func (m Model) updateOutput(msg tea.KeyMsg) Model {
	if m.Session.ActiveView() != repl.ASTView {
		return m
	}
	lines := m.Session.Lines()
	switch msg.String() {
	case "up", "k":
		m.Cursor = clamp(m.Cursor-1, len(lines))
	case "down", "j":
		m.Cursor = clamp(m.Cursor+1, len(lines))
	case "enter", " ":
		if m.Cursor < len(lines) && lines[m.Cursor].Expandable {
			m.Session.Toggle(lines[m.Cursor].Path)
			m.Cursor = clamp(m.Cursor, len(m.Session.Lines()))
		}
	case "c":
		m.Session.CollapseAll()
		m.Cursor = clamp(m.Cursor, len(m.Session.Lines()))
	}
	return m
}

func clamp(v, n int) int {
	if n == 0 {
		return 0
	}
	if v < 0 {
		return 0
	}
	if v >= n {
		return n - 1
	}
	return v
}

func (m Model) View() string {
	doc := m.viewTopBar() + "\n"

	inputPane := StylePane
	outputPane := StylePane
	if m.Focus == FocusInput {
		inputPane = StylePaneActive
	} else {
		outputPane = StylePaneActive
	}
	panes := lipgloss.JoinHorizontal(lipgloss.Top,
		inputPane.Render(m.Input.View()),
		outputPane.Render(m.viewOutput()),
	)
	doc += panes + "\n" + m.viewFooter()
	return StyleApp.Render(doc)
}

func (m Model) viewTopBar() string {
	brand := StyleTitle.Render("kdlview ")
	items := make([]string, 0, 2)
	for _, v := range []repl.ViewKind{repl.ASTView, repl.JSONView} {
		style := StyleMenuItem
		if m.Session.ActiveView() == v {
			style = StyleMenuItemActive
		}
		items = append(items, style.Render(v.String()))
	}
	bar := lipgloss.JoinHorizontal(lipgloss.Top,
		append([]string{brand}, items...)...)
	return StyleTopBar.Render(bar)
}

func (m Model) viewOutput() string {
	switch m.Session.State() {
	case repl.StateEmpty:
		if m.Session.ActiveView() == repl.JSONView {
			return ""
		}
		return StylePlaceholder.Render(render.EmptyPlaceholder)
	case repl.StateError:
		return StyleErrorLabel.Render(render.ErrorPrefix) +
			StyleErrorMessage.Render(m.Session.Err())
	}
	if m.Session.ActiveView() == repl.JSONView {
		return m.Session.JSONText()
	}
	lines := m.Session.Lines()
	if len(lines) == 0 {
		return StylePlaceholder.Render(render.NoNodesPlaceholder)
	}
	rows := make([]string, 0, len(lines))
	for i, l := range lines {
		row := strings.Repeat("  ", l.Depth) +
			StyleToggle.Render(l.Glyph()) + " " +
			styleLabel(l)
		if m.Focus == FocusOutput && i == m.Cursor {
			row = StyleCursorLine.Render(row)
		}
		rows = append(rows, row)
	}
	return strings.Join(rows, "\n")
}

func styleLabel(l render.Line) string {
	name, rest, found := strings.Cut(l.Text, " ")
	res := StyleNodeName.Render(name)
	if found {
		res += " " + rest
	}
	return res
}

func (m Model) viewFooter() string {
	hint := "[tab] view  [esc] focus  [ctrl+c] quit"
	if m.Focus == FocusOutput && m.Session.ActiveView() == repl.ASTView {
		hint = "[↑/↓] move  [enter] toggle  [c] collapse all  " + hint
	}
	return StyleFooter.Render(hint)
}
