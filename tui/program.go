package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/kdl-tools/kdlview/repl"
)

// Run starts the interactive inspector on the given output view and blocks
// until it exits.
func Run(parse repl.ParseFunc, view repl.ViewKind) error {
	m := NewModel(parse)
	m.Session.SelectView(view)
	p := tea.NewProgram(m, tea.WithAltScreen())
	_, err := p.Run()
	return err
}
