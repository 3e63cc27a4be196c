package tui

import "github.com/charmbracelet/lipgloss"

var (
	StyleApp = lipgloss.NewStyle().Padding(0, 1)

	StyleTitle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("212"))

	StyleTopBar = lipgloss.NewStyle().
			BorderStyle(lipgloss.NormalBorder()).
			BorderBottom(true).
			BorderForeground(lipgloss.Color("240"))

	StyleMenuItem = lipgloss.NewStyle().
			Foreground(lipgloss.Color("245")).
			Padding(0, 1)

	StyleMenuItemActive = lipgloss.NewStyle().
				Foreground(lipgloss.Color("229")).
				Background(lipgloss.Color("57")).
				Padding(0, 1)

	StylePane = lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1)

	StylePaneActive = StylePane.
			BorderForeground(lipgloss.Color("212"))

	StylePlaceholder = lipgloss.NewStyle().
				Foreground(lipgloss.Color("240")).
				Italic(true)

	StyleErrorLabel = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("196"))

	StyleErrorMessage = lipgloss.NewStyle().
				Foreground(lipgloss.Color("203"))

	StyleToggle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("39"))

	StyleNodeName = lipgloss.NewStyle().
			Foreground(lipgloss.Color("229"))

	StyleCursorLine = lipgloss.NewStyle().
			Background(lipgloss.Color("236"))

	StyleFooter = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))
)
