package tui

import "github.com/charmbracelet/lipgloss"

var (
	accent    = lipgloss.Color("#FFB3BA")
	mutedGray = lipgloss.Color("#6B7280")
	errorRed  = lipgloss.Color("#F87171")
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(accent)

	activeTabStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FACC15")).
			Padding(0, 1)

	tabStyle = lipgloss.NewStyle().
			Foreground(mutedGray).
			Padding(0, 1)

	listTitleStyle = lipgloss.NewStyle().
			Bold(true).
			Underline(true)

	helpStyle = lipgloss.NewStyle().
			Foreground(mutedGray).
			Italic(true)

	errorStyle = lipgloss.NewStyle().
			Foreground(errorRed)
)
