package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

func (m model) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Skill Manager"))
	b.WriteString("\n")

	headers := make([]string, 0, len(tabs))
	for _, t := range tabs {
		if t == m.tab {
			headers = append(headers, activeTabStyle.Render(t.hotkey()))
		} else {
			headers = append(headers, tabStyle.Render(t.hotkey()))
		}
	}
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, headers...))
	b.WriteString("\n\n")

	b.WriteString(listTitleStyle.Render(m.tab.String()))
	b.WriteString("\n")
	for _, row := range m.visibleRows() {
		b.WriteString(row)
		b.WriteString("\n")
	}
	b.WriteString("\n")

	if m.inputMode {
		b.WriteString(m.input.View())
		b.WriteString("\n")
	}
	if m.err != nil {
		b.WriteString(errorStyle.Render("Error: " + m.err.Error()))
		b.WriteString("\n")
	}

	if m.inputMode {
		b.WriteString(helpStyle.Render("[enter]Save  [esc]Cancel"))
	} else {
		b.WriteString(helpStyle.Render("[+]New entry  [esc]Quit"))
	}
	return b.String()
}

// visibleRows trims the list to the terminal height, keeping the newest
// entries.
func (m model) visibleRows() []string {
	const chrome = 8
	if m.height <= chrome || len(m.rows) <= m.height-chrome {
		return m.rows
	}
	return m.rows[len(m.rows)-(m.height-chrome):]
}
