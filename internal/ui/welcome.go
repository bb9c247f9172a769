package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const (
	welcomeTitle    = "Welcome to Chef Christoffel's Restaurant!"
	welcomeSubtitle = "The best food and experience right here for you to try."
)

// handleWelcomeKey processes keyboard input for the welcome screen.
func (m Model) handleWelcomeKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.flow == nil || !key.Matches(msg, m.keys.Explore) {
		return m, nil
	}
	if err := m.flow.Explore(); err != nil {
		m.status = err.Error()
		return m, nil
	}
	m.selected = 0
	m.updateListViewport()
	return m, nil
}

// renderWelcome renders the centered welcome card.
func (m Model) renderWelcome() string {
	styles := m.theme.Styles()
	contentHeight := maxInt(m.height-2, 1)
	textWidth := clamp(m.width-8, 10, 60)

	var b strings.Builder
	for i, line := range wrap(welcomeTitle, textWidth) {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(styles.Logo.Render(line))
	}
	b.WriteString("\n\n")
	for i, line := range wrap(welcomeSubtitle, textWidth) {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(styles.MutedText.Render(line))
	}
	b.WriteString("\n\n")
	b.WriteString(styles.Button.Render("Explore Menu"))
	b.WriteString("\n\n")
	b.WriteString(styles.FaintText.Render("press enter"))

	block := lipgloss.NewStyle().Align(lipgloss.Center).Render(b.String())
	return lipgloss.Place(m.width, contentHeight, lipgloss.Center, lipgloss.Center, block)
}
