package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Modal is the interface for modal dialogs.
// The Update method returns the updated modal, a command, and a bool indicating if the modal should close.
type Modal interface {
	Update(msg tea.Msg, keys keyMap) (Modal, tea.Cmd, bool)
	View(theme Theme, width, height int) string
}

// removalDecisionMsg carries the answer from the remove confirmation.
type removalDecisionMsg struct {
	confirmed bool
}

// confirmModal asks a yes/cancel question and reports the answer as a
// removalDecisionMsg once it closes.
type confirmModal struct {
	title   string
	message string
	subject string
}

func newRemoveConfirm(subject string) confirmModal {
	return confirmModal{
		title:   "Remove Item",
		message: "Are you sure you want to remove this item?",
		subject: subject,
	}
}

func (c confirmModal) Update(msg tea.Msg, keys keyMap) (Modal, tea.Cmd, bool) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return c, nil, false
	}
	switch {
	case key.Matches(keyMsg, keys.Confirm):
		return c, decide(true), true
	case key.Matches(keyMsg, keys.Cancel):
		return c, decide(false), true
	}
	return c, nil, false
}

func (c confirmModal) View(theme Theme, width, height int) string {
	styles := theme.Styles()
	var b strings.Builder
	b.WriteString(styles.Text.Bold(true).Render(c.title))
	b.WriteString("\n\n")
	b.WriteString(styles.Text.Render(c.message))
	if c.subject != "" {
		b.WriteString("\n")
		b.WriteString(styles.AccentText.Render(c.subject))
	}
	b.WriteString("\n\n")
	b.WriteString(styles.MutedText.Render("n/esc: Cancel   ") + styles.DangerText.Render("y/enter: Yes"))
	return placeModal(theme, theme.Danger, b.String(), width, height)
}

func decide(confirmed bool) tea.Cmd {
	return func() tea.Msg {
		return removalDecisionMsg{confirmed: confirmed}
	}
}

// noticeModal shows a blocking message that any key dismisses.
type noticeModal struct {
	title   string
	message string
}

func (n noticeModal) Update(msg tea.Msg, _ keyMap) (Modal, tea.Cmd, bool) {
	if _, ok := msg.(tea.KeyMsg); ok {
		return n, nil, true
	}
	return n, nil, false
}

func (n noticeModal) View(theme Theme, width, height int) string {
	styles := theme.Styles()
	var b strings.Builder
	b.WriteString(styles.WarningText.Bold(true).Render(n.title))
	b.WriteString("\n\n")
	b.WriteString(styles.Text.Render(n.message))
	b.WriteString("\n\n")
	b.WriteString(styles.FaintText.Render("Press any key to continue"))
	return placeModal(theme, theme.Warning, b.String(), width, height)
}

func placeModal(theme Theme, border, content string, width, height int) string {
	modalWidth := 52
	if width > 0 && width-4 < modalWidth {
		modalWidth = maxInt(width-4, 20)
	}
	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(border)).
		Padding(1, 2).
		Width(modalWidth).
		Render(content)
	return lipgloss.Place(
		width,
		height,
		lipgloss.Center,
		lipgloss.Center,
		box,
		lipgloss.WithWhitespaceChars(" "),
		lipgloss.WithWhitespaceForeground(lipgloss.Color(theme.Background)),
	)
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
