package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/five82/christoffel/internal/logtail"
)

// ActivityLogLimit is the number of activity log lines loaded into the viewer.
const ActivityLogLimit = 500

type activityLoadedMsg struct {
	lines []string
	err   error
}

func loadActivityCmd(path string) tea.Cmd {
	return func() tea.Msg {
		lines, err := logtail.Read(path, ActivityLogLimit)
		return activityLoadedMsg{lines: lines, err: err}
	}
}

// activityModal shows the tail of the activity log in a scrollable pane.
type activityModal struct {
	viewport viewport.Model
	path     string
	count    int
}

func newActivityModal(theme Theme, path string, lines []string, width, height int) activityModal {
	w := clamp(width-8, 20, 120)
	h := clamp(height-8, 3, 40)
	vp := viewport.New(w, h)

	styles := theme.Styles()
	rendered := make([]string, 0, len(lines))
	for _, line := range lines {
		rec, ok := logtail.Parse(line)
		if !ok {
			rendered = append(rendered, truncate(line, w))
			continue
		}
		rendered = append(rendered, renderRecord(styles, rec, w))
	}
	if len(rendered) == 0 {
		rendered = append(rendered, styles.MutedText.Render("No activity yet."))
	}
	vp.SetContent(strings.Join(rendered, "\n"))
	vp.GotoBottom()

	return activityModal{viewport: vp, path: path, count: len(lines)}
}

func renderRecord(styles Styles, rec logtail.Record, width int) string {
	levelStyle := styles.MutedText
	switch rec.Level {
	case "WARN":
		levelStyle = styles.WarningText
	case "ERROR":
		levelStyle = styles.DangerText
	case "INFO":
		levelStyle = styles.SuccessText
	}
	rest := rec.Message
	for _, f := range rec.Fields {
		rest += " " + f.Key + "=" + f.Value
	}
	ts := rec.Time
	if len(ts) >= 19 {
		ts = ts[11:19]
	}
	prefix := styles.FaintText.Render(ts) + " " + levelStyle.Render(padRight(rec.Level, 5)) + " "
	return prefix + truncate(rest, maxInt(width-lipgloss.Width(prefix), 8))
}

func (a activityModal) Update(msg tea.Msg, keys keyMap) (Modal, tea.Cmd, bool) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return a, nil, false
	}
	switch {
	case key.Matches(keyMsg, keys.Cancel), key.Matches(keyMsg, keys.Activity), keyMsg.String() == "q":
		return a, nil, true
	case key.Matches(keyMsg, keys.Down):
		a.viewport.ScrollDown(1)
	case key.Matches(keyMsg, keys.Up):
		a.viewport.ScrollUp(1)
	case key.Matches(keyMsg, keys.PageDown):
		a.viewport.PageDown()
	case key.Matches(keyMsg, keys.PageUp):
		a.viewport.PageUp()
	case key.Matches(keyMsg, keys.Top):
		a.viewport.GotoTop()
	case key.Matches(keyMsg, keys.Bottom):
		a.viewport.GotoBottom()
	}
	return a, nil, false
}

func (a activityModal) View(theme Theme, width, height int) string {
	styles := theme.Styles()
	var b strings.Builder
	b.WriteString(styles.Text.Bold(true).Render(fmt.Sprintf("Activity (%d lines)", a.count)))
	b.WriteString("\n")
	b.WriteString(styles.FaintText.Render(truncate(a.path, a.viewport.Width)))
	b.WriteString("\n\n")
	b.WriteString(a.viewport.View())
	b.WriteString("\n\n")
	b.WriteString(styles.FaintText.Render("j/k: Scroll   esc: Close"))

	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(theme.Accent)).
		Padding(0, 1).
		Render(b.String())
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, box,
		lipgloss.WithWhitespaceChars(" "),
		lipgloss.WithWhitespaceForeground(lipgloss.Color(theme.Background)))
}
