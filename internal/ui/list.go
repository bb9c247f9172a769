package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/five82/christoffel/internal/menu"
)

// handleListKey processes keyboard input for the list screen.
func (m Model) handleListKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	items := m.flow.Items()

	switch {
	case key.Matches(msg, m.keys.Add):
		m.openAddForm()
		return m, nil

	case key.Matches(msg, m.keys.Remove):
		if len(items) == 0 {
			return m, nil
		}
		d, err := m.flow.RequestRemoval(clamp(m.selected, 0, len(items)-1))
		if err != nil {
			m.status = err.Error()
			return m, nil
		}
		m.modal = newRemoveConfirm(d.Name)
		return m, nil

	case key.Matches(msg, m.keys.ToggleCard):
		m.compact = !m.compact
		m.savePrefs()
		m.updateListViewport()
		return m, nil

	case key.Matches(msg, m.keys.PageDown):
		m.listViewport.PageDown()
		return m, nil

	case key.Matches(msg, m.keys.PageUp):
		m.listViewport.PageUp()
		return m, nil
	}

	if len(items) == 0 {
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Down):
		if m.selected < len(items)-1 {
			m.selected++
		}
	case key.Matches(msg, m.keys.Up):
		if m.selected > 0 {
			m.selected--
		}
	case key.Matches(msg, m.keys.Top):
		m.selected = 0
	case key.Matches(msg, m.keys.Bottom):
		m.selected = len(items) - 1
	default:
		return m, nil
	}
	m.updateListViewport()
	return m, nil
}

// applyRemovalDecision resolves the pending removal once the confirm
// modal has answered.
func (m *Model) applyRemovalDecision(confirmed bool) {
	if !confirmed {
		m.flow.CancelRemoval()
		m.status = ""
		return
	}
	d, ok := m.flow.ConfirmRemoval()
	if ok {
		m.status = fmt.Sprintf("Removed %s", d.Name)
	} else {
		m.status = "Item was already removed"
	}
	m.updateListViewport()
}

func (m Model) listHeight() int {
	// header + command bar + box borders
	return maxInt(m.height-4, 1)
}

// updateListViewport re-renders the cards and scrolls the selection into view.
func (m *Model) updateListViewport() {
	if !m.ready || m.flow == nil {
		return
	}
	items := m.flow.Items()
	m.selected = clamp(m.selected, 0, maxInt(len(items)-1, 0))

	m.listViewport.Width = maxInt(m.width-2, 1)
	m.listViewport.Height = m.listHeight()

	content, spans := m.renderCards(items, m.listViewport.Width)
	m.listViewport.SetContent(content)

	if len(spans) == 0 {
		m.listViewport.GotoTop()
		return
	}
	span := spans[m.selected]
	top := m.listViewport.YOffset
	bottom := top + m.listViewport.Height
	switch {
	case span.start < top:
		m.listViewport.SetYOffset(span.start)
	case span.end > bottom:
		m.listViewport.SetYOffset(span.end - m.listViewport.Height)
	}
}

// lineSpan is the half-open range of viewport lines a card occupies.
type lineSpan struct {
	start int
	end   int
}

// renderCards renders one card per dish and reports where each card sits.
func (m Model) renderCards(items []menu.Dish, width int) (string, []lineSpan) {
	if len(items) == 0 {
		styles := m.theme.Styles()
		msg := styles.MutedText.Render("No items on the menu. Press a to add one.")
		return lipgloss.Place(width, m.listHeight(), lipgloss.Center, lipgloss.Center, msg), nil
	}

	var lines []string
	spans := make([]lineSpan, 0, len(items))
	for i, d := range items {
		card := m.renderCard(d, width, i == m.selected)
		start := len(lines)
		lines = append(lines, card...)
		spans = append(spans, lineSpan{start: start, end: len(lines)})
		lines = append(lines, "")
	}
	return strings.Join(lines, "\n"), spans
}

// renderCard renders a dish as a block of full-width lines.
func (m Model) renderCard(d menu.Dish, width int, selected bool) []string {
	bgColor := m.theme.SurfaceAlt
	if selected {
		bgColor = m.theme.FocusBg
	}
	bg := NewBgStyle(bgColor)
	styles := m.theme.Styles().WithBackground(bgColor)
	textWidth := maxInt(width-4, 8)

	gutter := bg.Spaces(2)
	if selected {
		gutter = bg.Render("▌", styles.AccentText) + bg.Space()
	}

	var lines []string
	add := func(s string) { lines = append(lines, bg.FillLine(gutter+s, width)) }

	badge := styles.IntensityStyle(d.Intensity).Render(string(d.Intensity))
	nameWidth := maxInt(textWidth-lipgloss.Width(badge)-1, 4)
	add(bg.Render(truncate(d.Name, nameWidth), styles.Text.Bold(true)) + bg.Space() + badge)

	for _, l := range wrap(d.Description, textWidth) {
		add(bg.Render(l, styles.MutedText))
	}
	add(bg.Render(truncate(d.Meta(), textWidth), styles.AccentText))

	if !m.compact {
		ingredients := "Ingredients: " + strings.Join(d.Ingredients, ", ")
		add(bg.Render(truncate(ingredients, textWidth), styles.FaintText))
		if strings.TrimSpace(d.Image) != "" {
			add(bg.Render(truncate("Image: "+d.Image, textWidth), styles.FaintText))
		}
	}
	return lines
}

// renderList renders the list screen.
func (m Model) renderList() string {
	contentHeight := m.height - 2
	title := fmt.Sprintf("Menu (%d)", len(m.flow.Items()))
	return m.renderTitledBox(title, m.listViewport.View(), m.width, contentHeight, true)
}

// renderTitledBox renders content in a box with the title embedded in the top border:
// ┌─── Title ───┐
func (m Model) renderTitledBox(title, content string, width, height int, focused bool) string {
	borderColorStr := m.theme.Border
	bgColorStr := m.theme.SurfaceAlt
	if focused {
		borderColorStr = m.theme.BorderFocus
	}
	bg := NewBgStyle(bgColorStr)
	borderStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(borderColorStr))
	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(m.theme.Text))

	innerWidth := maxInt(width-2, 0)
	title = truncate(title, maxInt(innerWidth-4, 0))
	titleLen := lipgloss.Width(title)
	leftPad := maxInt((innerWidth-titleLen-2)/2, 0)
	rightPad := maxInt(innerWidth-titleLen-2-leftPad, 0)

	topBorder := bg.Render("┌", borderStyle) +
		bg.Render(strings.Repeat("─", leftPad), borderStyle) +
		bg.Render(" "+title+" ", titleStyle) +
		bg.Render(strings.Repeat("─", rightPad), borderStyle) +
		bg.Render("┐", borderStyle)

	bottomBorder := bg.Render("└", borderStyle) +
		bg.Render(strings.Repeat("─", innerWidth), borderStyle) +
		bg.Render("┘", borderStyle)

	contentStyle := lipgloss.NewStyle().Width(innerWidth).MaxWidth(innerWidth).Background(lipgloss.Color(bgColorStr))

	contentLines := strings.Split(content, "\n")
	boxHeight := maxInt(height-2, 0)

	rows := make([]string, 0, boxHeight)
	for i := 0; i < boxHeight; i++ {
		var line string
		if i < len(contentLines) {
			line = contentLines[i]
		}
		rows = append(rows,
			bg.Render("│", borderStyle)+
				contentStyle.Render(line)+
				bg.Render("│", borderStyle))
	}

	return topBorder + "\n" + strings.Join(rows, "\n") + "\n" + bottomBorder
}
