package ui

import (
	"fmt"
	"strings"

	"github.com/five82/christoffel/internal/flow"
)

// renderHeader renders the restaurant banner with the item count and the
// outcome of the last action.
func (m Model) renderHeader() string {
	styles := m.theme.Styles().WithBackground(m.theme.Surface)
	bg := NewBgStyle(m.theme.Surface)
	compact := m.width < LayoutCompactWidth
	sep := bg.Spaces(2)

	parts := []string{bg.Render(m.config.RestaurantName, styles.Logo)}
	if !compact {
		parts = append(parts, bg.Render(m.config.Tagline, styles.MutedText))
	}

	if m.flow != nil && m.screen() != flow.ScreenWelcome {
		parts = append(parts,
			bg.Render("Items:", styles.MutedText)+bg.Space()+
				bg.Render(fmt.Sprintf("%d", len(m.flow.Items())), styles.Text))
	}

	if m.status != "" && m.screen() == flow.ScreenList {
		limit := 60
		if compact {
			limit = 30
		}
		parts = append(parts, bg.Render(truncate(m.status, limit), styles.SuccessText))
	}

	return styles.Header.Width(m.width).Render(strings.Join(parts, sep))
}

// renderCommandBar renders the key hints for the active screen.
func (m Model) renderCommandBar() string {
	styles := m.theme.Styles().WithBackground(m.theme.Surface)
	bg := NewBgStyle(m.theme.Surface)

	type cmd struct{ key, desc string }
	var commands []cmd

	switch m.screen() {
	case flow.ScreenWelcome:
		commands = []cmd{
			{"enter", "Explore Menu"},
			{"q", "Quit"},
			{"?", "More"},
		}
	case flow.ScreenAddForm:
		commands = []cmd{
			{"tab", "Next"},
			{"←/→", "Category"},
			{"ctrl+s", "Save"},
			{"esc", "Back"},
		}
	default:
		cardLabel := "Compact"
		if m.compact {
			cardLabel = "Full"
		}
		commands = []cmd{
			{"a", "+ Add New Item"},
			{"x", "Remove"},
			{"j/k", "Navigate"},
			{"c", cardLabel},
			{"?", "More"},
		}
	}

	colon := bg.Sep(":")
	sep := bg.Spaces(2)

	segments := make([]string, 0, len(commands)+1)
	for _, c := range commands {
		segments = append(segments,
			bg.Render(c.key, styles.AccentText)+colon+bg.Render(c.desc, styles.MutedText))
	}

	if m.screen() != flow.ScreenAddForm {
		segments = append(segments,
			bg.Render("T", styles.AccentText)+colon+bg.Render(m.theme.Name, styles.FaintText))
	}

	return styles.Header.Width(m.width).Render(strings.Join(segments, sep))
}
