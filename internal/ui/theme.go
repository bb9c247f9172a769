package ui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/five82/christoffel/internal/menu"
)

// Theme defines colors and styles for the UI.
type Theme struct {
	Name string

	// Base colors
	Background string // Outermost background
	Surface    string // Header and command bar
	SurfaceAlt string // Card panels
	FocusBg    string // Selected card

	// Button colors
	ButtonBg   string
	ButtonText string

	// Border colors
	Border      string
	BorderMuted string
	BorderFocus string

	// Text colors
	Text    string
	Muted   string
	Faint   string
	Accent  string
	Success string
	Warning string
	Danger  string
	Info    string

	// Intensity badge colors, keyed by menu.Intensity
	IntensityColors map[menu.Intensity]string
}

// Styles returns Lipgloss styles for this theme.
func (t Theme) Styles() Styles {
	return Styles{
		Text: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Text)),

		MutedText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Muted)),

		FaintText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Faint)),

		AccentText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Accent)),

		SuccessText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Success)).
			Bold(true),

		WarningText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Warning)),

		DangerText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Danger)).
			Bold(true),

		Header: lipgloss.NewStyle().
			Background(lipgloss.Color(t.Surface)).
			Foreground(lipgloss.Color(t.Text)).
			Padding(0, 1),

		Logo: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Accent)).
			Bold(true),

		Button: lipgloss.NewStyle().
			Background(lipgloss.Color(t.ButtonBg)).
			Foreground(lipgloss.Color(t.ButtonText)).
			Bold(true).
			Padding(0, 2),

		intensityColors: t.IntensityColors,
		background:      t.Background,
		muted:           t.Muted,
	}
}

// Styles contains pre-built Lipgloss styles for the theme.
type Styles struct {
	// Text
	Text        lipgloss.Style
	MutedText   lipgloss.Style
	FaintText   lipgloss.Style
	AccentText  lipgloss.Style
	SuccessText lipgloss.Style
	WarningText lipgloss.Style
	DangerText  lipgloss.Style

	// Components
	Header lipgloss.Style
	Logo   lipgloss.Style
	Button lipgloss.Style

	intensityColors map[menu.Intensity]string
	background      string
	muted           string
}

// IntensityStyle returns a badge style for the given intensity.
func (s Styles) IntensityStyle(i menu.Intensity) lipgloss.Style {
	color := s.intensityColors[i]
	if color == "" {
		color = s.muted
	}
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color(s.background)).
		Background(lipgloss.Color(color)).
		Padding(0, 1)
}

// WithBackground returns a copy of Styles whose text styles carry an
// explicit background, so styled runs don't punch holes in a panel.
func (s Styles) WithBackground(bgColor string) Styles {
	bg := lipgloss.Color(bgColor)
	out := s
	out.Text = s.Text.Background(bg)
	out.MutedText = s.MutedText.Background(bg)
	out.FaintText = s.FaintText.Background(bg)
	out.AccentText = s.AccentText.Background(bg)
	out.SuccessText = s.SuccessText.Background(bg)
	out.WarningText = s.WarningText.Background(bg)
	out.DangerText = s.DangerText.Background(bg)
	out.Header = s.Header.Background(bg)
	out.Logo = s.Logo.Background(bg)
	return out
}

// Theme definitions

const defaultThemeName = "Christoffel"

var themes = map[string]Theme{
	"Christoffel": christoffelTheme(),
	"Nightfox":    nightfoxTheme(),
	"Slate":       slateTheme(),
}

var themeOrder = []string{"Christoffel", "Nightfox", "Slate"}

// GetTheme returns a theme by name, falling back to the default theme.
func GetTheme(name string) Theme {
	if t, ok := themes[name]; ok {
		return t
	}
	return christoffelTheme()
}

// NextTheme returns the next theme name in the cycle.
func NextTheme(current string) string {
	for i, name := range themeOrder {
		if name == current {
			return themeOrder[(i+1)%len(themeOrder)]
		}
	}
	return themeOrder[0]
}

// ThemeNames returns available theme names.
func ThemeNames() []string {
	return append([]string(nil), themeOrder...)
}

func christoffelTheme() Theme {
	// Royal blue on navy, after the restaurant's brand color.
	return Theme{
		Name: "Christoffel",

		Background: "#0b1026",
		Surface:    "#131a3a",
		SurfaceAlt: "#1a2350",
		FocusBg:    "#223070",

		ButtonBg:   "#4169E1", // royal blue
		ButtonText: "#ffffff",

		Border:      "#2f3f86",
		BorderMuted: "#1a2350",
		BorderFocus: "#4169E1",

		Text:    "#eef1ff",
		Muted:   "#9aa6d6",
		Faint:   "#6d79ab",
		Accent:  "#7b9bff",
		Success: "#6fcf97",
		Warning: "#f2c94c",
		Danger:  "#ff6b6b",
		Info:    "#56ccf2",

		IntensityColors: map[menu.Intensity]string{
			menu.IntensityMild:     "#6fcf97",
			menu.IntensityBalanced: "#f2c94c",
			menu.IntensityStrong:   "#ff6b6b",
		},
	}
}

func nightfoxTheme() Theme {
	// Nightfox palette: https://github.com/EdenEast/nightfox.nvim
	return Theme{
		Name: "Nightfox",

		Background: "#131a24", // bg0
		Surface:    "#192330", // bg1
		SurfaceAlt: "#212e3f", // bg2
		FocusBg:    "#29394f", // bg3

		ButtonBg:   "#719cd6", // blue
		ButtonText: "#131a24", // bg0

		Border:      "#39506d", // bg4
		BorderMuted: "#212e3f", // bg2
		BorderFocus: "#719cd6", // blue

		Text:    "#cdcecf", // fg1
		Muted:   "#738091", // comment
		Faint:   "#71839b", // fg3
		Accent:  "#719cd6", // blue
		Success: "#81b29a", // green
		Warning: "#dbc074", // yellow
		Danger:  "#c94f6d", // red
		Info:    "#63cdcf", // cyan

		IntensityColors: map[menu.Intensity]string{
			menu.IntensityMild:     "#81b29a", // green
			menu.IntensityBalanced: "#f4a261", // orange
			menu.IntensityStrong:   "#c94f6d", // red
		},
	}
}

func slateTheme() Theme {
	// Tailwind CSS Slate/Sky palette: https://tailwindcss.com/docs/colors
	return Theme{
		Name: "Slate",

		Background: "#020617", // slate-950
		Surface:    "#0f172a", // slate-900
		SurfaceAlt: "#1e293b", // slate-800
		FocusBg:    "#283548",

		ButtonBg:   "#0284c7", // sky-600
		ButtonText: "#f8fafc", // slate-50

		Border:      "#334155", // slate-700
		BorderMuted: "#1e293b", // slate-800
		BorderFocus: "#38bdf8", // sky-400

		Text:    "#f1f5f9", // slate-100
		Muted:   "#94a3b8", // slate-400
		Faint:   "#64748b", // slate-500
		Accent:  "#38bdf8", // sky-400
		Success: "#22c55e", // green-500
		Warning: "#f59e0b", // amber-500
		Danger:  "#ef4444", // red-500
		Info:    "#06b6d4", // cyan-500

		IntensityColors: map[menu.Intensity]string{
			menu.IntensityMild:     "#22c55e", // green-500
			menu.IntensityBalanced: "#f59e0b", // amber-500
			menu.IntensityStrong:   "#dc2626", // red-600
		},
	}
}
