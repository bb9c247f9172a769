package ui

import (
	"testing"

	"github.com/five82/christoffel/internal/menu"
)

func TestThemeNames(t *testing.T) {
	names := ThemeNames()
	want := []string{"Christoffel", "Nightfox", "Slate"}
	if len(names) != len(want) {
		t.Fatalf("ThemeNames() returned %d names, want %d", len(names), len(want))
	}
	for i := range want {
		if names[i] != want[i] {
			t.Fatalf("ThemeNames() = %v, want %v", names, want)
		}
	}

	names[0] = "mutated"
	if ThemeNames()[0] != "Christoffel" {
		t.Fatalf("ThemeNames() returned shared slice")
	}
}

func TestNextTheme(t *testing.T) {
	tests := []struct {
		current string
		want    string
	}{
		{"Christoffel", "Nightfox"},
		{"Nightfox", "Slate"},
		{"Slate", "Christoffel"},
		{"Unknown", "Christoffel"},
	}
	for _, tt := range tests {
		if got := NextTheme(tt.current); got != tt.want {
			t.Fatalf("NextTheme(%s) = %q, want %q", tt.current, got, tt.want)
		}
	}
}

func TestGetTheme(t *testing.T) {
	if got := GetTheme("Slate").Name; got != "Slate" {
		t.Fatalf("GetTheme(Slate).Name = %q, want Slate", got)
	}
	if got := GetTheme("Unknown").Name; got != defaultThemeName {
		t.Fatalf("GetTheme(Unknown).Name = %q, want %s (fallback)", got, defaultThemeName)
	}
	if got := GetTheme("Christoffel").ButtonBg; got != "#4169E1" {
		t.Fatalf("Christoffel button = %q, want royal blue #4169E1", got)
	}
}

func TestThemesColorEveryIntensity(t *testing.T) {
	for _, name := range ThemeNames() {
		th := GetTheme(name)
		for _, i := range []menu.Intensity{menu.IntensityMild, menu.IntensityBalanced, menu.IntensityStrong} {
			if th.IntensityColors[i] == "" {
				t.Fatalf("theme %s has no color for %s", name, i)
			}
		}
	}
}
