package ui

import (
	"reflect"
	"testing"
)

func TestTruncate(t *testing.T) {
	tests := []struct {
		name  string
		value string
		limit int
		want  string
	}{
		{"fits", "Tea", 10, "Tea"},
		{"trims", "  Tea  ", 10, "Tea"},
		{"no limit", "Honey Garlic Chicken", 0, "Honey Garlic Chicken"},
		{"ellipsis", "Honey Garlic Chicken", 10, "Honey G..."},
		{"tiny limit", "Honey", 2, "Ho"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := truncate(tt.value, tt.limit); got != tt.want {
				t.Fatalf("truncate(%q, %d) = %q, want %q", tt.value, tt.limit, got, tt.want)
			}
		})
	}
}

func TestPadRight(t *testing.T) {
	if got := padRight("Price", 8); got != "Price   " {
		t.Fatalf("padRight = %q, want %q", got, "Price   ")
	}
	if got := padRight("Description", 4); got != "Description" {
		t.Fatalf("padRight should not cut, got %q", got)
	}
}

func TestWrap(t *testing.T) {
	tests := []struct {
		name  string
		value string
		width int
		want  []string
	}{
		{"empty", "   ", 10, nil},
		{"fits", "Hot tea", 10, []string{"Hot tea"}},
		{"words", "Sweet and savoury chicken", 10, []string{"Sweet and", "savoury", "chicken"}},
		{"no width", "Sweet and savoury", 0, []string{"Sweet and savoury"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := wrap(tt.value, tt.width); !reflect.DeepEqual(got, tt.want) {
				t.Fatalf("wrap(%q, %d) = %#v, want %#v", tt.value, tt.width, got, tt.want)
			}
		})
	}
}

func TestClamp(t *testing.T) {
	if got := clamp(5, 0, 3); got != 3 {
		t.Fatalf("clamp(5,0,3) = %d, want 3", got)
	}
	if got := clamp(-1, 0, 3); got != 0 {
		t.Fatalf("clamp(-1,0,3) = %d, want 0", got)
	}
	if got := clamp(2, 0, 3); got != 2 {
		t.Fatalf("clamp(2,0,3) = %d, want 2", got)
	}
}
