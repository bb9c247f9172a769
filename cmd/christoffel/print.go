package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/five82/christoffel/internal/menu"
)

// printCard writes a dish the way the list screen shows it, without styling.
func printCard(w io.Writer, d menu.Dish) {
	fmt.Fprintf(w, "%s [%s]\n", d.Name, d.Intensity)
	fmt.Fprintf(w, "  %s\n", d.Description)
	fmt.Fprintf(w, "  %s\n", d.Meta())
	if ingredients := strings.Join(d.Ingredients, ", "); strings.TrimSpace(ingredients) != "" {
		fmt.Fprintf(w, "  Ingredients: %s\n", ingredients)
	}
	if d.Image != "" {
		fmt.Fprintf(w, "  Image: %s\n", d.Image)
	}
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encode json: %w", err)
	}
	return nil
}
