package menu

import (
	"fmt"
	"math"
	"strconv"
)

// Intensity is the three-level label derived from a dish's price.
type Intensity string

const (
	IntensityMild     Intensity = "Mild"
	IntensityBalanced Intensity = "Balanced"
	IntensityStrong   Intensity = "Strong"
)

// Price band lower bounds. Each bound belongs to the band above it.
const (
	balancedFloor = 100
	strongFloor   = 200
)

// CurrencyPrefix is rendered in front of every price.
const CurrencyPrefix = "R"

var categories = []string{"Starter", "Main Meal", "Dessert"}

// Categories returns the category options offered by the add form.
// Build does not enforce them.
func Categories() []string {
	out := make([]string, len(categories))
	copy(out, categories)
	return out
}

// Dish is a single menu entry.
type Dish struct {
	ID          string    `json:"id"`
	Name        string    `json:"itemName"`
	Description string    `json:"description"`
	Category    string    `json:"category"`
	Price       float64   `json:"price"`
	Intensity   Intensity `json:"intensity"`
	Image       string    `json:"image"`
	Ingredients []string  `json:"ingredients"`
}

// Meta renders the "{category}. R{price} ({intensity})" line shown under a dish.
func (d Dish) Meta() string {
	return fmt.Sprintf("%s. %s (%s)", d.Category, FormatPrice(d.Price), d.Intensity)
}

// Clone returns a copy that shares no slices with d.
func (d Dish) Clone() Dish {
	if d.Ingredients != nil {
		ingredients := make([]string, len(d.Ingredients))
		copy(ingredients, d.Ingredients)
		d.Ingredients = ingredients
	}
	return d
}

// ClassifyIntensity maps a price onto its intensity band.
func ClassifyIntensity(price float64) Intensity {
	switch {
	case price < balancedFloor:
		return IntensityMild
	case price < strongFloor:
		return IntensityBalanced
	default:
		return IntensityStrong
	}
}

// FormatPrice renders a price with the currency prefix and the shortest
// decimal form, without separators or fixed decimals.
func FormatPrice(price float64) string {
	return CurrencyPrefix + formatNumber(price)
}

func formatNumber(v float64) string {
	switch {
	case math.IsInf(v, 1):
		return "Infinity"
	case math.IsInf(v, -1):
		return "-Infinity"
	case math.IsNaN(v):
		return "NaN"
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}
