package menu

import (
	"errors"
	"math"
	"strconv"
	"strings"
	"unicode"

	"github.com/google/uuid"
)

// Entry holds the raw text of the add-dish form.
type Entry struct {
	Name        string
	Description string
	Category    string
	Price       string
	Image       string
	Ingredients string
}

// Build validates an entry and turns it into a Dish with a fresh ID.
//
// Name, Description, Category and Price must be non-empty; Image and
// Ingredients are optional. The price must parse to a number above zero.
func Build(e Entry) (Dish, error) {
	if missing := e.missingFields(); len(missing) > 0 {
		return Dish{}, &MissingFieldsError{Fields: missing}
	}

	price := ParsePrice(e.Price)
	// NaN fails this comparison too.
	if !(price > 0) {
		return Dish{}, &InvalidPriceError{Raw: e.Price}
	}

	return Dish{
		ID:          uuid.NewString(),
		Name:        e.Name,
		Description: e.Description,
		Category:    e.Category,
		Price:       price,
		Intensity:   ClassifyIntensity(price),
		Image:       e.Image,
		Ingredients: SplitIngredients(e.Ingredients),
	}, nil
}

func (e Entry) missingFields() []string {
	var missing []string
	if e.Name == "" {
		missing = append(missing, "name")
	}
	if e.Description == "" {
		missing = append(missing, "description")
	}
	if e.Category == "" {
		missing = append(missing, "category")
	}
	if e.Price == "" {
		missing = append(missing, "price")
	}
	return missing
}

// SplitIngredients splits a comma separated list and trims each token.
// Empty tokens are kept, so an empty input yields a single empty token.
func SplitIngredients(raw string) []string {
	tokens := strings.Split(raw, ",")
	for i, token := range tokens {
		tokens[i] = strings.TrimSpace(token)
	}
	return tokens
}

// ParsePrice reads the longest decimal prefix of raw after leading
// whitespace, so "45abc" is 45 and "abc" is NaN. "Infinity" with an
// optional sign is accepted.
func ParsePrice(raw string) float64 {
	s := strings.TrimLeftFunc(raw, unicode.IsSpace)

	i := 0
	negative := false
	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		negative = s[i] == '-'
		i++
	}
	if strings.HasPrefix(s[i:], "Infinity") {
		if negative {
			return math.Inf(-1)
		}
		return math.Inf(1)
	}

	digits := 0
	for i < len(s) && isDigit(s[i]) {
		i++
		digits++
	}
	if i < len(s) && s[i] == '.' {
		i++
		for i < len(s) && isDigit(s[i]) {
			i++
			digits++
		}
	}
	if digits == 0 {
		return math.NaN()
	}

	end := i
	if i < len(s) && (s[i] == 'e' || s[i] == 'E') {
		j := i + 1
		if j < len(s) && (s[j] == '+' || s[j] == '-') {
			j++
		}
		k := j
		for k < len(s) && isDigit(s[k]) {
			k++
		}
		if k > j {
			end = k
		}
	}

	value, err := strconv.ParseFloat(s[:end], 64)
	if err != nil {
		if errors.Is(err, strconv.ErrRange) {
			return value
		}
		return math.NaN()
	}
	return value
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}
