package menu

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validEntry() Entry {
	return Entry{
		Name:        "Tea",
		Description: "Hot",
		Category:    "Starter",
		Price:       "45",
	}
}

func TestBuild_ValidEntry(t *testing.T) {
	d, err := Build(validEntry())
	require.NoError(t, err)

	assert.NotEmpty(t, d.ID)
	assert.Equal(t, "Tea", d.Name)
	assert.Equal(t, "Hot", d.Description)
	assert.Equal(t, "Starter", d.Category)
	assert.Equal(t, 45.0, d.Price)
	assert.Equal(t, IntensityMild, d.Intensity)
	assert.Equal(t, "", d.Image)
	assert.Equal(t, []string{""}, d.Ingredients)
}

func TestBuild_AssignsDistinctIDs(t *testing.T) {
	a, err := Build(validEntry())
	require.NoError(t, err)
	b, err := Build(validEntry())
	require.NoError(t, err)
	assert.NotEqual(t, a.ID, b.ID)
}

func TestBuild_PriceAtBoundaryIsStrong(t *testing.T) {
	e := validEntry()
	e.Price = "200"
	d, err := Build(e)
	require.NoError(t, err)
	assert.Equal(t, IntensityStrong, d.Intensity)
}

func TestBuild_MissingFields(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Entry)
		field  string
	}{
		{"name", func(e *Entry) { e.Name = "" }, "name"},
		{"description", func(e *Entry) { e.Description = "" }, "description"},
		{"category", func(e *Entry) { e.Category = "" }, "category"},
		{"price", func(e *Entry) { e.Price = "" }, "price"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := validEntry()
			tt.mutate(&e)
			_, err := Build(e)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrMissingFields)
			assert.NotErrorIs(t, err, ErrInvalidPrice)

			var missing *MissingFieldsError
			require.True(t, errors.As(err, &missing))
			assert.Equal(t, []string{tt.field}, missing.Fields)
		})
	}
}

func TestBuild_OptionalFieldsMayBeEmpty(t *testing.T) {
	e := validEntry()
	e.Image = ""
	e.Ingredients = ""
	_, err := Build(e)
	assert.NoError(t, err)
}

func TestBuild_WhitespaceFieldsCountAsPresent(t *testing.T) {
	e := validEntry()
	e.Name = " "
	e.Category = "  "
	_, err := Build(e)
	assert.NoError(t, err)
}

func TestBuild_MissingFieldsCheckedBeforePrice(t *testing.T) {
	e := validEntry()
	e.Name = ""
	e.Price = "abc"
	_, err := Build(e)
	assert.ErrorIs(t, err, ErrMissingFields)
}

func TestBuild_InvalidPrice(t *testing.T) {
	for _, raw := range []string{"abc", "0", "-5", "-0.01", "0.0", ".", "e5", " ", "-Infinity", "$45"} {
		t.Run(raw, func(t *testing.T) {
			e := validEntry()
			e.Price = raw
			_, err := Build(e)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalidPrice)

			var notice Notice
			require.True(t, errors.As(err, &notice))
			assert.Equal(t, "Invalid Price", notice.Title())
			assert.Equal(t, "Price must be greater than zero.", notice.Message())
		})
	}
}

func TestBuild_AcceptsCategoryOutsideOptions(t *testing.T) {
	e := validEntry()
	e.Category = "Snack"
	d, err := Build(e)
	require.NoError(t, err)
	assert.Equal(t, "Snack", d.Category)
}

func TestBuild_KeepsImageAndIngredients(t *testing.T) {
	e := validEntry()
	e.Image = "https://example.com/tea.jpg"
	e.Ingredients = "Chicken, Honey ,Rosemary"
	d, err := Build(e)
	require.NoError(t, err)
	assert.Equal(t, "https://example.com/tea.jpg", d.Image)
	assert.Equal(t, []string{"Chicken", "Honey", "Rosemary"}, d.Ingredients)
}

func TestSplitIngredients(t *testing.T) {
	tests := []struct {
		in   string
		want []string
	}{
		{"Chicken, Honey ,Rosemary", []string{"Chicken", "Honey", "Rosemary"}},
		{"", []string{""}},
		{"   ", []string{""}},
		{"a,,b", []string{"a", "", "b"}},
		{"Salt,", []string{"Salt", ""}},
		{"Salt, salt", []string{"Salt", "salt"}},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, SplitIngredients(tt.in), "SplitIngredients(%q)", tt.in)
	}
}

func TestParsePrice(t *testing.T) {
	tests := []struct {
		in   string
		want float64
	}{
		{"45", 45},
		{"  45", 45},
		{"45.50", 45.5},
		{"45abc", 45},
		{"1e2", 100},
		{"1e", 1},
		{"1e+", 1},
		{"2E-1", 0.2},
		{".5", 0.5},
		{"5.", 5},
		{"+7", 7},
		{"-3", -3},
		{"0x10", 0},
		{"1,000", 1},
		{"Infinity", math.Inf(1)},
		{"1e400", math.Inf(1)},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ParsePrice(tt.in), "ParsePrice(%q)", tt.in)
	}

	for _, in := range []string{"", "abc", ".", "-", "+.", "Inf", "NaN"} {
		assert.True(t, math.IsNaN(ParsePrice(in)), "ParsePrice(%q) should be NaN", in)
	}
}
