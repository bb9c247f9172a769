package menu

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassifyIntensity(t *testing.T) {
	tests := []struct {
		price float64
		want  Intensity
	}{
		{0.01, IntensityMild},
		{45, IntensityMild},
		{99.99, IntensityMild},
		{100, IntensityBalanced},
		{150, IntensityBalanced},
		{199.999, IntensityBalanced},
		{200, IntensityStrong},
		{1000, IntensityStrong},
		{math.Inf(1), IntensityStrong},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ClassifyIntensity(tt.price), "ClassifyIntensity(%v)", tt.price)
	}
}

func TestFormatPrice(t *testing.T) {
	tests := []struct {
		price float64
		want  string
	}{
		{120, "R120"},
		{45.5, "R45.5"},
		{1234567, "R1234567"},
		{0.1, "R0.1"},
		{math.Inf(1), "RInfinity"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatPrice(tt.price))
	}
}

func TestDishMeta(t *testing.T) {
	d := Dish{Category: "Main Meal", Price: 120, Intensity: IntensityBalanced}
	assert.Equal(t, "Main Meal. R120 (Balanced)", d.Meta())
}

func TestDishClone_DoesNotShareIngredients(t *testing.T) {
	d := Dish{Ingredients: []string{"Chicken"}}
	c := d.Clone()
	c.Ingredients[0] = "Beef"
	assert.Equal(t, "Chicken", d.Ingredients[0])
}

func TestDefaultDishes(t *testing.T) {
	dishes := DefaultDishes()
	require.Len(t, dishes, 3)

	assert.Equal(t, "Honey Garlic Chicken", dishes[0].Name)
	assert.Equal(t, "New York Cheesecake", dishes[1].Name)
	assert.Equal(t, "Halloumi, carrot & orange salad", dishes[2].Name)

	for _, d := range dishes {
		assert.NotEmpty(t, d.ID)
		assert.Equal(t, ClassifyIntensity(d.Price), d.Intensity, "seed intensity for %s", d.Name)
	}

	// Each call is independent.
	again := DefaultDishes()
	again[0].Ingredients[0] = "Tofu"
	assert.Equal(t, "Chicken", DefaultDishes()[0].Ingredients[0])
	assert.NotEqual(t, dishes[0].ID, again[0].ID)
}

func TestCategoriesReturnsCopy(t *testing.T) {
	cats := Categories()
	assert.Equal(t, []string{"Starter", "Main Meal", "Dessert"}, cats)
	cats[0] = "Soup"
	assert.Equal(t, "Starter", Categories()[0])
}
