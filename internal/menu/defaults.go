package menu

import "github.com/google/uuid"

var defaultDishes = []Dish{
	{
		Name:        "Honey Garlic Chicken",
		Description: "A well based honey garlic chicken with herbs and spices which comes with a side of your choice.",
		Category:    "Main Meal",
		Price:       120,
		Intensity:   IntensityBalanced,
		Image:       "https://healthyfitnessmeals.com/wp-content/uploads/2021/02/Honey-garlic-chicken-meal-prep-9.jpg",
		Ingredients: []string{"Chicken", "Honey", "Rosemary"},
	},
	{
		Name:        "New York Cheesecake",
		Description: "A sweet New York styled cheesecake.",
		Category:    "Dessert",
		Price:       80,
		Intensity:   IntensityMild,
		Image:       "https://www.onceuponachef.com/images/2017/12/cheesecake-1200x1393.jpg",
		Ingredients: []string{"Crushed cookies", "cream cheese", "Sugar"},
	},
	{
		Name:        "Halloumi, carrot & orange salad",
		Description: "A cheesy, healthy salad with tons of flavor.",
		Category:    "Starter",
		Price:       60,
		Intensity:   IntensityMild,
		Image:       "https://images.immediate.co.uk/production/volatile/sites/30/2020/08/halloumi-carrot-orange-salad-64b2d8b.jpg?quality=90&resize=440,400",
		Ingredients: []string{"Tomato", "Basil", "Garlic"},
	},
}

// DefaultDishes returns a fresh copy of the seed menu, each dish with a new ID.
func DefaultDishes() []Dish {
	out := make([]Dish, len(defaultDishes))
	for i, d := range defaultDishes {
		d = d.Clone()
		d.ID = uuid.NewString()
		out[i] = d
	}
	return out
}
