// Package menu defines the dish record and the rules for turning raw form
// input into one.
//
// # Dishes
//
// A Dish carries the text entered by the user plus two derived values: a
// parsed price and an Intensity label. Intensity depends on price alone:
//
//	price < 100        Mild
//	100 <= price < 200 Balanced
//	price >= 200       Strong
//
// Every dish gets an opaque ID (a UUID) when it is built. The ID is the
// identity used by removal; list positions are not stable.
//
// # Building
//
// Build accepts an Entry with six text fields. Name, Description, Category
// and Price are required and checked for emptiness only. Price is parsed by
// ParsePrice, which reads the longest decimal prefix, and must come out above
// zero. Ingredients are split on commas and trimmed, keeping empty tokens.
//
// Validation failures are *MissingFieldsError or *InvalidPriceError. Both
// match their sentinel with errors.Is and implement Notice, which supplies
// the title and message shown to the user.
//
// # Defaults
//
// DefaultDishes returns the three seed dishes present at every launch.
package menu
