package models

import "slices"

const (
	DifficultyEasy   = "Easy"
	DifficultyMedium = "Medium"
	DifficultyHard   = "Hard"
)

const (
	DefaultServings = 6
	MinServings     = 1
	MaxServings     = 20

	MinCookingTime = 1
	MaxCookingTime = 1440

	MaxTitleLength = 100

	DefaultUnit = "g"
)

// Categories is the fixed list offered when creating a recipe.
var Categories = []string{
	"Breakfast",
	"Lunch",
	"Dinner",
	"Dessert",
	"Baking",
	"Salads",
	"Soups",
	"Snacks",
	"Drinks",
	"Vegetarian",
	"Dietary",
	"Festive",
}

var Difficulties = []string{DifficultyEasy, DifficultyMedium, DifficultyHard}

var Units = []string{"g", "kg", "ml", "l", "pcs", "tsp", "tbsp"}

func IsCategory(s string) bool   { return slices.Contains(Categories, s) }
func IsDifficulty(s string) bool { return slices.Contains(Difficulties, s) }
func IsUnit(s string) bool       { return slices.Contains(Units, s) }
