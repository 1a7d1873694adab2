// Package domain defines the core types and interfaces for the meal planner.
// All other packages depend on domain; domain depends on nothing.
package domain

import "time"

// Recipe represents a complete cooking recipe.
type Recipe struct {
	ID           string
	Name         string
	Description  string
	BaseServings int // the yield the ingredient quantities are written for
	Ingredients  []Ingredient
	Steps        []Step
	Tags         []string
	Version      int
}

// RecipeSummary is a lightweight view of a recipe for listing.
type RecipeSummary struct {
	ID          string
	Name        string
	Description string
	Tags        []string
}

// Ingredient represents a single ingredient within a recipe.
// Quantity is nil when the recipe gives no amount ("salt, to taste").
type Ingredient struct {
	Name     string
	Quantity *float64
	Unit     string // "cup", "tablespoons", "grams", ""
	Section  string // grocery grouping like "Produce"; empty means "Other"
	Notes    string
	Optional bool
}

// Step represents a single cooking step.
type Step struct {
	Order       int
	Instruction string
	Duration    time.Duration // countdown length, 0 if untimed
}
