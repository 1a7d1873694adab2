package domain

import "time"

// MealPlanEntry pairs a recipe with a requested serving count on a
// planned date. Recipe is resolved from the RecipeSource before the
// entry reaches the aggregator.
type MealPlanEntry struct {
	ID       string
	RecipeID string
	Servings int
	Date     time.Time
	Recipe   *Recipe
}

// Multiplier returns the servings scale factor for this entry.
// A recipe yield of zero counts as one so the ratio never divides
// by zero; a missing serving request falls back to the recipe yield.
func (e *MealPlanEntry) Multiplier() float64 {
	base := 1
	if e.Recipe != nil && e.Recipe.BaseServings > 0 {
		base = e.Recipe.BaseServings
	}
	requested := e.Servings
	if requested <= 0 {
		requested = base
	}
	return float64(requested) / float64(base)
}

// GroceryItem is one consolidated line of a grocery list. Items with
// the same lowercased name and unit are merged into a single entry;
// Quantity stays nil when no contributing ingredient carried an amount.
type GroceryItem struct {
	Name      string // first-seen casing
	Quantity  *float64
	Unit      string
	Section   string
	Notes     string
	RecipeIDs []string // contributing recipes, first-seen order, deduplicated
	Checked   bool
}

// GroceryList is a persisted aggregation result.
type GroceryList struct {
	ID        string
	CreatedAt time.Time
	Items     []GroceryItem
}
