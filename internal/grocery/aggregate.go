// Package grocery turns a week of planned meals into a single
// consolidated shopping list.
package grocery

import (
	"sort"
	"strings"

	"github.com/hammamikhairi/mealpilot/internal/domain"
	"github.com/hammamikhairi/mealpilot/internal/logger"
)

// Fixed section preference for the final list. Sections not listed here
// sort after all known ones, keeping their first-seen relative order.
var sectionRank = map[string]int{
	"Proteins":            0,
	"Produce":             1,
	"Pantry / Condiments": 2,
}

const unknownRank = 3

// DefaultSection is assigned to ingredients without a section.
const DefaultSection = "Other"

// Aggregator merges per-recipe ingredient quantities across a meal plan.
type Aggregator struct {
	log *logger.Logger
}

// New creates an aggregator.
func New(log *logger.Logger) *Aggregator {
	return &Aggregator{log: log}
}

// Aggregate combines the ingredients of every planned meal into one
// deduplicated list. Two ingredients merge only when their lowercased
// name AND unit match; the same name in a different unit stays a
// separate line (no unit conversion is attempted). Quantities scale by
// each entry's servings multiplier and sum across recipes. An item
// first recorded without a quantity stays quantity-less even when a
// later recipe contributes a number — the list shows it as "to taste"
// rather than pretending the total is known.
//
// Returns domain.ErrEmptyPlan when there is nothing to aggregate, so
// callers can tell "no plan yet" apart from an empty result.
func (a *Aggregator) Aggregate(entries []*domain.MealPlanEntry) ([]domain.GroceryItem, error) {
	if len(entries) == 0 {
		return nil, domain.ErrEmptyPlan
	}

	byKey := make(map[string]*domain.GroceryItem)
	var order []string // insertion order of keys

	for _, entry := range entries {
		if entry.Recipe == nil {
			a.log.Warn("aggregate: entry %s has no resolved recipe, skipping", entry.ID)
			continue
		}
		mult := entry.Multiplier()

		for _, ing := range entry.Recipe.Ingredients {
			if strings.TrimSpace(ing.Name) == "" {
				a.log.Warn("aggregate: recipe %s has a nameless ingredient, skipping", entry.RecipeID)
				continue
			}

			key := mergeKey(ing.Name, ing.Unit)
			item, seen := byKey[key]
			if !seen {
				section := ing.Section
				if section == "" {
					section = DefaultSection
				}
				item = &domain.GroceryItem{
					Name:      ing.Name,
					Unit:      ing.Unit,
					Section:   section,
					Notes:     ing.Notes,
					RecipeIDs: []string{entry.Recipe.ID},
				}
				if ing.Quantity != nil {
					q := *ing.Quantity * mult
					item.Quantity = &q
				}
				byKey[key] = item
				order = append(order, key)
				continue
			}

			if ing.Quantity != nil && item.Quantity != nil {
				*item.Quantity += *ing.Quantity * mult
			}
			if !containsID(item.RecipeIDs, entry.Recipe.ID) {
				item.RecipeIDs = append(item.RecipeIDs, entry.Recipe.ID)
			}
		}
	}

	out := make([]domain.GroceryItem, 0, len(order))
	for _, key := range order {
		out = append(out, *byKey[key])
	}

	sort.SliceStable(out, func(i, j int) bool {
		return rank(out[i].Section) < rank(out[j].Section)
	})

	a.log.Debug("aggregated %d entries into %d grocery items", len(entries), len(out))
	return out, nil
}

// mergeKey builds the identity of a grocery line: lowercased name plus
// the unit, with missing units collapsing to the literal "none".
func mergeKey(name, unit string) string {
	if unit == "" {
		unit = "none"
	}
	return strings.ToLower(name) + "|" + unit
}

func rank(section string) int {
	if r, ok := sectionRank[section]; ok {
		return r
	}
	return unknownRank
}

func containsID(ids []string, id string) bool {
	for _, v := range ids {
		if v == id {
			return true
		}
	}
	return false
}
