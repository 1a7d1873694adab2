// Package planner coordinates the meal plan: adding meals to the week,
// aggregating them into a grocery list, and persisting the result.
package planner

import (
	"context"
	"fmt"
	"time"

	"github.com/hammamikhairi/mealpilot/internal/domain"
	"github.com/hammamikhairi/mealpilot/internal/grocery"
	"github.com/hammamikhairi/mealpilot/internal/logger"
)

// Option configures the planner.
type Option func(*Planner)

// WithServingsDefault sets the serving count used when an entry
// doesn't request one.
func WithServingsDefault(n int) Option {
	return func(p *Planner) {
		p.defaultServings = n
	}
}

// Planner manages the week's meal plan. It depends only on interfaces
// and is fully testable with in-memory stores.
type Planner struct {
	recipes         domain.RecipeSource
	plans           domain.PlanStore
	lists           domain.GroceryStore
	agg             *grocery.Aggregator
	log             *logger.Logger
	defaultServings int
}

// New creates a planner with the given dependencies and options.
func New(recipes domain.RecipeSource, plans domain.PlanStore, lists domain.GroceryStore, log *logger.Logger, opts ...Option) *Planner {
	p := &Planner{
		recipes:         recipes,
		plans:           plans,
		lists:           lists,
		agg:             grocery.New(log),
		log:             log,
		defaultServings: 2,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// ListRecipes returns all available recipes.
func (p *Planner) ListRecipes(ctx context.Context) ([]domain.RecipeSummary, error) {
	return p.recipes.List(ctx)
}

// GetRecipe returns a full recipe by ID.
func (p *Planner) GetRecipe(ctx context.Context, id string) (*domain.Recipe, error) {
	return p.recipes.Get(ctx, id)
}

// AddEntry plans a recipe for the given date. The recipe is resolved
// eagerly so the entry carries everything the aggregator needs.
func (p *Planner) AddEntry(ctx context.Context, recipeID string, servings int, date time.Time) (*domain.MealPlanEntry, error) {
	r, err := p.recipes.Get(ctx, recipeID)
	if err != nil {
		return nil, fmt.Errorf("getting recipe: %w", err)
	}

	if servings <= 0 {
		servings = p.defaultServings
	}

	entry := &domain.MealPlanEntry{
		ID:       generateID(),
		RecipeID: r.ID,
		Servings: servings,
		Date:     date,
		Recipe:   r,
	}

	if err := p.plans.Add(ctx, entry); err != nil {
		return nil, fmt.Errorf("saving plan entry: %w", err)
	}

	p.log.Info("planned %q for %s (%d servings)", r.Name, date.Format("Mon Jan 2"), servings)
	return entry, nil
}

// RemoveEntry drops one entry from the plan.
func (p *Planner) RemoveEntry(ctx context.Context, id string) error {
	if err := p.plans.Remove(ctx, id); err != nil {
		return fmt.Errorf("removing plan entry: %w", err)
	}
	p.log.Info("removed plan entry %s", id)
	return nil
}

// Entries returns the current plan, resolving any entry whose recipe
// is missing. Entries whose recipe no longer exists are skipped with a
// warning rather than failing the whole listing.
func (p *Planner) Entries(ctx context.Context) ([]*domain.MealPlanEntry, error) {
	entries, err := p.plans.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing plan: %w", err)
	}

	out := entries[:0]
	for _, e := range entries {
		if e.Recipe == nil {
			r, err := p.recipes.Get(ctx, e.RecipeID)
			if err != nil {
				p.log.Warn("plan entry %s references unknown recipe %s, skipping", e.ID, e.RecipeID)
				continue
			}
			e.Recipe = r
		}
		out = append(out, e)
	}
	return out, nil
}

// ClearWeek wipes the plan.
func (p *Planner) ClearWeek(ctx context.Context) error {
	if err := p.plans.Clear(ctx); err != nil {
		return fmt.Errorf("clearing plan: %w", err)
	}
	p.log.Info("meal plan cleared")
	return nil
}

// GenerateGroceryList aggregates the current plan into a grocery list
// and persists it. Returns domain.ErrEmptyPlan when nothing is planned
// so the caller can tell the user to plan something first.
func (p *Planner) GenerateGroceryList(ctx context.Context) (*domain.GroceryList, error) {
	entries, err := p.Entries(ctx)
	if err != nil {
		return nil, err
	}

	items, err := p.agg.Aggregate(entries)
	if err != nil {
		return nil, err
	}

	list := &domain.GroceryList{
		ID:        generateID(),
		CreatedAt: time.Now(),
		Items:     items,
	}

	if err := p.lists.SaveList(ctx, list); err != nil {
		return nil, fmt.Errorf("saving grocery list: %w", err)
	}

	p.log.Info("generated grocery list %s (%d items from %d meals)", list.ID, len(items), len(entries))
	return list, nil
}

// LatestGroceryList returns the most recently generated list.
func (p *Planner) LatestGroceryList(ctx context.Context) (*domain.GroceryList, error) {
	return p.lists.LatestList(ctx)
}

// CheckItem toggles the checked state of an item on a list.
func (p *Planner) CheckItem(ctx context.Context, listID string, position int) error {
	if err := p.lists.ToggleChecked(ctx, listID, position); err != nil {
		return fmt.Errorf("toggling item %d: %w", position, err)
	}
	return nil
}
