package planner

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/hammamikhairi/mealpilot/internal/domain"
	"github.com/hammamikhairi/mealpilot/internal/logger"
	"github.com/hammamikhairi/mealpilot/internal/recipe"
	"github.com/hammamikhairi/mealpilot/internal/storage"
)

func setupPlanner(t *testing.T) (*Planner, context.Context) {
	t.Helper()
	log := logger.New(logger.LevelOff, nil)
	recipes := recipe.NewMemorySource(log)
	plans := storage.NewMemoryPlanStore(log)
	lists := storage.NewMemoryGroceryStore(log)
	return New(recipes, plans, lists, log), context.Background()
}

func monday() time.Time {
	return time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)
}

func TestAddEntry(t *testing.T) {
	p, ctx := setupPlanner(t)

	tests := []struct {
		name     string
		recipeID string
		servings int
		wantErr  bool
	}{
		{"valid recipe", "chicken-alfredo", 4, false},
		{"default servings", "vegetable-stir-fry", 0, false},
		{"unknown recipe", "nonexistent", 2, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			entry, err := p.AddEntry(ctx, tt.recipeID, tt.servings, monday())
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error, got nil")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if entry.ID == "" {
				t.Fatal("entry ID is empty")
			}
			if entry.Recipe == nil {
				t.Fatal("entry recipe not resolved")
			}
			if entry.Servings <= 0 {
				t.Fatal("servings not defaulted")
			}
		})
	}
}

func TestRemoveEntry(t *testing.T) {
	p, ctx := setupPlanner(t)

	entry, err := p.AddEntry(ctx, "chicken-alfredo", 2, monday())
	if err != nil {
		t.Fatalf("add: %v", err)
	}

	if err := p.RemoveEntry(ctx, entry.ID); err != nil {
		t.Fatalf("remove: %v", err)
	}

	entries, _ := p.Entries(ctx)
	if len(entries) != 0 {
		t.Fatalf("expected empty plan, got %d entries", len(entries))
	}
}

func TestGenerateGroceryListEmptyPlan(t *testing.T) {
	p, ctx := setupPlanner(t)

	_, err := p.GenerateGroceryList(ctx)
	if !errors.Is(err, domain.ErrEmptyPlan) {
		t.Fatalf("expected ErrEmptyPlan, got %v", err)
	}
}

func TestGenerateGroceryList(t *testing.T) {
	p, ctx := setupPlanner(t)

	// Alfredo at double servings, stir fry as written.
	if _, err := p.AddEntry(ctx, "chicken-alfredo", 4, monday()); err != nil {
		t.Fatalf("add alfredo: %v", err)
	}
	if _, err := p.AddEntry(ctx, "vegetable-stir-fry", 2, monday().AddDate(0, 0, 1)); err != nil {
		t.Fatalf("add stir fry: %v", err)
	}

	list, err := p.GenerateGroceryList(ctx)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if list.ID == "" || len(list.Items) == 0 {
		t.Fatal("expected a persisted list with items")
	}

	byName := make(map[string]domain.GroceryItem)
	for _, item := range list.Items {
		byName[item.Name+"|"+item.Unit] = item
	}

	// Garlic appears in both recipes with the same unit: 4*2 + 3*1 cloves.
	garlic, ok := byName["garlic|cloves"]
	if !ok {
		t.Fatal("expected merged garlic item")
	}
	if garlic.Quantity == nil || *garlic.Quantity != 11 {
		t.Fatalf("expected 11 cloves of garlic, got %v", garlic.Quantity)
	}
	if len(garlic.RecipeIDs) != 2 {
		t.Fatalf("expected garlic from both recipes, got %v", garlic.RecipeIDs)
	}

	// Salt has no quantity in the alfredo; it must stay amount-less.
	salt, ok := byName["salt|"]
	if !ok {
		t.Fatal("expected salt item")
	}
	if salt.Quantity != nil {
		t.Fatalf("expected salt to stay quantity-less, got %v", *salt.Quantity)
	}

	// The generated list is retrievable as the latest.
	latest, err := p.LatestGroceryList(ctx)
	if err != nil {
		t.Fatalf("latest: %v", err)
	}
	if latest.ID != list.ID {
		t.Fatalf("expected latest list %s, got %s", list.ID, latest.ID)
	}
}

func TestCheckItem(t *testing.T) {
	p, ctx := setupPlanner(t)

	if _, err := p.AddEntry(ctx, "buttermilk-pancakes", 4, monday()); err != nil {
		t.Fatalf("add: %v", err)
	}
	list, err := p.GenerateGroceryList(ctx)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	if err := p.CheckItem(ctx, list.ID, 0); err != nil {
		t.Fatalf("check: %v", err)
	}
	got, _ := p.LatestGroceryList(ctx)
	if !got.Items[0].Checked {
		t.Fatal("expected first item checked")
	}

	if err := p.CheckItem(ctx, list.ID, 999); err == nil {
		t.Fatal("expected error for out-of-range position")
	}
}

func TestClearWeek(t *testing.T) {
	p, ctx := setupPlanner(t)

	p.AddEntry(ctx, "chicken-alfredo", 2, monday())
	if err := p.ClearWeek(ctx); err != nil {
		t.Fatalf("clear: %v", err)
	}

	_, err := p.GenerateGroceryList(ctx)
	if !errors.Is(err, domain.ErrEmptyPlan) {
		t.Fatalf("expected ErrEmptyPlan after clear, got %v", err)
	}
}
