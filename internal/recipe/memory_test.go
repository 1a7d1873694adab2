package recipe

import (
	"context"
	"errors"
	"testing"

	"github.com/hammamikhairi/mealpilot/internal/domain"
	"github.com/hammamikhairi/mealpilot/internal/logger"
)

func TestMemorySourceList(t *testing.T) {
	log := logger.New(logger.LevelOff, nil)
	src := NewMemorySource(log)
	ctx := context.Background()

	recipes, err := src.List(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(recipes) < 3 {
		t.Fatalf("expected at least 3 recipes, got %d", len(recipes))
	}
}

func TestMemorySourceGet(t *testing.T) {
	log := logger.New(logger.LevelOff, nil)
	src := NewMemorySource(log)
	ctx := context.Background()

	tests := []struct {
		id      string
		wantErr error
	}{
		{"chicken-alfredo", nil},
		{"vegetable-stir-fry", nil},
		{"buttermilk-pancakes", nil},
		{"nonexistent", domain.ErrNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.id, func(t *testing.T) {
			r, err := src.Get(ctx, tt.id)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("expected %v, got %v", tt.wantErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if r.ID != tt.id {
				t.Fatalf("expected ID %s, got %s", tt.id, r.ID)
			}
			if r.BaseServings <= 0 {
				t.Fatal("recipe has no base servings")
			}
			if len(r.Steps) == 0 {
				t.Fatal("recipe has no steps")
			}
			if len(r.Ingredients) == 0 {
				t.Fatal("recipe has no ingredients")
			}
		})
	}
}

func TestMemorySourceSeedsHaveTimedSteps(t *testing.T) {
	log := logger.New(logger.LevelOff, nil)
	src := NewMemorySource(log)
	ctx := context.Background()

	summaries, _ := src.List(ctx)
	for _, sum := range summaries {
		r, err := src.Get(ctx, sum.ID)
		if err != nil {
			t.Fatalf("get %s: %v", sum.ID, err)
		}
		timed := 0
		for _, step := range r.Steps {
			if step.Duration > 0 {
				timed++
			}
		}
		if timed == 0 {
			t.Fatalf("recipe %s has no timed steps, cooking mode would have nothing to count", sum.ID)
		}
	}
}

func TestMemorySourceSearch(t *testing.T) {
	log := logger.New(logger.LevelOff, nil)
	src := NewMemorySource(log)
	ctx := context.Background()

	tests := []struct {
		query    string
		minCount int
	}{
		{"chicken", 1},
		{"pasta", 1},
		{"breakfast", 1},
		{"nonexistent-query-xyz", 0},
	}

	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			results, err := src.Search(ctx, tt.query)
			if err != nil {
				t.Fatalf("search: %v", err)
			}
			if len(results) < tt.minCount {
				t.Fatalf("query=%q: expected at least %d results, got %d", tt.query, tt.minCount, len(results))
			}
		})
	}
}
