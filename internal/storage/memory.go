// Package storage provides meal-plan and grocery-list persistence.
package storage

import (
	"context"
	"sort"
	"sync"

	"github.com/hammamikhairi/mealpilot/internal/domain"
	"github.com/hammamikhairi/mealpilot/internal/logger"
)

// Compile-time interface check.
var _ domain.PlanStore = (*MemoryPlanStore)(nil)

// MemoryPlanStore is an in-memory meal plan store. Safe for concurrent access.
type MemoryPlanStore struct {
	mu      sync.RWMutex
	entries map[string]*domain.MealPlanEntry
	log     *logger.Logger
}

// NewMemoryPlanStore creates an empty in-memory plan store.
func NewMemoryPlanStore(log *logger.Logger) *MemoryPlanStore {
	return &MemoryPlanStore{
		entries: make(map[string]*domain.MealPlanEntry),
		log:     log,
	}
}

// Add stores a plan entry. Duplicate IDs are rejected.
func (s *MemoryPlanStore) Add(ctx context.Context, entry *domain.MealPlanEntry) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.entries[entry.ID]; ok {
		return domain.ErrAlreadyPlanned
	}
	s.entries[entry.ID] = entry
	s.log.Debug("plan entry added: %s (recipe=%s, servings=%d)", entry.ID, entry.RecipeID, entry.Servings)
	return nil
}

// Remove deletes a plan entry by ID.
func (s *MemoryPlanStore) Remove(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.entries[id]; !ok {
		return domain.ErrNotFound
	}
	delete(s.entries, id)
	s.log.Debug("plan entry removed: %s", id)
	return nil
}

// List returns all plan entries ordered by planned date, then recipe ID
// so the week reads top to bottom.
func (s *MemoryPlanStore) List(ctx context.Context) ([]*domain.MealPlanEntry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*domain.MealPlanEntry, 0, len(s.entries))
	for _, e := range s.entries {
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].Date.Equal(out[j].Date) {
			return out[i].Date.Before(out[j].Date)
		}
		return out[i].RecipeID < out[j].RecipeID
	})
	return out, nil
}

// Clear wipes the whole plan.
func (s *MemoryPlanStore) Clear(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.entries = make(map[string]*domain.MealPlanEntry)
	s.log.Debug("plan cleared")
	return nil
}

// Compile-time interface check.
var _ domain.GroceryStore = (*MemoryGroceryStore)(nil)

// MemoryGroceryStore is an in-memory grocery list store, used in tests
// and as a fallback when the SQLite database can't be opened.
type MemoryGroceryStore struct {
	mu     sync.RWMutex
	lists  map[string]*domain.GroceryList
	latest string
	log    *logger.Logger
}

// NewMemoryGroceryStore creates an empty in-memory grocery store.
func NewMemoryGroceryStore(log *logger.Logger) *MemoryGroceryStore {
	return &MemoryGroceryStore{
		lists: make(map[string]*domain.GroceryList),
		log:   log,
	}
}

// SaveList stores a list. The newest save becomes the latest list.
func (s *MemoryGroceryStore) SaveList(ctx context.Context, list *domain.GroceryList) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.lists[list.ID] = list
	s.latest = list.ID
	s.log.Debug("saved grocery list %s (%d items)", list.ID, len(list.Items))
	return nil
}

// GetList retrieves a list by ID.
func (s *MemoryGroceryStore) GetList(ctx context.Context, id string) (*domain.GroceryList, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	list, ok := s.lists[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return list, nil
}

// LatestList returns the most recently saved list.
func (s *MemoryGroceryStore) LatestList(ctx context.Context) (*domain.GroceryList, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.latest == "" {
		return nil, domain.ErrNoList
	}
	return s.lists[s.latest], nil
}

// ToggleChecked flips the checked flag of one item by position.
func (s *MemoryGroceryStore) ToggleChecked(ctx context.Context, listID string, position int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	list, ok := s.lists[listID]
	if !ok || position < 0 || position >= len(list.Items) {
		return domain.ErrNotFound
	}
	list.Items[position].Checked = !list.Items[position].Checked
	return nil
}
