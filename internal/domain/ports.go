package domain

import "context"

// RecipeSource provides recipes. Implementations can be in-memory
// (hardcoded), file-based, or API-backed.
type RecipeSource interface {
	List(ctx context.Context) ([]RecipeSummary, error)
	Get(ctx context.Context, id string) (*Recipe, error)
	Search(ctx context.Context, query string) ([]RecipeSummary, error)
}

// PlanStore persists the week's meal plan entries.
type PlanStore interface {
	Add(ctx context.Context, entry *MealPlanEntry) error
	Remove(ctx context.Context, id string) error
	List(ctx context.Context) ([]*MealPlanEntry, error)
	Clear(ctx context.Context) error
}

// GroceryStore persists aggregated grocery lists. Implementations can
// be in-memory or SQLite-backed.
type GroceryStore interface {
	SaveList(ctx context.Context, list *GroceryList) error
	GetList(ctx context.Context, id string) (*GroceryList, error)
	LatestList(ctx context.Context) (*GroceryList, error)
	ToggleChecked(ctx context.Context, listID string, position int) error
}

// IntentParser converts raw user input into structured intents.
type IntentParser interface {
	Parse(ctx context.Context, input string) (*Intent, error)
}

// Notifier delivers messages to the user. Implementations can write to
// stdout, chime, or raise desktop notifications.
type Notifier interface {
	Notify(ctx context.Context, message string) error
	NotifyUrgent(ctx context.Context, message string) error
}
