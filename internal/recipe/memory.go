// Package recipe provides recipe source implementations.
package recipe

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/hammamikhairi/mealpilot/internal/domain"
	"github.com/hammamikhairi/mealpilot/internal/logger"
)

// Compile-time interface check.
var _ domain.RecipeSource = (*MemorySource)(nil)

// MemorySource holds recipes in memory. Safe for concurrent reads.
type MemorySource struct {
	mu      sync.RWMutex
	recipes map[string]*domain.Recipe
	log     *logger.Logger
}

// NewMemorySource creates a recipe source preloaded with built-in recipes.
func NewMemorySource(log *logger.Logger) *MemorySource {
	src := &MemorySource{
		recipes: make(map[string]*domain.Recipe),
		log:     log,
	}
	src.seed()
	return src
}

// List returns summaries of all available recipes, sorted by name.
func (s *MemorySource) List(ctx context.Context) ([]domain.RecipeSummary, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	s.log.Debug("listing all recipes, count=%d", len(s.recipes))

	out := make([]domain.RecipeSummary, 0, len(s.recipes))
	for _, r := range s.recipes {
		out = append(out, domain.RecipeSummary{
			ID:          r.ID,
			Name:        r.Name,
			Description: r.Description,
			Tags:        r.Tags,
		})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

// Get returns a recipe by ID.
func (s *MemorySource) Get(ctx context.Context, id string) (*domain.Recipe, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	r, ok := s.recipes[id]
	if !ok {
		s.log.Debug("recipe not found: %s", id)
		return nil, domain.ErrNotFound
	}
	return r, nil
}

// Search returns recipes whose name, description, or tags contain the query.
func (s *MemorySource) Search(ctx context.Context, query string) ([]domain.RecipeSummary, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	q := strings.ToLower(query)
	s.log.Debug("searching recipes for: %s", q)

	var out []domain.RecipeSummary
	for _, r := range s.recipes {
		if s.matches(r, q) {
			out = append(out, domain.RecipeSummary{
				ID:          r.ID,
				Name:        r.Name,
				Description: r.Description,
				Tags:        r.Tags,
			})
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (s *MemorySource) matches(r *domain.Recipe, query string) bool {
	if strings.Contains(strings.ToLower(r.Name), query) {
		return true
	}
	if strings.Contains(strings.ToLower(r.Description), query) {
		return true
	}
	for _, tag := range r.Tags {
		if strings.Contains(strings.ToLower(tag), query) {
			return true
		}
	}
	return false
}

func qty(v float64) *float64 { return &v }

// seed populates the source with built-in recipes.
func (s *MemorySource) seed() {
	recipes := []*domain.Recipe{
		s.chickenAlfredo(),
		s.vegetableStirFry(),
		s.buttermilkPancakes(),
	}
	for _, r := range recipes {
		s.recipes[r.ID] = r
	}
	s.log.Debug("seeded %d recipes", len(recipes))
}

func (s *MemorySource) chickenAlfredo() *domain.Recipe {
	return &domain.Recipe{
		ID:           "chicken-alfredo",
		Name:         "Chicken Alfredo",
		Description:  "Creamy spaghetti alfredo with pan-seared chicken. Rich, indulgent, and not from a jar.",
		BaseServings: 2,
		Tags:         []string{"italian", "pasta", "chicken", "comfort"},
		Ingredients: []domain.Ingredient{
			{Name: "spaghetti", Quantity: qty(250), Unit: "grams", Section: "Pantry / Condiments"},
			{Name: "chicken breast", Quantity: qty(2), Unit: "pieces", Section: "Proteins"},
			{Name: "creme fraiche", Quantity: qty(1), Unit: "cup", Section: "Dairy"},
			{Name: "gruyere cheese", Quantity: qty(1), Unit: "cup", Section: "Dairy", Notes: "grated"},
			{Name: "butter", Quantity: qty(3), Unit: "tablespoons", Section: "Dairy"},
			{Name: "garlic", Quantity: qty(4), Unit: "cloves", Section: "Produce"},
			{Name: "olive oil", Quantity: qty(1), Unit: "tablespoon", Section: "Pantry / Condiments"},
			{Name: "salt", Section: "Pantry / Condiments", Notes: "to taste"},
			{Name: "black pepper", Section: "Pantry / Condiments", Notes: "to taste"},
		},
		Steps: []domain.Step{
			{
				Order:       1,
				Instruction: "Bring a large pot of salted water to a boil for the pasta. Don't be shy with the salt -- it should taste like the sea.",
				Duration:    8 * time.Minute,
			},
			{
				Order:       2,
				Instruction: "While the water heats, season the chicken breasts with salt and pepper on both sides. Pound them to even thickness if they're uneven.",
			},
			{
				Order:       3,
				Instruction: "Heat olive oil in a skillet over medium-high heat. Sear the chicken for about 6 minutes per side until golden and cooked through. Set aside and let rest.",
				Duration:    12 * time.Minute,
			},
			{
				Order:       4,
				Instruction: "Drop the spaghetti into the boiling water. Cook until al dente. Reserve a cup of pasta water before draining.",
				Duration:    10 * time.Minute,
			},
			{
				Order:       5,
				Instruction: "In the same skillet, melt butter over medium heat. Add minced garlic and cook for about 1 minute until fragrant. Do not burn it.",
				Duration:    1 * time.Minute,
			},
			{
				Order:       6,
				Instruction: "Stir in the creme fraiche. Bring to a gentle simmer and let it reduce for about 3 minutes, stirring occasionally.",
				Duration:    3 * time.Minute,
			},
			{
				Order:       7,
				Instruction: "Take the pan off the heat. Stir in the gruyere gradually until melted and smooth. Thin with reserved pasta water if needed.",
			},
			{
				Order:       8,
				Instruction: "Slice the rested chicken into strips. Toss the drained pasta into the sauce. Add the chicken on top and serve immediately.",
			},
		},
		Version: 1,
	}
}

func (s *MemorySource) vegetableStirFry() *domain.Recipe {
	return &domain.Recipe{
		ID:           "vegetable-stir-fry",
		Name:         "Vegetable Stir Fry",
		Description:  "Fast, crunchy, and customizable. The key is a screaming hot pan and not overcrowding it.",
		BaseServings: 2,
		Tags:         []string{"asian", "vegetables", "quick", "vegan", "healthy"},
		Ingredients: []domain.Ingredient{
			{Name: "bell pepper", Quantity: qty(1), Unit: "pieces", Section: "Produce"},
			{Name: "broccoli florets", Quantity: qty(2), Unit: "cups", Section: "Produce"},
			{Name: "carrot", Quantity: qty(1), Unit: "pieces", Section: "Produce"},
			{Name: "snap peas", Quantity: qty(1), Unit: "cup", Section: "Produce"},
			{Name: "garlic", Quantity: qty(3), Unit: "cloves", Section: "Produce"},
			{Name: "fresh ginger", Quantity: qty(1), Unit: "tablespoon", Section: "Produce", Notes: "grated"},
			{Name: "soy sauce", Quantity: qty(2), Unit: "tablespoons", Section: "Pantry / Condiments"},
			{Name: "sesame oil", Quantity: qty(1), Unit: "tablespoon", Section: "Pantry / Condiments"},
			{Name: "vegetable oil", Quantity: qty(2), Unit: "tablespoons", Section: "Pantry / Condiments"},
			{Name: "cornstarch", Quantity: qty(1), Unit: "teaspoon", Section: "Pantry / Condiments", Optional: true},
			{Name: "rice", Quantity: qty(1), Unit: "cup", Section: "Pantry / Condiments", Optional: true},
		},
		Steps: []domain.Step{
			{
				Order:       1,
				Instruction: "If serving with rice, start the rice first. Get that going before you touch anything else.",
			},
			{
				Order:       2,
				Instruction: "Prep all vegetables: slice the bell pepper, cut broccoli into small florets, julienne the carrot, trim snap peas. Mince the garlic and grate the ginger.",
			},
			{
				Order:       3,
				Instruction: "Mix the sauce: soy sauce, sesame oil, and cornstarch (if using) with 2 tablespoons of water. Set aside.",
			},
			{
				Order:       4,
				Instruction: "Heat your wok or largest pan on HIGH heat until it just starts to smoke. Add vegetable oil and swirl to coat.",
			},
			{
				Order:       5,
				Instruction: "Add broccoli and carrots first -- they take longest. After 2 minutes add bell peppers and snap peas. Don't stir constantly; let things char.",
				Duration:    4 * time.Minute,
			},
			{
				Order:       6,
				Instruction: "Push vegetables to the side. Add garlic and ginger to the center of the pan until fragrant, then toss everything together.",
				Duration:    30 * time.Second,
			},
			{
				Order:       7,
				Instruction: "Pour the sauce over everything. Toss to coat evenly and cook until the sauce thickens slightly.",
			},
			{
				Order:       8,
				Instruction: "Serve immediately over rice. This does not get better sitting around.",
			},
		},
		Version: 1,
	}
}

func (s *MemorySource) buttermilkPancakes() *domain.Recipe {
	return &domain.Recipe{
		ID:           "buttermilk-pancakes",
		Name:         "Buttermilk Pancakes",
		Description:  "Tall, fluffy weekend pancakes. Lumpy batter is correct batter.",
		BaseServings: 4,
		Tags:         []string{"breakfast", "sweet", "vegetarian"},
		Ingredients: []domain.Ingredient{
			{Name: "flour", Quantity: qty(2), Unit: "cups", Section: "Pantry / Condiments"},
			{Name: "sugar", Quantity: qty(0.25), Unit: "cup", Section: "Pantry / Condiments"},
			{Name: "baking powder", Quantity: qty(2), Unit: "teaspoons", Section: "Pantry / Condiments"},
			{Name: "baking soda", Quantity: qty(0.5), Unit: "teaspoon", Section: "Pantry / Condiments"},
			{Name: "salt", Quantity: qty(0.5), Unit: "teaspoon", Section: "Pantry / Condiments"},
			{Name: "buttermilk", Quantity: qty(2), Unit: "cups", Section: "Dairy"},
			{Name: "eggs", Quantity: qty(2), Unit: "", Section: "Proteins"},
			{Name: "butter", Quantity: qty(3), Unit: "tablespoons", Section: "Dairy", Notes: "melted, plus more for the pan"},
			{Name: "maple syrup", Section: "Pantry / Condiments", Notes: "for serving"},
		},
		Steps: []domain.Step{
			{
				Order:       1,
				Instruction: "Whisk the dry ingredients together in a large bowl: flour, sugar, baking powder, baking soda, salt.",
			},
			{
				Order:       2,
				Instruction: "In a second bowl, whisk buttermilk, eggs, and melted butter. Pour over the dry mix and fold until just combined. Lumps are fine.",
			},
			{
				Order:       3,
				Instruction: "Rest the batter. This hydrates the flour and makes the pancakes taller.",
				Duration:    10 * time.Minute,
			},
			{
				Order:       4,
				Instruction: "Heat a griddle over medium heat and butter it lightly. Ladle in the batter and cook until bubbles form and pop on the surface.",
				Duration:    3 * time.Minute,
			},
			{
				Order:       5,
				Instruction: "Flip and cook the second side until golden. Keep finished pancakes warm in a low oven.",
				Duration:    2 * time.Minute,
			},
			{
				Order:       6,
				Instruction: "Stack, butter, syrup. Serve hot.",
			},
		},
		Version: 1,
	}
}
