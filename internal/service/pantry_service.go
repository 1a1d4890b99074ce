package service

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/vbonduro/pantry/internal/domain"
	"github.com/vbonduro/pantry/internal/feasibility"
	"github.com/vbonduro/pantry/internal/inventory"
	"github.com/vbonduro/pantry/internal/recipe"
)

// groceryRepository is the subset of inventory.Inventory that PantryService requires.
type groceryRepository interface {
	Add(g domain.Grocery)
	RemoveQuantity(name string, amount float64) (inventory.RemoveOutcome, error)
	RemoveAllByName(name string) (int, error)
	FindByName(name string) (domain.Grocery, bool)
	Search(name string) []domain.Grocery
	QuantityOf(name string) float64
	ListActive(today time.Time) ([]domain.Grocery, bool)
	ListExpired(today time.Time) ([]domain.Grocery, float64)
	TotalValue(today time.Time) float64
}

// recipeRepository is the subset of recipe.Cookbook that PantryService requires.
type recipeRepository interface {
	Add(r *recipe.Recipe)
	List() []*recipe.Recipe
	Find(name string) (*recipe.Recipe, bool)
}

// PantryService is the entry point for the shell. It owns the current date and
// turns primitive input into domain records.
type PantryService struct {
	groceries groceryRepository
	recipes   recipeRepository
	today     time.Time
	logger    *slog.Logger
}

func NewPantryService(groceries groceryRepository, recipes recipeRepository, today time.Time, logger *slog.Logger) *PantryService {
	return &PantryService{
		groceries: groceries,
		recipes:   recipes,
		today:     domain.Date(today),
		logger:    logger,
	}
}

// Today is the date used for every expiration check.
func (s *PantryService) Today() time.Time {
	return s.today
}

func (s *PantryService) SetToday(today time.Time) {
	s.today = domain.Date(today)
	s.logger.Info("current date changed", "today", s.today.Format(domain.DateLayout))
}

func (s *PantryService) AddGrocery(name string, quantity float64, unit string, expires time.Time, pricePerUnit float64) (domain.Grocery, error) {
	g, err := domain.NewGrocery(name, quantity, unit, expires, pricePerUnit)
	if err != nil {
		return domain.Grocery{}, fmt.Errorf("failed to add grocery: %w", err)
	}
	s.groceries.Add(g)
	s.logger.Info("grocery added", "name", g.Name, "quantity", g.Quantity, "unit", g.Unit,
		"expires", g.ExpirationDate.Format(domain.DateLayout))
	return g, nil
}

// RemoveGrocery takes amount from the first grocery called name.
func (s *PantryService) RemoveGrocery(name string, amount float64) (inventory.RemoveOutcome, error) {
	outcome, err := s.groceries.RemoveQuantity(name, amount)
	if err != nil {
		return outcome, fmt.Errorf("failed to remove grocery: %w", err)
	}
	s.logger.Info("grocery removal", "name", name, "amount", amount, "outcome", outcome.String())
	return outcome, nil
}

// DiscardGrocery removes every grocery called name and returns how many went.
func (s *PantryService) DiscardGrocery(name string) (int, error) {
	n, err := s.groceries.RemoveAllByName(name)
	if err != nil {
		return 0, fmt.Errorf("failed to discard grocery: %w", err)
	}
	s.logger.Info("grocery discarded", "name", name, "records", n)
	return n, nil
}

func (s *PantryService) FindGrocery(name string) (domain.Grocery, bool) {
	return s.groceries.FindByName(name)
}

func (s *PantryService) SearchGroceries(name string) []domain.Grocery {
	return s.groceries.Search(name)
}

// ListGroceries returns the groceries that are still good and whether any
// expired ones were hidden.
func (s *PantryService) ListGroceries() ([]domain.Grocery, bool) {
	return s.groceries.ListActive(s.today)
}

func (s *PantryService) ListExpired() ([]domain.Grocery, float64) {
	return s.groceries.ListExpired(s.today)
}

func (s *PantryService) TotalValue() float64 {
	return s.groceries.TotalValue(s.today)
}

// IngredientInput is one ingredient line of a new recipe.
type IngredientInput struct {
	Name     string
	Quantity float64
	Unit     string
}

// RecipeInput carries everything needed to create a recipe in one step.
type RecipeInput struct {
	Name        string
	Description string
	Procedure   string
	PortionSize int
	Ingredients []IngredientInput
}

// CreateRecipe builds the recipe and adds it to the cookbook only if every
// field is valid.
func (s *PantryService) CreateRecipe(in RecipeInput) (*recipe.Recipe, error) {
	r, err := recipe.New(in.Name)
	if err != nil {
		return nil, fmt.Errorf("failed to create recipe: %w", err)
	}
	r.Description = in.Description
	r.Procedure = in.Procedure

	portions := in.PortionSize
	if portions == 0 {
		portions = 1
	}
	if err := r.SetPortionSize(portions); err != nil {
		return nil, fmt.Errorf("failed to create recipe %q: %w", in.Name, err)
	}

	for _, ing := range in.Ingredients {
		if err := r.AddIngredient(ing.Name, ing.Quantity, ing.Unit); err != nil {
			return nil, fmt.Errorf("failed to create recipe %q: %w", in.Name, err)
		}
	}

	s.recipes.Add(r)
	s.logger.Info("recipe created", "name", r.Name, "portions", r.PortionSize(), "ingredients", len(in.Ingredients))
	return r, nil
}

func (s *PantryService) ListRecipes() []*recipe.Recipe {
	return s.recipes.List()
}

func (s *PantryService) GetRecipe(name string) (*recipe.Recipe, error) {
	r, ok := s.recipes.Find(name)
	if !ok {
		return nil, fmt.Errorf("recipe %q: %w", name, domain.ErrNotFound)
	}
	return r, nil
}

// CheckRecipe reports whether the named recipe can be prepared and, if not,
// which ingredients are short.
func (s *PantryService) CheckRecipe(name string) (bool, []feasibility.Shortfall, error) {
	r, err := s.GetRecipe(name)
	if err != nil {
		return false, nil, err
	}
	shortfalls := feasibility.Shortfalls(r, s.groceries)
	ok := feasibility.CanPrepare(r, s.groceries)
	s.logger.Debug("recipe checked", "name", r.Name, "can_prepare", ok, "shortfalls", len(shortfalls))
	return ok, shortfalls, nil
}

func (s *PantryService) SuggestRecipes() []*recipe.Recipe {
	suggested := feasibility.Suggest(s.recipes, s.groceries)
	s.logger.Debug("recipes suggested", "count", len(suggested))
	return suggested
}

// ScaleRecipe returns the named recipe's ingredients sized for servings.
func (s *PantryService) ScaleRecipe(name string, servings int) (*recipe.Recipe, []domain.Grocery, error) {
	r, err := s.GetRecipe(name)
	if err != nil {
		return nil, nil, err
	}
	scaled, err := r.ScaleIngredients(servings)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to scale recipe %q: %w", r.Name, err)
	}
	return r, scaled, nil
}
