// Package recipe holds recipes, their portion scaling, and the cookbook that
// collects them.
package recipe

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/vbonduro/pantry/internal/domain"
)

// Recipe lists ingredient quantities for PortionSize servings.
type Recipe struct {
	Name        string
	Description string
	Procedure   string

	portionSize int
	ingredients []domain.Grocery
}

// New returns an empty recipe for one serving.
func New(name string) (*Recipe, error) {
	if domain.IsBlank(name) {
		return nil, fmt.Errorf("%w: recipe name must not be blank", domain.ErrInvalidArgument)
	}
	return &Recipe{Name: name, portionSize: 1}, nil
}

// AddIngredient appends an ingredient. Ingredients with the same name are not merged.
func (r *Recipe) AddIngredient(name string, quantity float64, unit string) error {
	g, err := domain.NewIngredient(name, quantity, unit)
	if err != nil {
		return err
	}
	r.ingredients = append(r.ingredients, g)
	return nil
}

// Ingredients returns a copy of the ingredient list in insertion order.
func (r *Recipe) Ingredients() []domain.Grocery {
	out := make([]domain.Grocery, len(r.ingredients))
	copy(out, r.ingredients)
	return out
}

// PortionSize is the number of servings the stored quantities make.
func (r *Recipe) PortionSize() int {
	return r.portionSize
}

// SetPortionSize changes the base serving count the ingredient quantities make.
func (r *Recipe) SetPortionSize(n int) error {
	if n <= 0 {
		return fmt.Errorf("%w: portion size must be greater than zero", domain.ErrInvalidArgument)
	}
	r.portionSize = n
	return nil
}

// ScaleIngredients returns new ingredient records sized for servings portions.
// The recipe itself is left unchanged.
func (r *Recipe) ScaleIngredients(servings int) ([]domain.Grocery, error) {
	if servings <= 0 {
		return nil, fmt.Errorf("%w: portion size must be greater than zero", domain.ErrInvalidArgument)
	}

	scaled := make([]domain.Grocery, 0, len(r.ingredients))
	for _, ing := range r.ingredients {
		scaled = append(scaled, domain.Grocery{
			Name:     ing.Name,
			Quantity: ing.Quantity * float64(servings) / float64(r.portionSize),
			Unit:     ing.Unit,
		})
	}
	return scaled, nil
}

// Render formats the recipe for display.
func (r *Recipe) Render() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Recipe: %s\n", r.Name)
	fmt.Fprintf(&b, "Description: %s\n", r.Description)
	fmt.Fprintf(&b, "Portions: %d\n", r.portionSize)
	b.WriteString("Ingredients:\n")
	for _, ing := range r.ingredients {
		fmt.Fprintf(&b, "- %s: %s %s\n", ing.Name, FormatQuantity(ing.Quantity), ing.Unit)
	}
	fmt.Fprintf(&b, "Procedure:\n%s\n", r.Procedure)
	return b.String()
}

// FormatQuantity prints q with the fewest digits that round-trip.
func FormatQuantity(q float64) string {
	return strconv.FormatFloat(q, 'f', -1, 64)
}
