// Package feasibility decides which recipes can be made from what is in stock.
// It only reads the inventory and recipes it is given.
package feasibility

import (
	"github.com/vbonduro/pantry/internal/domain"
	"github.com/vbonduro/pantry/internal/recipe"
)

// Stock is the subset of inventory.Inventory that feasibility checks require.
// QuantityOf must sum every record matching the name case-insensitively.
type Stock interface {
	QuantityOf(name string) float64
}

// Recipes is the subset of recipe.Cookbook that Suggest requires.
type Recipes interface {
	List() []*recipe.Recipe
}

// Shortfall is an ingredient the stock cannot fully cover.
type Shortfall struct {
	Ingredient domain.Grocery
	Available  float64
}

// Missing returns how much more of the ingredient is needed.
func (s Shortfall) Missing() float64 {
	return s.Ingredient.Quantity - s.Available
}

// CanPrepare reports whether stock covers every ingredient of r. Expired
// records count toward the available quantity.
func CanPrepare(r *recipe.Recipe, stock Stock) bool {
	for _, ing := range r.Ingredients() {
		if stock.QuantityOf(ing.Name) < ing.Quantity {
			return false
		}
	}
	return true
}

// Suggest returns the recipes of cb that CanPrepare accepts, in cookbook order.
func Suggest(cb Recipes, stock Stock) []*recipe.Recipe {
	var out []*recipe.Recipe
	for _, r := range cb.List() {
		if CanPrepare(r, stock) {
			out = append(out, r)
		}
	}
	return out
}

// Shortfalls lists, in recipe order, every ingredient stock cannot cover.
// It is empty exactly when CanPrepare is true.
func Shortfalls(r *recipe.Recipe, stock Stock) []Shortfall {
	var out []Shortfall
	for _, ing := range r.Ingredients() {
		if avail := stock.QuantityOf(ing.Name); avail < ing.Quantity {
			out = append(out, Shortfall{Ingredient: ing, Available: avail})
		}
	}
	return out
}
