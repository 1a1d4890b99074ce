package recipe

import "github.com/vbonduro/pantry/internal/domain"

// Cookbook keeps recipes in the order they were added.
type Cookbook struct {
	recipes []*Recipe
}

// NewCookbook returns an empty cookbook.
func NewCookbook() *Cookbook {
	return &Cookbook{}
}

// Add appends r. Recipes with the same name are kept side by side.
func (c *Cookbook) Add(r *Recipe) {
	c.recipes = append(c.recipes, r)
}

// List returns the recipes in insertion order. The slice is a copy; the
// recipes are shared.
func (c *Cookbook) List() []*Recipe {
	out := make([]*Recipe, len(c.recipes))
	copy(out, c.recipes)
	return out
}

// Find returns the first recipe whose name matches, ignoring case.
func (c *Cookbook) Find(name string) (*Recipe, bool) {
	key := domain.NameKey(name)
	for _, r := range c.recipes {
		if domain.NameKey(r.Name) == key {
			return r, true
		}
	}
	return nil, false
}
