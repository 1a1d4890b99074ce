package service

import "fmt"

type seedGrocery struct {
	name   string
	qty    float64
	unit   string
	inDays int
	price  float64
}

var seedGroceries = []seedGrocery{
	{"Milk", 1, "liters", 5, 10},
	{"Eggs", 12, "amount", 16, 3},
	{"Flour", 1, "kg", 250, 10},
	{"Sugar", 1, "kg", 100, 35},
	{"Salt", 1, "kg", 550, 25},
	{"Pepper", 0.1, "kg", 160, 55},
	{"Butter", 0.5, "kg", -2, 50},
}

var seedRecipes = []RecipeInput{
	{
		Name:        "Pancakes",
		Description: "A classic breakfast dish that is light, fluffy, and delicious.",
		Procedure: "1. Mix the dry ingredients in a bowl.\n" +
			"2. Whisk the wet ingredients together in a separate bowl.\n" +
			"3. Combine into a smooth batter.\n" +
			"4. Cook on a hot skillet until golden on both sides.",
		PortionSize: 2,
		Ingredients: []IngredientInput{
			{"Butter", 0.025, "kg"},
			{"Milk", 0.1, "liters"},
			{"Eggs", 1, "amount"},
			{"Flour", 0.1, "kg"},
			{"Baking Soda", 0.005, "kg"},
			{"Salt", 0.001, "kg"},
			{"Sugar", 0.01, "kg"},
		},
	},
	{
		Name:        "Omelette",
		Description: "A quick egg dish for breakfast or a light meal.",
		Procedure: "1. Beat the eggs until smooth.\n" +
			"2. Add a splash of milk, salt and pepper.\n" +
			"3. Melt butter in a pan and pour in the eggs.\n" +
			"4. Cook until set, fold and serve.",
		PortionSize: 1,
		Ingredients: []IngredientInput{
			{"Eggs", 2, "amount"},
			{"Milk", 0.03, "liters"},
			{"Salt", 0.002, "kg"},
			{"Pepper", 0.002, "kg"},
			{"Butter", 0.0015, "kg"},
		},
	},
	{
		Name:        "Pytt i Panne",
		Description: "Scandinavian hash of diced potatoes and meat.",
		Procedure: "1. Dice the potatoes, sausage and vegetables.\n" +
			"2. Fry the potatoes in butter until golden.\n" +
			"3. Add sausage and vegetables, season with salt and pepper.\n" +
			"4. Serve hot, with a fried egg on top if desired.",
		PortionSize: 2,
		Ingredients: []IngredientInput{
			{"Sausage", 1, "amount"},
			{"Butter", 0.003, "kg"},
			{"Potatoes", 0.2, "kg"},
			{"Carrots", 0.5, "amount"},
			{"Onions", 0.5, "amount"},
			{"Salt", 0.002, "kg"},
			{"Pepper", 0.002, "kg"},
		},
	},
}

// Seed fills the pantry with demo groceries, dated relative to the current
// date, and a few recipes.
func (s *PantryService) Seed() error {
	for _, g := range seedGroceries {
		expires := s.today.AddDate(0, 0, g.inDays)
		if _, err := s.AddGrocery(g.name, g.qty, g.unit, expires, g.price); err != nil {
			return fmt.Errorf("failed to seed grocery %s: %w", g.name, err)
		}
	}
	for _, r := range seedRecipes {
		if _, err := s.CreateRecipe(r); err != nil {
			return fmt.Errorf("failed to seed recipe %s: %w", r.Name, err)
		}
	}
	s.logger.Info("demo data seeded", "groceries", len(seedGroceries), "recipes", len(seedRecipes))
	return nil
}
