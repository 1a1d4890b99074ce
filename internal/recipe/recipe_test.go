package recipe

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vbonduro/pantry/internal/domain"
)

func pancakes(t *testing.T) *Recipe {
	t.Helper()
	r, err := New("Pancakes")
	require.NoError(t, err)
	require.NoError(t, r.SetPortionSize(4))
	require.NoError(t, r.AddIngredient("Flour", 2, "cups"))
	require.NoError(t, r.AddIngredient("Milk", 1.5, "cups"))
	require.NoError(t, r.AddIngredient("Eggs", 2, "pcs"))
	return r
}

func TestNew(t *testing.T) {
	r, err := New("Omelette")
	require.NoError(t, err)
	assert.Equal(t, "Omelette", r.Name)
	assert.Equal(t, 1, r.PortionSize())
	assert.Empty(t, r.Ingredients())

	_, err = New(" ")
	assert.ErrorIs(t, err, domain.ErrInvalidArgument)
}

func TestAddIngredient(t *testing.T) {
	r, err := New("Omelette")
	require.NoError(t, err)

	require.NoError(t, r.AddIngredient("Eggs", 3, "pcs"))
	require.NoError(t, r.AddIngredient("eggs", 1, "pcs"))

	ings := r.Ingredients()
	require.Len(t, ings, 2, "duplicate ingredients are kept separately")
	assert.Equal(t, "Eggs", ings[0].Name)
	assert.True(t, ings[0].ExpirationDate.IsZero())
	assert.Zero(t, ings[0].PricePerUnit)
}

func TestAddIngredient_Invalid(t *testing.T) {
	tests := []struct {
		name     string
		ing      string
		quantity float64
		unit     string
	}{
		{"blank name", "", 1, "g"},
		{"zero quantity", "Salt", 0, "g"},
		{"negative quantity", "Salt", -1, "g"},
		{"blank unit", "Salt", 1, "  "},
		{"NaN quantity", "Salt", math.NaN(), "g"},
		{"infinite quantity", "Salt", math.Inf(1), "g"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, err := New("Soup")
			require.NoError(t, err)

			err = r.AddIngredient(tt.ing, tt.quantity, tt.unit)
			assert.ErrorIs(t, err, domain.ErrInvalidArgument)
			assert.Empty(t, r.Ingredients())
		})
	}
}

func TestSetPortionSize(t *testing.T) {
	r, err := New("Soup")
	require.NoError(t, err)

	require.NoError(t, r.SetPortionSize(6))
	assert.Equal(t, 6, r.PortionSize())

	assert.ErrorIs(t, r.SetPortionSize(0), domain.ErrInvalidArgument)
	assert.ErrorIs(t, r.SetPortionSize(-2), domain.ErrInvalidArgument)
	assert.Equal(t, 6, r.PortionSize())
}

func TestScaleIngredients(t *testing.T) {
	tests := []struct {
		servings int
		want     []float64
	}{
		{8, []float64{4, 3, 4}},
		{4, []float64{2, 1.5, 2}},
		{2, []float64{1, 0.75, 1}},
		{1, []float64{0.5, 0.375, 0.5}},
		{6, []float64{3, 2.25, 3}},
	}

	for _, tt := range tests {
		r := pancakes(t)
		scaled, err := r.ScaleIngredients(tt.servings)
		require.NoError(t, err)
		require.Len(t, scaled, 3)

		for i, g := range scaled {
			assert.Equal(t, tt.want[i], g.Quantity, "servings=%d ingredient=%s", tt.servings, g.Name)
		}
		assert.Equal(t, "Flour", scaled[0].Name)
		assert.Equal(t, "cups", scaled[0].Unit)
	}
}

func TestScaleIngredients_DoesNotMutate(t *testing.T) {
	r := pancakes(t)
	before := r.Ingredients()

	scaled, err := r.ScaleIngredients(12)
	require.NoError(t, err)
	scaled[0].Quantity = 100

	assert.Equal(t, before, r.Ingredients())
	assert.Equal(t, 4, r.PortionSize())
}

func TestScaleIngredients_Invalid(t *testing.T) {
	r := pancakes(t)
	_, err := r.ScaleIngredients(0)
	assert.ErrorIs(t, err, domain.ErrInvalidArgument)
	_, err = r.ScaleIngredients(-4)
	assert.ErrorIs(t, err, domain.ErrInvalidArgument)
}

func TestRender(t *testing.T) {
	r := pancakes(t)
	r.Description = "Fluffy breakfast pancakes"
	r.Procedure = "Mix and fry."

	want := "Recipe: Pancakes\n" +
		"Description: Fluffy breakfast pancakes\n" +
		"Portions: 4\n" +
		"Ingredients:\n" +
		"- Flour: 2 cups\n" +
		"- Milk: 1.5 cups\n" +
		"- Eggs: 2 pcs\n" +
		"Procedure:\nMix and fry.\n"
	assert.Equal(t, want, r.Render())
	assert.Equal(t, r.Render(), r.Render())
}
