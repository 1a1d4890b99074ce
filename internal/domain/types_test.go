package domain

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestNewGrocery(t *testing.T) {
	g, err := NewGrocery("Milk", 1.5, "liters", day(2024, 12, 5), 20)
	require.NoError(t, err)
	assert.Equal(t, "Milk", g.Name)
	assert.Equal(t, 1.5, g.Quantity)
	assert.Equal(t, "liters", g.Unit)
	assert.Equal(t, day(2024, 12, 5), g.ExpirationDate)
	assert.Equal(t, 20.0, g.PricePerUnit)
}

func TestNewGrocery_Invalid(t *testing.T) {
	exp := day(2024, 12, 5)
	tests := []struct {
		name     string
		grocery  string
		quantity float64
		unit     string
		expires  time.Time
		price    float64
	}{
		{"blank name", "  ", 1, "l", exp, 1},
		{"zero quantity", "Milk", 0, "l", exp, 1},
		{"negative quantity", "Milk", -2, "l", exp, 1},
		{"blank unit", "Milk", 1, "", exp, 1},
		{"missing expiration", "Milk", 1, "l", time.Time{}, 1},
		{"zero price", "Milk", 1, "l", exp, 0},
		{"NaN quantity", "Milk", math.NaN(), "l", exp, 1},
		{"infinite quantity", "Milk", math.Inf(1), "l", exp, 1},
		{"NaN price", "Milk", 1, "l", exp, math.NaN()},
		{"infinite price", "Milk", 1, "l", exp, math.Inf(1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewGrocery(tt.grocery, tt.quantity, tt.unit, tt.expires, tt.price)
			assert.ErrorIs(t, err, ErrInvalidArgument)
		})
	}
}

func TestNewIngredient(t *testing.T) {
	g, err := NewIngredient("Flour", 2, "cups")
	require.NoError(t, err)
	assert.True(t, g.ExpirationDate.IsZero())
	assert.Zero(t, g.PricePerUnit)

	_, err = NewIngredient("", 2, "cups")
	assert.ErrorIs(t, err, ErrInvalidArgument)
	_, err = NewIngredient("Flour", 0, "cups")
	assert.ErrorIs(t, err, ErrInvalidArgument)
	_, err = NewIngredient("Flour", 2, " ")
	assert.ErrorIs(t, err, ErrInvalidArgument)
	_, err = NewIngredient("Flour", math.NaN(), "cups")
	assert.ErrorIs(t, err, ErrInvalidArgument)
}

func TestIsPositive(t *testing.T) {
	assert.True(t, IsPositive(0.5))
	assert.True(t, IsPositive(math.MaxFloat64))
	assert.False(t, IsPositive(0))
	assert.False(t, IsPositive(-1))
	assert.False(t, IsPositive(math.NaN()))
	assert.False(t, IsPositive(math.Inf(1)))
	assert.False(t, IsPositive(math.Inf(-1)))
}

func TestIsExpired(t *testing.T) {
	g, err := NewGrocery("Eggs", 12, "pcs", day(2024, 12, 5), 3)
	require.NoError(t, err)

	assert.False(t, g.IsExpired(day(2024, 12, 4)))
	assert.False(t, g.IsExpired(day(2024, 12, 5)), "same day is not expired")
	assert.False(t, g.IsExpired(time.Date(2024, 12, 5, 23, 59, 0, 0, time.UTC)), "time of day is ignored")
	assert.True(t, g.IsExpired(day(2024, 12, 6)))
}

func TestNameKey(t *testing.T) {
	assert.Equal(t, "milk", NameKey("Milk"))
	assert.Equal(t, "milk", NameKey("  MILK "))
	assert.Equal(t, NameKey("eggs"), NameKey("Eggs"))
}

func TestParseDate(t *testing.T) {
	d, err := ParseDate(" 2024-02-29 ")
	require.NoError(t, err)
	assert.Equal(t, day(2024, 2, 29), d)

	_, err = ParseDate("29/02/2024")
	assert.ErrorIs(t, err, ErrInvalidArgument)
}
