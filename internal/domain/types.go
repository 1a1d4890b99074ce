package domain

import (
	"fmt"
	"math"
	"strings"
	"time"
)

// Grocery is a named quantity of food. Inventory records carry an expiration
// date and a unit price; recipe ingredients leave both zero.
type Grocery struct {
	Name           string
	Quantity       float64
	Unit           string
	ExpirationDate time.Time
	PricePerUnit   float64
}

// NewGrocery validates and builds an inventory record.
func NewGrocery(name string, quantity float64, unit string, expires time.Time, pricePerUnit float64) (Grocery, error) {
	if IsBlank(name) {
		return Grocery{}, fmt.Errorf("%w: name must not be blank", ErrInvalidArgument)
	}
	if !IsPositive(quantity) {
		return Grocery{}, fmt.Errorf("%w: quantity must be a finite number greater than zero", ErrInvalidArgument)
	}
	if IsBlank(unit) {
		return Grocery{}, fmt.Errorf("%w: unit must not be blank", ErrInvalidArgument)
	}
	if expires.IsZero() {
		return Grocery{}, fmt.Errorf("%w: expiration date is required", ErrInvalidArgument)
	}
	if !IsPositive(pricePerUnit) {
		return Grocery{}, fmt.Errorf("%w: price per unit must be a finite number greater than zero", ErrInvalidArgument)
	}
	return Grocery{
		Name:           name,
		Quantity:       quantity,
		Unit:           unit,
		ExpirationDate: Date(expires),
		PricePerUnit:   pricePerUnit,
	}, nil
}

// NewIngredient builds a recipe ingredient. Ingredients have no expiration or price.
func NewIngredient(name string, quantity float64, unit string) (Grocery, error) {
	if IsBlank(name) {
		return Grocery{}, fmt.Errorf("%w: ingredient name must not be blank", ErrInvalidArgument)
	}
	if !IsPositive(quantity) {
		return Grocery{}, fmt.Errorf("%w: ingredient quantity must be a finite number greater than zero", ErrInvalidArgument)
	}
	if IsBlank(unit) {
		return Grocery{}, fmt.Errorf("%w: ingredient unit must not be blank", ErrInvalidArgument)
	}
	return Grocery{Name: name, Quantity: quantity, Unit: unit}, nil
}

// IsExpired reports whether today is strictly after the expiration date.
func (g Grocery) IsExpired(today time.Time) bool {
	return Date(today).After(Date(g.ExpirationDate))
}

// Key returns the normalized name used for matching.
func (g Grocery) Key() string {
	return NameKey(g.Name)
}

// NameKey lowercases and trims a grocery name so lookups ignore case.
func NameKey(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// IsPositive reports whether x is a finite number greater than zero. NaN and
// the infinities are rejected.
func IsPositive(x float64) bool {
	return x > 0 && !math.IsInf(x, 1)
}

// IsBlank reports whether s is empty or only whitespace.
func IsBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}

// Date truncates t to midnight UTC of its calendar day.
func Date(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// DateLayout is the format used for dates entered and printed by the shell.
const DateLayout = "2006-01-02"

// ParseDate parses a YYYY-MM-DD date.
func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(DateLayout, strings.TrimSpace(s))
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: invalid date %q, expected YYYY-MM-DD", ErrInvalidArgument, s)
	}
	return t, nil
}
