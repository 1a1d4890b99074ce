// Package inventory keeps the household's groceries in insertion order.
package inventory

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/vbonduro/pantry/internal/domain"
)

// RemoveOutcome describes what RemoveQuantity did.
type RemoveOutcome int

const (
	// OutcomeReduced means the first matching record kept a smaller quantity.
	OutcomeReduced RemoveOutcome = iota
	// OutcomeRemoved means the first matching record was used up and deleted.
	OutcomeRemoved
	// OutcomeNotFound means no record matched the name. Nothing changed.
	OutcomeNotFound
	// OutcomeExceedsAvailable means the amount was larger than the matched
	// record's quantity. Nothing changed.
	OutcomeExceedsAvailable
)

func (o RemoveOutcome) String() string {
	switch o {
	case OutcomeReduced:
		return "reduced"
	case OutcomeRemoved:
		return "removed"
	case OutcomeNotFound:
		return "not_found"
	case OutcomeExceedsAvailable:
		return "exceeds_available"
	default:
		return fmt.Sprintf("RemoveOutcome(%d)", int(o))
	}
}

// Inventory is an ordered list of grocery records. Duplicate names are kept as
// separate records; a record is identified by its position. Not safe for
// concurrent use.
type Inventory struct {
	groceries []domain.Grocery
}

func New() *Inventory {
	return &Inventory{}
}

// Add appends g without merging it into records of the same name.
func (inv *Inventory) Add(g domain.Grocery) {
	inv.groceries = append(inv.groceries, g)
}

// Len returns the number of records.
func (inv *Inventory) Len() int {
	return len(inv.groceries)
}

// All returns a copy of every record in insertion order.
func (inv *Inventory) All() []domain.Grocery {
	out := make([]domain.Grocery, len(inv.groceries))
	copy(out, inv.groceries)
	return out
}

// RemoveQuantity takes amount from the first record whose name matches. The
// record is deleted when nothing would remain. Missing names and amounts larger
// than the record are reported through the outcome, not as errors.
func (inv *Inventory) RemoveQuantity(name string, amount float64) (RemoveOutcome, error) {
	if !domain.IsPositive(amount) {
		return OutcomeNotFound, fmt.Errorf("%w: amount to remove must be a finite number greater than zero", domain.ErrInvalidArgument)
	}

	idx := inv.indexOf(name)
	if idx < 0 {
		return OutcomeNotFound, nil
	}

	g := &inv.groceries[idx]
	if amount > g.Quantity {
		return OutcomeExceedsAvailable, nil
	}

	remaining := g.Quantity - amount
	if remaining > 0 {
		g.Quantity = remaining
		return OutcomeReduced, nil
	}

	inv.groceries = append(inv.groceries[:idx], inv.groceries[idx+1:]...)
	return OutcomeRemoved, nil
}

// RemoveAllByName deletes every record whose name matches and returns how many
// were removed.
func (inv *Inventory) RemoveAllByName(name string) (int, error) {
	if domain.IsBlank(name) {
		return 0, fmt.Errorf("%w: name must not be blank", domain.ErrInvalidArgument)
	}

	key := domain.NameKey(name)
	kept := inv.groceries[:0]
	for _, g := range inv.groceries {
		if g.Key() != key {
			kept = append(kept, g)
		}
	}
	removed := len(inv.groceries) - len(kept)
	clear(inv.groceries[len(kept):])
	inv.groceries = kept
	return removed, nil
}

// FindByName returns the first record whose name matches.
func (inv *Inventory) FindByName(name string) (domain.Grocery, bool) {
	idx := inv.indexOf(name)
	if idx < 0 {
		return domain.Grocery{}, false
	}
	return inv.groceries[idx], true
}

// Search returns every record whose name matches, in insertion order.
func (inv *Inventory) Search(name string) []domain.Grocery {
	key := domain.NameKey(name)
	var out []domain.Grocery
	for _, g := range inv.groceries {
		if g.Key() == key {
			out = append(out, g)
		}
	}
	return out
}

// QuantityOf sums the quantity of every record whose name matches, expired or not.
func (inv *Inventory) QuantityOf(name string) float64 {
	key := domain.NameKey(name)
	var total float64
	for _, g := range inv.groceries {
		if g.Key() == key {
			total += g.Quantity
		}
	}
	return total
}

// ListActive returns the records that have not expired by today. hasExpired
// reports whether any expired records were left out.
func (inv *Inventory) ListActive(today time.Time) (active []domain.Grocery, hasExpired bool) {
	for _, g := range inv.groceries {
		if g.IsExpired(today) {
			hasExpired = true
			continue
		}
		active = append(active, g)
	}
	return active, hasExpired
}

// ListExpired returns the records that have expired by today and their combined value.
func (inv *Inventory) ListExpired(today time.Time) ([]domain.Grocery, float64) {
	var expired []domain.Grocery
	total := decimal.Zero
	for _, g := range inv.groceries {
		if g.IsExpired(today) {
			expired = append(expired, g)
			total = total.Add(value(g))
		}
	}
	return expired, total.InexactFloat64()
}

// TotalValue sums quantity times unit price over the records that have not
// expired by today.
func (inv *Inventory) TotalValue(today time.Time) float64 {
	total := decimal.Zero
	for _, g := range inv.groceries {
		if !g.IsExpired(today) {
			total = total.Add(value(g))
		}
	}
	return total.InexactFloat64()
}

func value(g domain.Grocery) decimal.Decimal {
	return decimal.NewFromFloat(g.Quantity).Mul(decimal.NewFromFloat(g.PricePerUnit))
}

func (inv *Inventory) indexOf(name string) int {
	key := domain.NameKey(name)
	for i, g := range inv.groceries {
		if g.Key() == key {
			return i
		}
	}
	return -1
}
