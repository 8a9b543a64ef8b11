package order

import (
	"errors"

	"dispatch/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// Item is one line of an order: a named product with quantity, unit price and
// the total line weight in kilograms.
type Item struct {
	name     string
	quantity int
	price    decimal.Decimal
	weight   float64
}

// NewItem creates a validated order line.
func NewItem(name string, quantity int, price decimal.Decimal, weight float64) (Item, error) {
	var joined error
	if name == "" {
		joined = errors.Join(joined, errs.NewValueIsRequiredError("item name"))
	}
	if quantity <= 0 {
		joined = errors.Join(joined, errs.NewValueIsInvalidError("item quantity"))
	}
	if price.IsNegative() {
		joined = errors.Join(joined, errs.NewValueIsInvalidError("item price"))
	}
	if weight < 0 {
		joined = errors.Join(joined, errs.NewValueIsInvalidError("item weight"))
	}
	if joined != nil {
		return Item{}, joined
	}

	return Item{name: name, quantity: quantity, price: price, weight: weight}, nil
}

// Name returns the product name.
func (i Item) Name() string { return i.name }

// Quantity returns the number of units.
func (i Item) Quantity() int { return i.quantity }

// Price returns the unit price.
func (i Item) Price() decimal.Decimal { return i.price }

// Weight returns the total line weight in kilograms.
func (i Item) Weight() float64 { return i.weight }
