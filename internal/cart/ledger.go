package cart

import (
	"github.com/shopspring/decimal"

	"github.com/daroscoffee/storefront-service/internal/model"
)

// Pure ledger operations. The usecase layer wraps these with
// persistence; everything here is a value-in value-out transform so
// the invariants are testable without a store.

// AddLine appends a line. Lines are never merged: two adds of the same
// product stay distinct, which is what keeps per-line option pricing
// simple.
func AddLine(cart model.Cart, line model.CartLine) model.Cart {
	cart.Lines = append(append([]model.CartLine{}, cart.Lines...), line)
	return cart
}

// UpdateQuantity rescales the line total by newQty/oldQty rather than
// repricing from the catalog, preserving the price-per-unit the buyer
// saw at add time. Quantities below 1 are clamped to 1, on both the
// requested quantity and the stored one, so a snapshot that came back
// from the store with a zero quantity still rescales instead of
// dividing by zero.
func UpdateQuantity(cart model.Cart, lineID string, newQty int) model.Cart {
	if newQty < 1 {
		newQty = 1
	}

	lines := append([]model.CartLine{}, cart.Lines...)
	for i, line := range lines {
		if line.ID != lineID {
			continue
		}
		oldQty := line.Quantity
		if oldQty < 1 {
			oldQty = 1
		}
		price := decimal.NewFromFloat(line.Price).
			Div(decimal.NewFromInt(int64(oldQty))).
			Mul(decimal.NewFromInt(int64(newQty))).
			Round(2)
		lines[i].Price, _ = price.Float64()
		lines[i].Quantity = newQty
		break
	}
	cart.Lines = lines
	return cart
}

// RemoveLine deletes a line; removing an unknown id is a no-op.
func RemoveLine(cart model.Cart, lineID string) model.Cart {
	lines := make([]model.CartLine, 0, len(cart.Lines))
	for _, line := range cart.Lines {
		if line.ID != lineID {
			lines = append(lines, line)
		}
	}
	cart.Lines = lines
	return cart
}

// Total sums line prices in the base currency.
func Total(cart model.Cart) float64 {
	sum := decimal.Zero
	for _, line := range cart.Lines {
		sum = sum.Add(decimal.NewFromFloat(line.Price))
	}
	total, _ := sum.Round(2).Float64()
	return total
}

// SecondaryTotal applies the display-currency multiplier. Purely
// presentational; nothing stores this value.
func SecondaryTotal(cart model.Cart, rate float64) float64 {
	total := decimal.NewFromFloat(Total(cart)).Mul(decimal.NewFromFloat(rate))
	out, _ := total.Round(0).Float64()
	return out
}

// ItemCount sums quantities across lines, for the cart badge.
func ItemCount(cart model.Cart) int {
	count := 0
	for _, line := range cart.Lines {
		count += line.Quantity
	}
	return count
}

// UnitPrice derives the options-inclusive price for one unit of a
// product given the chosen option deltas.
func UnitPrice(basePrice float64, optionDeltas map[string]float64) float64 {
	unit := decimal.NewFromFloat(basePrice)
	for _, delta := range optionDeltas {
		unit = unit.Add(decimal.NewFromFloat(delta))
	}
	out, _ := unit.Round(2).Float64()
	return out
}
