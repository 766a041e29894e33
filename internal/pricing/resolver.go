package pricing

import (
	"github.com/shopspring/decimal"

	"github.com/daroscoffee/storefront-service/internal/model"
)

// Resolve prices every product against the discount rules and returns
// a new slice; inputs are not mutated. At most one rule applies per
// product: the earliest-declared matching rule among the usable ones.
// Rule order is the sheet's declaration order, so ties are stable by
// construction rather than "best discount wins".
func Resolve(products []model.Product, rules []model.DiscountRule) []model.Product {
	priced := make([]model.Product, len(products))
	for i, p := range products {
		priced[i] = ResolveOne(p, rules)
	}
	return priced
}

// ResolveOne returns the product with its derived discount fields set,
// or unchanged with IsDiscounted=false when no rule applies.
func ResolveOne(p model.Product, rules []model.DiscountRule) model.Product {
	p.OriginalPrice = 0
	p.DiscountPercent = 0
	p.IsDiscounted = false
	p.DiscountEvent = ""

	for _, r := range rules {
		if !usable(r) {
			continue
		}
		if !Matches(p.Name, r.Name) {
			continue
		}

		p.OriginalPrice = OriginalPrice(r.Price, r.Percent)
		p.Price = r.Price
		p.DiscountPercent = r.Percent
		p.IsDiscounted = true
		p.DiscountEvent = r.Event
		break
	}
	return p
}

// usable filters out rules the resolver may never apply: inactive rows
// and degenerate percentages. A rule at 100% or more has no defined
// original price and is excluded outright.
func usable(r model.DiscountRule) bool {
	return r.Active && r.Percent > 0 && r.Percent < 100 && r.Price > 0
}

// OriginalPrice derives the pre-discount price from the discounted one:
// discounted / (1 - percent/100), rounded to 2 decimal places.
func OriginalPrice(discounted, percent float64) float64 {
	d := decimal.NewFromFloat(discounted)
	factor := decimal.NewFromInt(1).Sub(decimal.NewFromFloat(percent).Div(decimal.NewFromInt(100)))
	orig, _ := d.Div(factor).Round(2).Float64()
	return orig
}
