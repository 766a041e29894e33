package model

// DiscountRule is one normalized discount row. Active is derived from
// the sheet's duplicate-check marker plus percent/price sanity and is
// the only gate the resolver consults.
type DiscountRule struct {
	ID      int64   `json:"discount_id"`
	Name    string  `json:"discount_name"` // target product name, matched loosely
	Percent float64 `json:"discount_percent"`
	Price   float64 `json:"price"` // discounted price
	Active  bool    `json:"active"`
	Event   string  `json:"event"`
}
