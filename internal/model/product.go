package model

// OptionChoice is one pickable value inside an option group, with the
// price delta it adds to the base price.
type OptionChoice struct {
	Label      string  `json:"label"`
	PriceDelta float64 `json:"price_delta"`
}

// OptionGroup is an ordered list of choices under a named group
// ("Size", "Sugar", ...). Order is the sheet's declaration order.
type OptionGroup struct {
	Name    string         `json:"name"`
	Choices []OptionChoice `json:"choices"`
}

type Product struct {
	ID            int64         `json:"id"`
	Name          string        `json:"name"`
	NameKH        string        `json:"name_kh"`
	Category      string        `json:"category"`
	CategoryKH    string        `json:"category_kh"`
	Description   string        `json:"description"`
	DescriptionKH string        `json:"description_kh"`
	Image         string        `json:"image"`
	Price         float64       `json:"price"`
	Options       []OptionGroup `json:"options,omitempty"`

	// Derived at pricing time, never persisted. Zero/false unless an
	// active discount rule matched; Price then carries the discounted
	// value and OriginalPrice the base one.
	OriginalPrice   float64 `json:"original_price,omitempty"`
	DiscountPercent float64 `json:"discount_percent,omitempty"`
	IsDiscounted    bool    `json:"is_discounted"`
	DiscountEvent   string  `json:"discount_event,omitempty"`
}
