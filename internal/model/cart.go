package model

// CartLine is one addable unit in the cart. The ID is unique per add,
// not per product: the same product with different options lands as
// distinct lines. Price is the options-inclusive total for the current
// quantity and is locked at add time; later catalog price changes do
// not touch it.
type CartLine struct {
	ID           string             `json:"id"`
	ProductID    int64              `json:"product_id"`
	Name         string             `json:"name"`
	NameKH       string             `json:"name_kh"`
	Image        string             `json:"image"`
	Price        float64            `json:"price"`
	Quantity     int                `json:"quantity"`
	Options      map[string]string  `json:"options,omitempty"`       // group -> chosen label
	OptionDeltas map[string]float64 `json:"option_deltas,omitempty"` // group -> price delta
}

// Cart is the snapshot shape persisted to the key-value store.
type Cart struct {
	Lines []CartLine `json:"lines"`
}
