package dto

type AddLineInput struct {
	// LineID is caller-supplied so retries stay idempotent on the
	// client side; when empty the server assigns one.
	LineID    string            `json:"line_id"`
	ProductID int64             `json:"product_id"`
	Quantity  int               `json:"quantity"`
	Options   map[string]string `json:"options"` // group -> chosen label
}
