package dto

type CheckoutResult struct {
	OrderID  string `json:"order_id"`
	Summary  string `json:"summary"`
	DeepLink string `json:"deep_link,omitempty"`
}
