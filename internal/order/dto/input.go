package dto

type CheckoutInput struct {
	Lang         string `json:"lang"` // "en" or "km"
	PickupHour   int    `json:"pickup_hour"`
	PickupMinute int    `json:"pickup_minute"`
	Note         string `json:"note"`
}
