package model

import "time"

type Order struct {
	ID           string     `json:"id"`
	CartID       string     `json:"cart_id"`
	Lines        []CartLine `json:"lines"`
	Total        float64    `json:"total"`
	TotalKHR     float64    `json:"total_khr"`
	PickupHour   int        `json:"pickup_hour"`
	PickupMinute int        `json:"pickup_minute"`
	Note         string     `json:"note"`
	CreatedAt    time.Time  `json:"created_at"`
}
