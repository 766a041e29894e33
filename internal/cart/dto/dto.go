package dto

import "github.com/daroscoffee/storefront-service/internal/model"

type CartView struct {
	Lines     []model.CartLine `json:"lines"`
	Total     float64          `json:"total"`
	TotalKHR  float64          `json:"total_khr"`
	ItemCount int              `json:"item_count"`
}
