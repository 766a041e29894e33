package dto

import "github.com/daroscoffee/storefront-service/internal/model"

type CategoryGroup struct {
	ID       string          `json:"id"`
	Name     string          `json:"name"`
	NameKH   string          `json:"name_kh"`
	Products []model.Product `json:"products"`
}

type CategoryView struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	NameKH   string `json:"name_kh"`
	ImageURL string `json:"image_url,omitempty"`
}

type EventView struct {
	Event model.Event `json:"event"`
	Count int         `json:"count"` // discounted products under this event
}

type CatalogView struct {
	Products []model.Product `json:"products"`
	// Groups is populated only when no specific category is selected.
	Groups []CategoryGroup `json:"groups,omitempty"`
}
