package catalog

import (
	"strings"

	"github.com/daroscoffee/storefront-service/internal/catalog/dto"
	"github.com/daroscoffee/storefront-service/internal/model"
)

// AllCategories is the reserved category id meaning "no filter". It is
// never derived from data.
const AllCategories = "all"

// AllEvents is the reserved event selector meaning "no filter".
const AllEvents = "all"

// CategoryID derives the stable identifier for a raw category label.
func CategoryID(label string) string {
	return strings.ToLower(strings.TrimSpace(label))
}

// FilterBySearch keeps products where any of name, localized name,
// description or localized description contains the query,
// case-insensitively. An empty query keeps everything.
func FilterBySearch(products []model.Product, query string) []model.Product {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return products
	}

	out := make([]model.Product, 0, len(products))
	for _, p := range products {
		if containsFold(p.Name, q) || containsFold(p.NameKH, q) ||
			containsFold(p.Description, q) || containsFold(p.DescriptionKH, q) {
			out = append(out, p)
		}
	}
	return out
}

func containsFold(s, loweredQuery string) bool {
	return strings.Contains(strings.ToLower(s), loweredQuery)
}

// FilterByCategory keeps products whose derived category id equals the
// selection. "" and "all" mean no filter.
func FilterByCategory(products []model.Product, categoryID string) []model.Product {
	if categoryID == "" || categoryID == AllCategories {
		return products
	}

	out := make([]model.Product, 0, len(products))
	for _, p := range products {
		if CategoryID(p.Category) == categoryID {
			out = append(out, p)
		}
	}
	return out
}

// Discounted returns the subset carrying an applied discount.
func Discounted(products []model.Product) []model.Product {
	out := make([]model.Product, 0, len(products))
	for _, p := range products {
		if p.IsDiscounted {
			out = append(out, p)
		}
	}
	return out
}

// FilterByEvent restricts discounted products to one promotional event.
// "" and "all" keep the whole discounted set.
func FilterByEvent(discounted []model.Product, event string) []model.Product {
	if event == "" || event == AllEvents {
		return discounted
	}

	out := make([]model.Product, 0, len(discounted))
	for _, p := range discounted {
		if p.DiscountEvent == event {
			out = append(out, p)
		}
	}
	return out
}

// GroupByCategory buckets products by derived category id, preserving
// the order categories are first seen in the product list.
func GroupByCategory(products []model.Product) []dto.CategoryGroup {
	var groups []dto.CategoryGroup
	index := make(map[string]int)

	for _, p := range products {
		id := CategoryID(p.Category)
		i, ok := index[id]
		if !ok {
			i = len(groups)
			index[id] = i
			groups = append(groups, dto.CategoryGroup{
				ID:     id,
				Name:   p.Category,
				NameKH: p.CategoryKH,
			})
		}
		groups[i].Products = append(groups[i].Products, p)
	}
	return groups
}

// VisibleCategories lists the categories at least one product maps to,
// in first-seen product order, with the synthetic "all" entry first.
// Sheet category rows contribute display metadata (image, localized
// name) when present.
func VisibleCategories(products []model.Product, categories []model.Category) []dto.CategoryView {
	meta := make(map[string]model.Category, len(categories))
	for _, c := range categories {
		meta[CategoryID(c.Name)] = c
	}

	views := []dto.CategoryView{{ID: AllCategories, Name: "All"}}
	seen := map[string]struct{}{}

	for _, p := range products {
		id := CategoryID(p.Category)
		if id == "" {
			continue
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}

		view := dto.CategoryView{ID: id, Name: p.Category, NameKH: p.CategoryKH}
		if c, ok := meta[id]; ok {
			view.ImageURL = c.ImageURL
			if c.NameKH != "" {
				view.NameKH = c.NameKH
			}
		}
		views = append(views, view)
	}
	return views
}

// EventCounts re-filters the discounted set per event and counts.
func EventCounts(products []model.Product, events []model.Event) []dto.EventView {
	discounted := Discounted(products)

	views := make([]dto.EventView, 0, len(events))
	for _, e := range events {
		views = append(views, dto.EventView{
			Event: e,
			Count: len(FilterByEvent(discounted, e.Name)),
		})
	}
	return views
}
