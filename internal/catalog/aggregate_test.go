package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/daroscoffee/storefront-service/internal/model"
)

func sampleProducts() []model.Product {
	return []model.Product{
		{ID: 1, Name: "Iced Latte", NameKH: "ឡាតេទឹកកក", Category: "Coffee", CategoryKH: "កាហ្វេ", Description: "espresso with milk", IsDiscounted: true, DiscountEvent: "Weekend"},
		{ID: 2, Name: "Americano", Category: "Coffee", Description: "black coffee"},
		{ID: 3, Name: "Matcha Latte", Category: "Tea", Description: "green tea latte", IsDiscounted: true, DiscountEvent: "New Year"},
		{ID: 4, Name: "Croissant", Category: "Bakery", DescriptionKH: "នំប៉័ង"},
	}
}

func TestFilterBySearch(t *testing.T) {
	products := sampleProducts()

	t.Run("empty query keeps everything", func(t *testing.T) {
		assert.Len(t, FilterBySearch(products, ""), 4)
	})

	t.Run("matches name case-insensitively", func(t *testing.T) {
		got := FilterBySearch(products, "LATTE")
		require.Len(t, got, 2)
		assert.Equal(t, int64(1), got[0].ID)
		assert.Equal(t, int64(3), got[1].ID)
	})

	t.Run("matches description", func(t *testing.T) {
		got := FilterBySearch(products, "espresso")
		require.Len(t, got, 1)
		assert.Equal(t, int64(1), got[0].ID)
	})

	t.Run("matches localized fields", func(t *testing.T) {
		assert.Len(t, FilterBySearch(products, "ឡាតេ"), 1)
		assert.Len(t, FilterBySearch(products, "នំប៉័ង"), 1)
	})

	t.Run("no match is empty, not nil error", func(t *testing.T) {
		assert.Empty(t, FilterBySearch(products, "durian"))
	})
}

func TestFilterByCategory(t *testing.T) {
	products := sampleProducts()

	assert.Len(t, FilterByCategory(products, "all"), 4)
	assert.Len(t, FilterByCategory(products, ""), 4)

	coffee := FilterByCategory(products, "coffee")
	require.Len(t, coffee, 2)
	assert.Equal(t, "Iced Latte", coffee[0].Name)
}

func TestFilterByEvent(t *testing.T) {
	discounted := Discounted(sampleProducts())
	require.Len(t, discounted, 2)

	assert.Len(t, FilterByEvent(discounted, "all"), 2)
	assert.Len(t, FilterByEvent(discounted, ""), 2)

	weekend := FilterByEvent(discounted, "Weekend")
	require.Len(t, weekend, 1)
	assert.Equal(t, int64(1), weekend[0].ID)

	assert.Empty(t, FilterByEvent(discounted, "Unknown"))
}

func TestGroupByCategoryPreservesFirstSeenOrder(t *testing.T) {
	groups := GroupByCategory(sampleProducts())

	require.Len(t, groups, 3)
	assert.Equal(t, "coffee", groups[0].ID)
	assert.Equal(t, "tea", groups[1].ID)
	assert.Equal(t, "bakery", groups[2].ID)
	assert.Len(t, groups[0].Products, 2)
	assert.Equal(t, "កាហ្វេ", groups[0].NameKH)
}

func TestVisibleCategories(t *testing.T) {
	categories := []model.Category{
		{Name: "Coffee", NameKH: "កាហ្វេ", ImageURL: "coffee.png"},
		{Name: "Smoothies", ImageURL: "smoothies.png"}, // no products -> hidden
	}

	views := VisibleCategories(sampleProducts(), categories)

	require.Len(t, views, 4)
	assert.Equal(t, AllCategories, views[0].ID)
	assert.Equal(t, "coffee", views[1].ID)
	assert.Equal(t, "coffee.png", views[1].ImageURL)
	assert.Equal(t, "tea", views[2].ID)
	assert.Equal(t, "bakery", views[3].ID)

	for _, v := range views {
		assert.NotEqual(t, "smoothies", v.ID)
	}
}

func TestEventCounts(t *testing.T) {
	events := []model.Event{
		{ID: 1, Name: "Weekend"},
		{ID: 2, Name: "New Year"},
		{ID: 3, Name: "Quiet"},
	}

	counts := EventCounts(sampleProducts(), events)

	require.Len(t, counts, 3)
	assert.Equal(t, 1, counts[0].Count)
	assert.Equal(t, 1, counts[1].Count)
	assert.Equal(t, 0, counts[2].Count)
}

// Repeated aggregation over identical inputs must yield identical
// values.
func TestAggregationIsDeterministic(t *testing.T) {
	products := sampleProducts()

	first := GroupByCategory(FilterByCategory(FilterBySearch(products, "latte"), "all"))
	second := GroupByCategory(FilterByCategory(FilterBySearch(products, "latte"), "all"))

	assert.Equal(t, first, second)
}
