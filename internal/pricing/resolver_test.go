package pricing

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/daroscoffee/storefront-service/internal/model"
)

func TestResolveOneAppliesMatchingRule(t *testing.T) {
	p := model.Product{ID: 1, Name: "Iced Latte", Price: 4.00}
	rules := []model.DiscountRule{
		{Name: "ice latte", Percent: 20, Price: 3.20, Active: true, Event: "Weekend"},
	}

	got := ResolveOne(p, rules)

	assert.True(t, got.IsDiscounted)
	assert.Equal(t, 3.20, got.Price)
	assert.Equal(t, 4.00, got.OriginalPrice)
	assert.Equal(t, 20.0, got.DiscountPercent)
	assert.Equal(t, "Weekend", got.DiscountEvent)
}

func TestResolveOneNoMatchLeavesProductUnchanged(t *testing.T) {
	p := model.Product{ID: 1, Name: "Espresso", Price: 2.50}
	rules := []model.DiscountRule{
		{Name: "ice latte", Percent: 20, Price: 3.20, Active: true, Event: "Weekend"},
	}

	got := ResolveOne(p, rules)

	assert.False(t, got.IsDiscounted)
	assert.Equal(t, 2.50, got.Price)
	assert.Zero(t, got.OriginalPrice)
	assert.Empty(t, got.DiscountEvent)
}

func TestResolveOneFirstDeclaredRuleWins(t *testing.T) {
	p := model.Product{ID: 1, Name: "Iced Latte", Price: 4.00}
	rules := []model.DiscountRule{
		{Name: "iced latte", Percent: 10, Price: 3.60, Active: true, Event: "First"},
		{Name: "ice latte", Percent: 50, Price: 2.00, Active: true, Event: "Bigger"},
	}

	got := ResolveOne(p, rules)

	require.True(t, got.IsDiscounted)
	assert.Equal(t, "First", got.DiscountEvent)
	assert.Equal(t, 3.60, got.Price)
}

func TestResolveOneSkipsUnusableRules(t *testing.T) {
	p := model.Product{ID: 1, Name: "Iced Latte", Price: 4.00}
	rules := []model.DiscountRule{
		{Name: "iced latte", Percent: 20, Price: 3.20, Active: false, Event: "Inactive"},
		{Name: "iced latte", Percent: 100, Price: 0.01, Active: true, Event: "Degenerate"},
		{Name: "iced latte", Percent: 0, Price: 4.00, Active: true, Event: "ZeroPct"},
		{Name: "iced latte", Percent: 25, Price: 3.00, Active: true, Event: "Good"},
	}

	got := ResolveOne(p, rules)

	require.True(t, got.IsDiscounted)
	assert.Equal(t, "Good", got.DiscountEvent)
}

func TestResolveDoesNotMutateInput(t *testing.T) {
	products := []model.Product{{ID: 1, Name: "Iced Latte", Price: 4.00}}
	rules := []model.DiscountRule{
		{Name: "iced latte", Percent: 20, Price: 3.20, Active: true, Event: "Weekend"},
	}

	priced := Resolve(products, rules)

	assert.Equal(t, 4.00, products[0].Price)
	assert.False(t, products[0].IsDiscounted)
	assert.Equal(t, 3.20, priced[0].Price)
}

// Applying the percent back onto the derived original price must
// reproduce the discounted price exactly at 2 decimal places.
func TestOriginalPriceRoundTrip(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		cents := rapid.Int64Range(1, 100000).Draw(t, "cents")
		percent := rapid.Int64Range(1, 99).Draw(t, "percent")

		discounted, _ := decimal.New(cents, -2).Float64()
		orig := OriginalPrice(discounted, float64(percent))

		factor := decimal.NewFromInt(1).Sub(decimal.New(percent, -2))
		back := decimal.NewFromFloat(orig).Mul(factor).Round(2)
		assert.True(t, back.Equal(decimal.New(cents, -2)),
			"discounted=%v percent=%v orig=%v back=%v", discounted, percent, orig, back)
	})
}
