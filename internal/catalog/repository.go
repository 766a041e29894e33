package catalog

import (
	"context"

	"github.com/daroscoffee/storefront-service/internal/model"
)

// Repository fetches already-normalized rows from the spreadsheet
// backing store. Implementations own all row-shape cleanup; consumers
// only ever see the strict model types.
type Repository interface {
	FetchProducts(ctx context.Context) ([]model.Product, error)
	FetchDiscounts(ctx context.Context) ([]model.DiscountRule, error)
	FetchCategories(ctx context.Context) ([]model.Category, error)
	FetchEvents(ctx context.Context) ([]model.Event, error)
}
