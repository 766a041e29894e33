package catalog

import (
	"context"

	"github.com/daroscoffee/storefront-service/internal/catalog/dto"
	"github.com/daroscoffee/storefront-service/internal/model"
)

type UseCase interface {
	// Reload fetches every row set, reprices the catalog and swaps the
	// in-memory snapshot. On fetch failure the last cached snapshot is
	// restored instead.
	Reload(ctx context.Context) error

	Browse(ctx context.Context, filters *dto.CatalogFilters) (*dto.CatalogView, error)
	Product(ctx context.Context, id int64) (*model.Product, error)
	HotDeals(ctx context.Context, event string) ([]model.Product, error)
	Categories(ctx context.Context) ([]dto.CategoryView, error)
	Events(ctx context.Context) ([]dto.EventView, error)

	// Banners returns the raw event list for the promotion carousel.
	Banners(ctx context.Context) ([]model.Event, error)
}
