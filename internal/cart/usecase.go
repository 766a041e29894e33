package cart

import (
	"context"

	"github.com/daroscoffee/storefront-service/internal/cart/dto"
	"github.com/daroscoffee/storefront-service/internal/model"
)

type UseCase interface {
	Get(ctx context.Context, cartID string) (*dto.CartView, error)
	Add(ctx context.Context, cartID string, input *dto.AddLineInput) (*dto.CartView, error)
	UpdateQuantity(ctx context.Context, cartID, lineID string, quantity int) (*dto.CartView, error)
	Remove(ctx context.Context, cartID, lineID string) (*dto.CartView, error)

	// Clear empties the ledger. Safe to call repeatedly; clearing an
	// already-empty cart is a no-op.
	Clear(ctx context.Context, cartID string) error

	// Snapshot returns the raw persisted shape, used by checkout.
	Snapshot(ctx context.Context, cartID string) (*model.Cart, error)
}
