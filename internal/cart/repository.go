package cart

import (
	"context"

	"github.com/daroscoffee/storefront-service/internal/model"
)

// Repository persists cart snapshots to the local key-value store.
// Load must treat a missing or unreadable snapshot as an empty cart,
// never as an error the caller has to handle.
type Repository interface {
	Load(ctx context.Context, cartID string) (model.Cart, error)
	Save(ctx context.Context, cartID string, cart model.Cart) error
	Delete(ctx context.Context, cartID string) error
}
