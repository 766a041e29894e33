package order

import (
	"context"

	"github.com/daroscoffee/storefront-service/internal/order/dto"
)

type UseCase interface {
	// Checkout builds the order summary from the cart snapshot, hands
	// it to the dispatch chain and clears the cart once a dispatch
	// path succeeded. On total dispatch failure the cart is left
	// intact so the user can retry.
	Checkout(ctx context.Context, cartID string, input *dto.CheckoutInput) (*dto.CheckoutResult, error)
}
