package order

import (
	"context"

	"github.com/daroscoffee/storefront-service/internal/model"
)

// Dispatcher hands a finished order to an external messaging channel.
// DeepLink is non-empty for channels the client must open itself
// (e.g. a Telegram share link) and empty for fire-and-forget channels.
type Dispatcher interface {
	Name() string
	Dispatch(ctx context.Context, o *model.Order, summary string) (deepLink string, err error)
}
