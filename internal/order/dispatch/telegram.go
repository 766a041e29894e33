package dispatch

import (
	"context"
	"errors"
	"fmt"
	"net/url"

	"github.com/daroscoffee/storefront-service/internal/model"
)

// TelegramDispatcher builds a t.me deep link carrying the URL-encoded
// order summary. The link is returned to the client, which opens it;
// no network call happens here.
type TelegramDispatcher struct {
	recipient string
}

func NewTelegramDispatcher(recipient string) *TelegramDispatcher {
	return &TelegramDispatcher{recipient: recipient}
}

func (d *TelegramDispatcher) Name() string { return "telegram" }

func (d *TelegramDispatcher) Dispatch(ctx context.Context, o *model.Order, summary string) (string, error) {
	if d.recipient == "" {
		return "", errors.New("telegram recipient not configured")
	}
	return fmt.Sprintf("https://t.me/%s?text=%s", d.recipient, url.QueryEscape(summary)), nil
}
