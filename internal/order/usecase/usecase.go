package usecase

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/daroscoffee/storefront-service/internal/cart"
	"github.com/daroscoffee/storefront-service/internal/model"
	"github.com/daroscoffee/storefront-service/internal/order"
	"github.com/daroscoffee/storefront-service/internal/order/dto"
	"github.com/daroscoffee/storefront-service/pkg/cache"
	"github.com/daroscoffee/storefront-service/pkg/i18n"
	"github.com/daroscoffee/storefront-service/pkg/logger"
)

var (
	ErrEmptyCart     = errors.New("cart is empty")
	ErrOrderInFlight = errors.New("an order for this cart is already being submitted")
	ErrDispatchFail  = errors.New("order could not be dispatched")
)

const (
	orderLockPrefix = "daros-coffee-order"
	orderLockTTL    = 10 * time.Second
)

type Config struct {
	KHRRate   float64
	OpenHour  int
	CloseHour int
}

type orderUseCase struct {
	carts       cart.UseCase
	dispatchers []order.Dispatcher // tried in sequence until one succeeds
	cache       *cache.RedisClient
	cfg         Config
	logger      logger.ZapLogger
}

func NewOrderUseCase(carts cart.UseCase, dispatchers []order.Dispatcher, cache *cache.RedisClient, cfg Config, log logger.ZapLogger) order.UseCase {
	return &orderUseCase{
		carts:       carts,
		dispatchers: dispatchers,
		cache:       cache,
		cfg:         cfg,
		logger:      log,
	}
}

func (uc *orderUseCase) Checkout(ctx context.Context, cartID string, input *dto.CheckoutInput) (*dto.CheckoutResult, error) {
	snapshot, err := uc.carts.Snapshot(ctx, cartID)
	if err != nil {
		return nil, err
	}
	if len(snapshot.Lines) == 0 {
		return nil, ErrEmptyCart
	}

	if err := uc.acquireLock(ctx, cartID); err != nil {
		return nil, err
	}

	hour, minute := clampPickup(input.PickupHour, input.PickupMinute, uc.cfg.OpenHour, uc.cfg.CloseHour)

	o := &model.Order{
		ID:           uuid.New().String(),
		CartID:       cartID,
		Lines:        snapshot.Lines,
		Total:        cart.Total(*snapshot),
		TotalKHR:     cart.SecondaryTotal(*snapshot, uc.cfg.KHRRate),
		PickupHour:   hour,
		PickupMinute: minute,
		Note:         input.Note,
		CreatedAt:    time.Now(),
	}

	summary := BuildSummary(o, input.Lang, uc.cfg.KHRRate)

	deepLink, err := uc.dispatch(ctx, o, summary)
	if err != nil {
		// Cart stays intact so the user can retry, which also means
		// the lock must not outlive the failed attempt.
		uc.releaseLock(ctx, cartID)
		return nil, err
	}

	if err := uc.carts.Clear(ctx, cartID); err != nil {
		uc.logger.Warn("order dispatched but cart not cleared", zap.String("cart_id", cartID), zap.Error(err))
	}

	uc.logger.Info("order submitted",
		zap.String("order_id", o.ID),
		zap.Float64("total", o.Total),
		zap.Int("lines", len(o.Lines)),
	)

	return &dto.CheckoutResult{
		OrderID:  o.ID,
		Summary:  summary,
		DeepLink: deepLink,
	}, nil
}

// dispatch walks the chain until one channel accepts the order. Only
// total failure is an error.
func (uc *orderUseCase) dispatch(ctx context.Context, o *model.Order, summary string) (string, error) {
	var lastErr error
	for _, d := range uc.dispatchers {
		deepLink, err := d.Dispatch(ctx, o, summary)
		if err == nil {
			return deepLink, nil
		}
		lastErr = err
		uc.logger.Warn("dispatch path failed, trying next",
			zap.String("dispatcher", d.Name()), zap.Error(err))
	}

	uc.logger.Error("all dispatch paths failed", zap.String("order_id", o.ID), zap.Error(lastErr))
	return "", ErrDispatchFail
}

// acquireLock guards against duplicate submission from a double-click.
// Best effort: without Redis the guard is skipped.
func (uc *orderUseCase) acquireLock(ctx context.Context, cartID string) error {
	if uc.cache == nil {
		return nil
	}

	key := fmt.Sprintf("%s:%s", orderLockPrefix, cartID)
	ok, err := uc.cache.Client.SetNX(ctx, key, "1", orderLockTTL).Result()
	if err != nil {
		uc.logger.Warn("order lock unavailable, continuing without guard", zap.Error(err))
		return nil
	}
	if !ok {
		return ErrOrderInFlight
	}
	return nil
}

func (uc *orderUseCase) releaseLock(ctx context.Context, cartID string) {
	if uc.cache == nil {
		return
	}
	key := fmt.Sprintf("%s:%s", orderLockPrefix, cartID)
	if err := uc.cache.Client.Del(ctx, key).Err(); err != nil {
		uc.logger.Warn("failed to release order lock", zap.Error(err))
	}
}

// clampPickup forces the pickup time into shop hours; minutes snap to
// [0,59]. Invalid input is corrected, never rejected.
func clampPickup(hour, minute, openHour, closeHour int) (int, int) {
	if hour < openHour {
		hour = openHour
	}
	if hour > closeHour {
		hour = closeHour
	}
	if minute < 0 {
		minute = 0
	}
	if minute > 59 {
		minute = 59
	}
	return hour, minute
}

// BuildSummary renders the order as the text block sent through the
// messaging channel: numbered "quantity × name" lines with chosen
// options, per-line price in both currencies, and the grand total.
func BuildSummary(o *model.Order, lang string, khrRate float64) string {
	var b strings.Builder

	fmt.Fprintf(&b, "%s\n\n", i18n.T(lang, "order.title"))

	for i, line := range o.Lines {
		name := line.Name
		if lang == "km" && line.NameKH != "" {
			name = line.NameKH
		}
		fmt.Fprintf(&b, "%d. %d × %s\n", i+1, line.Quantity, name)

		for _, group := range sortedGroups(line.Options) {
			fmt.Fprintf(&b, "   - %s: %s\n", group, line.Options[group])
		}

		khr := decimal.NewFromFloat(line.Price).
			Mul(decimal.NewFromFloat(khrRate)).
			Round(0)
		fmt.Fprintf(&b, "   $%s / ៛%s\n", decimal.NewFromFloat(line.Price).StringFixed(2), khr.String())
	}

	fmt.Fprintf(&b, "\n%s: %02d:%02d\n", i18n.T(lang, "order.pickup"), o.PickupHour, o.PickupMinute)
	if o.Note != "" {
		fmt.Fprintf(&b, "%s\n", o.Note)
	}
	fmt.Fprintf(&b, "%s: $%s / ៛%s\n",
		i18n.T(lang, "order.total"),
		decimal.NewFromFloat(o.Total).StringFixed(2),
		decimal.NewFromFloat(o.TotalKHR).Round(0).String(),
	)

	return b.String()
}

func sortedGroups(options map[string]string) []string {
	groups := make([]string, 0, len(options))
	for g := range options {
		groups = append(groups, g)
	}
	sort.Strings(groups)
	return groups
}
