package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	cartdto "github.com/daroscoffee/storefront-service/internal/cart/dto"
	"github.com/daroscoffee/storefront-service/internal/model"
	"github.com/daroscoffee/storefront-service/internal/order"
	"github.com/daroscoffee/storefront-service/internal/order/dto"
	"github.com/daroscoffee/storefront-service/pkg/cache"
	"github.com/daroscoffee/storefront-service/pkg/logger"
)

type fakeCarts struct {
	cart    model.Cart
	cleared bool
}

func (f *fakeCarts) Get(ctx context.Context, cartID string) (*cartdto.CartView, error) {
	return nil, nil
}

func (f *fakeCarts) Add(ctx context.Context, cartID string, input *cartdto.AddLineInput) (*cartdto.CartView, error) {
	return nil, nil
}

func (f *fakeCarts) UpdateQuantity(ctx context.Context, cartID, lineID string, quantity int) (*cartdto.CartView, error) {
	return nil, nil
}

func (f *fakeCarts) Remove(ctx context.Context, cartID, lineID string) (*cartdto.CartView, error) {
	return nil, nil
}

func (f *fakeCarts) Clear(ctx context.Context, cartID string) error {
	f.cleared = true
	f.cart = model.Cart{}
	return nil
}

func (f *fakeCarts) Snapshot(ctx context.Context, cartID string) (*model.Cart, error) {
	c := f.cart
	return &c, nil
}

type fakeDispatcher struct {
	name   string
	err    error
	link   string
	called bool
	order  *model.Order
}

func (f *fakeDispatcher) Name() string { return f.name }

func (f *fakeDispatcher) Dispatch(ctx context.Context, o *model.Order, summary string) (string, error) {
	f.called = true
	f.order = o
	if f.err != nil {
		return "", f.err
	}
	return f.link, nil
}

func testConfig() Config {
	return Config{KHRRate: 4100, OpenHour: 7, CloseHour: 21}
}

func testLogger(t *testing.T) logger.ZapLogger {
	t.Helper()
	return logger.NewZapLogger(&logger.ZapLoggerConfig{Level: "error", Encoding: "console"})
}

func twoLineCart() model.Cart {
	return model.Cart{Lines: []model.CartLine{
		{ID: "l1", ProductID: 1, Name: "Iced Latte", Price: 6.40, Quantity: 2, Options: map[string]string{"Size": "L"}},
		{ID: "l2", ProductID: 2, Name: "Croissant", Price: 2.35, Quantity: 1},
	}}
}

func TestCheckoutSuccessClearsCart(t *testing.T) {
	carts := &fakeCarts{cart: twoLineCart()}
	primary := &fakeDispatcher{name: "telegram", link: "https://t.me/shop?text=x"}

	uc := NewOrderUseCase(carts, []order.Dispatcher{primary}, nil, testConfig(), testLogger(t))

	res, err := uc.Checkout(context.Background(), "c1", &dto.CheckoutInput{
		Lang: "en", PickupHour: 10, PickupMinute: 30,
	})
	require.NoError(t, err)

	assert.NotEmpty(t, res.OrderID)
	assert.Equal(t, "https://t.me/shop?text=x", res.DeepLink)
	assert.True(t, primary.called)
	assert.True(t, carts.cleared)
	assert.InDelta(t, 8.75, primary.order.Total, 0.001)
	assert.InDelta(t, 35875, primary.order.TotalKHR, 0.5)
}

func TestCheckoutEmptyCart(t *testing.T) {
	carts := &fakeCarts{}
	primary := &fakeDispatcher{name: "telegram"}

	uc := NewOrderUseCase(carts, []order.Dispatcher{primary}, nil, testConfig(), testLogger(t))

	_, err := uc.Checkout(context.Background(), "c1", &dto.CheckoutInput{})
	assert.ErrorIs(t, err, ErrEmptyCart)
	assert.False(t, primary.called)
}

func TestCheckoutFallbackDispatcher(t *testing.T) {
	carts := &fakeCarts{cart: twoLineCart()}
	primary := &fakeDispatcher{name: "telegram", err: errors.New("recipient down")}
	fallback := &fakeDispatcher{name: "kafka", link: ""}

	uc := NewOrderUseCase(carts, []order.Dispatcher{primary, fallback}, nil, testConfig(), testLogger(t))

	_, err := uc.Checkout(context.Background(), "c1", &dto.CheckoutInput{PickupHour: 9})
	require.NoError(t, err)

	assert.True(t, primary.called)
	assert.True(t, fallback.called)
	assert.True(t, carts.cleared)
}

func TestCheckoutAllDispatchersFailKeepsCart(t *testing.T) {
	carts := &fakeCarts{cart: twoLineCart()}
	primary := &fakeDispatcher{name: "telegram", err: errors.New("down")}
	fallback := &fakeDispatcher{name: "kafka", err: errors.New("also down")}

	uc := NewOrderUseCase(carts, []order.Dispatcher{primary, fallback}, nil, testConfig(), testLogger(t))

	_, err := uc.Checkout(context.Background(), "c1", &dto.CheckoutInput{PickupHour: 9})
	assert.ErrorIs(t, err, ErrDispatchFail)
	assert.False(t, carts.cleared)
	assert.NotEmpty(t, carts.cart.Lines)
}

func TestCheckoutHeldLockRejects(t *testing.T) {
	db, mock := redismock.NewClientMock()
	carts := &fakeCarts{cart: twoLineCart()}
	primary := &fakeDispatcher{name: "telegram"}

	mock.ExpectSetNX("daros-coffee-order:c1", "1", 10*time.Second).SetVal(false)

	uc := NewOrderUseCase(carts, []order.Dispatcher{primary}, &cache.RedisClient{Client: db}, testConfig(), testLogger(t))

	_, err := uc.Checkout(context.Background(), "c1", &dto.CheckoutInput{PickupHour: 9})
	assert.ErrorIs(t, err, ErrOrderInFlight)
	assert.False(t, primary.called)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCheckoutDispatchFailureReleasesLock(t *testing.T) {
	db, mock := redismock.NewClientMock()
	carts := &fakeCarts{cart: twoLineCart()}
	primary := &fakeDispatcher{name: "telegram", err: errors.New("down")}

	mock.ExpectSetNX("daros-coffee-order:c1", "1", 10*time.Second).SetVal(true)
	mock.ExpectDel("daros-coffee-order:c1").SetVal(1)

	uc := NewOrderUseCase(carts, []order.Dispatcher{primary}, &cache.RedisClient{Client: db}, testConfig(), testLogger(t))

	_, err := uc.Checkout(context.Background(), "c1", &dto.CheckoutInput{PickupHour: 9})
	assert.ErrorIs(t, err, ErrDispatchFail)

	// The lock is gone, so a retry is not bounced as in-flight.
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCheckoutPickupClamped(t *testing.T) {
	carts := &fakeCarts{cart: twoLineCart()}
	primary := &fakeDispatcher{name: "telegram"}

	uc := NewOrderUseCase(carts, []order.Dispatcher{primary}, nil, testConfig(), testLogger(t))

	_, err := uc.Checkout(context.Background(), "c1", &dto.CheckoutInput{
		PickupHour: 23, PickupMinute: 75,
	})
	require.NoError(t, err)

	assert.Equal(t, 21, primary.order.PickupHour)
	assert.Equal(t, 59, primary.order.PickupMinute)
}

func TestClampPickup(t *testing.T) {
	tests := []struct {
		name                 string
		hour, minute         int
		wantHour, wantMinute int
	}{
		{"before opening", 5, 15, 7, 15},
		{"after closing", 23, 0, 21, 0},
		{"negative minute", 10, -3, 10, 0},
		{"in range", 12, 45, 12, 45},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, m := clampPickup(tt.hour, tt.minute, 7, 21)
			assert.Equal(t, tt.wantHour, h)
			assert.Equal(t, tt.wantMinute, m)
		})
	}
}

func TestBuildSummary(t *testing.T) {
	o := &model.Order{
		ID:     "o1",
		CartID: "c1",
		Lines: []model.CartLine{
			{ID: "l1", Name: "Iced Latte", Price: 6.40, Quantity: 2, Options: map[string]string{"Size": "L", "Sugar": "50%"}},
		},
		Total:        6.40,
		TotalKHR:     26240,
		PickupHour:   10,
		PickupMinute: 5,
		Note:         "less ice please",
		CreatedAt:    time.Now(),
	}

	summary := BuildSummary(o, "en", 4100)

	assert.Contains(t, summary, "1. 2 × Iced Latte")
	assert.Contains(t, summary, "Size: L")
	assert.Contains(t, summary, "Sugar: 50%")
	assert.Contains(t, summary, "$6.40")
	assert.Contains(t, summary, "10:05")
	assert.Contains(t, summary, "less ice please")
	assert.Contains(t, summary, "៛26240")

	// Option groups come out in a stable order.
	assert.Less(t, strings.Index(summary, "Size:"), strings.Index(summary, "Sugar:"))
}

func TestBuildSummaryKhmerName(t *testing.T) {
	o := &model.Order{
		Lines: []model.CartLine{
			{ID: "l1", Name: "Iced Latte", NameKH: "ឡាតេទឹកកក", Price: 3.20, Quantity: 1},
		},
		Total:    3.20,
		TotalKHR: 13120,
	}

	summary := BuildSummary(o, "km", 4100)
	assert.Contains(t, summary, "ឡាតេទឹកកក")
	assert.NotContains(t, summary, "1. 1 × Iced Latte")
}
