package usecase

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/daroscoffee/storefront-service/internal/cart"
	"github.com/daroscoffee/storefront-service/internal/cart/dto"
	"github.com/daroscoffee/storefront-service/internal/catalog"
	"github.com/daroscoffee/storefront-service/internal/model"
	"github.com/daroscoffee/storefront-service/pkg/logger"
)

var ErrProductNotFound = errors.New("product not found")

type cartUseCase struct {
	repo    cart.Repository
	catalog catalog.UseCase
	khrRate float64
	logger  logger.ZapLogger
}

func NewCartUseCase(repo cart.Repository, cat catalog.UseCase, khrRate float64, log logger.ZapLogger) cart.UseCase {
	return &cartUseCase{
		repo:    repo,
		catalog: cat,
		khrRate: khrRate,
		logger:  log,
	}
}

func (uc *cartUseCase) Get(ctx context.Context, cartID string) (*dto.CartView, error) {
	c, err := uc.repo.Load(ctx, cartID)
	if err != nil {
		return nil, err
	}
	return uc.view(c), nil
}

// Add prices the line from the current catalog and locks that price
// into the ledger. Later catalog changes never touch existing lines.
func (uc *cartUseCase) Add(ctx context.Context, cartID string, input *dto.AddLineInput) (*dto.CartView, error) {
	p, err := uc.catalog.Product(ctx, input.ProductID)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, ErrProductNotFound
	}

	quantity := input.Quantity
	if quantity < 1 {
		quantity = 1
	}

	lineID := input.LineID
	if lineID == "" {
		lineID = uuid.New().String()
	}

	options, deltas := resolveOptions(p, input.Options)
	unit := cart.UnitPrice(p.Price, deltas)
	price, _ := decimal.NewFromFloat(unit).Mul(decimal.NewFromInt(int64(quantity))).Round(2).Float64()

	line := model.CartLine{
		ID:           lineID,
		ProductID:    p.ID,
		Name:         p.Name,
		NameKH:       p.NameKH,
		Image:        p.Image,
		Price:        price,
		Quantity:     quantity,
		Options:      options,
		OptionDeltas: deltas,
	}

	c, err := uc.repo.Load(ctx, cartID)
	if err != nil {
		return nil, err
	}
	c = cart.AddLine(c, line)
	if err := uc.repo.Save(ctx, cartID, c); err != nil {
		return nil, err
	}
	return uc.view(c), nil
}

func (uc *cartUseCase) UpdateQuantity(ctx context.Context, cartID, lineID string, quantity int) (*dto.CartView, error) {
	c, err := uc.repo.Load(ctx, cartID)
	if err != nil {
		return nil, err
	}
	c = cart.UpdateQuantity(c, lineID, quantity)
	if err := uc.repo.Save(ctx, cartID, c); err != nil {
		return nil, err
	}
	return uc.view(c), nil
}

func (uc *cartUseCase) Remove(ctx context.Context, cartID, lineID string) (*dto.CartView, error) {
	c, err := uc.repo.Load(ctx, cartID)
	if err != nil {
		return nil, err
	}
	c = cart.RemoveLine(c, lineID)
	if err := uc.repo.Save(ctx, cartID, c); err != nil {
		return nil, err
	}
	return uc.view(c), nil
}

func (uc *cartUseCase) Clear(ctx context.Context, cartID string) error {
	return uc.repo.Delete(ctx, cartID)
}

func (uc *cartUseCase) Snapshot(ctx context.Context, cartID string) (*model.Cart, error) {
	c, err := uc.repo.Load(ctx, cartID)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (uc *cartUseCase) view(c model.Cart) *dto.CartView {
	return &dto.CartView{
		Lines:     c.Lines,
		Total:     cart.Total(c),
		TotalKHR:  cart.SecondaryTotal(c, uc.khrRate),
		ItemCount: cart.ItemCount(c),
	}
}

// resolveOptions keeps only selections that name a real group and a
// real choice on the product; anything else is silently dropped.
func resolveOptions(p *model.Product, selected map[string]string) (map[string]string, map[string]float64) {
	if len(selected) == 0 {
		return nil, nil
	}

	options := make(map[string]string)
	deltas := make(map[string]float64)
	for _, group := range p.Options {
		label, ok := selected[group.Name]
		if !ok {
			continue
		}
		for _, choice := range group.Choices {
			if choice.Label == label {
				options[group.Name] = label
				deltas[group.Name] = choice.PriceDelta
				break
			}
		}
	}

	if len(options) == 0 {
		return nil, nil
	}
	return options, deltas
}
