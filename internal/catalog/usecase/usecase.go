package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/daroscoffee/storefront-service/internal/catalog"
	"github.com/daroscoffee/storefront-service/internal/catalog/dto"
	"github.com/daroscoffee/storefront-service/internal/model"
	"github.com/daroscoffee/storefront-service/internal/pricing"
	"github.com/daroscoffee/storefront-service/pkg/cache"
	"github.com/daroscoffee/storefront-service/pkg/logger"
	"github.com/daroscoffee/storefront-service/pkg/search"
)

const (
	catalogCacheKey = "daros-coffee-catalog"
	catalogCacheTTL = 24 * time.Hour
	productIndex    = "products"
)

// snapshot is the immutable unit of catalog state. Reload builds a new
// one and swaps the pointer; readers never see a half-built catalog.
type snapshot struct {
	Products   []model.Product      `json:"products"` // already priced
	Categories []model.Category     `json:"categories"`
	Events     []model.Event        `json:"events"`
	Rules      []model.DiscountRule `json:"rules"`
}

type catalogUseCase struct {
	repo   catalog.Repository
	cache  *cache.RedisClient
	es     *search.Client
	logger logger.ZapLogger

	mu   sync.RWMutex
	snap *snapshot
}

func NewCatalogUseCase(repo catalog.Repository, cache *cache.RedisClient, es *search.Client, log logger.ZapLogger) catalog.UseCase {
	return &catalogUseCase{
		repo:   repo,
		cache:  cache,
		es:     es,
		logger: log,
	}
}

func (uc *catalogUseCase) Reload(ctx context.Context) error {
	snap, err := uc.fetchAll(ctx)
	if err != nil {
		uc.logger.Warn("catalog fetch failed, trying cached snapshot", zap.Error(err))
		cached, cacheErr := uc.restoreFromCache(ctx)
		if cacheErr != nil {
			return fmt.Errorf("reload catalog: %w", err)
		}
		snap = cached
	} else {
		uc.storeInCache(ctx, snap)
	}

	uc.mu.Lock()
	uc.snap = snap
	uc.mu.Unlock()

	go uc.syncToElastic(context.Background(), snap.Products)

	uc.logger.Info("catalog reloaded",
		zap.Int("products", len(snap.Products)),
		zap.Int("discount_rules", len(snap.Rules)),
		zap.Int("events", len(snap.Events)),
	)
	return nil
}

func (uc *catalogUseCase) fetchAll(ctx context.Context) (*snapshot, error) {
	products, err := uc.repo.FetchProducts(ctx)
	if err != nil {
		return nil, err
	}
	rules, err := uc.repo.FetchDiscounts(ctx)
	if err != nil {
		return nil, err
	}
	categories, err := uc.repo.FetchCategories(ctx)
	if err != nil {
		return nil, err
	}
	events, err := uc.repo.FetchEvents(ctx)
	if err != nil {
		return nil, err
	}

	return &snapshot{
		Products:   pricing.Resolve(products, rules),
		Categories: categories,
		Events:     events,
		Rules:      rules,
	}, nil
}

func (uc *catalogUseCase) current() (*snapshot, error) {
	uc.mu.RLock()
	defer uc.mu.RUnlock()
	if uc.snap == nil {
		return nil, errors.New("catalog not loaded")
	}
	return uc.snap, nil
}

func (uc *catalogUseCase) Browse(ctx context.Context, filters *dto.CatalogFilters) (*dto.CatalogView, error) {
	snap, err := uc.current()
	if err != nil {
		return nil, err
	}

	products := snap.Products
	if filters.Query != "" {
		products = uc.searchProducts(ctx, snap, filters.Query)
	}
	products = catalog.FilterByCategory(products, filters.Category)
	if filters.Event != "" && filters.Event != catalog.AllEvents {
		products = catalog.FilterByEvent(catalog.Discounted(products), filters.Event)
	}

	view := &dto.CatalogView{Products: products}
	if filters.Category == "" || filters.Category == catalog.AllCategories {
		view.Groups = catalog.GroupByCategory(products)
	}
	return view, nil
}

// searchProducts prefers Elasticsearch when it is configured, falling
// back to the pure in-memory filter on any failure. ES only narrows
// the id set; ordering and field semantics stay with the snapshot.
func (uc *catalogUseCase) searchProducts(ctx context.Context, snap *snapshot, query string) []model.Product {
	if uc.es == nil {
		return catalog.FilterBySearch(snap.Products, query)
	}

	q := map[string]interface{}{
		"query": map[string]interface{}{
			"query_string": map[string]interface{}{
				"query":  fmt.Sprintf("*%s*", query),
				"fields": []string{"name^3", "name_kh", "description", "description_kh"},
			},
		},
		"size": len(snap.Products),
	}

	res, err := uc.es.Search(ctx, productIndex, q)
	if err != nil {
		uc.logger.Error("ES search failed, falling back to in-memory filter", zap.Error(err))
		return catalog.FilterBySearch(snap.Products, query)
	}

	hits := make(map[int64]struct{}, len(res.Hits.Hits))
	for _, hit := range res.Hits.Hits {
		if id, err := strconv.ParseInt(hit.ID, 10, 64); err == nil {
			hits[id] = struct{}{}
		}
	}

	out := make([]model.Product, 0, len(hits))
	for _, p := range snap.Products {
		if _, ok := hits[p.ID]; ok {
			out = append(out, p)
		}
	}
	return out
}

func (uc *catalogUseCase) Product(ctx context.Context, id int64) (*model.Product, error) {
	snap, err := uc.current()
	if err != nil {
		return nil, err
	}
	for i := range snap.Products {
		if snap.Products[i].ID == id {
			p := snap.Products[i]
			return &p, nil
		}
	}
	return nil, nil
}

func (uc *catalogUseCase) HotDeals(ctx context.Context, event string) ([]model.Product, error) {
	snap, err := uc.current()
	if err != nil {
		return nil, err
	}
	return catalog.FilterByEvent(catalog.Discounted(snap.Products), event), nil
}

func (uc *catalogUseCase) Categories(ctx context.Context) ([]dto.CategoryView, error) {
	snap, err := uc.current()
	if err != nil {
		return nil, err
	}
	return catalog.VisibleCategories(snap.Products, snap.Categories), nil
}

func (uc *catalogUseCase) Events(ctx context.Context) ([]dto.EventView, error) {
	snap, err := uc.current()
	if err != nil {
		return nil, err
	}
	return catalog.EventCounts(snap.Products, snap.Events), nil
}

func (uc *catalogUseCase) Banners(ctx context.Context) ([]model.Event, error) {
	snap, err := uc.current()
	if err != nil {
		return nil, err
	}
	return snap.Events, nil
}

func (uc *catalogUseCase) storeInCache(ctx context.Context, snap *snapshot) {
	if uc.cache == nil {
		return
	}
	data, err := json.Marshal(snap)
	if err != nil {
		return
	}
	if err := uc.cache.Client.Set(ctx, catalogCacheKey, data, catalogCacheTTL).Err(); err != nil {
		uc.logger.Warn("failed to cache catalog snapshot", zap.Error(err))
	}
}

func (uc *catalogUseCase) restoreFromCache(ctx context.Context) (*snapshot, error) {
	if uc.cache == nil {
		return nil, errors.New("no cache configured")
	}
	val, err := uc.cache.Client.Get(ctx, catalogCacheKey).Result()
	if err != nil {
		return nil, err
	}

	var snap snapshot
	if err := json.Unmarshal([]byte(val), &snap); err != nil {
		return nil, err
	}
	uc.logger.Info("serving catalog from cached snapshot", zap.Int("products", len(snap.Products)))
	return &snap, nil
}

func (uc *catalogUseCase) syncToElastic(ctx context.Context, products []model.Product) {
	if uc.es == nil {
		return
	}

	mapping := `{
		"mappings": {
			"properties": {
				"name": { "type": "text" },
				"name_kh": { "type": "text" },
				"description": { "type": "text" },
				"description_kh": { "type": "text" },
				"category": { "type": "keyword" },
				"price": { "type": "double" },
				"is_discounted": { "type": "boolean" }
			}
		}
	}`
	_ = uc.es.CreateIndex(ctx, productIndex, mapping)

	for _, p := range products {
		if err := uc.es.Index(ctx, productIndex, strconv.FormatInt(p.ID, 10), p); err != nil {
			uc.logger.Error("failed to index product", zap.Int64("product_id", p.ID), zap.Error(err))
		}
	}
}
