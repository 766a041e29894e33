package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/daroscoffee/storefront-service/internal/cart"
	"github.com/daroscoffee/storefront-service/internal/model"
	"github.com/daroscoffee/storefront-service/pkg/cache"
	"github.com/daroscoffee/storefront-service/pkg/logger"
)

const (
	cartKeyPrefix = "daros-coffee-cart"
	cartTTL       = 7 * 24 * time.Hour
)

type redisRepository struct {
	cache  *cache.RedisClient
	logger logger.ZapLogger
}

func NewRedisRepository(cache *cache.RedisClient, log logger.ZapLogger) cart.Repository {
	return &redisRepository{cache: cache, logger: log}
}

func cartKey(cartID string) string {
	return fmt.Sprintf("%s:%s", cartKeyPrefix, cartID)
}

// Load returns the persisted cart, or an empty one when the key is
// missing or its payload does not parse. A corrupt snapshot is logged
// and discarded, not surfaced.
func (r *redisRepository) Load(ctx context.Context, cartID string) (model.Cart, error) {
	val, err := r.cache.Client.Get(ctx, cartKey(cartID)).Result()
	if err == redis.Nil {
		return model.Cart{}, nil
	}
	if err != nil {
		return model.Cart{}, fmt.Errorf("load cart %s: %w", cartID, err)
	}

	var c model.Cart
	if err := json.Unmarshal([]byte(val), &c); err != nil {
		r.logger.Warn("discarding malformed cart snapshot", zap.String("cart_id", cartID), zap.Error(err))
		return model.Cart{}, nil
	}
	return c, nil
}

func (r *redisRepository) Save(ctx context.Context, cartID string, c model.Cart) error {
	data, err := json.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshal cart %s: %w", cartID, err)
	}
	if err := r.cache.Client.Set(ctx, cartKey(cartID), data, cartTTL).Err(); err != nil {
		return fmt.Errorf("save cart %s: %w", cartID, err)
	}
	return nil
}

func (r *redisRepository) Delete(ctx context.Context, cartID string) error {
	if err := r.cache.Client.Del(ctx, cartKey(cartID)).Err(); err != nil {
		return fmt.Errorf("delete cart %s: %w", cartID, err)
	}
	return nil
}
