package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/Renison-Gohel/food-orderly/entity"
)

const ordersGenKey = "orders:gen"

// Cmdable is the subset of redis commands the cache uses. *redis.Client
// satisfies it.
type Cmdable interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd
	Incr(ctx context.Context, key string) *redis.IntCmd
}

// OrderCache is a read-through cache for order list queries, keyed by the
// query parameters plus a generation counter. Any order write bumps the
// generation, which orphans every cached list at once. A nil *OrderCache is
// a valid no-op cache.
type OrderCache struct {
	Client Cmdable
	TTL    time.Duration
}

func NewOrderCache(client Cmdable, ttl time.Duration) *OrderCache {
	return &OrderCache{Client: client, TTL: ttl}
}

func (c *OrderCache) listKey(ctx context.Context, params string) (string, error) {
	gen, err := c.Client.Get(ctx, ordersGenKey).Result()
	if err == redis.Nil {
		gen = "0"
	} else if err != nil {
		return "", err
	}
	return "orders:list:" + gen + ":" + params, nil
}

// GetList returns the cached result for params, or ok=false on a miss. Cache
// errors count as misses; the caller falls through to the database.
func (c *OrderCache) GetList(ctx context.Context, params string) ([]entity.Order, bool) {
	if c == nil || c.Client == nil {
		return nil, false
	}
	key, err := c.listKey(ctx, params)
	if err != nil {
		return nil, false
	}
	raw, err := c.Client.Get(ctx, key).Bytes()
	if err != nil {
		return nil, false
	}
	var orders []entity.Order
	if err := json.Unmarshal(raw, &orders); err != nil {
		return nil, false
	}
	return orders, true
}

func (c *OrderCache) SetList(ctx context.Context, params string, orders []entity.Order) {
	if c == nil || c.Client == nil {
		return
	}
	key, err := c.listKey(ctx, params)
	if err != nil {
		return
	}
	raw, err := json.Marshal(orders)
	if err != nil {
		return
	}
	c.Client.Set(ctx, key, raw, c.TTL)
}

// Invalidate bumps the generation so every cached order list goes stale.
// Old entries simply expire via TTL.
func (c *OrderCache) Invalidate(ctx context.Context) {
	if c == nil || c.Client == nil {
		return
	}
	c.Client.Incr(ctx, ordersGenKey)
}
