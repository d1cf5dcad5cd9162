package services

import (
	"context"
	"strconv"
	"sync"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Renison-Gohel/food-orderly/entity"
	"github.com/Renison-Gohel/food-orderly/pkg/cache"
)

// memRedis implements cache.Cmdable in memory for the order-list tests.
type memRedis struct {
	mu   sync.Mutex
	data map[string]string
}

func newMemRedis() *memRedis {
	return &memRedis{data: map[string]string{}}
}

func (m *memRedis) Get(ctx context.Context, key string) *redis.StringCmd {
	m.mu.Lock()
	defer m.mu.Unlock()
	v, ok := m.data[key]
	if !ok {
		return redis.NewStringResult("", redis.Nil)
	}
	return redis.NewStringResult(v, nil)
}

func (m *memRedis) Set(ctx context.Context, key string, value interface{}, _ time.Duration) *redis.StatusCmd {
	m.mu.Lock()
	defer m.mu.Unlock()
	switch v := value.(type) {
	case []byte:
		m.data[key] = string(v)
	case string:
		m.data[key] = v
	}
	return redis.NewStatusResult("OK", nil)
}

func (m *memRedis) Incr(ctx context.Context, key string) *redis.IntCmd {
	m.mu.Lock()
	defer m.mu.Unlock()
	n, _ := strconv.ParseInt(m.data[key], 10, 64)
	n++
	m.data[key] = strconv.FormatInt(n, 10)
	return redis.NewIntResult(n, nil)
}

func TestListReadsThroughCache(t *testing.T) {
	svc, db := newTestOrderService(t)
	svc.Cache = cache.NewOrderCache(newMemRedis(), time.Minute)
	ctx := context.Background()

	order := commitTestOrder(t, svc)

	listed, err := svc.List(ctx, nil)
	require.NoError(t, err)
	require.Len(t, listed, 1)
	assert.Equal(t, entity.StatusPending, listed[0].Status)

	// Flip the row behind the service's back; the cached list still wins.
	require.NoError(t, db.Model(&entity.Order{}).
		Where("id = ?", order.ID).
		Update("status", entity.StatusReady).Error)

	cached, err := svc.List(ctx, nil)
	require.NoError(t, err)
	assert.Equal(t, entity.StatusPending, cached[0].Status)

	svc.Cache.Invalidate(ctx)

	fresh, err := svc.List(ctx, nil)
	require.NoError(t, err)
	assert.Equal(t, entity.StatusReady, fresh[0].Status)
}

func TestOrderWritesInvalidateCachedLists(t *testing.T) {
	svc, _ := newTestOrderService(t)
	svc.Cache = cache.NewOrderCache(newMemRedis(), time.Minute)
	ctx := context.Background()

	order := commitTestOrder(t, svc)

	listed, err := svc.List(ctx, nil)
	require.NoError(t, err)
	require.Len(t, listed, 1)
	assert.Equal(t, entity.StatusPending, listed[0].Status)

	// A transition must not leave the stale pending list serveable.
	_, err = svc.SetStatus(ctx, order.ID, entity.StatusReady)
	require.NoError(t, err)

	after, err := svc.List(ctx, nil)
	require.NoError(t, err)
	require.Len(t, after, 1)
	assert.Equal(t, entity.StatusReady, after[0].Status)

	// Deletion likewise.
	require.NoError(t, svc.DeleteOrder(ctx, order.ID))

	gone, err := svc.List(ctx, nil)
	require.NoError(t, err)
	assert.Empty(t, gone)
}
