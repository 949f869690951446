package chain

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"github.com/freelancedao/backend/pkg/xcontext"
	"github.com/freelancedao/backend/pkg/xredis"
	"github.com/puzpuzpuz/xsync"
)

// ErrCacheMiss is returned by ReadCache.Get when the key is absent or expired.
var ErrCacheMiss = errors.New("cache miss")

// ReadCache holds recently fetched chain state so repeated views within the
// TTL do not hit an RPC again. Values are JSON snapshots; the chain remains
// the source of truth.
type ReadCache interface {
	Get(ctx context.Context, key string, value any) error
	Set(ctx context.Context, key string, value any, ttl time.Duration) error
	DelPrefix(ctx context.Context, prefix string) error
}

type memoryCacheEntry struct {
	data      []byte
	expiredAt time.Time
}

// memoryCache is the default backend, suitable for a single instance.
type memoryCache struct {
	entries *xsync.MapOf[string, memoryCacheEntry]
}

func NewMemoryCache() *memoryCache {
	return &memoryCache{entries: xsync.NewMapOf[memoryCacheEntry]()}
}

func (c *memoryCache) Get(ctx context.Context, key string, value any) error {
	entry, ok := c.entries.Load(key)
	if !ok {
		return ErrCacheMiss
	}

	if time.Now().After(entry.expiredAt) {
		c.entries.Delete(key)
		return ErrCacheMiss
	}

	return json.Unmarshal(entry.data, value)
}

func (c *memoryCache) Set(ctx context.Context, key string, value any, ttl time.Duration) error {
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}

	c.entries.Store(key, memoryCacheEntry{data: data, expiredAt: time.Now().Add(ttl)})
	return nil
}

func (c *memoryCache) DelPrefix(ctx context.Context, prefix string) error {
	c.entries.Range(func(key string, _ memoryCacheEntry) bool {
		if strings.HasPrefix(key, prefix) {
			c.entries.Delete(key)
		}
		return true
	})

	return nil
}

// redisCache shares the cache between instances behind one redis.
type redisCache struct {
	client xredis.Client
}

func NewRedisCache(client xredis.Client) *redisCache {
	return &redisCache{client: client}
}

func (c *redisCache) Get(ctx context.Context, key string, value any) error {
	if err := c.client.GetObj(ctx, key, value); err != nil {
		if errors.Is(err, xredis.ErrNotFound) {
			return ErrCacheMiss
		}

		xcontext.Logger(ctx).Warnf("Cannot get cache of %s: %v", key, err)
		return ErrCacheMiss
	}

	return nil
}

func (c *redisCache) Set(ctx context.Context, key string, value any, ttl time.Duration) error {
	return c.client.SetObj(ctx, key, value, ttl)
}

func (c *redisCache) DelPrefix(ctx context.Context, prefix string) error {
	keys, err := c.client.Keys(ctx, prefix+"*")
	if err != nil {
		return err
	}

	if len(keys) == 0 {
		return nil
	}

	return c.client.Del(ctx, keys...)
}
