package content

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
)

const cacheKeyPrefix = "content:role:"

// Cache fronts the content store with short-lived Redis entries keyed by
// role. The store stays authoritative: Redis trouble degrades to a miss.
type Cache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewCache instantiates the cache helper.
func NewCache(client *redis.Client, ttl time.Duration) *Cache {
	return &Cache{client: client, ttl: ttl}
}

// Fetch loads the cached item list for role, populating it via loader on a
// miss. A nil cache calls the loader directly.
func (c *Cache) Fetch(ctx context.Context, role string, loader func(context.Context) ([]Item, error)) ([]Item, error) {
	if c == nil || c.client == nil {
		return loader(ctx)
	}
	key := cacheKeyPrefix + role
	if raw, err := c.client.Get(ctx, key).Bytes(); err == nil {
		var items []Item
		if err := json.Unmarshal(raw, &items); err == nil {
			return items, nil
		}
	}
	items, err := loader(ctx)
	if err != nil {
		return nil, err
	}
	if raw, err := json.Marshal(items); err == nil {
		_ = c.client.Set(ctx, key, raw, c.ttl).Err()
	}
	return items, nil
}

// Invalidate drops the cached list for role.
func (c *Cache) Invalidate(ctx context.Context, role string) {
	if c == nil || c.client == nil {
		return
	}
	_ = c.client.Del(ctx, cacheKeyPrefix+role).Err()
}
