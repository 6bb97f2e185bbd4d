package cache

import (
	"context"
	"time"

	"hongling-sanctuary-be/pkg/bazi"

	gocache "github.com/patrickmn/go-cache"
)

type MemoryCache struct {
	cache *gocache.Cache
}

func NewMemoryCache(ttl time.Duration) *MemoryCache {
	if ttl <= 0 {
		ttl = time.Hour
	}
	// purge interval at 10 minutes matches the session store defaults
	return &MemoryCache{
		cache: gocache.New(ttl, 10*time.Minute),
	}
}

func (c *MemoryCache) Get(ctx context.Context, key string) (*bazi.Analysis, bool) {
	if x, found := c.cache.Get(key); found {
		return x.(*bazi.Analysis), true
	}
	return nil, false
}

func (c *MemoryCache) Set(ctx context.Context, key string, analysis *bazi.Analysis) {
	c.cache.Set(key, analysis, gocache.DefaultExpiration)
}
