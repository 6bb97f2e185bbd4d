package cache

import (
	"context"
	"time"

	"hongling-sanctuary-be/internal/pkg/logger"
	"hongling-sanctuary-be/pkg/bazi"

	"github.com/goccy/go-json"
	"github.com/redis/go-redis/v9"
)

type RedisCache struct {
	client *redis.Client
	ttl    time.Duration
	log    logger.ILogger
}

func NewRedisCache(redisURL string, ttl time.Duration, log logger.ILogger) (*RedisCache, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, err
	}
	if ttl <= 0 {
		ttl = time.Hour
	}
	return &RedisCache{
		client: redis.NewClient(opts),
		ttl:    ttl,
		log:    log,
	}, nil
}

func (c *RedisCache) Get(ctx context.Context, key string) (*bazi.Analysis, bool) {
	raw, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		if err != redis.Nil && c.log != nil {
			c.log.Warn("cache", "redis get failed", map[string]interface{}{"key": key, "error": err.Error()})
		}
		return nil, false
	}

	var analysis bazi.Analysis
	if err := json.Unmarshal(raw, &analysis); err != nil {
		if c.log != nil {
			c.log.Warn("cache", "corrupt cache entry dropped", map[string]interface{}{"key": key, "error": err.Error()})
		}
		c.client.Del(ctx, key)
		return nil, false
	}
	return &analysis, true
}

func (c *RedisCache) Set(ctx context.Context, key string, analysis *bazi.Analysis) {
	raw, err := json.Marshal(analysis)
	if err != nil {
		if c.log != nil {
			c.log.Warn("cache", "failed to marshal analysis", map[string]interface{}{"key": key, "error": err.Error()})
		}
		return
	}
	if err := c.client.Set(ctx, key, raw, c.ttl).Err(); err != nil && c.log != nil {
		c.log.Warn("cache", "redis set failed", map[string]interface{}{"key": key, "error": err.Error()})
	}
}
