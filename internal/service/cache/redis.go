package cache

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"

	"github.com/dklebine/productioncalculator/internal/domain/model"
	"github.com/dklebine/productioncalculator/internal/metrics"
)

const (
	redisBackend   = "redis"
	quoteNamespace = "quote:"
	scanBatch      = 100
)

// RedisCache shares estimates between instances. Values are stored as JSON
// under <prefix>quote:<fingerprint> and expire after the configured TTL.
type RedisCache struct {
	client redis.UniversalClient
	prefix string
	ttl    time.Duration
}

// NewRedisCache creates a Redis-backed cache. A non-positive ttl stores keys without expiry.
func NewRedisCache(client redis.UniversalClient, prefix string, ttl time.Duration) *RedisCache {
	if ttl < 0 {
		ttl = 0
	}
	return &RedisCache{client: client, prefix: prefix, ttl: ttl}
}

func (c *RedisCache) key(fingerprint string) string {
	return c.prefix + quoteNamespace + fingerprint
}

// Get returns the cached result. Redis errors are logged and reported as a miss.
func (c *RedisCache) Get(ctx context.Context, key string) (model.QuoteResult, bool) {
	data, err := c.client.Get(ctx, c.key(key)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			metrics.RecordCacheOperation(redisBackend, "get", "miss")
		} else {
			log.Warn().Err(err).Str("key", key).Msg("redis cache get failed")
			metrics.RecordCacheOperation(redisBackend, "get", "error")
		}
		return model.QuoteResult{}, false
	}

	var result model.QuoteResult
	if err := json.Unmarshal(data, &result); err != nil {
		log.Warn().Err(err).Str("key", key).Msg("discarding undecodable cache entry")
		metrics.RecordCacheOperation(redisBackend, "get", "error")
		return model.QuoteResult{}, false
	}
	metrics.RecordCacheOperation(redisBackend, "get", "hit")
	return result, true
}

// Set stores a result with the configured TTL.
func (c *RedisCache) Set(ctx context.Context, key string, value model.QuoteResult) {
	data, err := json.Marshal(value)
	if err != nil {
		metrics.RecordCacheOperation(redisBackend, "set", "error")
		return
	}
	if err := c.client.Set(ctx, c.key(key), data, c.ttl).Err(); err != nil {
		log.Warn().Err(err).Str("key", key).Msg("redis cache set failed")
		metrics.RecordCacheOperation(redisBackend, "set", "error")
		return
	}
	metrics.RecordCacheOperation(redisBackend, "set", "success")
}

// Invalidate removes one entry.
func (c *RedisCache) Invalidate(ctx context.Context, key string) {
	if err := c.client.Del(ctx, c.key(key)).Err(); err != nil {
		log.Warn().Err(err).Str("key", key).Msg("redis cache invalidate failed")
		return
	}
	metrics.RecordCacheOperation(redisBackend, "invalidate", "success")
}

// Clear deletes every quote entry under the prefix. Other keys are left alone.
func (c *RedisCache) Clear(ctx context.Context) {
	iter := c.client.Scan(ctx, 0, c.prefix+quoteNamespace+"*", scanBatch).Iterator()
	batch := make([]string, 0, scanBatch)
	flush := func() {
		if len(batch) == 0 {
			return
		}
		if err := c.client.Del(ctx, batch...).Err(); err != nil {
			log.Warn().Err(err).Int("keys", len(batch)).Msg("redis cache clear failed")
		}
		batch = batch[:0]
	}
	for iter.Next(ctx) {
		batch = append(batch, iter.Val())
		if len(batch) == scanBatch {
			flush()
		}
	}
	flush()
	if err := iter.Err(); err != nil {
		log.Warn().Err(err).Msg("redis cache scan failed")
		return
	}
	metrics.RecordCacheOperation(redisBackend, "clear", "success")
}

// Stop is a no-op; the client is owned by the caller.
func (c *RedisCache) Stop() {}

// Ping checks connectivity, used by the readiness probe.
func (c *RedisCache) Ping(ctx context.Context) error {
	return c.client.Ping(ctx).Err()
}
