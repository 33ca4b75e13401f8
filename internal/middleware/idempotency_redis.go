package middleware

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

// RedisIdempotencyStore shares idempotency responses across instances.
type RedisIdempotencyStore struct {
	client redis.UniversalClient
	prefix string
	ttl    time.Duration
}

// NewRedisIdempotencyStore stores responses under prefix+"idem:"+key.
func NewRedisIdempotencyStore(client redis.UniversalClient, prefix string, ttl time.Duration) *RedisIdempotencyStore {
	if ttl <= 0 {
		ttl = IdempotencyKeyTTL
	}
	return &RedisIdempotencyStore{client: client, prefix: prefix, ttl: ttl}
}

func (s *RedisIdempotencyStore) key(k string) string {
	return s.prefix + "idem:" + k
}

// Get treats Redis errors as misses so that a Redis outage only disables replay.
func (s *RedisIdempotencyStore) Get(ctx context.Context, key string) (*cachedResponse, bool) {
	raw, err := s.client.Get(ctx, s.key(key)).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			log.Warn().Err(err).Msg("idempotency store read failed")
		}
		return nil, false
	}

	var resp cachedResponse
	if err := json.Unmarshal(raw, &resp); err != nil {
		log.Warn().Err(err).Msg("idempotency store entry corrupt")
		return nil, false
	}
	return &resp, true
}

// Set stores resp for the store's TTL.
func (s *RedisIdempotencyStore) Set(ctx context.Context, key string, resp *cachedResponse) {
	raw, err := json.Marshal(resp)
	if err != nil {
		return
	}
	if err := s.client.Set(ctx, s.key(key), raw, s.ttl).Err(); err != nil {
		log.Warn().Err(err).Msg("idempotency store write failed")
	}
}
