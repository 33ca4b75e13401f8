package app

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"

	"github.com/dklebine/productioncalculator/config"
	"github.com/dklebine/productioncalculator/internal/middleware"
	"github.com/dklebine/productioncalculator/internal/service"
	"github.com/dklebine/productioncalculator/internal/service/cache"
)

const redisPingTimeout = 3 * time.Second

// ServiceComponents holds service-related components.
type ServiceComponents struct {
	Calculator *service.QuoteCalculatorService
	Exporter   *service.Exporter
	// Redis is nil unless REDIS_ADDR is set.
	Redis redis.UniversalClient
	// IdempotencyStore is shared through Redis when available, in memory otherwise.
	IdempotencyStore middleware.IdempotencyStore
}

// InitializeServices builds the calculator with the configured cache backend.
// A configured Redis that does not answer is an error.
func InitializeServices(cfg config.Config) (*ServiceComponents, error) {
	components := &ServiceComponents{
		Exporter: service.NewExporter(cfg.Export.CompanyName),
	}

	if cfg.Redis.Addr != "" {
		client, err := newRedisClient(cfg.Redis)
		if err != nil {
			return nil, err
		}
		components.Redis = client
		components.IdempotencyStore = middleware.NewRedisIdempotencyStore(client, cfg.Redis.Prefix, middleware.IdempotencyKeyTTL)
	} else {
		components.IdempotencyStore = middleware.NewMemoryIdempotencyStore(middleware.IdempotencyKeyTTL)
	}

	var opts []service.Option
	switch cfg.Cache.Backend {
	case config.CacheBackendRedis:
		if components.Redis == nil {
			return nil, fmt.Errorf("cache backend %q requires REDIS_ADDR", cfg.Cache.Backend)
		}
		opts = append(opts, service.WithCacheInterface(cache.NewRedisCache(components.Redis, cfg.Redis.Prefix, cfg.Cache.TTL)))
	case config.CacheBackendNone:
	default:
		if cfg.Cache.Shards > 1 {
			opts = append(opts, service.WithShardedCache(cfg.Cache.Size, cfg.Cache.TTL, cfg.Cache.Shards))
		} else {
			opts = append(opts, service.WithCache(cfg.Cache.Size, cfg.Cache.TTL))
		}
	}

	components.Calculator = service.NewQuoteCalculatorService(opts...)
	if cfg.Cache.Backend == config.CacheBackendRedis {
		// Redis entries outlive the process and may predate the current rate table.
		ctx, cancel := context.WithTimeout(context.Background(), redisPingTimeout)
		components.Calculator.InvalidateCache(ctx)
		cancel()
	}
	log.Info().
		Str("backend", cfg.Cache.Backend).
		Int("size", cfg.Cache.Size).
		Dur("ttl", cfg.Cache.TTL).
		Msg("Estimate cache configured")

	return components, nil
}

// Close stops the cache and the idempotency store and closes the Redis client.
func (s *ServiceComponents) Close() {
	if s == nil {
		return
	}
	if s.Calculator != nil {
		if m, ok := s.Calculator.CacheMetrics(); ok {
			log.Info().
				Int64("hits", m.Hits).
				Int64("misses", m.Misses).
				Int64("evictions", m.Evictions).
				Int("size", m.Size).
				Msg("Estimate cache stopped")
		}
		s.Calculator.Close()
	}
	if stopper, ok := s.IdempotencyStore.(interface{ Stop() }); ok {
		stopper.Stop()
	}
	if s.Redis != nil {
		if err := s.Redis.Close(); err != nil {
			log.Warn().Err(err).Msg("Failed to close Redis client")
		}
	}
}

func newRedisClient(cfg config.RedisConfig) (redis.UniversalClient, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), redisPingTimeout)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("connect to redis at %s: %w", cfg.Addr, err)
	}

	log.Info().Str("addr", cfg.Addr).Int("db", cfg.DB).Msg("Connected to Redis")
	return client, nil
}
