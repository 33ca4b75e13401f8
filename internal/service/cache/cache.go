// Package cache defines the estimate cache contract and its Redis backend.
package cache

import (
	"context"

	"github.com/dklebine/productioncalculator/internal/domain/model"
)

// Cache stores computed quotes by request fingerprint.
// Implementations treat backend failures as misses.
type Cache interface {
	Get(ctx context.Context, key string) (model.QuoteResult, bool)
	Set(ctx context.Context, key string, value model.QuoteResult)
	Invalidate(ctx context.Context, key string)
	Clear(ctx context.Context)
	Stop()
}

// Metrics provides cache performance metrics.
type Metrics struct {
	Hits      int64
	Misses    int64
	Evictions int64
	Size      int
	Capacity  int
}

// CacheWithMetrics extends Cache with metrics reporting.
type CacheWithMetrics interface {
	Cache
	Metrics() Metrics
}
