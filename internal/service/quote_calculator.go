// Package service contains the pricing rules and the services built around them.
package service

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/singleflight"

	"github.com/dklebine/productioncalculator/internal/domain/model"
	"github.com/dklebine/productioncalculator/internal/metrics"
	"github.com/dklebine/productioncalculator/internal/service/cache"
)

// QuoteCalculator prices quote requests.
type QuoteCalculator interface {
	Calculate(ctx context.Context, req model.QuoteRequest) (model.QuoteResult, error)
	// InvalidateCache drops every cached estimate.
	InvalidateCache(ctx context.Context)
}

// Option configures a QuoteCalculatorService.
type Option func(*QuoteCalculatorService)

// QuoteCalculatorService wraps ComputeQuote with an optional result cache.
// Concurrent misses for the same fingerprint are computed once.
type QuoteCalculatorService struct {
	cache cache.Cache
	group singleflight.Group
}

// NewQuoteCalculatorService creates a calculator with the given options.
func NewQuoteCalculatorService(opts ...Option) *QuoteCalculatorService {
	s := &QuoteCalculatorService{}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// WithCache enables an in-memory cache. A non-positive capacity disables caching.
func WithCache(capacity int, ttl time.Duration) Option {
	return func(s *QuoteCalculatorService) {
		if capacity > 0 {
			s.cache = newTTLCache(capacity, ttl)
		}
	}
}

// WithShardedCache enables an in-memory cache split over numShards shards.
func WithShardedCache(capacity int, ttl time.Duration, numShards int) Option {
	return func(s *QuoteCalculatorService) {
		if capacity > 0 {
			s.cache = NewShardedCache(capacity, ttl, numShards)
		}
	}
}

// WithCacheInterface injects a cache implementation, e.g. cache.RedisCache.
func WithCacheInterface(c cache.Cache) Option {
	return func(s *QuoteCalculatorService) {
		s.cache = c
	}
}

// Calculate prices req. The request's enums are checked before the cache is
// consulted, so only requests ComputeQuote accepts can share a cached result.
// Errors are returned as-is and never cached.
func (s *QuoteCalculatorService) Calculate(ctx context.Context, req model.QuoteRequest) (model.QuoteResult, error) {
	start := time.Now()
	if err := ctx.Err(); err != nil {
		return model.QuoteResult{}, err
	}
	if _, err := validateSelections(req); err != nil {
		s.record(start, req.ServiceTier, model.QuoteResult{}, err, false)
		return model.QuoteResult{}, err
	}

	if s.cache == nil {
		result, err := ComputeQuote(req)
		s.record(start, req.ServiceTier, result, err, false)
		return result, err
	}

	key := Fingerprint(req)
	if result, ok := s.cache.Get(ctx, key); ok {
		s.record(start, req.ServiceTier, result, nil, true)
		return result.Clone(), nil
	}

	v, err, _ := s.group.Do(key, func() (interface{}, error) {
		result, err := ComputeQuote(req)
		if err != nil {
			return nil, err
		}
		s.cache.Set(ctx, key, result)
		s.reportCacheSize()
		return result, nil
	})
	if err != nil {
		s.record(start, req.ServiceTier, model.QuoteResult{}, err, false)
		return model.QuoteResult{}, err
	}

	result := v.(model.QuoteResult).Clone()
	s.record(start, req.ServiceTier, result, nil, false)
	return result, nil
}

// InvalidateCache drops every cached estimate.
func (s *QuoteCalculatorService) InvalidateCache(ctx context.Context) {
	if s.cache != nil {
		s.cache.Clear(ctx)
		s.reportCacheSize()
	}
}

// Close releases the cache's background resources.
func (s *QuoteCalculatorService) Close() {
	if s.cache != nil {
		s.cache.Stop()
	}
}

// CacheMetrics reports the in-memory cache counters, if the cache exposes them.
func (s *QuoteCalculatorService) CacheMetrics() (cache.Metrics, bool) {
	if withMetrics, ok := s.cache.(cache.CacheWithMetrics); ok {
		return withMetrics.Metrics(), true
	}
	return cache.Metrics{}, false
}

func (s *QuoteCalculatorService) reportCacheSize() {
	if m, ok := s.CacheMetrics(); ok {
		metrics.UpdateCacheMetrics(m.Size, m.Capacity)
	}
}

func (s *QuoteCalculatorService) record(start time.Time, tier model.Tier, result model.QuoteResult, err error, cached bool) {
	switch {
	case err != nil:
		status := "error"
		if IsValidationError(err) {
			status = "invalid"
		}
		metrics.RecordQuoteCalculation(time.Since(start), status)
		log.Debug().Err(err).Str("tier", string(tier)).Msg("quote rejected")
	case cached:
		metrics.RecordQuoteCalculation(time.Since(start), "cached")
	default:
		metrics.RecordQuoteCalculation(time.Since(start), "success")
		metrics.ObserveQuoteTotal(string(tier), result.Total)
	}
}

// IsValidationError reports whether err was caused by the request content.
func IsValidationError(err error) bool {
	return errors.Is(err, ErrInvalidTier) ||
		errors.Is(err, ErrInvalidRateType) ||
		errors.Is(err, ErrInvalidDeliverySpeed) ||
		errors.Is(err, ErrInvalidQuantity)
}

// Fingerprint is a stable key over the fields that influence pricing.
// Requests that differ only in ignored fields share a fingerprint. String
// fields are length-prefixed so that no value can spell out another field.
func Fingerprint(req model.QuoteRequest) string {
	var b strings.Builder
	writeString(&b, string(req.ServiceTier))
	b.WriteString("|d=")
	writeString(&b, string(req.DeliverySpeed))

	if req.IncludesPhotography {
		b.WriteString("|p=")
		writeCoverage(&b, req.PhotoRateType, req.PhotoDuration, req.PhotoDays)
		b.WriteString(",e")
		b.WriteString(strconv.Itoa(req.PhotoEdits))
	}

	if req.IncludesVideography {
		b.WriteString("|v=")
		writeCoverage(&b, req.VideoRateType, req.VideoDuration, req.VideoDays)
		writeCounted(&b, ",r", req.NumReels, req.ReelDuration)
		writeCounted(&b, ",c", req.NumRecaps, req.RecapDuration)
	}

	if !req.ClientCoversTravel && req.TravelDistance != 0 {
		b.WriteString("|t=")
		b.WriteString(strconv.Itoa(req.TravelDistance))
	}

	sum := sha256.Sum256([]byte(b.String()))
	return hex.EncodeToString(sum[:16])
}

func writeString(b *strings.Builder, s string) {
	b.WriteString(strconv.Itoa(len(s)))
	b.WriteByte(':')
	b.WriteString(s)
}

func writeCoverage(b *strings.Builder, rateType model.RateType, duration, days int) {
	writeString(b, string(rateType))
	b.WriteByte(':')
	if rateType == model.RateHourly {
		b.WriteString(strconv.Itoa(duration))
		return
	}
	b.WriteString(strconv.Itoa(days))
}

func writeCounted(b *strings.Builder, tag string, count, seconds int) {
	b.WriteString(tag)
	b.WriteString(strconv.Itoa(count))
	if count != 0 {
		b.WriteByte('x')
		b.WriteString(strconv.Itoa(seconds))
	}
}
