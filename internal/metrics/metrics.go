// Package metrics provides Prometheus metrics collection for the quote service.
package metrics

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HTTPRequestDuration tracks HTTP request duration by method, path, and status code.
	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path", "status_code"},
	)

	// HTTPRequestTotal tracks total HTTP requests by method, path, and status code.
	HTTPRequestTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status_code"},
	)

	// QuoteCalculationsTotal counts estimates by outcome (success, cached, invalid).
	QuoteCalculationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "quote_calculations_total",
			Help: "Total number of quote calculations",
		},
		[]string{"status"},
	)

	// QuoteCalculationDuration tracks estimate latency, cache lookup included.
	QuoteCalculationDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "quote_calculation_duration_seconds",
			Help:    "Quote calculation duration in seconds",
			Buckets: []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05, 0.1},
		},
	)

	// QuoteTotalAmount tracks the distribution of computed quote totals by tier.
	QuoteTotalAmount = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "quote_total_amount",
			Help:    "Computed quote totals in currency units",
			Buckets: []float64{0, 250, 500, 1000, 2500, 5000, 10000, 25000},
		},
		[]string{"tier"},
	)

	// QuotesSavedTotal counts persisted quotes by outcome.
	QuotesSavedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "quotes_saved_total",
			Help: "Total number of quotes written to history",
		},
		[]string{"status"},
	)

	// QuoteExportsTotal counts rendered quote documents.
	QuoteExportsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "quote_exports_total",
			Help: "Total number of exported quote documents",
		},
	)

	// CircuitBreakerState reports each breaker's state: 0 closed, 1 open, 2 half-open.
	CircuitBreakerState = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "circuit_breaker_state",
			Help: "Circuit breaker state (0 closed, 1 open, 2 half-open)",
		},
		[]string{"name"},
	)

	// CacheOperationsTotal tracks cache operations.
	CacheOperationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cache_operations_total",
			Help: "Total number of cache operations",
		},
		[]string{"backend", "operation", "result"},
	)

	// CacheSize tracks current cache size.
	CacheSize = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "cache_size",
			Help: "Current cache size",
		},
	)

	// CacheCapacity tracks cache capacity.
	CacheCapacity = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "cache_capacity",
			Help: "Cache capacity",
		},
	)
)

// PrometheusMiddleware returns a Gin middleware that collects HTTP metrics.
func PrometheusMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}

		c.Next()

		statusCode := strconv.Itoa(c.Writer.Status())
		HTTPRequestDuration.WithLabelValues(c.Request.Method, path, statusCode).Observe(time.Since(start).Seconds())
		HTTPRequestTotal.WithLabelValues(c.Request.Method, path, statusCode).Inc()
	}
}

// RecordQuoteCalculation records the latency and outcome of one estimate.
func RecordQuoteCalculation(duration time.Duration, status string) {
	QuoteCalculationDuration.Observe(duration.Seconds())
	QuoteCalculationsTotal.WithLabelValues(status).Inc()
}

// ObserveQuoteTotal records a computed total for a tier.
func ObserveQuoteTotal(tier string, total int64) {
	QuoteTotalAmount.WithLabelValues(tier).Observe(float64(total))
}

// RecordQuoteSaved records the outcome of a history write.
func RecordQuoteSaved(status string) {
	QuotesSavedTotal.WithLabelValues(status).Inc()
}

// RecordQuoteExport counts one exported document.
func RecordQuoteExport() {
	QuoteExportsTotal.Inc()
}

// SetCircuitBreakerState records the current state of a named breaker.
func SetCircuitBreakerState(name string, state int) {
	CircuitBreakerState.WithLabelValues(name).Set(float64(state))
}

// RecordCacheOperation records metrics for a cache operation.
func RecordCacheOperation(backend, operation, result string) {
	CacheOperationsTotal.WithLabelValues(backend, operation, result).Inc()
}

// UpdateCacheMetrics updates cache size and capacity metrics.
func UpdateCacheMetrics(size, capacity int) {
	CacheSize.Set(float64(size))
	CacheCapacity.Set(float64(capacity))
}
