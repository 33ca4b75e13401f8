//go:build !integration

package app

import (
	"context"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dklebine/productioncalculator/config"
	"github.com/dklebine/productioncalculator/internal/circuitbreaker"
	"github.com/dklebine/productioncalculator/internal/metrics"
	"github.com/dklebine/productioncalculator/internal/repository"
)

func TestInitializeDatabase_Disabled(t *testing.T) {
	assert.Nil(t, InitializeDatabase(config.DatabaseConfig{Enabled: false}))
}

func TestNewDatabaseComponents(t *testing.T) {
	components := newDatabaseComponents(&repository.MongoDB{}, config.DatabaseConfig{
		CircuitBreakerFailureThreshold: 3,
		CircuitBreakerSuccessThreshold: 1,
		CircuitBreakerTimeout:          time.Second,
	})

	require.NotNil(t, components)
	assert.NotNil(t, components.QuotesRepo)
	assert.NotNil(t, components.QuoteHistory)
	assert.NotNil(t, components.LoggingService)
	assert.Equal(t, "closed", components.QuotesCircuitBreaker.GetStats().State)
	assert.Equal(t, "closed", components.LogsCircuitBreaker.GetStats().State)
	assert.Equal(t, float64(0), testutil.ToFloat64(metrics.CircuitBreakerState.WithLabelValues(quotesBreakerName)))
}

func TestNewBreaker_Defaults(t *testing.T) {
	cb := newBreaker(config.DatabaseConfig{}, "test-defaults")
	defaults := circuitbreaker.DefaultConfig()

	for i := 0; i < defaults.FailureThreshold; i++ {
		_ = cb.Execute(context.Background(), func() error { return assert.AnError })
	}

	assert.Equal(t, "open", cb.GetStats().State)
	assert.Equal(t, float64(circuitbreaker.StateOpen), testutil.ToFloat64(metrics.CircuitBreakerState.WithLabelValues("test-defaults")))
}

func TestReportBreakerState(t *testing.T) {
	reportBreakerState("test-report", circuitbreaker.StateOpen, circuitbreaker.StateHalfOpen)
	assert.Equal(t, float64(2), testutil.ToFloat64(metrics.CircuitBreakerState.WithLabelValues("test-report")))

	reportBreakerState("test-report", circuitbreaker.StateHalfOpen, circuitbreaker.StateClosed)
	assert.Equal(t, float64(0), testutil.ToFloat64(metrics.CircuitBreakerState.WithLabelValues("test-report")))
}

func TestDatabaseComponents_CloseNil(t *testing.T) {
	var components *DatabaseComponents
	assert.NotPanics(t, func() { components.Close(context.Background()) })
}
