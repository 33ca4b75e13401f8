//go:build integration

package app

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/dklebine/productioncalculator/config"
	"github.com/dklebine/productioncalculator/internal/domain/model"
	"github.com/dklebine/productioncalculator/internal/testutil"
)

func integrationDatabaseConfig(t *testing.T) config.DatabaseConfig {
	uri, database := testutil.SharedDatabase(t)
	return config.DatabaseConfig{
		URI:                            uri,
		DatabaseName:                   database,
		LogsTTL:                        30 * 24 * time.Hour,
		Enabled:                        true,
		CircuitBreakerFailureThreshold: 5,
		CircuitBreakerSuccessThreshold: 2,
		CircuitBreakerTimeout:          30 * time.Second,
	}
}

func TestInitializeDatabase_Integration(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("builds repositories and services", func(t *testing.T) {
		t.Parallel()
		components := InitializeDatabase(integrationDatabaseConfig(t))
		require.NotNil(t, components)
		defer components.Close(ctx)

		assert.NotNil(t, components.QuotesRepo)
		assert.NotNil(t, components.QuoteHistory)
		assert.NotNil(t, components.LoggingService)
		assert.NotNil(t, components.QuotesCircuitBreaker)
		assert.NotNil(t, components.LogsCircuitBreaker)
		assert.NoError(t, components.DB.HealthCheck(ctx))
	})

	t.Run("creates the logs TTL index", func(t *testing.T) {
		t.Parallel()
		components := InitializeDatabase(integrationDatabaseConfig(t))
		require.NotNil(t, components)
		defer components.Close(ctx)

		cursor, err := components.DB.Logs.Indexes().List(ctx)
		require.NoError(t, err)
		var indexes []bson.M
		require.NoError(t, cursor.All(ctx, &indexes))

		var ttl interface{}
		for _, idx := range indexes {
			if v, ok := idx["expireAfterSeconds"]; ok {
				ttl = v
			}
		}
		assert.EqualValues(t, 30*24*60*60, ttl)
	})

	t.Run("history round trip", func(t *testing.T) {
		t.Parallel()
		components := InitializeDatabase(integrationDatabaseConfig(t))
		require.NotNil(t, components)
		defer components.Close(ctx)

		req := model.QuoteRequest{
			IncludesPhotography: true,
			ServiceTier:         model.TierBronze,
			PhotoRateType:       model.RateHalfDay,
			PhotoDays:           1,
			ClientCoversTravel:  true,
			DeliverySpeed:       model.DeliveryStandard,
		}
		result := model.QuoteResult{Total: 400, Breakdown: []model.LineItem{{Description: "Bronze Photo (1 half days)", Amount: 400}}}

		saved, err := components.QuoteHistory.Save(ctx, req, result, "req-1")
		require.NoError(t, err)

		got, err := components.QuoteHistory.Get(ctx, saved.Number)
		require.NoError(t, err)
		assert.Equal(t, int64(400), got.TotalCost)
	})

	t.Run("disabled database", func(t *testing.T) {
		t.Parallel()
		assert.Nil(t, InitializeDatabase(config.DatabaseConfig{Enabled: false}))
	})

	t.Run("unreachable database", func(t *testing.T) {
		t.Parallel()
		cfg := integrationDatabaseConfig(t)
		cfg.URI = "mongodb://127.0.0.1:1"
		assert.Nil(t, InitializeDatabase(cfg))
	})
}
