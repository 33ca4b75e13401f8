// Package app wires configuration, storage and services into a runnable service.
package app

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/dklebine/productioncalculator/config"
	"github.com/dklebine/productioncalculator/internal/circuitbreaker"
	"github.com/dklebine/productioncalculator/internal/metrics"
	"github.com/dklebine/productioncalculator/internal/repository"
	"github.com/dklebine/productioncalculator/internal/service"
)

const ttlSetupTimeout = 5 * time.Second

// Breaker names, also used as metric labels.
const (
	quotesBreakerName = "mongodb-quotes"
	logsBreakerName   = "mongodb-logs"
)

// DatabaseComponents holds database-related components.
type DatabaseComponents struct {
	DB                   *repository.MongoDB
	QuotesRepo           repository.QuotesRepositoryInterface
	QuoteHistory         *service.QuoteHistoryService
	LoggingService       service.LoggingService
	QuotesCircuitBreaker *circuitbreaker.CircuitBreaker
	LogsCircuitBreaker   *circuitbreaker.CircuitBreaker
}

// InitializeDatabase connects to MongoDB and builds the breaker-guarded repositories.
// Returns nil if the database is disabled or the connection fails.
func InitializeDatabase(cfg config.DatabaseConfig) *DatabaseComponents {
	if !cfg.Enabled {
		return nil
	}

	db, err := repository.NewMongoDB(cfg.URI, cfg.DatabaseName)
	if err != nil {
		log.Error().Err(err).Msg("Failed to connect to MongoDB - continuing without quote history")
		return nil
	}

	log.Info().Str("database", cfg.DatabaseName).Msg("Connected to MongoDB")

	ctx, cancel := context.WithTimeout(context.Background(), ttlSetupTimeout)
	defer cancel()
	if err := db.SetLogsTTL(ctx, cfg.LogsTTLDays()); err != nil {
		log.Warn().Err(err).Msg("Failed to set logs TTL index")
	}

	return newDatabaseComponents(db, cfg)
}

func newDatabaseComponents(db *repository.MongoDB, cfg config.DatabaseConfig) *DatabaseComponents {
	quotesCB := newBreaker(cfg, quotesBreakerName)
	logsCB := newBreaker(cfg, logsBreakerName)

	quotesRepo := repository.NewQuotesRepositoryWithCircuitBreaker(repository.NewQuotesRepository(db), quotesCB)
	logsRepo := repository.NewLogsRepositoryWithCircuitBreaker(repository.NewLogsRepository(db), logsCB)

	return &DatabaseComponents{
		DB:                   db,
		QuotesRepo:           quotesRepo,
		QuoteHistory:         service.NewQuoteHistoryService(quotesRepo),
		LoggingService:       service.NewLoggingService(logsRepo),
		QuotesCircuitBreaker: quotesCB,
		LogsCircuitBreaker:   logsCB,
	}
}

func newBreaker(cfg config.DatabaseConfig, name string) *circuitbreaker.CircuitBreaker {
	defaults := circuitbreaker.DefaultConfig()
	cbCfg := circuitbreaker.Config{
		FailureThreshold: cfg.CircuitBreakerFailureThreshold,
		SuccessThreshold: cfg.CircuitBreakerSuccessThreshold,
		Timeout:          cfg.CircuitBreakerTimeout,
		Name:             name,
		OnStateChange:    reportBreakerState,
	}
	if cbCfg.FailureThreshold <= 0 {
		cbCfg.FailureThreshold = defaults.FailureThreshold
	}
	if cbCfg.SuccessThreshold <= 0 {
		cbCfg.SuccessThreshold = defaults.SuccessThreshold
	}
	if cbCfg.Timeout <= 0 {
		cbCfg.Timeout = defaults.Timeout
	}

	metrics.SetCircuitBreakerState(name, int(circuitbreaker.StateClosed))
	return circuitbreaker.New(cbCfg)
}

func reportBreakerState(name string, from, to circuitbreaker.State) {
	metrics.SetCircuitBreakerState(name, int(to))
	event := log.Info()
	if to == circuitbreaker.StateOpen {
		event = log.Warn()
	}
	event.Str("breaker", name).Str("from", from.String()).Str("to", to.String()).Msg("Circuit breaker state changed")
}

// Close disconnects from MongoDB.
func (d *DatabaseComponents) Close(ctx context.Context) {
	if d == nil || d.DB == nil {
		return
	}
	if err := d.DB.Close(ctx); err != nil {
		log.Warn().Err(err).Msg("Failed to close MongoDB connection")
	}
}
