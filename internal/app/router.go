package app

import (
	"context"

	"github.com/dklebine/productioncalculator/config"
	"github.com/dklebine/productioncalculator/internal/http"
	"github.com/dklebine/productioncalculator/internal/middleware"
)

// RouterComponents holds router-related components.
type RouterComponents struct {
	Handler       *http.Handler
	HealthHandler *http.HealthHandler
	Config        http.RouterConfig
	RateLimiter   *middleware.RateLimiter
	// AuditLogger is nil when the database is unavailable.
	AuditLogger *middleware.AsyncLogger
}

// InitializeRouter builds the handlers, health checks and router configuration.
func InitializeRouter(services *ServiceComponents, db *DatabaseComponents, cfg config.Config) *RouterComponents {
	opts := []http.HandlerOption{http.WithExporter(services.Exporter)}
	healthHandler := http.NewHealthHandler()

	var auditLogger *middleware.AsyncLogger
	if db != nil {
		auditLogger = middleware.NewAsyncLogger(db.LoggingService, middleware.DefaultAsyncLoggerConfig())

		opts = append(opts, http.WithHistory(db.QuoteHistory), http.WithActivity(db.LoggingService), http.WithAuditSink(auditLogger))

		healthHandler.RegisterChecker("mongodb", http.HealthCheckFunc(db.DB.HealthCheck))
		healthHandler.RegisterCircuitBreaker("mongodb_quotes", db.QuotesCircuitBreaker)
		healthHandler.RegisterCircuitBreaker("mongodb_logs", db.LogsCircuitBreaker)
	}

	if services.Redis != nil {
		client := services.Redis
		healthHandler.RegisterChecker("redis", http.HealthCheckFunc(func(ctx context.Context) error {
			return client.Ping(ctx).Err()
		}))
	}

	var rateLimiter *middleware.RateLimiter
	if cfg.Server.RateLimit > 0 {
		rateLimiter = middleware.NewRateLimiter(cfg.Server.RateLimit, cfg.Server.RateWindow)
	}

	routerCfg := http.RouterConfig{
		RateLimit:         cfg.Server.RateLimit,
		RateWindow:        cfg.Server.RateWindow,
		RequestTimeout:    cfg.Server.RequestTimeout,
		CORSOrigins:       cfg.Server.CORSOrigins,
		SwaggerUser:       cfg.Server.SwaggerUser,
		SwaggerPass:       cfg.Server.SwaggerPass,
		EnableIdempotency: true,
		IdempotencyStore:  services.IdempotencyStore,
		RateLimiter:       rateLimiter,
	}
	if auditLogger != nil {
		routerCfg.AuditSink = auditLogger
	}

	return &RouterComponents{
		Handler:       http.NewHandler(services.Calculator, opts...),
		HealthHandler: healthHandler,
		Config:        routerCfg,
		RateLimiter:   rateLimiter,
		AuditLogger:   auditLogger,
	}
}
