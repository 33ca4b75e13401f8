package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/dklebine/productioncalculator/internal/i18n"
	"github.com/dklebine/productioncalculator/internal/metrics"
	"github.com/dklebine/productioncalculator/internal/middleware"
)

// infrastructurePaths are neither compressed nor written to the request log.
var infrastructurePaths = []string{"/healthz", "/readyz", "/metrics"}

// RouterConfig holds router configuration options.
type RouterConfig struct {
	RateLimit      int
	RateWindow     time.Duration
	RequestTimeout time.Duration
	CORSOrigins    []string
	SwaggerUser    string
	SwaggerPass    string

	EnableIdempotency bool
	// IdempotencyStore defaults to an in-memory store when idempotency is enabled.
	IdempotencyStore middleware.IdempotencyStore
	// RateLimiter overrides the limiter built from RateLimit and RateWindow,
	// so the caller can stop it on shutdown.
	RateLimiter *middleware.RateLimiter
	AuditSink   middleware.AuditSink
}

// DefaultRouterConfig returns the default router configuration.
func DefaultRouterConfig() RouterConfig {
	return RouterConfig{
		RateLimit:      100,
		RateWindow:     time.Minute,
		RequestTimeout: middleware.DefaultRequestTimeout,
	}
}

// NewRouter creates and configures the Gin router for the quote service.
func NewRouter(handler *Handler, healthHandler *HealthHandler, cfg RouterConfig) *gin.Engine {
	router := gin.New()

	configureGlobalMiddleware(router, &cfg)
	registerInfrastructureRoutes(router, healthHandler, &cfg)

	api := router.Group("/api")
	configureAPIMiddleware(api, &cfg)

	if handler != nil {
		NewQuoteRoutes(handler).RegisterRoutes(api)
	}

	router.NoRoute(func(c *gin.Context) {
		NewResponseBuilder(c).Error(http.StatusNotFound, i18n.ErrKeyNotFound, nil)
	})

	return router
}

// configureGlobalMiddleware sets up middleware applied to all routes.
func configureGlobalMiddleware(router *gin.Engine, cfg *RouterConfig) {
	router.Use(
		middleware.CORS(cfg.CORSOrigins),
		middleware.RequestID(),
		middleware.Recovery(),
		metrics.PrometheusMiddleware(),
		middleware.Compression(infrastructurePaths...),
		middleware.RequestLogger(cfg.AuditSink, infrastructurePaths...),
		middleware.ErrorHandler(),
	)
}

// registerInfrastructureRoutes registers health, metrics, and documentation routes.
func registerInfrastructureRoutes(router *gin.Engine, healthHandler *HealthHandler, cfg *RouterConfig) {
	if healthHandler != nil {
		healthHandler.Register(router)
	}
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	if cfg.SwaggerUser != "" && cfg.SwaggerPass != "" {
		authorized := router.Group("/swagger", gin.BasicAuth(gin.Accounts{
			cfg.SwaggerUser: cfg.SwaggerPass,
		}))
		authorized.GET("/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	} else {
		router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}
}

// configureAPIMiddleware sets up rate limiting, the request deadline and idempotency for the API group.
func configureAPIMiddleware(api *gin.RouterGroup, cfg *RouterConfig) {
	limiter := cfg.RateLimiter
	if limiter == nil && cfg.RateLimit > 0 {
		limiter = middleware.NewRateLimiter(cfg.RateLimit, cfg.RateWindow)
	}
	if limiter != nil {
		api.Use(limiter.RateLimit())
	}

	api.Use(middleware.Timeout(cfg.RequestTimeout))

	if cfg.EnableIdempotency {
		idempotencyCfg := middleware.IdempotencyConfig{Store: cfg.IdempotencyStore, Enabled: true}
		if idempotencyCfg.Store == nil {
			idempotencyCfg = middleware.DefaultIdempotencyConfig()
		}
		api.Use(middleware.Idempotency(idempotencyCfg))
	}
}
