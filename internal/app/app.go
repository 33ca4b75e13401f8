package app

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/dklebine/productioncalculator/config"
	"github.com/dklebine/productioncalculator/internal/http"
)

// App is the wired service: the router plus everything that must be released on shutdown.
type App struct {
	Router *gin.Engine

	services *ServiceComponents
	database *DatabaseComponents
	router   *RouterComponents
}

// InitializeApp creates and wires all application dependencies.
// The database is optional; a misconfigured Redis is fatal.
func InitializeApp(cfg config.Config) (*App, error) {
	InitializeLogger(cfg.Log)

	services, err := InitializeServices(cfg)
	if err != nil {
		return nil, err
	}

	database := InitializeDatabase(cfg.Database)
	routerComponents := InitializeRouter(services, database, cfg)

	return &App{
		Router:   http.NewRouter(routerComponents.Handler, routerComponents.HealthHandler, routerComponents.Config),
		services: services,
		database: database,
		router:   routerComponents,
	}, nil
}

// Close flushes pending audit entries and releases background workers and connections.
func (a *App) Close(ctx context.Context) {
	if a == nil {
		return
	}
	if a.router != nil {
		a.router.AuditLogger.Stop()
		if a.router.RateLimiter != nil {
			a.router.RateLimiter.Stop()
		}
	}
	a.services.Close()
	a.database.Close(ctx)
	log.Info().Msg("Application resources released")
}
