// Package main is the entry point for the production quote service.
//
// @title           Production Quote API
// @version         1.0.0
// @description     Prices photo and video production bookings and keeps a history of saved quotes.
//
// @termsOfService  http://swagger.io/terms/
//
// @contact.name   API Support
// @contact.email  support@example.com
//
// @license.name  MIT
// @license.url   https://opensource.org/licenses/MIT
//
// @host      localhost:8080
// @BasePath  /
//
// @tag.name        Quotes
// @tag.description Quote calculation, history and export
//
// @tag.name        Catalog
// @tag.description Service tiers and form limits
//
// @tag.name        Health
// @tag.description Health check endpoints
package main

import (
	"github.com/rs/zerolog/log"

	_ "github.com/dklebine/productioncalculator/docs" // swagger docs

	"github.com/dklebine/productioncalculator/config"
	"github.com/dklebine/productioncalculator/internal/app"
)

func main() {
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatal().Err(err).Msg("Invalid configuration")
	}

	application, err := app.InitializeApp(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize application")
	}

	server := app.NewServer(application.Router, cfg.Server.Port,
		app.WithShutdownTimeout(cfg.Server.ShutdownTimeout),
		app.WithCleanup(application.Close),
	)

	if err := server.Run(); err != nil {
		log.Fatal().Err(err).Msg("Server error")
	}
}
