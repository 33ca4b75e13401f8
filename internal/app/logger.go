package app

import (
	"github.com/dklebine/productioncalculator/config"
	"github.com/dklebine/productioncalculator/internal/logger"
)

// InitializeLogger configures the global logger from the log settings.
func InitializeLogger(cfg config.LogConfig) {
	logger.Init(cfg.Level, cfg.Pretty)
}
