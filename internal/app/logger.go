package app

import (
	"github.com/guttosm/cart-service/config"
	"github.com/guttosm/cart-service/internal/logger"
)

// InitializeLogger configures the global zerolog logger.
func InitializeLogger(cfg config.LogConfig) {
	level := cfg.Level
	if level == "" {
		level = "info"
	}
	logger.Init(level, cfg.Pretty)
}
