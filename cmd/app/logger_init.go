package main

import (
	"github.com/ufoaiorg/ufoai-sub020/internal/config"
	"github.com/ufoaiorg/ufoai-sub020/internal/logger"
)

// initLogger initializes the logger from the application configuration
func initLogger(cfg *config.Config) {
	// source info only in dev
	addSource := cfg.Environment == config.DefaultEnvironment

	logger.InitLogger(logger.NewConfig(
		cfg.LogLevel,
		cfg.LogFormat,
		cfg.ServiceName,
		cfg.Version,
		cfg.Environment,
		addSource,
	))
}
