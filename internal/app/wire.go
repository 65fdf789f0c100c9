package app

import (
	"github.com/agbru/mathsvc/internal/ackermann"
	"github.com/agbru/mathsvc/internal/config"
	"github.com/agbru/mathsvc/internal/engine"
	"github.com/agbru/mathsvc/internal/logging"
	"github.com/agbru/mathsvc/internal/server"
)

// EngineOptions derives the engine settings from cfg.
func EngineOptions(cfg config.AppConfig, logger logging.Logger) engine.Options {
	return engine.Options{
		Ackermann: ackermann.Limits{
			MaxDepth: cfg.AckermannMaxDepth,
			MaxSteps: cfg.AckermannMaxSteps,
			MaxBits:  cfg.AckermannMaxBits,
		},
		MaxFibonacciN: cfg.MaxFibonacciN,
		MaxFactorialN: cfg.MaxFactorialN,
		Logger:        logger,
	}
}

// ServerConfig derives the HTTP server settings from cfg.
func ServerConfig(cfg config.AppConfig) server.Config {
	sc := server.DefaultConfig()
	sc.Addr = cfg.Addr
	sc.ReadTimeout = cfg.ReadTimeout
	sc.WriteTimeout = cfg.WriteTimeout
	sc.ShutdownTimeout = cfg.ShutdownTimeout
	if len(cfg.CORSOrigins) == 0 {
		sc.Security.EnableCORS = false
	} else {
		sc.Security.AllowedOrigins = cfg.CORSOrigins
	}
	return sc
}
