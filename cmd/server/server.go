package main

import (
	"fmt"

	"github.com/gin-gonic/gin"

	"codeberg.org/codementor/server/internal/config"
	"codeberg.org/codementor/server/internal/logger"
	"codeberg.org/codementor/server/internal/ratelimit"
)

// creates and configures a new server instance with all dependencies
func NewServer(cfg *config.Config) (*Server, error) {
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	services, err := InitializeServices(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize services: %w", err)
	}

	limiter, err := ratelimit.New(cfg.RateLimit, cfg.RedisURL)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize rate limiter: %w", err)
	}

	logger.Info("llm client initialized",
		"provider", cfg.LLMProvider,
		"model", services.Completer.Model(),
		"timeout", cfg.LLMTimeout.String(),
	)

	router := gin.New()
	router.Use(gin.Recovery(), RequestLogger())

	server := &Server{
		config:   cfg,
		services: services,
		limiter:  limiter,
		router:   router,
	}

	RegisterRoutes(router, server)

	return server, nil
}

// releases connections held by the server
func (s *Server) Close() error {
	return s.limiter.Close()
}
