package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"codeberg.org/codementor/server/internal/config"
	"codeberg.org/codementor/server/internal/logger"
)

// @title Codementor API
// @version 1.0
// @description Relays questions about a codebase, with selected file excerpts, to an LLM
// @description that explains and guides without handing out runnable code.

// @license.name MIT

// @BasePath /

func main() {
	// load configuration from environment
	cfg, err := config.LoadEnvironmentVariables()
	if err != nil {
		logger.Fatal("failed to load configuration", "error", err)
	}

	logger.SetDefault(logger.New(cfg.Environment, cfg.LogLevel))
	logger.Info("starting codementor server", "environment", cfg.Environment)

	// create server with all dependencies
	srv, err := NewServer(cfg)
	if err != nil {
		logger.Fatal("failed to create server", "error", err)
	}

	// the write timeout has to outlast the outbound LLM call
	httpServer := &http.Server{
		Addr:              fmt.Sprintf(":%s", cfg.Port),
		Handler:           srv.router,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      cfg.LLMTimeout + 15*time.Second,
		IdleTimeout:       60 * time.Second,
	}

	// start server in goroutine
	go func() {
		logger.Info("server listening", "port", cfg.Port)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("server failed to start", "error", err)
		}
	}()

	// wait for interrupt signal for graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down server")

	// graceful shutdown with 10 second timeout
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := httpServer.Shutdown(ctx); err != nil {
		logger.Error("server forced to shutdown", "error", err)
	}

	srv.Close() //nolint:errcheck,gosec // best-effort cleanup on shutdown

	logger.Info("server stopped")
}
