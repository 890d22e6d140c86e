package main

import (
	"github.com/gin-gonic/gin"

	"codeberg.org/codementor/server/internal/assistant"
	"codeberg.org/codementor/server/internal/config"
	"codeberg.org/codementor/server/internal/llm"
	"codeberg.org/codementor/server/internal/ratelimit"
)

// holds all dependencies and state for the API server
type Server struct {
	config   *config.Config
	services *Services
	limiter  *ratelimit.Limiter
	router   *gin.Engine
}

// holds the outbound provider client and the assistant built on it
type Services struct {
	Completer llm.Completer
	Assistant *assistant.Assistant
}
