package main

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/swaggo/swag"

	"codeberg.org/codementor/server/api/rest/health"
	"codeberg.org/codementor/server/api/rest/query"
	"codeberg.org/codementor/server/docs"
	"codeberg.org/codementor/server/internal/errors"
)

// sets up all API routes and middleware
func RegisterRoutes(router *gin.Engine, server *Server) {
	router.Use(CORSMiddleware(server.config.CORSAllowedOrigins))
	router.GET("/health", health.Handler(server.services.Completer.Model()))

	api := router.Group("/api")

	{
		api.GET("/ping", health.PingHandler)
		api.GET("/openapi.json", OpenAPIHandler)

		query.RegisterRoutes(api, server.services.Assistant, server.limiter.Middleware())
	}

	router.NoRoute(func(c *gin.Context) {
		errors.NotFound(c, "route")
	})
}

// serves the registered OpenAPI document
func OpenAPIHandler(c *gin.Context) {
	doc, err := swag.ReadDoc(docs.SwaggerInfo.InstanceName())
	if err != nil {
		errors.InternalError(c, "failed to read API documentation", err)
		return
	}

	c.Data(http.StatusOK, "application/json; charset=utf-8", []byte(doc))
}
