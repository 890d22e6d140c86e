package query

import "github.com/gin-gonic/gin"

// registers the query endpoint; middlewares run before the handler
func RegisterRoutes(router *gin.RouterGroup, asker Asker, middlewares ...gin.HandlerFunc) {
	handlers := append(middlewares, Handler(asker))
	router.POST("/query", handlers...)
}
