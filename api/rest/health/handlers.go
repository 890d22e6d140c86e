package health

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

const (
	serviceName = "codementor"
	Version     = "1.0.0"
)

// Handler godoc
// @Summary Health check
// @Tags health
// @Produce json
// @Success 200 {object} Response
// @Router /health [get]
func Handler(model string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, Response{
			Status:  "healthy",
			Service: serviceName,
			Version: Version,
			Model:   model,
		})
	}
}

// PingHandler godoc
// @Summary Liveness probe
// @Tags health
// @Produce json
// @Success 200 {object} PingResponse
// @Router /api/ping [get]
func PingHandler(c *gin.Context) {
	c.JSON(http.StatusOK, PingResponse{Message: "pong"})
}
