package main

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"codeberg.org/codementor/server/internal/logger"
)

const headerRequestID = "X-Request-ID"

// builds the CORS middleware; "*" allows any origin
func CORSMiddleware(origins []string) gin.HandlerFunc {
	corsConfig := cors.Config{
		AllowMethods:  []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Accept", headerRequestID},
		ExposeHeaders: []string{headerRequestID, "X-RateLimit-Limit", "X-RateLimit-Remaining", "X-RateLimit-Reset"},
		MaxAge:        12 * time.Hour,
	}

	allowAll := len(origins) == 0
	for _, o := range origins {
		if o == "*" {
			allowAll = true
		}
	}

	if allowAll {
		corsConfig.AllowAllOrigins = true
	} else {
		corsConfig.AllowOrigins = origins
	}

	return cors.New(corsConfig)
}

// attaches a request-scoped logger carrying the request id and logs the outcome
func RequestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		requestID := c.GetHeader(headerRequestID)
		if _, err := uuid.Parse(requestID); err != nil {
			requestID = uuid.NewString()
		}

		c.Header(headerRequestID, requestID)
		c.Set("request_id", requestID)

		log := logger.With(
			"request_id", requestID,
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
		)
		c.Request = c.Request.WithContext(logger.WithContext(c.Request.Context(), log))

		c.Next()

		log.Info("request completed",
			"status", c.Writer.Status(),
			"latency_ms", time.Since(start).Milliseconds(),
			"ip", c.ClientIP(),
		)
	}
}
