package errors

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"codeberg.org/codementor/server/internal/logger"
)

// Error Handling Guidelines:
//
// For HTTP REST handlers:
//   - Use errors.InternalError(), errors.BadRequest(), etc. for failed requests
//     These functions handle both logging and HTTP response automatically
//   - Use logger.ErrorErr() only for non-critical errors where processing continues
//   - Never call both logger.ErrorErr() and errors.InternalError() for the same error
//
// For services and internal packages:
//   - Return wrapped errors with context using fmt.Errorf("context: %w", err)
//     or one of the typed errors of the package
//   - Let the caller (handler) decide how to log and respond
//   - Do not log errors in non-handler code (avoid double logging)

// body of every error answer
type ErrorResponse struct {
	Error string `json:"error"`
}

// returns a 400 bad request error
func BadRequest(c *gin.Context, message string) {
	if message == "" {
		message = "invalid request"
	}

	logger.FromContext(c.Request.Context()).Warn("request rejected",
		"path", c.Request.URL.Path,
		"reason", message,
	)

	c.AbortWithStatusJSON(http.StatusBadRequest, ErrorResponse{Error: message})
}

// returns a 500 internal server error.
// message is sent to the client as is, err is only logged.
func InternalError(c *gin.Context, message string, err error) {
	if message == "" {
		message = "an error occurred"
	}

	info := classifyError(err)

	logger.FromContext(c.Request.Context()).Error(message,
		"error", errString(err),
		"category", info.category,
		"path", c.Request.URL.Path,
		"method", c.Request.Method,
	)

	c.AbortWithStatusJSON(http.StatusInternalServerError, ErrorResponse{Error: message})
}

// returns a 404 not found error
func NotFound(c *gin.Context, resource string) {
	message := "resource not found"

	if resource != "" {
		message = resource + " not found"
	}

	c.AbortWithStatusJSON(http.StatusNotFound, ErrorResponse{Error: message})
}

// returns a 429 too many requests error
func TooManyRequests(c *gin.Context, message string) {
	if message == "" {
		message = "too many requests"
	}

	c.AbortWithStatusJSON(http.StatusTooManyRequests, ErrorResponse{Error: message})
}

func errString(err error) string {
	if err == nil {
		return ""
	}

	return err.Error()
}
