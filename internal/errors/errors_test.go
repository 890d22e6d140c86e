package errors

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"codeberg.org/codementor/server/internal/llm"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newTestContext() (*gin.Context, *httptest.ResponseRecorder) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/api/query", nil)

	return c, w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]string {
	t.Helper()

	var body map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))

	return body
}

func TestBadRequest(t *testing.T) {
	c, w := newTestContext()

	BadRequest(c, "'query' field is required in payload.")

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.True(t, c.IsAborted())
	assert.Equal(t, map[string]string{"error": "'query' field is required in payload."}, decodeBody(t, w))
}

func TestBadRequestDefaultMessage(t *testing.T) {
	c, w := newTestContext()

	BadRequest(c, "")

	assert.Equal(t, "invalid request", decodeBody(t, w)["error"])
}

func TestInternalError(t *testing.T) {
	c, w := newTestContext()

	InternalError(c, "Error occurred while calling the LLM API: boom", fmt.Errorf("boom"))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, "Error occurred while calling the LLM API: boom", decodeBody(t, w)["error"])
}

func TestNotFoundAndTooManyRequests(t *testing.T) {
	c, w := newTestContext()
	NotFound(c, "route")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "route not found", decodeBody(t, w)["error"])

	c, w = newTestContext()
	TooManyRequests(c, "")
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.Equal(t, "too many requests", decodeBody(t, w)["error"])
}

func TestClassifyError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"nil", nil, CategoryUnknown},
		{"deadline", fmt.Errorf("failed to send request: %w", context.DeadlineExceeded), CategoryTimeout},
		{"canceled", context.Canceled, CategoryTimeout},
		{"unauthorized status", &llm.APIError{StatusCode: 401}, CategoryAuth},
		{"rate limited status", &llm.APIError{StatusCode: 429}, CategoryRateLimit},
		{"bad request status", &llm.APIError{StatusCode: 400}, CategoryValidation},
		{"server status", &llm.APIError{StatusCode: 503}, CategoryUpstream},
		{"missing key", llm.ErrNoAPIKey, CategoryAuth},
		{"bad shape", fmt.Errorf("%w: empty", llm.ErrUnexpectedResponse), CategoryUpstream},
		{"dial text", fmt.Errorf("dial tcp: connection refused"), CategoryNetwork},
		{"other", fmt.Errorf("something odd"), CategoryUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, classifyError(tt.err).category)
		})
	}
}
