package errors

import (
	"context"
	"errors"
	"net"
	"strings"

	"codeberg.org/codementor/server/internal/llm"
)

// error categories for classification
const (
	CategoryTimeout    = "timeout"
	CategoryNetwork    = "network"
	CategoryAuth       = "auth"
	CategoryRateLimit  = "rate_limit"
	CategoryValidation = "validation"
	CategoryUpstream   = "upstream"
	CategoryUnknown    = "unknown"
)

type ErrorInfo struct {
	category string
}

// analyzes an error and returns its category
func classifyError(err error) ErrorInfo {
	if err == nil {
		return ErrorInfo{CategoryUnknown}
	}

	// context errors
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return ErrorInfo{CategoryTimeout}
	}

	var netErr net.Error
	if errors.As(err, &netErr) {
		if netErr.Timeout() {
			return ErrorInfo{CategoryTimeout}
		}

		return ErrorInfo{CategoryNetwork}
	}

	// provider status codes
	var apiErr *llm.APIError
	if errors.As(err, &apiErr) {
		switch {
		case apiErr.StatusCode == 401 || apiErr.StatusCode == 403:
			return ErrorInfo{CategoryAuth}
		case apiErr.StatusCode == 429:
			return ErrorInfo{CategoryRateLimit}
		case apiErr.StatusCode >= 400 && apiErr.StatusCode < 500:
			return ErrorInfo{CategoryValidation}
		default:
			return ErrorInfo{CategoryUpstream}
		}
	}

	if errors.Is(err, llm.ErrNoAPIKey) {
		return ErrorInfo{CategoryAuth}
	}

	if errors.Is(err, llm.ErrUnexpectedResponse) {
		return ErrorInfo{CategoryUpstream}
	}

	// fallback to string matching for unknown error types
	errMsg := strings.ToLower(err.Error())

	if strings.Contains(errMsg, "timeout") || strings.Contains(errMsg, "deadline") {
		return ErrorInfo{CategoryTimeout}
	}

	if strings.Contains(errMsg, "connection") || strings.Contains(errMsg, "network") ||
		strings.Contains(errMsg, "dial") {
		return ErrorInfo{CategoryNetwork}
	}

	if strings.Contains(errMsg, "rate limit") {
		return ErrorInfo{CategoryRateLimit}
	}

	if strings.Contains(errMsg, "unauthorized") || strings.Contains(errMsg, "forbidden") {
		return ErrorInfo{CategoryAuth}
	}

	return ErrorInfo{CategoryUnknown}
}
