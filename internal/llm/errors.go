package llm

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

var (
	// the provider answered but no assistant text could be found
	ErrUnexpectedResponse = errors.New("unexpected response format")

	// the provider client was built without credentials
	ErrNoAPIKey = errors.New("API key not configured")
)

// non-2xx answer from the provider
type APIError struct {
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	if msg := providerMessage(e.Body); msg != "" {
		return fmt.Sprintf("API request failed with status %d: %s", e.StatusCode, msg)
	}

	return fmt.Sprintf("API request failed with status %d: %s", e.StatusCode, strings.TrimSpace(e.Body))
}

// extracts error.message from OpenAI and Anthropic error bodies
func providerMessage(body string) string {
	var parsed struct {
		Error struct {
			Message string `json:"message"`
		} `json:"error"`
	}

	if err := json.Unmarshal([]byte(body), &parsed); err != nil {
		return ""
	}

	return parsed.Error.Message
}
