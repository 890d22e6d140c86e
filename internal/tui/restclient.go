package tui

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// manages HTTP requests to the query REST API
type QueryClient struct {
	endpoint   string
	timeout    time.Duration
	httpClient *http.Client
}

// creates a client for the server at endpoint, e.g. http://localhost:8080
func NewQueryClient(endpoint string, timeout time.Duration) *QueryClient {
	if timeout <= 0 {
		timeout = defaultRequestTimeout
	}

	return &QueryClient{
		endpoint: strings.TrimSuffix(endpoint, "/"),
		timeout:  timeout,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// sends one query and waits for the assistant's answer
func (c *QueryClient) Ask(ctx context.Context, payload QueryRequest) (*QueryResult, error) {
	payloadBytes, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	// create HTTP request
	url := c.endpoint + "/api/query"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payloadBytes))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")

	start := time.Now()

	// send request
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close() //nolint:errcheck

	// read response body
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	// handle error responses
	if resp.StatusCode != http.StatusOK {
		var errResp errorResponse
		if err := json.Unmarshal(body, &errResp); err == nil && errResp.Error != "" {
			return nil, fmt.Errorf("server error (%d): %s", resp.StatusCode, errResp.Error)
		}
		return nil, fmt.Errorf("request failed with status %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	// parse success response
	var result queryResponse
	if err := json.Unmarshal(body, &result); err != nil {
		return nil, fmt.Errorf("failed to parse response: %w", err)
	}

	return &QueryResult{
		Assistant: result.Assistant,
		Usage:     result.Usage,
		Elapsed:   time.Since(start),
	}, nil
}

// returns a tea.Cmd that sends the query
func (c *QueryClient) AskCmd(payload QueryRequest) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), c.timeout)
		defer cancel()

		result, err := c.Ask(ctx, payload)
		if err != nil {
			return AnswerErrorMsg{err: err}
		}

		return AnswerMsg{result: result}
	}
}
