package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"golang.org/x/time/rate"
)

const (
	defaultTimeout   = 60 * time.Second
	maxErrorBodySize = 8 << 10
)

// builds the HTTP client a provider client owns for its lifetime
func newHTTPClient(timeout time.Duration) *http.Client {
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	return &http.Client{
		Timeout: timeout, // total request timeout
		Transport: &http.Transport{
			Proxy:               http.ProxyFromEnvironment,
			MaxIdleConns:        100,
			MaxIdleConnsPerHost: 10,
			IdleConnTimeout:     90 * time.Second,
			TLSHandshakeTimeout: 10 * time.Second,
		},
	}
}

// outbound limiter; a non-positive rate disables limiting
func newRateLimiter(perSecond float64, burst int) *rate.Limiter {
	if perSecond <= 0 {
		return rate.NewLimiter(rate.Inf, 0)
	}

	if burst < 1 {
		burst = 1
	}

	return rate.NewLimiter(rate.Limit(perSecond), burst)
}

// posts a JSON body and decodes the provider reply
func postJSON(ctx context.Context, client *http.Client, limiter *rate.Limiter, url string, headers map[string]string, body any) (*Reply, error) {
	jsonData, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(jsonData))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	// rate limiting
	if err := limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limiter error: %w", err)
	}

	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to send request: %w", err)
	}

	defer resp.Body.Close() //nolint:errcheck

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		data, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodySize)) //nolint:errcheck
		return nil, &APIError{StatusCode: resp.StatusCode, Body: string(data)}
	}

	var reply Reply
	if err := json.NewDecoder(resp.Body).Decode(&reply); err != nil {
		return nil, fmt.Errorf("%w: failed to decode response: %v", ErrUnexpectedResponse, err)
	}

	return &reply, nil
}

// converts a decoded reply into a Completion
func completionFromReply(reply *Reply, fallbackModel string) (*Completion, error) {
	text, err := NormalizeReply(*reply)
	if err != nil {
		return nil, err
	}

	model := reply.Model
	if model == "" {
		model = fallbackModel
	}

	return &Completion{
		Text:  text,
		Usage: reply.TokenUsage(),
		Model: model,
	}, nil
}
