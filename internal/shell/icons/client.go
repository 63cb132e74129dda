// Package icons provides a client for the external icon-generation service.
package icons

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"
)

// enqueuePath is the icon-generation endpoint, relative to the service base URL.
const enqueuePath = "/functions/v1/get-ingredient-icon"

// =============================================================================
// Client Interface
// =============================================================================

// Client defines the interface for submitting icon-generation requests.
type Client interface {
	// Enqueue submits a single icon-generation request keyed by slug.
	Enqueue(ctx context.Context, slug, displayName string) (*EnqueueResult, error)
}

// EnqueueResult is the service's response to a successful enqueue.
type EnqueueResult struct {
	Slug    string `json:"slug"`
	Status  string `json:"status"`
	IconURL string `json:"icon_url,omitempty"`
}

// =============================================================================
// Error Types
// =============================================================================

// EnqueueError is returned when the icon service responds with a
// non-success status.
type EnqueueError struct {
	Slug       string
	StatusCode int
	Body       string
}

func (e *EnqueueError) Error() string {
	return fmt.Sprintf("icon service returned %d for %q: %s", e.StatusCode, e.Slug, e.Body)
}

// =============================================================================
// HTTP Client Implementation
// =============================================================================

// HTTPClient implements Client against the icon service's HTTP API.
type HTTPClient struct {
	baseURL    string
	anonKey    string
	httpClient *http.Client
	logger     *slog.Logger
}

// Config holds icon service client configuration.
type Config struct {
	BaseURL string // Service base URL, e.g. "https://icons.example.com"
	AnonKey string // Anonymous access token, sent as bearer and apikey
	Timeout time.Duration
}

// NewHTTPClient creates a new icon service client.
func NewHTTPClient(cfg Config, logger *slog.Logger) *HTTPClient {
	if logger == nil {
		logger = slog.Default()
	}
	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = 30 * time.Second
	}
	return &HTTPClient{
		baseURL: cfg.BaseURL,
		anonKey: cfg.AnonKey,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		logger: logger,
	}
}

// enqueueRequest is the request body for the icon-generation endpoint.
type enqueueRequest struct {
	Slug        string `json:"slug"`
	DisplayName string `json:"display_name,omitempty"`
}

// Enqueue submits an icon-generation request for the given slug. The
// service caches generated icons by slug; enqueueing an already-generated
// slug is a cheap no-op on the service side. No retries are attempted.
func (c *HTTPClient) Enqueue(ctx context.Context, slug, displayName string) (*EnqueueResult, error) {
	body, err := json.Marshal(enqueueRequest{
		Slug:        slug,
		DisplayName: displayName,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal enqueue request: %w", err)
	}

	url := c.baseURL + enqueuePath
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.anonKey)
	req.Header.Set("apikey", c.anonKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to send enqueue request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		respBody, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return nil, &EnqueueError{
			Slug:       slug,
			StatusCode: resp.StatusCode,
			Body:       string(respBody),
		}
	}

	var result EnqueueResult
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("failed to decode enqueue response: %w", err)
	}
	if result.Slug == "" {
		result.Slug = slug
	}

	c.logger.Debug("icon enqueued",
		"slug", slug,
		"status", result.Status,
	)

	return &result, nil
}
