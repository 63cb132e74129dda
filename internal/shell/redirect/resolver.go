// Package redirect resolves URL redirect chains over HTTP.
package redirect

import (
	"context"
	"fmt"
	"net/http"
	"time"
)

// =============================================================================
// Resolver
// =============================================================================

// Resolver follows a URL's redirect chain to its terminal destination.
type Resolver interface {
	// Resolve returns the final URL after all redirects are followed.
	Resolve(ctx context.Context, rawURL string) (string, error)
}

// HTTPResolver implements Resolver using a HEAD request. The http.Client
// follows redirects automatically (up to its built-in limit of 10 hops);
// the terminal request's URL is the final destination.
type HTTPResolver struct {
	httpClient *http.Client
}

// NewHTTPResolver creates a resolver with the given per-request timeout.
func NewHTTPResolver(timeout time.Duration) *HTTPResolver {
	if timeout == 0 {
		timeout = 15 * time.Second
	}
	return &HTTPResolver{
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// Resolve follows rawURL's redirect chain and returns the final URL.
// The request is header-only; no response body is fetched.
func (r *HTTPResolver) Resolve(ctx context.Context, rawURL string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodHead, rawURL, nil)
	if err != nil {
		return "", fmt.Errorf("invalid url: %w", err)
	}

	resp, err := r.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to fetch url: %w", err)
	}
	defer resp.Body.Close()

	return resp.Request.URL.String(), nil
}
