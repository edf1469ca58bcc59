// Package discovery fetches etcd cluster discovery tokens.
package discovery

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// DefaultBaseURL is the public etcd discovery service.
const DefaultBaseURL = "https://discovery.etcd.io"

// Client fetches discovery tokens from a token-issuance endpoint.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a Client against the public discovery service.
func NewClient() *Client {
	return &Client{
		baseURL: DefaultBaseURL,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// NewToken requests a fresh discovery token. The endpoint responds with a
// full discovery URL; the token is its last path component.
func (c *Client) NewToken(ctx context.Context) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/new", nil)
	if err != nil {
		return "", fmt.Errorf("failed to build discovery request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("discovery request failed: %w", err)
	}
	defer resp.Body.Close() //nolint:errcheck

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read discovery response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("discovery service returned HTTP %d", resp.StatusCode)
	}

	raw := strings.TrimSpace(string(body))
	token := raw[strings.LastIndex(raw, "/")+1:]
	if token == "" {
		return "", fmt.Errorf("discovery service returned no token in %q", raw)
	}
	return token, nil
}
