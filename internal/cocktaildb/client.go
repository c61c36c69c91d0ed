// Package cocktaildb is the HTTP client for TheCocktailDB search API. It
// issues one GET per query and decodes the "drinks" envelope into
// domain.Drink records.
package cocktaildb

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/hammamikhairi/cocktailbox/internal/domain"
	"github.com/hammamikhairi/cocktailbox/internal/logger"
	"github.com/hammamikhairi/cocktailbox/internal/query"
)

// DefaultBaseURL is the public v1 API root with the shared test key.
const DefaultBaseURL = "https://www.thecocktaildb.com/api/json/v1/1/"

// maxBody caps how much of a response is read.
const maxBody = 4 << 20

// Compile-time interface check.
var _ domain.DrinkSource = (*Client)(nil)

// ClientOption configures the Client.
type ClientOption func(*Client)

// WithBaseURL overrides the API root (useful for testing).
func WithBaseURL(u string) ClientOption {
	return func(c *Client) {
		if u != "" {
			c.baseURL = u
		}
	}
}

// WithHTTPClient sets a custom http.Client.
func WithHTTPClient(h *http.Client) ClientOption {
	return func(c *Client) { c.http = h }
}

// WithTimeout sets the per-request timeout.
func WithTimeout(d time.Duration) ClientOption {
	return func(c *Client) {
		if d > 0 {
			c.http.Timeout = d
		}
	}
}

// WithUserAgent sets the User-Agent header.
func WithUserAgent(ua string) ClientOption {
	return func(c *Client) { c.ua = ua }
}

// Client talks to the cocktail search API.
type Client struct {
	baseURL string
	ua      string
	http    *http.Client
	log     *logger.Logger
}

// NewClient creates an API client.
func NewClient(log *logger.Logger, opts ...ClientOption) *Client {
	c := &Client{
		baseURL: DefaultBaseURL,
		ua:      "cocktailbox/1.0",
		http:    &http.Client{Timeout: 10 * time.Second},
		log:     log.Named("cocktaildb"),
	}
	for _, o := range opts {
		o(c)
	}
	return c
}

// Search resolves q to drink records. A query with no matches returns an
// empty slice and a nil error.
func (c *Client) Search(ctx context.Context, q domain.Query) ([]domain.Drink, error) {
	target := query.Target(c.baseURL, q)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return nil, fmt.Errorf("cocktaildb: create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if c.ua != "" {
		req.Header.Set("User-Agent", c.ua)
	}

	c.log.Debug("GET %s", target)
	start := time.Now()

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("cocktaildb: request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBody))
	if err != nil {
		return nil, fmt.Errorf("cocktaildb: read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("cocktaildb: %w: %s: %s", domain.ErrBadStatus, resp.Status, truncate(string(body), 512))
	}

	drinks, err := decodeDrinks(body)
	if err != nil {
		return nil, fmt.Errorf("cocktaildb: %w: %v", domain.ErrDecode, err)
	}

	c.log.Debug("%s: %d drinks in %s", q, len(drinks), time.Since(start).Round(time.Millisecond))
	return drinks, nil
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n-3] + "..."
}
