// Package base provides shared HTTP client infrastructure for YouTube Data
// API requests: a pooled transport, bounded timeouts, a concurrency
// semaphore, and credential-redacting URL sanitization for logs.
//
// Every call is a single request-response transaction. Failures are reported
// to the caller as-is; there is no retry loop and no backoff.
package base

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"github.com/olgasafonova/youtube-mcp-server/internal/infra"
)

const (
	// DefaultTimeout bounds each outbound API request
	DefaultTimeout = 30 * time.Second

	// MaxConcurrentRequests limits parallel outbound API calls
	MaxConcurrentRequests = 5

	// DefaultUserAgent identifies this server to the YouTube API
	DefaultUserAgent = "youtube-mcp-server/1.0 (github.com/olgasafonova/youtube-mcp-server)"
)

// Client provides common HTTP infrastructure with response caching,
// request deduplication, and bounded concurrency.
type Client struct {
	HTTPClient *http.Client
	Logger     *slog.Logger
	Cache      *infra.Cache
	Dedup      *infra.Deduplicator
	semaphore  chan struct{}
}

// ClientOption configures the Client.
type ClientOption func(*Client)

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(hc *http.Client) ClientOption {
	return func(c *Client) {
		c.HTTPClient = hc
	}
}

// WithLogger sets a custom logger.
func WithLogger(l *slog.Logger) ClientOption {
	return func(c *Client) {
		c.Logger = l
	}
}

// WithCache sets a custom cache.
func WithCache(cache *infra.Cache) ClientOption {
	return func(c *Client) {
		c.Cache = cache
	}
}

// WithTimeout sets the per-request timeout on the default HTTP client.
func WithTimeout(d time.Duration) ClientOption {
	return func(c *Client) {
		c.HTTPClient.Timeout = d
	}
}

// NewClient creates a base client with default settings.
func NewClient(opts ...ClientOption) *Client {
	c := &Client{
		HTTPClient: newHTTPClient(DefaultTimeout),
		Logger:     slog.Default(),
		Cache:      infra.NewCache(infra.DefaultMaxCacheEntries),
		Dedup:      infra.NewDeduplicator(),
		semaphore:  make(chan struct{}, MaxConcurrentRequests),
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// Close releases resources held by the client.
func (c *Client) Close() {
	if c.Cache != nil {
		c.Cache.Close()
	}
}

// AcquireSlot blocks until a request slot is available or ctx is canceled.
func (c *Client) AcquireSlot(ctx context.Context) error {
	select {
	case c.semaphore <- struct{}{}:
		return nil
	case <-ctx.Done():
		return fmt.Errorf("context canceled while waiting for request slot: %w", ctx.Err())
	}
}

// ReleaseSlot releases a request slot.
func (c *Client) ReleaseSlot() {
	<-c.semaphore
}

// RequestConfig configures a single HTTP GET.
type RequestConfig struct {
	URL       string
	UserAgent string
}

// Get performs exactly one HTTP GET and returns the response body and status
// code. Transport-level failures are returned as errors; HTTP status handling
// is left to the caller so that all failures can collapse into one shape.
func (c *Client) Get(ctx context.Context, cfg RequestConfig) ([]byte, int, error) {
	if err := c.AcquireSlot(ctx); err != nil {
		return nil, 0, err
	}
	defer c.ReleaseSlot()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, cfg.URL, nil)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Accept", "application/json")
	if cfg.UserAgent != "" {
		req.Header.Set("User-Agent", cfg.UserAgent)
	} else {
		req.Header.Set("User-Agent", DefaultUserAgent)
	}

	start := time.Now()
	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		c.Logger.Warn("API request failed",
			"url", SanitizeURL(cfg.URL),
			"error", err)
		return nil, 0, fmt.Errorf("request failed: %w", err)
	}

	body, err := readAndClose(resp)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to read response: %w", err)
	}

	c.Logger.Debug("API request completed",
		"url", SanitizeURL(cfg.URL),
		"status", resp.StatusCode,
		"bytes", len(body),
		"duration_ms", time.Since(start).Milliseconds())

	return body, resp.StatusCode, nil
}

// SanitizeURL strips the API key query parameter from a URL so it can be
// logged or traced. The key must never appear in logs, spans, or errors.
func SanitizeURL(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil {
		return "<unparseable url>"
	}
	q := u.Query()
	if q.Has("key") {
		q.Set("key", "REDACTED")
		u.RawQuery = q.Encode()
	}
	return u.String()
}

// readAndClose reads the response body and closes it.
func readAndClose(resp *http.Response) ([]byte, error) {
	body, err := io.ReadAll(resp.Body)
	_ = resp.Body.Close()
	return body, err
}

// newHTTPClient creates an HTTP client with pooled transport settings.
func newHTTPClient(timeout time.Duration) *http.Client {
	transport := &http.Transport{
		MaxIdleConns:          100,
		MaxIdleConnsPerHost:   20,
		MaxConnsPerHost:       50,
		IdleConnTimeout:       120 * time.Second,
		TLSHandshakeTimeout:   10 * time.Second,
		ResponseHeaderTimeout: 30 * time.Second,
		ForceAttemptHTTP2:     true,
	}

	return &http.Client{
		Timeout:   timeout,
		Transport: transport,
	}
}
