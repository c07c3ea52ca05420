// Package youtube provides a client for the YouTube Data API v3 and the MCP
// tool wrappers exposed by the server. Each tool call maps to at most one
// outbound GET; responses are passed through verbatim and failures collapse
// into a uniform error envelope.
package youtube

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"github.com/olgasafonova/youtube-mcp-server/internal/base"
	apierrors "github.com/olgasafonova/youtube-mcp-server/internal/errors"
	"github.com/olgasafonova/youtube-mcp-server/internal/infra"
	"github.com/olgasafonova/youtube-mcp-server/metrics"
)

const (
	// DefaultBaseURL is the YouTube Data API v3 endpoint
	DefaultBaseURL = "https://www.googleapis.com/youtube/v3"

	// DefaultTimeout bounds each API request
	DefaultTimeout = 30 * time.Second

	// DefaultUserAgent identifies this server to the API
	DefaultUserAgent = "youtube-mcp-server/1.0 (github.com/olgasafonova/youtube-mcp-server)"
)

// Cache TTLs per endpoint. Video and channel metadata is stable; search,
// trending, and comment listings churn faster.
const (
	searchCacheTTL   = 5 * time.Minute
	videoCacheTTL    = 15 * time.Minute
	channelCacheTTL  = 15 * time.Minute
	commentsCacheTTL = 2 * time.Minute
	trendingCacheTTL = 5 * time.Minute
)

// Client provides access to the YouTube Data API.
type Client struct {
	*base.Client
	apiKey    string
	baseURL   string
	userAgent string
}

// ClientOption configures the Client (re-export of base.ClientOption).
type ClientOption = base.ClientOption

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(hc *http.Client) ClientOption {
	return base.WithHTTPClient(hc)
}

// WithLogger sets a custom logger.
func WithLogger(l *slog.Logger) ClientOption {
	return base.WithLogger(l)
}

// WithCache sets a custom cache.
func WithCache(c *infra.Cache) ClientOption {
	return base.WithCache(c)
}

// NewClient creates a YouTube Data API client from config.
func NewClient(cfg *Config, opts ...ClientOption) *Client {
	baseOpts := append([]ClientOption{base.WithTimeout(cfg.Timeout)}, opts...)
	return &Client{
		Client:    base.NewClient(baseOpts...),
		apiKey:    cfg.APIKey,
		baseURL:   cfg.BaseURL,
		userAgent: cfg.UserAgent,
	}
}

// Search performs a video search. maxResults must already be clamped.
func (c *Client) Search(ctx context.Context, query string, maxResults int, order string) (Response, error) {
	params := url.Values{}
	params.Set("part", "snippet")
	params.Set("q", query)
	params.Set("maxResults", fmt.Sprint(maxResults))
	params.Set("order", order)
	params.Set("type", "video")

	return c.doRequest(ctx, endpointSearch, params, searchCacheTTL)
}

// VideoDetails retrieves metadata and statistics for one video.
func (c *Client) VideoDetails(ctx context.Context, videoID string) (Response, error) {
	params := url.Values{}
	params.Set("part", "snippet,contentDetails,statistics")
	params.Set("id", videoID)

	return c.doRequest(ctx, endpointVideos, params, videoCacheTTL)
}

// ChannelInfo retrieves metadata and statistics for one channel.
func (c *Client) ChannelInfo(ctx context.Context, channelID string) (Response, error) {
	params := url.Values{}
	params.Set("part", "snippet,statistics,contentDetails")
	params.Set("id", channelID)

	return c.doRequest(ctx, endpointChannels, params, channelCacheTTL)
}

// VideoComments retrieves top-level comment threads for a video.
// maxResults must already be clamped.
func (c *Client) VideoComments(ctx context.Context, videoID string, maxResults int, order string) (Response, error) {
	params := url.Values{}
	params.Set("part", "snippet")
	params.Set("videoId", videoID)
	params.Set("maxResults", fmt.Sprint(maxResults))
	params.Set("order", order)

	return c.doRequest(ctx, endpointCommentThreads, params, commentsCacheTTL)
}

// TrendingVideos retrieves the mostPopular chart for a region. categoryID is
// omitted from the request when empty. maxResults must already be clamped.
func (c *Client) TrendingVideos(ctx context.Context, regionCode, categoryID string, maxResults int) (Response, error) {
	params := url.Values{}
	params.Set("part", "snippet,contentDetails,statistics")
	params.Set("chart", "mostPopular")
	params.Set("regionCode", regionCode)
	params.Set("maxResults", fmt.Sprint(maxResults))
	if categoryID != "" {
		params.Set("videoCategoryId", categoryID)
	}

	return c.doRequest(ctx, endpointVideos, params, trendingCacheTTL)
}

// doRequest issues one GET against the given endpoint with the API key
// appended. Identical concurrent requests are coalesced and successful
// responses cached; a cache hit or shared result still satisfies the
// at-most-one-outbound-request contract.
func (c *Client) doRequest(ctx context.Context, endpoint string, params url.Values, ttl time.Duration) (Response, error) {
	// Cache and dedup key excludes the credential.
	key := endpoint + "?" + params.Encode()

	if cached, ok := c.Cache.Get(key); ok {
		metrics.RecordCacheAccess(true)
		return cached.(Response), nil
	}
	metrics.RecordCacheAccess(false)

	result, shared, err := c.Dedup.Do(ctx, key, func() (any, error) {
		return c.fetch(ctx, endpoint, params)
	})
	if err != nil {
		return nil, err
	}

	resp := result.(Response)
	if !shared {
		c.Cache.Set(key, resp, ttl)
		metrics.SetCacheSize(int64(c.Cache.Size()))
	}
	return resp, nil
}

// fetch performs the actual HTTP round trip and normalizes failures.
func (c *Client) fetch(ctx context.Context, endpoint string, params url.Values) (Response, error) {
	withKey := url.Values{}
	for k, v := range params {
		withKey[k] = v
	}
	withKey.Set("key", c.apiKey)

	reqURL := c.baseURL + "/" + endpoint + "?" + withKey.Encode()

	start := time.Now()
	body, statusCode, err := c.Client.Get(ctx, base.RequestConfig{
		URL:       reqURL,
		UserAgent: c.userAgent,
	})
	duration := time.Since(start).Seconds()

	if err != nil {
		metrics.RecordAPICall(endpoint, duration, false, "transport")
		return nil, &apierrors.UpstreamError{Message: err.Error()}
	}

	metrics.AddQuotaUnits(endpoint, QuotaCost(endpoint))

	if statusCode < 200 || statusCode >= 300 {
		apiErr := parseAPIError(body, statusCode)
		metrics.RecordAPICall(endpoint, duration, false, fmt.Sprint(statusCode))
		if quotaErr, ok := apiErr.(*apierrors.QuotaError); ok {
			metrics.QuotaExhaustions.Inc()
			c.Logger.Warn("YouTube API quota exhausted", "endpoint", endpoint, "reason", quotaErr.Reason)
		}
		return nil, apiErr
	}

	var resp Response
	if err := json.Unmarshal(body, &resp); err != nil {
		metrics.RecordAPICall(endpoint, duration, false, "parse")
		return nil, fmt.Errorf("failed to parse response: %w", err)
	}

	metrics.RecordAPICall(endpoint, duration, true, "")
	return resp, nil
}

// parseAPIError turns a non-2xx Data API response into a typed error.
// Quota exhaustion is distinguished for metrics; everything else collapses
// into UpstreamError so the caller can present one uniform shape.
func parseAPIError(body []byte, statusCode int) error {
	var parsed apiErrorBody
	if json.Unmarshal(body, &parsed) == nil && parsed.Error.Message != "" {
		for _, e := range parsed.Error.Errors {
			if e.Reason == "quotaExceeded" || e.Reason == "dailyLimitExceeded" {
				return &apierrors.QuotaError{Reason: e.Reason, Message: parsed.Error.Message}
			}
		}
		return &apierrors.UpstreamError{StatusCode: statusCode, Message: parsed.Error.Message}
	}
	return &apierrors.UpstreamError{StatusCode: statusCode, Message: http.StatusText(statusCode)}
}
