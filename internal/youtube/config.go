package youtube

import (
	"errors"
	"os"
	"time"
)

// Config holds YouTube Data API connection settings.
type Config struct {
	// APIKey authenticates requests to the Data API
	APIKey string

	// BaseURL is the Data API endpoint (overridable for testing)
	BaseURL string

	// Timeout for API requests
	Timeout time.Duration

	// UserAgent identifies this server to the API
	UserAgent string
}

// LoadConfig loads configuration from environment variables.
// YOUTUBE_API_KEY is required; everything else has defaults.
func LoadConfig() (*Config, error) {
	apiKey := os.Getenv("YOUTUBE_API_KEY")
	if apiKey == "" {
		return nil, errors.New("YOUTUBE_API_KEY environment variable is required; create a key at https://console.cloud.google.com/apis/credentials")
	}

	baseURL := os.Getenv("YOUTUBE_API_BASE_URL")
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	timeout := DefaultTimeout
	if t := os.Getenv("YOUTUBE_API_TIMEOUT"); t != "" {
		if d, err := time.ParseDuration(t); err == nil && d > 0 {
			timeout = d
		}
	}

	userAgent := os.Getenv("YOUTUBE_USER_AGENT")
	if userAgent == "" {
		userAgent = DefaultUserAgent
	}

	return &Config{
		APIKey:    apiKey,
		BaseURL:   baseURL,
		Timeout:   timeout,
		UserAgent: userAgent,
	}, nil
}
