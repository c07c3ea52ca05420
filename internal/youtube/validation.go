package youtube

import (
	"regexp"
	"slices"
	"strings"

	apierrors "github.com/olgasafonova/youtube-mcp-server/internal/errors"
)

// MaxQueryLength is the maximum allowed search query length.
const MaxQueryLength = 500

// idRegex matches plausible YouTube resource IDs. Video IDs are 11
// URL-safe-base64 characters, channel IDs are 24 starting with "UC", but the
// API accepts other shapes; only the character set is enforced here.
var idRegex = regexp.MustCompile(`^[A-Za-z0-9_-]{1,64}$`)

// regionRegex matches ISO 3166-1 alpha-2 country codes.
var regionRegex = regexp.MustCompile(`^[A-Za-z]{2}$`)

// categoryRegex matches numeric video category IDs.
var categoryRegex = regexp.MustCompile(`^\d{1,4}$`)

// ValidateSearchQuery validates a search query.
func ValidateSearchQuery(query string) error {
	if query == "" {
		return apierrors.NewValidationError("query", "", "search query is required")
	}
	if len(query) > MaxQueryLength {
		return apierrors.NewValidationError("query", "", "search query exceeds maximum length of 500 characters")
	}
	return nil
}

// ValidateVideoID validates a YouTube video ID.
func ValidateVideoID(id string) error {
	if id == "" {
		return apierrors.NewValidationError("video_id", "", "video ID is required")
	}
	if !idRegex.MatchString(id) {
		return apierrors.NewValidationError("video_id", id, "must contain only letters, digits, '-' and '_'")
	}
	return nil
}

// ValidateChannelID validates a YouTube channel ID.
func ValidateChannelID(id string) error {
	if id == "" {
		return apierrors.NewValidationError("channel_id", "", "channel ID is required")
	}
	if !idRegex.MatchString(id) {
		return apierrors.NewValidationError("channel_id", id, "must contain only letters, digits, '-' and '_'")
	}
	return nil
}

// ValidateRegionCode validates an ISO 3166-1 alpha-2 region code.
func ValidateRegionCode(code string) error {
	if !regionRegex.MatchString(code) {
		return apierrors.NewValidationError("region_code", code, "must be a two-letter ISO 3166-1 country code")
	}
	return nil
}

// ValidateCategoryID validates an optional video category ID.
func ValidateCategoryID(id string) error {
	if id == "" {
		return nil
	}
	if !categoryRegex.MatchString(id) {
		return apierrors.NewValidationError("category_id", id, "must be a numeric video category ID")
	}
	return nil
}

// ValidateOrder checks that order is one of the allowed sort orders.
func ValidateOrder(order string, allowed []string) error {
	if slices.Contains(allowed, order) {
		return nil
	}
	return apierrors.NewValidationError("order", order, "must be one of: "+strings.Join(allowed, ", "))
}

// ClampResults resolves a caller-supplied result count: unset (zero or
// negative) becomes the default, values above limit are silently clamped.
func ClampResults(n, def, limit int) int {
	if n <= 0 {
		return def
	}
	if n > limit {
		return limit
	}
	return n
}
