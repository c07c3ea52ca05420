// Package errors provides shared error types for the YouTube API client.
package errors

import (
	"fmt"
)

// ValidationError indicates invalid tool input parameters.
type ValidationError struct {
	Field   string // field name that failed validation
	Value   string // the invalid value
	Message string // human-readable error message
}

func (e *ValidationError) Error() string {
	if e.Field != "" && e.Value != "" {
		return fmt.Sprintf("validation failed for %s=%q: %s", e.Field, e.Value, e.Message)
	}
	if e.Field != "" {
		return fmt.Sprintf("validation failed for %s: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation failed: %s", e.Message)
}

// NewValidationError creates a ValidationError.
func NewValidationError(field, value, message string) *ValidationError {
	return &ValidationError{
		Field:   field,
		Value:   value,
		Message: message,
	}
}

// QuotaError indicates the YouTube Data API rejected a request because the
// project's daily quota is exhausted. The Data API signals this as HTTP 403
// with reason "quotaExceeded" or "dailyLimitExceeded".
type QuotaError struct {
	Reason  string // API error reason code
	Message string // upstream error message
}

func (e *QuotaError) Error() string {
	return fmt.Sprintf("YouTube API quota exhausted (%s): %s", e.Reason, e.Message)
}

// UpstreamError indicates a transport failure or non-2xx response from the
// YouTube Data API. All such failures are presented uniformly to callers.
type UpstreamError struct {
	StatusCode int    // zero for transport-level failures
	Message    string
}

func (e *UpstreamError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("HTTP %d: %s", e.StatusCode, e.Message)
	}
	return e.Message
}

// IsValidation returns true if the error is a ValidationError.
func IsValidation(err error) bool {
	_, ok := err.(*ValidationError)
	return ok
}

// IsQuota returns true if the error is a QuotaError.
func IsQuota(err error) bool {
	_, ok := err.(*QuotaError)
	return ok
}
