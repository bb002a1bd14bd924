// Package registry defines the read-only port to the national vehicle
// registry and the normalized failure taxonomy for its implementations.
//
// A lookup has exactly three outcomes, and callers must handle all of them:
// a record, ErrNotFound, or a *LookupError carrying an enumerated category.
// Implementations never signal failure kinds through error message text.
package registry

import (
	"context"
	"errors"
	"fmt"

	"platerra/internal/registry/models"
)

// ErrNotFound is returned when no registry record exists for the plate.
// It is a distinct outcome, not a failure of the lookup itself.
var ErrNotFound = errors.New("registry record not found")

// Lookup is the read-only port to the vehicle registry, keyed by canonical
// (uppercased) plate.
type Lookup interface {
	Find(ctx context.Context, plate string) (*models.Record, error)
}

// ErrorCategory defines the normalized failure taxonomy for lookup errors.
//
// All implementations classify failures into these categories, allowing the
// ownership service to make consistent decisions regardless of the underlying
// transport or API.
type ErrorCategory string

const (
	// ErrorTimeout indicates the registry took too long to respond.
	ErrorTimeout ErrorCategory = "timeout"

	// ErrorBadData indicates the registry returned invalid/malformed data.
	ErrorBadData ErrorCategory = "bad_data"

	// ErrorAuthentication indicates credential or permission issues.
	ErrorAuthentication ErrorCategory = "authentication"

	// ErrorOutage indicates the registry is unavailable.
	ErrorOutage ErrorCategory = "outage"

	// ErrorRateLimited indicates too many requests.
	ErrorRateLimited ErrorCategory = "rate_limited"

	// ErrorInternal indicates an unexpected internal error.
	ErrorInternal ErrorCategory = "internal"
)

// LookupError wraps registry failures with normalized categorization.
//
// This structured error type allows the service layer to make informed
// decisions about retries and error translation without inspecting raw error
// messages or coupling to specific client implementations.
type LookupError struct {
	Category   ErrorCategory
	Source     string
	Message    string
	Underlying error
	Retryable  bool
}

// Error implements the error interface.
func (e *LookupError) Error() string {
	if e.Underlying != nil {
		return fmt.Sprintf("registry %s [%s]: %s: %v", e.Source, e.Category, e.Message, e.Underlying)
	}
	return fmt.Sprintf("registry %s [%s]: %s", e.Source, e.Category, e.Message)
}

// Unwrap supports error unwrapping.
func (e *LookupError) Unwrap() error {
	return e.Underlying
}

// NewLookupError creates a normalized lookup error with automatic retry
// classification: transient failures (timeout, outage, rate-limited) are
// retryable, the rest are not.
func NewLookupError(category ErrorCategory, source, message string, underlying error) *LookupError {
	retryable := category == ErrorTimeout ||
		category == ErrorOutage ||
		category == ErrorRateLimited

	return &LookupError{
		Category:   category,
		Source:     source,
		Message:    message,
		Underlying: underlying,
		Retryable:  retryable,
	}
}

// IsRetryable checks if an error is worth retrying.
func IsRetryable(err error) bool {
	var le *LookupError
	if errors.As(err, &le) {
		return le.Retryable
	}
	return false
}

// GetCategory extracts the error category from an error.
func GetCategory(err error) ErrorCategory {
	var le *LookupError
	if errors.As(err, &le) {
		return le.Category
	}
	return ErrorInternal
}
