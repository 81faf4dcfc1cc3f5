package tmdb

import (
	"errors"
	"fmt"
)

// Sentinel errors for catalog operations.
var (
	// ErrUnavailable marks a transport-level failure (timeout, DNS,
	// connection refused). The provider never answered.
	ErrUnavailable = errors.New("tmdb: provider unavailable")
	ErrInvalidPage = errors.New("tmdb: page must be >= 1")
	ErrInvalidKind = errors.New("tmdb: unknown media kind")
	ErrEmptyQuery  = errors.New("tmdb: empty search query")
)

// StatusError is returned when the provider answers with a non-2xx status.
// The upstream status code is preserved for the caller.
type StatusError struct {
	StatusCode int
	Message    string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("tmdb: upstream status %d: %s", e.StatusCode, e.Message)
}

// Error wraps an underlying error with operation context.
type Error struct {
	Op         string // Operation: "trendingMovies", "movieDetails", ...
	ProviderID int64  // If applicable
	Err        error
}

func (e *Error) Error() string {
	if e.ProviderID != 0 {
		return fmt.Sprintf("tmdb %s [%d]: %v", e.Op, e.ProviderID, e.Err)
	}
	return fmt.Sprintf("tmdb %s: %v", e.Op, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// wrapError creates an Error with context.
func wrapError(op string, providerID int64, err error) error {
	return &Error{
		Op:         op,
		ProviderID: providerID,
		Err:        err,
	}
}
