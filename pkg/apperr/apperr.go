// Package apperr defines the application error taxonomy and its HTTP mapping.
// Services wrap these sentinels with %w; use errors.Is() to check them.
package apperr

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	// ErrInvalid indicates a malformed identifier or a missing/invalid field.
	ErrInvalid = errors.New("invalid argument")

	// ErrNotFound indicates no item, category, or receipt matched.
	ErrNotFound = errors.New("not found")

	// ErrExists indicates a case-insensitive duplicate category.
	ErrExists = errors.New("already exists")
)

// Invalidf wraps ErrInvalid with a formatted message.
func Invalidf(format string, args ...interface{}) error {
	return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), ErrInvalid)
}

// NotFoundf wraps ErrNotFound with a formatted message.
func NotFoundf(format string, args ...interface{}) error {
	return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), ErrNotFound)
}

// Existsf wraps ErrExists with a formatted message.
func Existsf(format string, args ...interface{}) error {
	return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), ErrExists)
}

// Status maps err to an HTTP status code. Unrecognized errors are treated
// as storage failures and reported as 500.
func Status(err error) int {
	switch {
	case errors.Is(err, ErrInvalid):
		return http.StatusBadRequest
	case errors.Is(err, ErrExists):
		return http.StatusBadRequest
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// IsStorage reports whether err is outside the taxonomy, i.e. an opaque
// store failure whose raw message should be surfaced to the caller.
func IsStorage(err error) bool {
	return err != nil && Status(err) == http.StatusInternalServerError
}
