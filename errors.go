package portfolio

import (
	"errors"
	"fmt"
)

// Error taxonomy surfaced to API callers. Store failures outside of
// these are wrapped and propagated as internal errors, never retried.
var (
	// ErrNotFound is returned when a requested section, post, or media
	// asset does not exist.
	ErrNotFound = errors.New("not found")

	// ErrUnauthorized is returned when an admin call carries a missing
	// or invalid bearer token, or login credentials do not match.
	ErrUnauthorized = errors.New("unauthorized")
)

// ValidationError reports a missing or malformed required field in a
// request payload.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Reason)
}

func validationErr(field, reason string) error {
	return &ValidationError{Field: field, Reason: reason}
}

func isNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}
