// Package common defines shared constants and sentinel errors used across
// client and server layers of CivicWatch. Callers should use errors.Is to
// match these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrNotFound = errors.New("not found")
	ErrConflict = errors.New("already exists")

	// Service-level errors.
	ErrInternal     = errors.New("internal error")
	ErrUnauthorized = errors.New("invalid credentials")
	ErrForbidden    = errors.New("forbidden")

	// Validation errors carry a user-facing detail via ValidationError.
	ErrValidation = errors.New("validation error")

	// Auth errors (invalid, expired or malformed token).
	ErrInvalidToken = errors.New("invalid token")
)

// ValidationError wraps ErrValidation with a client-correctable message that
// is safe to surface verbatim to the user.
type ValidationError struct {
	Detail string
}

func (e *ValidationError) Error() string {
	return e.Detail
}

func (e *ValidationError) Unwrap() error {
	return ErrValidation
}

// NewValidationError builds a ValidationError with the given detail message.
func NewValidationError(detail string) error {
	return &ValidationError{Detail: detail}
}
