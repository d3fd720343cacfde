// Package common defines shared constants and sentinel errors used across
// the application layers. Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrorNotFound      = errors.New("not found")
	ErrorAlreadyExists = errors.New("already exists")

	// Service-level errors (generic/internal flow control).
	ErrorInternal     = errors.New("internal error")
	ErrorUnauthorized = errors.New("unauthorized")
	ErrorForbidden    = errors.New("access denied")
	ErrorValidation   = errors.New("validation error")

	// Auth errors. ErrInvalidToken is the generic kind; the specific kinds
	// below are logged server-side but never surfaced to clients.
	ErrInvalidToken       = errors.New("invalid token")
	ErrTokenMalformed     = errors.New("token malformed")
	ErrTokenExpired       = errors.New("token expired")
	ErrSignatureInvalid   = errors.New("token signature invalid")
	ErrAlgorithmMismatch  = errors.New("token algorithm mismatch")
	ErrInvalidCredentials = errors.New("invalid credentials")
)
