// Package common defines shared constants and sentinel errors used across
// client and server layers of Gatekeeper. Callers should use errors.Is to
// match these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrorNotFound      = errors.New("not found")
	ErrorAlreadyExists = errors.New("already exists")

	// Service-level errors (generic/internal flow control).
	ErrorInternal = errors.New("internal error")

	// Credential errors. Unknown email and wrong password both map here so
	// that callers cannot tell which one it was.
	ErrorInvalidCredentials = errors.New("invalid email or password")

	// Validation errors.
	ErrorValidation = errors.New("validation error")

	// Auth errors (invalid, expired, or malformed token).
	ErrInvalidToken = errors.New("invalid token")
	ErrTokenExpired = errors.New("token expired")
)
