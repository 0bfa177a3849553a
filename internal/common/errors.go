// Package common defines shared constants and sentinel errors used across
// client and server layers of CardBoard. Callers should use errors.Is to
// match these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrorNotFound = errors.New("not found")

	// Service-level errors (generic/internal flow control).
	ErrorInternal     = errors.New("internal error")
	ErrorUnauthorized = errors.New("unauthorized")
	ErrorValidation   = errors.New("validation error")

	// Authorization and sharing outcomes. Each is shown to the user as-is.
	ErrPermissionDenied  = errors.New("permission denied")
	ErrRecipientNotFound = errors.New("recipient not found")
	ErrSelfShareRejected = errors.New("cannot share a card with yourself")
	ErrAlreadyShared     = errors.New("card already shared with this user")

	// Identity errors.
	ErrEmailTaken = errors.New("email already registered")

	// Auth errors (invalid or malformed token).
	ErrInvalidToken = errors.New("invalid token")

	// Token lifecycle errors.
	ErrTokenExpired        = errors.New("token expired")
	ErrRefreshTokenExpired = errors.New("refresh token expired")

	// ErrTransport is returned when a collaborator is unreachable.
	ErrTransport = errors.New("service unavailable")
)
