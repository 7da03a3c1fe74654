// Package common defines shared constants and sentinel errors used across
// chirpy components. Callers should use errors.Is to match these values.
// The set is closed: the HTTP layer translates kinds to status codes through
// a lookup table, nothing else reaches a client.
package common

import "errors"

var (
	// Repository-level errors.
	ErrorNotFound      = errors.New("not found")
	ErrorAlreadyExists = errors.New("already exists")

	// Service-level errors (generic/internal flow control).
	ErrorInternal  = errors.New("internal error")
	ErrorForbidden = errors.New("forbidden")

	// Credential extraction errors.
	ErrorMissingAuthHeader = errors.New("authorization header is missing")

	// Access token errors.
	ErrorTokenMalformed   = errors.New("malformed token")
	ErrorInvalidSignature = errors.New("invalid token signature")
	ErrorTokenExpired     = errors.New("token expired")
	ErrorMissingSubject   = errors.New("token has no subject")

	// Password hash errors. Distinct from a verification mismatch, which is
	// reported as a boolean, not an error.
	ErrorMalformedHash = errors.New("malformed password hash")

	// Session / refresh token lifecycle errors.
	ErrorInvalidCredentials  = errors.New("invalid credentials")
	ErrorInvalidRefreshToken = errors.New("invalid refresh token")
	ErrorRefreshTokenExpired = errors.New("refresh token expired")
	ErrorRefreshTokenRevoked = errors.New("refresh token revoked")
	ErrorAlreadyRevoked      = errors.New("refresh token already revoked")
)
