// Package refreshtokens declares the server-side repository contract for
// managing refresh tokens in persistent storage.
package refreshtokens

import (
	"context"
	"time"

	"github.com/avekseev/chirpy/internal/server/models"
)

// Repository defines operations for issuing, retrieving, and revoking refresh
// tokens. The state rules (active, expired, revoked) live in the session
// service; the repository only guarantees that Revoke is a single conditional
// write, so two racing revocations cannot both succeed.
type Repository interface {
	// Create stores a new refresh token for userID expiring at expiresAt.
	Create(ctx context.Context, userID string, token string, expiresAt time.Time) error

	// Find looks up a refresh token by its opaque token string and returns its
	// record. Returns common.ErrorNotFound when the token is absent.
	Find(ctx context.Context, token string) (*models.RefreshToken, error)

	// Revoke sets revoked_at on a not-yet-revoked token. Zero rows affected
	// (token absent or revoked before) is common.ErrorAlreadyRevoked; callers
	// that need to distinguish absence do a Find first.
	Revoke(ctx context.Context, token string) error

	// RevokeAllForUser revokes every active token belonging to userID.
	RevokeAllForUser(ctx context.Context, userID string) error

	// Delete removes a refresh token by its token string. Deleting a
	// non-existent token is not an error.
	Delete(ctx context.Context, token string) error

	// DeleteExpired removes every token whose expiry is at or before now and
	// returns the number of rows swept.
	DeleteExpired(ctx context.Context) (int64, error)
}
