package models

import (
	"database/sql"
	"time"
)

// RefreshToken is a row of the refresh_tokens table. The opaque token string
// is the primary key. RevokedAt is set once by revocation and never cleared;
// rows outliving ExpiresAt are removed by the background sweep.
type RefreshToken struct {
	Token     string
	UserID    string
	ExpiresAt time.Time
	RevokedAt sql.NullTime
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Expired reports whether the record's lifetime has passed at the given time.
func (t *RefreshToken) Expired(now time.Time) bool {
	return !now.Before(t.ExpiresAt)
}

// Revoked reports whether the record has been explicitly invalidated.
func (t *RefreshToken) Revoked() bool {
	return t.RevokedAt.Valid
}
