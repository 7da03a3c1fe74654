package models

import "time"

// Chirp is a row of the chirps table. Body is stored already cleaned by the
// moderation pass.
type Chirp struct {
	ID        string
	UserID    string
	Body      string
	CreatedAt time.Time
	UpdatedAt time.Time
}
