// Package models defines persistence-layer records shared by repositories
// and services.
package models

import "time"

// User is a row of the users table. HashedPassword must never reach a
// response body; services strip it before returning a user.
type User struct {
	ID             string
	Email          string
	HashedPassword string
	IsChirpyRed    bool
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
