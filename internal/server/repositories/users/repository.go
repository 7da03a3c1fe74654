// Package users declares the repository contract for user accounts.
package users

import (
	"context"

	"github.com/avekseev/chirpy/internal/server/models"
)

// Repository defines persistence operations for user accounts. The auth core
// only reads and writes the hashed password field; everything else belongs to
// the profile surface.
type Repository interface {
	// Create inserts a new user. A duplicate email returns
	// common.ErrorAlreadyExists.
	Create(ctx context.Context, user *models.User) (*models.User, error)

	// GetByEmail returns the user with the given email, or common.ErrorNotFound.
	GetByEmail(ctx context.Context, email string) (*models.User, error)

	// GetByID returns the user with the given id, or common.ErrorNotFound.
	GetByID(ctx context.Context, id string) (*models.User, error)

	// Update sets email and hashed password for an existing user and returns
	// the updated row, or common.ErrorNotFound.
	Update(ctx context.Context, id, email, hashedPassword string) (*models.User, error)

	// UpgradeToChirpyRed flips the premium flag, or common.ErrorNotFound.
	UpgradeToChirpyRed(ctx context.Context, id string) error

	// DeleteAll wipes the users table. Dev-platform reset only.
	DeleteAll(ctx context.Context) error
}
