// Package chirps declares the repository contract for posted chirps.
package chirps

import (
	"context"

	"github.com/avekseev/chirpy/internal/server/models"
)

// Repository defines persistence operations for chirps.
type Repository interface {
	// Create inserts a new chirp and returns it with timestamps filled in.
	Create(ctx context.Context, chirp *models.Chirp) (*models.Chirp, error)

	// GetAll returns chirps ordered by creation time ascending, optionally
	// filtered to a single author (empty authorID means no filter).
	GetAll(ctx context.Context, authorID string) ([]models.Chirp, error)

	// GetByID returns a single chirp, or common.ErrorNotFound.
	GetByID(ctx context.Context, id string) (*models.Chirp, error)

	// Delete removes a chirp by id, or common.ErrorNotFound.
	Delete(ctx context.Context, id string) error
}
