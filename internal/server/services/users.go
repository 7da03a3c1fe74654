package services

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"github.com/avekseev/chirpy/internal/server/auth"
	"github.com/avekseev/chirpy/internal/server/models"
	"github.com/avekseev/chirpy/internal/server/repositories/repomanager"
)

// UserService handles account creation, profile updates and the premium
// upgrade triggered by the payment provider webhook.
type UserService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	hasher      *auth.Hasher
}

func NewUserService(db *sql.DB, m repomanager.RepositoryManager, hasher *auth.Hasher) *UserService {
	return &UserService{db: db, repomanager: m, hasher: hasher}
}

// Register creates a new user with a hashed password. The returned user has
// the hash blanked. A duplicate email surfaces as common.ErrorAlreadyExists.
func (s *UserService) Register(ctx context.Context, email, password string) (*models.User, error) {
	hashed, err := s.hasher.Hash(ctx, password)
	if err != nil {
		return nil, fmt.Errorf("error hashing password: %w", err)
	}

	user := &models.User{ID: uuid.NewString(), Email: email, HashedPassword: hashed}
	created, err := s.repomanager.Users(s.db).Create(ctx, user)
	if err != nil {
		return nil, err
	}

	created.HashedPassword = ""
	return created, nil
}

// Update changes a user's email, password or both. Empty fields keep their
// current value; the password is rehashed only when a new one is supplied.
// The returned user has the hash blanked.
func (s *UserService) Update(ctx context.Context, userID, email, password string) (*models.User, error) {
	repo := s.repomanager.Users(s.db)

	current, err := repo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if email == "" {
		email = current.Email
	}

	hashed := current.HashedPassword
	if password != "" {
		hashed, err = s.hasher.Hash(ctx, password)
		if err != nil {
			return nil, fmt.Errorf("error hashing password: %w", err)
		}
	}

	updated, err := repo.Update(ctx, userID, email, hashed)
	if err != nil {
		return nil, err
	}

	updated.HashedPassword = ""
	return updated, nil
}

// UpgradeToChirpyRed flips the premium flag for a user. Unknown users are
// common.ErrorNotFound.
func (s *UserService) UpgradeToChirpyRed(ctx context.Context, userID string) error {
	return s.repomanager.Users(s.db).UpgradeToChirpyRed(ctx, userID)
}

// DeleteAll wipes every user. Guarded by the dev-platform check in the
// admin handler.
func (s *UserService) DeleteAll(ctx context.Context) error {
	return s.repomanager.Users(s.db).DeleteAll(ctx)
}
