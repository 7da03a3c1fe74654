package services

import (
	"context"
	"database/sql"
	"errors"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/avekseev/chirpy/internal/common"
	"github.com/avekseev/chirpy/internal/server/models"
	"github.com/avekseev/chirpy/internal/server/moderation"
	"github.com/avekseev/chirpy/internal/server/repositories/repomanager"
)

// ErrChirpTooLong rejects bodies over moderation.MaxChirpLength.
var ErrChirpTooLong = errors.New("chirp is too long")

// ChirpService handles posting, listing and deleting chirps. Bodies are
// moderated on the way in; stored chirps are already clean.
type ChirpService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
}

func NewChirpService(db *sql.DB, m repomanager.RepositoryManager) *ChirpService {
	return &ChirpService{db: db, repomanager: m}
}

// Create validates, cleans and stores a chirp authored by userID. The length
// limit counts characters, not bytes, so multi-byte text is not penalized.
func (s *ChirpService) Create(ctx context.Context, userID, body string) (*models.Chirp, error) {
	if utf8.RuneCountInString(body) > moderation.MaxChirpLength {
		return nil, ErrChirpTooLong
	}

	chirp := &models.Chirp{
		ID:     uuid.NewString(),
		UserID: userID,
		Body:   moderation.CleanBody(body),
	}
	return s.repomanager.Chirps(s.db).Create(ctx, chirp)
}

// GetAll lists chirps in ascending creation order, optionally filtered to
// one author.
func (s *ChirpService) GetAll(ctx context.Context, authorID string) ([]models.Chirp, error) {
	return s.repomanager.Chirps(s.db).GetAll(ctx, authorID)
}

// GetByID returns a single chirp or common.ErrorNotFound.
func (s *ChirpService) GetByID(ctx context.Context, id string) (*models.Chirp, error) {
	return s.repomanager.Chirps(s.db).GetByID(ctx, id)
}

// Delete removes a chirp; only its author may do so. A foreign author gets
// common.ErrorForbidden, an unknown chirp common.ErrorNotFound.
func (s *ChirpService) Delete(ctx context.Context, userID, chirpID string) error {
	chirp, err := s.repomanager.Chirps(s.db).GetByID(ctx, chirpID)
	if err != nil {
		return err
	}
	if chirp.UserID != userID {
		return common.ErrorForbidden
	}
	return s.repomanager.Chirps(s.db).Delete(ctx, chirpID)
}
