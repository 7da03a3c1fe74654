// Package services contains server-side business logic. This file implements
// SessionService, the state machine over refresh tokens: login issues a
// token pair, refresh re-mints access tokens against a stored record, revoke
// terminates a record early.
package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/avekseev/chirpy/internal/common"
	"github.com/avekseev/chirpy/internal/dbx"
	"github.com/avekseev/chirpy/internal/server/auth"
	"github.com/avekseev/chirpy/internal/server/config"
	"github.com/avekseev/chirpy/internal/server/models"
	"github.com/avekseev/chirpy/internal/server/repositories/repomanager"
)

// LoginResult bundles the authenticated user with a short-lived access token
// and a long-lived refresh token. User.HashedPassword is always blanked.
type LoginResult struct {
	User         *models.User
	AccessToken  string
	RefreshToken string
}

// SessionService orchestrates credential verification and the refresh-token
// lifecycle. Every operation is a pure function of the clock and persisted
// state; nothing is cached in-process and nothing is retried.
type SessionService struct {
	db                           *sql.DB
	repomanager                  repomanager.RepositoryManager
	hasher                       *auth.Hasher
	jwtSecret                    []byte
	accessTokenValidityDuration  time.Duration
	refreshTokenValidityDuration time.Duration
}

// NewSessionService constructs a SessionService using repositories and server config.
func NewSessionService(db *sql.DB, m repomanager.RepositoryManager, hasher *auth.Hasher, cfg *config.Config) *SessionService {
	return &SessionService{
		db:                           db,
		repomanager:                  m,
		hasher:                       hasher,
		jwtSecret:                    []byte(cfg.SecretKey),
		accessTokenValidityDuration:  cfg.AccessTokenValidityDuration,
		refreshTokenValidityDuration: cfg.RefreshTokenValidityDuration,
	}
}

// Login verifies email+password and mints a token pair. An unknown email and
// a wrong password both collapse into common.ErrorInvalidCredentials so the
// response does not reveal which half failed.
func (s *SessionService) Login(ctx context.Context, email, password string) (*LoginResult, error) {
	repo := s.repomanager.Users(s.db)

	user, err := repo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrorInvalidCredentials
		}
		return nil, fmt.Errorf("error searching user: %w", err)
	}

	ok, err := s.hasher.Verify(ctx, password, user.HashedPassword)
	if err != nil {
		return nil, fmt.Errorf("error verifying password: %w", err)
	}
	if !ok {
		return nil, common.ErrorInvalidCredentials
	}

	accessToken, err := auth.MakeJWT(user.ID, s.jwtSecret, s.accessTokenValidityDuration)
	if err != nil {
		return nil, fmt.Errorf("error minting access token: %w", err)
	}

	refreshToken, err := common.MakeRandHexString(common.RefreshTokenBytes)
	if err != nil {
		return nil, fmt.Errorf("error generating refresh token: %w", err)
	}

	expiresAt := time.Now().Add(s.refreshTokenValidityDuration)
	if err := s.repomanager.RefreshTokens(s.db).Create(ctx, user.ID, refreshToken, expiresAt); err != nil {
		return nil, fmt.Errorf("error storing refresh token: %w", err)
	}

	user.HashedPassword = ""
	return &LoginResult{User: user, AccessToken: accessToken, RefreshToken: refreshToken}, nil
}

// Refresh validates a refresh token and mints a new access token for the
// record's user. The refresh token itself is reused until it expires or is
// revoked; there is no rotation. Expired records are deleted on sight.
func (s *SessionService) Refresh(ctx context.Context, refreshToken string) (string, error) {
	repo := s.repomanager.RefreshTokens(s.db)

	record, err := repo.Find(ctx, refreshToken)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return "", common.ErrorInvalidRefreshToken
		}
		return "", fmt.Errorf("error searching refresh token: %w", err)
	}

	if record.Expired(time.Now()) {
		if err := repo.Delete(ctx, refreshToken); err != nil {
			return "", fmt.Errorf("error deleting expired refresh token: %w", err)
		}
		return "", common.ErrorRefreshTokenExpired
	}

	if record.Revoked() {
		return "", common.ErrorRefreshTokenRevoked
	}

	accessToken, err := auth.MakeJWT(record.UserID, s.jwtSecret, s.accessTokenValidityDuration)
	if err != nil {
		return "", fmt.Errorf("error minting access token: %w", err)
	}
	return accessToken, nil
}

// Revoke terminates a refresh token. An unknown token is
// common.ErrorInvalidRefreshToken; revoking twice is common.ErrorAlreadyRevoked.
// Find and the conditional revoke run inside one transaction so the
// distinction is computed against a consistent snapshot; the revoked_at IS
// NULL guard in the UPDATE settles races between concurrent revocations.
func (s *SessionService) Revoke(ctx context.Context, refreshToken string) error {
	return dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := s.repomanager.RefreshTokens(tx)

		record, err := repo.Find(ctx, refreshToken)
		if err != nil {
			if errors.Is(err, common.ErrorNotFound) {
				return common.ErrorInvalidRefreshToken
			}
			return fmt.Errorf("error searching refresh token: %w", err)
		}
		if record.Revoked() {
			return common.ErrorAlreadyRevoked
		}

		return repo.Revoke(ctx, refreshToken)
	})
}

// RevokeAllForUser invalidates every active refresh token of a user
// (account-wide logout).
func (s *SessionService) RevokeAllForUser(ctx context.Context, userID string) error {
	return s.repomanager.RefreshTokens(s.db).RevokeAllForUser(ctx, userID)
}

// SweepExpired garbage-collects refresh tokens whose expiry has passed and
// returns the number of rows removed.
func (s *SessionService) SweepExpired(ctx context.Context) (int64, error) {
	return s.repomanager.RefreshTokens(s.db).DeleteExpired(ctx)
}

// ValidateAccessToken verifies a bearer access token and returns the user id
// it is bound to.
func (s *SessionService) ValidateAccessToken(tokenString string) (string, error) {
	return auth.ValidateJWT(tokenString, s.jwtSecret)
}
