package services

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avekseev/chirpy/internal/common"
)

func newChirpService(t *testing.T, rm *fakeRepoManager) *ChirpService {
	t.Helper()
	db, _ := newSQLMockDB(t)
	return NewChirpService(db, rm)
}

func TestChirpCreate(t *testing.T) {
	s := newChirpService(t, newFakeRepoManager())

	chirp, err := s.Create(context.Background(), "u1", "Hello, world!")
	require.NoError(t, err)

	assert.NotEmpty(t, chirp.ID)
	assert.Equal(t, "u1", chirp.UserID)
	assert.Equal(t, "Hello, world!", chirp.Body)
}

func TestChirpCreate_TooLong(t *testing.T) {
	s := newChirpService(t, newFakeRepoManager())

	_, err := s.Create(context.Background(), "u1", strings.Repeat("a", 141))
	assert.ErrorIs(t, err, ErrChirpTooLong)

	_, err = s.Create(context.Background(), "u1", strings.Repeat("a", 140))
	assert.NoError(t, err)

	// The limit counts characters: 140 multi-byte runes are fine.
	_, err = s.Create(context.Background(), "u1", strings.Repeat("ñ", 140))
	assert.NoError(t, err)

	_, err = s.Create(context.Background(), "u1", strings.Repeat("ñ", 141))
	assert.ErrorIs(t, err, ErrChirpTooLong)
}

func TestChirpCreate_ProfanityMasked(t *testing.T) {
	s := newChirpService(t, newFakeRepoManager())

	chirp, err := s.Create(context.Background(), "u1", "This is a Kerfuffle opinion I need to share")
	require.NoError(t, err)
	assert.Equal(t, "This is a **** opinion I need to share", chirp.Body)
}

func TestChirpGetAll_AuthorFilter(t *testing.T) {
	rm := newFakeRepoManager()
	s := newChirpService(t, rm)

	_, err := s.Create(context.Background(), "u1", "first")
	require.NoError(t, err)
	_, err = s.Create(context.Background(), "u2", "second")
	require.NoError(t, err)

	all, err := s.GetAll(context.Background(), "")
	require.NoError(t, err)
	assert.Len(t, all, 2)

	mine, err := s.GetAll(context.Background(), "u1")
	require.NoError(t, err)
	require.Len(t, mine, 1)
	assert.Equal(t, "first", mine[0].Body)
}

func TestChirpDelete_OwnershipEnforced(t *testing.T) {
	rm := newFakeRepoManager()
	s := newChirpService(t, rm)

	chirp, err := s.Create(context.Background(), "u1", "mine")
	require.NoError(t, err)

	err = s.Delete(context.Background(), "u2", chirp.ID)
	assert.ErrorIs(t, err, common.ErrorForbidden)

	require.NoError(t, s.Delete(context.Background(), "u1", chirp.ID))

	_, err = s.GetByID(context.Background(), chirp.ID)
	assert.ErrorIs(t, err, common.ErrorNotFound)
}

func TestChirpDelete_Unknown(t *testing.T) {
	s := newChirpService(t, newFakeRepoManager())

	err := s.Delete(context.Background(), "u1", "no-such-chirp")
	assert.ErrorIs(t, err, common.ErrorNotFound)
}
