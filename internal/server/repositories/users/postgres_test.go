package users

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"

	"github.com/avekseev/chirpy/internal/common"
	"github.com/avekseev/chirpy/internal/server/models"
)

func newRepoWithMock(t *testing.T) (*PostgresRepository, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	if err != nil {
		t.Fatalf("sqlmock.New error: %v", err)
	}
	return NewPostgresRepository(db), mock, db
}

func TestCreate_Success(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	q := `(?s)^\s*INSERT\s+INTO\s+users\b.*ON\s+CONFLICT\s+\(email\)\s+DO\s+NOTHING.*RETURNING\b`

	now := time.Now()
	rows := sqlmock.NewRows([]string{"id", "created_at", "updated_at"}).
		AddRow("u1", now, now)

	mock.ExpectQuery(q).
		WithArgs("u1", "a@b.com", "$argon2id$...").
		WillReturnRows(rows)

	user, err := repo.Create(context.Background(), &models.User{ID: "u1", Email: "a@b.com", HashedPassword: "$argon2id$..."})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if user.ID != "u1" || user.CreatedAt.IsZero() {
		t.Fatalf("unexpected user: %+v", user)
	}
}

func TestCreate_DuplicateEmail(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	q := `(?s)^\s*INSERT\s+INTO\s+users\b`

	// ON CONFLICT DO NOTHING yields no RETURNING row for a duplicate.
	mock.ExpectQuery(q).
		WithArgs("u2", "a@b.com", "$argon2id$...").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.Create(context.Background(), &models.User{ID: "u2", Email: "a@b.com", HashedPassword: "$argon2id$..."})
	if !errors.Is(err, common.ErrorAlreadyExists) {
		t.Fatalf("expected ErrorAlreadyExists, got %v", err)
	}
}

func TestGetByEmail_Found(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	q := `(?s)^\s*SELECT\s+id,\s*email,\s*hashed_password,\s*is_chirpy_red,.*FROM\s+users\s+WHERE\s+email\s*=\s*\$1\s*$`

	now := time.Now()
	rows := sqlmock.NewRows([]string{"id", "email", "hashed_password", "is_chirpy_red", "created_at", "updated_at"}).
		AddRow("u1", "a@b.com", "$argon2id$...", false, now, now)

	mock.ExpectQuery(q).
		WithArgs("a@b.com").
		WillReturnRows(rows)

	user, err := repo.GetByEmail(context.Background(), "a@b.com")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if user.Email != "a@b.com" || user.IsChirpyRed {
		t.Fatalf("unexpected user: %+v", user)
	}
}

func TestGetByEmail_NotFound(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(`(?s)^\s*SELECT\b.*WHERE\s+email\s*=\s*\$1`).
		WithArgs("missing@b.com").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.GetByEmail(context.Background(), "missing@b.com")
	if !errors.Is(err, common.ErrorNotFound) {
		t.Fatalf("expected ErrorNotFound, got %v", err)
	}
}

func TestUpgradeToChirpyRed_NotFound(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	q := `(?s)^\s*UPDATE\s+users\s+SET\s+is_chirpy_red\s*=\s*TRUE\b`

	mock.ExpectExec(q).
		WithArgs("ghost").
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.UpgradeToChirpyRed(context.Background(), "ghost")
	if !errors.Is(err, common.ErrorNotFound) {
		t.Fatalf("expected ErrorNotFound, got %v", err)
	}
}

func TestUpgradeToChirpyRed_Success(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectExec(`(?s)^\s*UPDATE\s+users\s+SET\s+is_chirpy_red\s*=\s*TRUE\b`).
		WithArgs("u1").
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := repo.UpgradeToChirpyRed(context.Background(), "u1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestDeleteAll(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectExec(`^\s*DELETE\s+FROM\s+users\s*$`).
		WillReturnResult(sqlmock.NewResult(0, 42))

	if err := repo.DeleteAll(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
