package chirps

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/avekseev/chirpy/internal/common"
	"github.com/avekseev/chirpy/internal/dbx"
	"github.com/avekseev/chirpy/internal/server/models"
)

// PostgresRepository implements Repository over dbx.DBTX.
type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Create(ctx context.Context, chirp *models.Chirp) (*models.Chirp, error) {
	query := `
		INSERT INTO chirps (id, user_id, body)
		VALUES ($1, $2, $3)
		RETURNING created_at, updated_at
	`
	err := r.db.QueryRowContext(ctx, query, chirp.ID, chirp.UserID, chirp.Body).
		Scan(&chirp.CreatedAt, &chirp.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return chirp, nil
}

// GetAll returns chirps in ascending creation order. A non-empty authorID
// narrows the result to one author; callers handle presentation-order
// reversal themselves.
func (r *PostgresRepository) GetAll(ctx context.Context, authorID string) ([]models.Chirp, error) {
	query := `
		SELECT id, user_id, body, created_at, updated_at
		FROM chirps
		ORDER BY created_at
	`
	args := []any{}
	if authorID != "" {
		query = `
		SELECT id, user_id, body, created_at, updated_at
		FROM chirps
		WHERE user_id = $1
		ORDER BY created_at
	`
		args = append(args, authorID)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	result := []models.Chirp{}
	for rows.Next() {
		var c models.Chirp
		if err := rows.Scan(&c.ID, &c.UserID, &c.Body, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		result = append(result, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return result, nil
}

func (r *PostgresRepository) GetByID(ctx context.Context, id string) (*models.Chirp, error) {
	query := `
		SELECT id, user_id, body, created_at, updated_at
		FROM chirps
		WHERE id = $1
	`
	c := &models.Chirp{}
	err := r.db.QueryRowContext(ctx, query, id).
		Scan(&c.ID, &c.UserID, &c.Body, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return c, nil
}

func (r *PostgresRepository) Delete(ctx context.Context, id string) error {
	query := `
		DELETE FROM chirps
		WHERE id = $1
	`
	res, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	if affected == 0 {
		return common.ErrorNotFound
	}
	return nil
}
