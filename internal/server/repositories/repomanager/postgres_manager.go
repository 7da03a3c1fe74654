package repomanager

import (
	"context"
	"database/sql"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"

	"github.com/avekseev/chirpy/internal/dbx"
	"github.com/avekseev/chirpy/internal/server/migrations"
	"github.com/avekseev/chirpy/internal/server/repositories/chirps"
	"github.com/avekseev/chirpy/internal/server/repositories/refreshtokens"
	"github.com/avekseev/chirpy/internal/server/repositories/users"
)

// PostgresRepositoryManager is the production RepositoryManager backed by
// pgx through database/sql.
type PostgresRepositoryManager struct{}

func NewPostgresRepositoryManager() *PostgresRepositoryManager {
	return &PostgresRepositoryManager{}
}

func (m *PostgresRepositoryManager) Users(db dbx.DBTX) users.Repository {
	return users.NewPostgresRepository(db)
}

func (m *PostgresRepositoryManager) RefreshTokens(db dbx.DBTX) refreshtokens.Repository {
	return refreshtokens.NewPostgresRepository(db)
}

func (m *PostgresRepositoryManager) Chirps(db dbx.DBTX) chirps.Repository {
	return chirps.NewPostgresRepository(db)
}

// RunMigrations applies the embedded goose migrations.
func (m *PostgresRepositoryManager) RunMigrations(ctx context.Context, db *sql.DB) error {
	goose.SetBaseFS(migrations.Migrations)
	if err := goose.SetDialect("pgx"); err != nil {
		return err
	}
	return goose.UpContext(ctx, db, ".")
}
