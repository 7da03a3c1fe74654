// Package repomanager wires concrete repository implementations to database
// handles so services can run the same code against *sql.DB or an open
// transaction.
package repomanager

import (
	"context"
	"database/sql"

	"github.com/avekseev/chirpy/internal/dbx"
	"github.com/avekseev/chirpy/internal/server/repositories/chirps"
	"github.com/avekseev/chirpy/internal/server/repositories/refreshtokens"
	"github.com/avekseev/chirpy/internal/server/repositories/users"
)

// RepositoryManager hands out repositories bound to the given DBTX and owns
// schema migrations.
type RepositoryManager interface {
	Users(db dbx.DBTX) users.Repository
	RefreshTokens(db dbx.DBTX) refreshtokens.Repository
	Chirps(db dbx.DBTX) chirps.Repository
	RunMigrations(ctx context.Context, db *sql.DB) error
}
