package postgre

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"timeblock/internal/auth/repository"
	"timeblock/pkg/log"
)

// DB is the subset of *pgxpool.Pool the repository uses.
type DB interface {
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type implRepository struct {
	db DB
	l  log.Logger
}

// New creates a new PostgreSQL-backed Repository for users.
func New(db DB, l log.Logger) repository.Repository {
	if db == nil {
		panic("auth/repository/postgre: db is required")
	}
	return &implRepository{db: db, l: l}
}

// dsn is a helper to return a method-scoped context string for logging.
func (r *implRepository) dsn(method string) string {
	return fmt.Sprintf("auth/repository/postgre.%s", method)
}
