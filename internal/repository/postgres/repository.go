package postgres

import (
	"context"

	"github.com/BloggingApp/profile-service/internal/config"
	"github.com/BloggingApp/profile-service/internal/model"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const MAX_LIMIT = 100

func maxLimit(limit *int) {
	if *limit > MAX_LIMIT || *limit <= 0 {
		*limit = MAX_LIMIT
	}
}

// DBTX is the subset of *pgxpool.Pool the repositories use.
type DBTX interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
}

type Lookup interface {
	Create(ctx context.Context, lookup model.Lookup) error
	FindRecent(ctx context.Context, limit int) ([]*model.Lookup, error)
}

type PostgresRepository struct {
	Lookup
}

func New(db DBTX) *PostgresRepository {
	return &PostgresRepository{
		Lookup: newLookupRepo(db),
	}
}

func DB(ctx context.Context, cfg config.DBConfig) (*pgxpool.Pool, error) {
	return pgxpool.New(ctx, cfg.DSN())
}
