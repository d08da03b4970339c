package postgres

import (
	"context"

	"github.com/BloggingApp/profile-service/internal/model"
)

type lookupRepo struct {
	db DBTX
}

func newLookupRepo(db DBTX) Lookup {
	return &lookupRepo{
		db: db,
	}
}

func (r *lookupRepo) Create(ctx context.Context, lookup model.Lookup) error {
	_, err := r.db.Exec(
		ctx,
		"INSERT INTO lookups(id, username, outcome, created_at) VALUES($1, $2, $3, $4)",
		lookup.ID,
		lookup.Username,
		lookup.Outcome,
		lookup.CreatedAt,
	)
	return err
}

func (r *lookupRepo) FindRecent(ctx context.Context, limit int) ([]*model.Lookup, error) {
	maxLimit(&limit)

	rows, err := r.db.Query(
		ctx,
		"SELECT l.id, l.username, l.outcome, l.created_at FROM lookups l ORDER BY l.created_at DESC LIMIT $1",
		limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var lookups []*model.Lookup
	for rows.Next() {
		var lookup model.Lookup
		if err := rows.Scan(
			&lookup.ID,
			&lookup.Username,
			&lookup.Outcome,
			&lookup.CreatedAt,
		); err != nil {
			return nil, err
		}
		lookups = append(lookups, &lookup)
	}

	return lookups, rows.Err()
}
