package repository

import (
	"github.com/BloggingApp/profile-service/internal/repository/postgres"
	"github.com/BloggingApp/profile-service/internal/repository/redisrepo"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
)

// Repository groups the optional storage backends. A nil field means the
// backend is not configured.
type Repository struct {
	Postgres *postgres.PostgresRepository
	Redis    *redisrepo.RedisRepository
}

func New(db *pgxpool.Pool, rdb *redis.Client) *Repository {
	repo := &Repository{}
	if db != nil {
		repo.Postgres = postgres.New(db)
	}
	if rdb != nil {
		repo.Redis = redisrepo.New(rdb)
	}
	return repo
}
