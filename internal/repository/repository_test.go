package repository

import (
	"testing"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
)

func TestNew_OptionalBackends(t *testing.T) {
	repo := New(nil, nil)
	assert.Nil(t, repo.Postgres)
	assert.Nil(t, repo.Redis)

	rdb := redis.NewClient(&redis.Options{Addr: "localhost:0"})
	defer rdb.Close()

	repo = New(nil, rdb)
	assert.Nil(t, repo.Postgres)
	assert.NotNil(t, repo.Redis)
}
