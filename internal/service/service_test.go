package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/BloggingApp/profile-service/internal/config"
	"github.com/BloggingApp/profile-service/internal/github"
	"github.com/BloggingApp/profile-service/internal/model"
	"github.com/BloggingApp/profile-service/internal/repository"
	"github.com/BloggingApp/profile-service/internal/repository/postgres"
	"github.com/BloggingApp/profile-service/internal/repository/redisrepo"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func strPtr(s string) *string { return &s }

func octocat() *model.ProfileRecord {
	return &model.ProfileRecord{
		Name:        strPtr("The Octocat"),
		Blog:        strPtr("https://github.blog"),
		PublicGists: 8,
		PublicRepos: 8,
		AvatarURL:   "https://avatars.githubusercontent.com/u/583231?v=4",
		Followers:   9000,
		Following:   9,
		Location:    strPtr("San Francisco"),
	}
}

type stubSource struct {
	calls     int
	fetchFunc func(ctx context.Context, username string) (*model.ProfileRecord, error)
}

func (s *stubSource) FetchProfile(ctx context.Context, username string) (*model.ProfileRecord, error) {
	s.calls++
	return s.fetchFunc(ctx, username)
}

// memoryRedis keeps raw JSON values keyed like redis would.
type memoryRedis struct {
	values map[string]string
	ttls   map[string]time.Duration
	getErr error
}

func newMemoryRedis() *memoryRedis {
	return &memoryRedis{values: map[string]string{}, ttls: map[string]time.Duration{}}
}

func (m *memoryRedis) SetJSON(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	b, err := json.Marshal(value)
	if err != nil {
		return err
	}
	m.values[key] = string(b)
	m.ttls[key] = ttl
	return nil
}

func (m *memoryRedis) Get(ctx context.Context, key string) *redis.StringCmd {
	if m.getErr != nil {
		return redis.NewStringResult("", m.getErr)
	}
	v, ok := m.values[key]
	if !ok {
		return redis.NewStringResult("", redis.Nil)
	}
	return redis.NewStringResult(v, nil)
}

type memoryLookups struct {
	created []model.Lookup
	findErr error
}

func (m *memoryLookups) Create(ctx context.Context, lookup model.Lookup) error {
	m.created = append(m.created, lookup)
	return nil
}

func (m *memoryLookups) FindRecent(ctx context.Context, limit int) ([]*model.Lookup, error) {
	if m.findErr != nil {
		return nil, m.findErr
	}
	var out []*model.Lookup
	for i := len(m.created) - 1; i >= 0 && len(out) < limit; i-- {
		l := m.created[i]
		out = append(out, &l)
	}
	return out, nil
}

var testCacheConfig = config.CacheConfig{ProfileTTL: 10 * time.Minute, NotFoundTTL: time.Minute}

func newTestService(source ProfileSource, rdb *memoryRedis, lookups *memoryLookups) *Service {
	repo := &repository.Repository{}
	if rdb != nil {
		repo.Redis = &redisrepo.RedisRepository{Default: rdb}
	}
	if lookups != nil {
		repo.Postgres = &postgres.PostgresRepository{Lookup: lookups}
	}
	return New(zap.NewNop(), repo, source, testCacheConfig, config.HistoryConfig{Limit: 5})
}

func TestFetch_ReturnsSingleRecord(t *testing.T) {
	// Arrange
	source := &stubSource{fetchFunc: func(ctx context.Context, username string) (*model.ProfileRecord, error) {
		assert.Equal(t, "octocat", username)
		return octocat(), nil
	}}
	svc := newTestService(source, nil, nil)

	// Act
	records, err := svc.Profile.Fetch(context.Background(), "octocat")

	// Assert
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, *octocat(), records[0])
	assert.Equal(t, 1, source.calls)
}

func TestFetch_WithoutCacheCallsSourceEveryTime(t *testing.T) {
	source := &stubSource{fetchFunc: func(ctx context.Context, username string) (*model.ProfileRecord, error) {
		return octocat(), nil
	}}
	svc := newTestService(source, nil, nil)

	first, err := svc.Profile.Fetch(context.Background(), "octocat")
	require.NoError(t, err)
	second, err := svc.Profile.Fetch(context.Background(), "octocat")
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, 2, source.calls)
}

func TestFetch_EmptyUsername(t *testing.T) {
	source := &stubSource{}
	svc := newTestService(source, nil, nil)

	records, err := svc.Profile.Fetch(context.Background(), "  ")

	assert.ErrorIs(t, err, ErrEmptyUsername)
	assert.NotNil(t, records)
	assert.Empty(t, records)
	assert.Zero(t, source.calls)
}

func TestFetch_SourceErrors(t *testing.T) {
	tests := []struct {
		name        string
		sourceErr   error
		wantErr     error
		wantOutcome string
	}{
		{name: "not found", sourceErr: github.ErrUserNotFound, wantErr: ErrProfileNotFound, wantOutcome: model.LookupNotFound},
		{name: "incomplete", sourceErr: fmt.Errorf("%w: missing field", github.ErrIncompleteProfile), wantErr: ErrIncompleteProfile, wantOutcome: model.LookupIncomplete},
		{name: "rate limited", sourceErr: github.ErrRateLimited, wantErr: ErrRateLimited, wantOutcome: model.LookupRateLimited},
		{name: "transport", sourceErr: errors.New("connection refused"), wantErr: ErrUpstream, wantOutcome: model.LookupError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			source := &stubSource{fetchFunc: func(ctx context.Context, username string) (*model.ProfileRecord, error) {
				return nil, tt.sourceErr
			}}
			lookups := &memoryLookups{}
			svc := newTestService(source, nil, lookups)

			records, err := svc.Profile.Fetch(context.Background(), "ghost")

			assert.ErrorIs(t, err, tt.wantErr)
			assert.NotNil(t, records)
			assert.Empty(t, records)
			require.Len(t, lookups.created, 1)
			assert.Equal(t, tt.wantOutcome, lookups.created[0].Outcome)
			assert.Equal(t, "ghost", lookups.created[0].Username)
		})
	}
}

func TestFetch_CacheAside(t *testing.T) {
	// Arrange
	source := &stubSource{fetchFunc: func(ctx context.Context, username string) (*model.ProfileRecord, error) {
		return octocat(), nil
	}}
	rdb := newMemoryRedis()
	svc := newTestService(source, rdb, nil)

	// Act
	first, err := svc.Profile.Fetch(context.Background(), "Octocat")
	require.NoError(t, err)
	second, err := svc.Profile.Fetch(context.Background(), "octocat")
	require.NoError(t, err)

	// Assert
	assert.Equal(t, 1, source.calls)
	assert.Equal(t, first, second)
	assert.Equal(t, testCacheConfig.ProfileTTL, rdb.ttls[redisrepo.ProfileKey("octocat")])
}

func TestFetch_CachesNotFound(t *testing.T) {
	source := &stubSource{fetchFunc: func(ctx context.Context, username string) (*model.ProfileRecord, error) {
		return nil, github.ErrUserNotFound
	}}
	rdb := newMemoryRedis()
	svc := newTestService(source, rdb, nil)

	_, err := svc.Profile.Fetch(context.Background(), "ghost")
	assert.ErrorIs(t, err, ErrProfileNotFound)
	records, err := svc.Profile.Fetch(context.Background(), "ghost")

	assert.ErrorIs(t, err, ErrProfileNotFound)
	assert.Empty(t, records)
	assert.Equal(t, 1, source.calls)
	assert.Equal(t, "null", rdb.values[redisrepo.ProfileKey("ghost")])
	assert.Equal(t, testCacheConfig.NotFoundTTL, rdb.ttls[redisrepo.ProfileKey("ghost")])
}

func TestFetch_DoesNotCacheUpstreamFailures(t *testing.T) {
	source := &stubSource{fetchFunc: func(ctx context.Context, username string) (*model.ProfileRecord, error) {
		return nil, errors.New("boom")
	}}
	rdb := newMemoryRedis()
	svc := newTestService(source, rdb, nil)

	_, err := svc.Profile.Fetch(context.Background(), "octocat")

	assert.ErrorIs(t, err, ErrUpstream)
	assert.Empty(t, rdb.values)
}

func TestFetch_RedisFailureFallsBackToSource(t *testing.T) {
	source := &stubSource{fetchFunc: func(ctx context.Context, username string) (*model.ProfileRecord, error) {
		return octocat(), nil
	}}
	rdb := newMemoryRedis()
	rdb.getErr = errors.New("redis down")
	svc := newTestService(source, rdb, nil)

	records, err := svc.Profile.Fetch(context.Background(), "octocat")

	require.NoError(t, err)
	assert.Len(t, records, 1)
	assert.Equal(t, 1, source.calls)
}

func TestLookup_FindRecent(t *testing.T) {
	source := &stubSource{fetchFunc: func(ctx context.Context, username string) (*model.ProfileRecord, error) {
		return octocat(), nil
	}}
	lookups := &memoryLookups{}
	svc := newTestService(source, nil, lookups)
	for _, u := range []string{"a", "b", "c", "d", "e", "f", "g"} {
		_, err := svc.Profile.Fetch(context.Background(), u)
		require.NoError(t, err)
	}

	// limit above the configured history limit is clamped to it
	recent, err := svc.Lookup.FindRecent(context.Background(), 100)

	require.NoError(t, err)
	require.Len(t, recent, 5)
	assert.Equal(t, "g", recent[0].Username)
	assert.Equal(t, model.LookupFound, recent[0].Outcome)
}

func TestLookup_Disabled(t *testing.T) {
	svc := newTestService(&stubSource{}, nil, nil)

	_, err := svc.Lookup.FindRecent(context.Background(), 10)

	assert.ErrorIs(t, err, ErrHistoryDisabled)
}

func TestLookup_RepositoryError(t *testing.T) {
	svc := newTestService(&stubSource{}, nil, &memoryLookups{findErr: errors.New("db down")})

	_, err := svc.Lookup.FindRecent(context.Background(), 10)

	assert.ErrorIs(t, err, ErrInternal)
}

func TestFetch_CanceledRequestIsNotRecorded(t *testing.T) {
	// Arrange
	ctx, cancel := context.WithCancel(context.Background())
	source := &stubSource{fetchFunc: func(ctx context.Context, username string) (*model.ProfileRecord, error) {
		cancel()
		return nil, fmt.Errorf("request failed: %w", ctx.Err())
	}}
	lookups := &memoryLookups{}
	rdb := newMemoryRedis()
	svc := newTestService(source, rdb, lookups)

	// Act
	records, err := svc.Profile.Fetch(ctx, "octocat")

	// Assert
	assert.ErrorIs(t, err, ErrCanceled)
	assert.NotErrorIs(t, err, ErrUpstream)
	assert.Empty(t, records)
	assert.Empty(t, lookups.created)
	assert.Empty(t, rdb.values)
}
