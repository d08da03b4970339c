package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/BloggingApp/profile-service/internal/config"
	"github.com/BloggingApp/profile-service/internal/github"
	"github.com/BloggingApp/profile-service/internal/model"
	"github.com/BloggingApp/profile-service/internal/repository"
	"github.com/BloggingApp/profile-service/internal/repository/redisrepo"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

type profileService struct {
	logger  *zap.Logger
	repo    *repository.Repository
	source  ProfileSource
	lookups Lookup
	cache   config.CacheConfig
}

func newProfileService(logger *zap.Logger, repo *repository.Repository, source ProfileSource, lookups Lookup, cache config.CacheConfig) Profile {
	return &profileService{
		logger:  logger,
		repo:    repo,
		source:  source,
		lookups: lookups,
		cache:   cache,
	}
}

func (s *profileService) cacheEnabled() bool {
	return s.repo != nil && s.repo.Redis != nil
}

func (s *profileService) Fetch(ctx context.Context, username string) ([]model.ProfileRecord, error) {
	if strings.TrimSpace(username) == "" {
		return []model.ProfileRecord{}, ErrEmptyUsername
	}

	if s.cacheEnabled() {
		cachedProfile, err := redisrepo.Get[model.ProfileRecord](s.repo.Redis.Default, ctx, redisrepo.ProfileKey(username))
		switch {
		case err == nil && cachedProfile == nil:
			s.lookups.Record(ctx, username, model.LookupNotFound)
			return []model.ProfileRecord{}, ErrProfileNotFound
		case err == nil:
			s.lookups.Record(ctx, username, model.LookupFound)
			return []model.ProfileRecord{*cachedProfile}, nil
		case err != redis.Nil:
			s.logger.Sugar().Errorf("failed to get profile of user(%s) from redis: %s", username, err.Error())
		}
	}

	profile, err := s.source.FetchProfile(ctx, username)
	if err != nil {
		return []model.ProfileRecord{}, s.handleSourceError(ctx, username, err)
	}

	s.setCache(ctx, username, profile, s.cache.ProfileTTL)
	s.lookups.Record(ctx, username, model.LookupFound)

	return []model.ProfileRecord{*profile}, nil
}

// handleSourceError maps a source failure to a service error and records the outcome.
// Canceled requests are not recorded.
func (s *profileService) handleSourceError(ctx context.Context, username string, err error) error {
	if errors.Is(err, context.Canceled) || ctx.Err() != nil {
		return ErrCanceled
	}

	switch {
	case errors.Is(err, github.ErrUserNotFound):
		s.setCache(ctx, username, nil, s.cache.NotFoundTTL)
		s.lookups.Record(ctx, username, model.LookupNotFound)
		return ErrProfileNotFound
	case errors.Is(err, github.ErrIncompleteProfile):
		s.logger.Sugar().Errorf("incomplete profile of user(%s): %s", username, err.Error())
		s.lookups.Record(ctx, username, model.LookupIncomplete)
		return ErrIncompleteProfile
	case errors.Is(err, github.ErrRateLimited):
		s.logger.Sugar().Warnf("rate limited while fetching user(%s)", username)
		s.lookups.Record(ctx, username, model.LookupRateLimited)
		return ErrRateLimited
	}

	s.logger.Sugar().Errorf("failed to fetch profile of user(%s): %s", username, err.Error())
	s.lookups.Record(ctx, username, model.LookupError)
	return ErrUpstream
}

func (s *profileService) setCache(ctx context.Context, username string, profile *model.ProfileRecord, ttl time.Duration) {
	if !s.cacheEnabled() || ttl <= 0 {
		return
	}

	if err := s.repo.Redis.Default.SetJSON(ctx, redisrepo.ProfileKey(username), profile, ttl); err != nil {
		s.logger.Sugar().Errorf("failed to set profile of user(%s) in redis: %s", username, err.Error())
	}
}
