package service

import (
	"context"
	"time"

	"github.com/BloggingApp/profile-service/internal/config"
	"github.com/BloggingApp/profile-service/internal/model"
	"github.com/BloggingApp/profile-service/internal/repository"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type lookupService struct {
	logger *zap.Logger
	repo   *repository.Repository
	limit  int
}

func newLookupService(logger *zap.Logger, repo *repository.Repository, cfg config.HistoryConfig) Lookup {
	return &lookupService{
		logger: logger,
		repo:   repo,
		limit:  cfg.Limit,
	}
}

func (s *lookupService) enabled() bool {
	return s.repo != nil && s.repo.Postgres != nil
}

// Record stores the outcome of a lookup. Failures are logged, never returned.
func (s *lookupService) Record(ctx context.Context, username string, outcome string) {
	if !s.enabled() {
		return
	}

	lookup := model.Lookup{
		ID:        uuid.New(),
		Username:  username,
		Outcome:   outcome,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.repo.Postgres.Lookup.Create(ctx, lookup); err != nil {
		s.logger.Sugar().Errorf("failed to record lookup of user(%s): %s", username, err.Error())
	}
}

func (s *lookupService) FindRecent(ctx context.Context, limit int) ([]*model.Lookup, error) {
	if !s.enabled() {
		return nil, ErrHistoryDisabled
	}

	if limit <= 0 || (s.limit > 0 && limit > s.limit) {
		limit = s.limit
	}

	lookups, err := s.repo.Postgres.Lookup.FindRecent(ctx, limit)
	if err != nil {
		s.logger.Sugar().Errorf("failed to find recent lookups from postgres: %s", err.Error())
		return nil, ErrInternal
	}

	if lookups == nil {
		lookups = []*model.Lookup{}
	}

	return lookups, nil
}
