package service

import (
	"context"

	"github.com/BloggingApp/profile-service/internal/config"
	"github.com/BloggingApp/profile-service/internal/model"
	"github.com/BloggingApp/profile-service/internal/repository"
	"go.uber.org/zap"
)

// ProfileSource fetches one user profile from an external API.
type ProfileSource interface {
	FetchProfile(ctx context.Context, username string) (*model.ProfileRecord, error)
}

type Profile interface {
	// Fetch returns zero or one records. The slice is never nil.
	Fetch(ctx context.Context, username string) ([]model.ProfileRecord, error)
}

type Lookup interface {
	Record(ctx context.Context, username string, outcome string)
	FindRecent(ctx context.Context, limit int) ([]*model.Lookup, error)
}

type Service struct {
	Profile
	Lookup
}

func New(logger *zap.Logger, repo *repository.Repository, source ProfileSource, cacheCfg config.CacheConfig, historyCfg config.HistoryConfig) *Service {
	lookups := newLookupService(logger, repo, historyCfg)
	return &Service{
		Profile: newProfileService(logger, repo, source, lookups, cacheCfg),
		Lookup:  lookups,
	}
}
