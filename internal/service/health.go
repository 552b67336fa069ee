package service

import (
	"context"

	"go.uber.org/zap"

	"frame-inbox/internal/repository"
)

type HealthRepository interface {
	Ping(ctx context.Context) error
	CountEntries(ctx context.Context, ext repository.RepoExtension) (int64, error)
}

type HealthService struct {
	log        *zap.Logger
	healthRepo HealthRepository
}

func NewHealthService(log *zap.Logger, healthRepo HealthRepository) *HealthService {
	return &HealthService{
		log:        log,
		healthRepo: healthRepo,
	}
}

func (s *HealthService) IsOK(ctx context.Context) (bool, error) {
	s.log.Debug("HealthService.IsOK()")

	if err := s.healthRepo.Ping(ctx); err != nil {
		return false, err
	}

	return true, nil
}

func (s *HealthService) CountFrames(ctx context.Context) (int64, error) {
	return s.healthRepo.CountEntries(ctx, nil)
}
