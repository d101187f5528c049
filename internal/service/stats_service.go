package service

import (
	"context"

	"skill-match-api/internal/dto"
	"skill-match-api/internal/repository"
)

// StatsService exposes the dashboard rollup
type StatsService interface {
	Counts(ctx context.Context) (*dto.StatsResponse, error)
}

type statsServiceImpl struct {
	statsRepo repository.StatsRepository
}

// NewStatsService creates a new instance of StatsService
func NewStatsService(statsRepo repository.StatsRepository) StatsService {
	return &statsServiceImpl{statsRepo: statsRepo}
}

func (s *statsServiceImpl) Counts(ctx context.Context) (*dto.StatsResponse, error) {
	return s.statsRepo.Counts(ctx)
}
