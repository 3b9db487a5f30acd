package services

import (
	"context"
	"fmt"
	"time"

	"eventlane/internal/domain"
)

type statsService struct {
	hitRepo domain.HitRepository
}

// NewStatsService creates the statistics service's application layer.
func NewStatsService(hitRepo domain.HitRepository) domain.StatsService {
	return &statsService{hitRepo: hitRepo}
}

func (s *statsService) Record(ctx context.Context, hit domain.EndpointHit) error {
	if err := s.hitRepo.Create(ctx, &hit); err != nil {
		return fmt.Errorf("create hit: %w", err)
	}
	return nil
}

func (s *statsService) Get(ctx context.Context, start, end time.Time, uris []string, unique bool) ([]domain.ViewStats, error) {
	if start.After(end) {
		return nil, &domain.BadRequestError{Message: "Start date must be before end date"}
	}
	stats, err := s.hitRepo.Aggregate(ctx, start, end, uris, unique)
	if err != nil {
		return nil, fmt.Errorf("aggregate hits: %w", err)
	}
	return stats, nil
}
