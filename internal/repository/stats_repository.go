package repository

import (
	"context"

	"gorm.io/gorm"

	"skill-match-api/internal/domain"
	"skill-match-api/internal/dto"
)

// StatsRepository counts rows across all collections for the dashboard
// rollup and the record-count gauges.
type StatsRepository interface {
	Counts(ctx context.Context) (*dto.StatsResponse, error)
}

type statsRepository struct {
	conn
}

// NewStatsRepository creates a new StatsRepository
func NewStatsRepository(db *gorm.DB) StatsRepository {
	return &statsRepository{conn{injected: db}}
}

func (r *statsRepository) Counts(ctx context.Context) (*dto.StatsResponse, error) {
	db, err := r.get()
	if err != nil {
		return nil, err
	}

	stats := &dto.StatsResponse{}
	for _, c := range []struct {
		model interface{}
		dest  *int64
	}{
		{&domain.User{}, &stats.Users},
		{&domain.Student{}, &stats.Students},
		{&domain.Startup{}, &stats.Startups},
		{&domain.Application{}, &stats.Applications},
		{&domain.Message{}, &stats.Messages},
		{&domain.Event{}, &stats.Events},
		{&domain.Review{}, &stats.Reviews},
	} {
		if err := db.WithContext(ctx).Model(c.model).Count(c.dest).Error; err != nil {
			return nil, err
		}
	}
	return stats, nil
}
