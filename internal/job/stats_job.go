package job

import (
	"context"

	"go.uber.org/zap"

	"skill-match-api/internal/metrics"
	"skill-match-api/internal/repository"
)

// StatsJob refreshes the per-collection record count gauges
type StatsJob struct {
	statsRepo repository.StatsRepository
	logger    *zap.Logger
}

// NewStatsJob creates a new StatsJob instance
func NewStatsJob(statsRepo repository.StatsRepository, logger *zap.Logger) *StatsJob {
	return &StatsJob{
		statsRepo: statsRepo,
		logger:    logger,
	}
}

// Run counts every collection and publishes the results as gauges
func (j *StatsJob) Run() {
	ctx := context.Background()

	counts, err := j.statsRepo.Counts(ctx)
	if err != nil {
		j.logger.Error("Failed to count records for stats gauges", zap.Error(err))
		return
	}

	metrics.SetRecordCount("users", float64(counts.Users))
	metrics.SetRecordCount("students", float64(counts.Students))
	metrics.SetRecordCount("startups", float64(counts.Startups))
	metrics.SetRecordCount("applications", float64(counts.Applications))
	metrics.SetRecordCount("messages", float64(counts.Messages))
	metrics.SetRecordCount("events", float64(counts.Events))
	metrics.SetRecordCount("reviews", float64(counts.Reviews))

	j.logger.Debug("Record count gauges refreshed",
		zap.Int64("users", counts.Users),
		zap.Int64("students", counts.Students),
		zap.Int64("startups", counts.Startups),
	)
}
