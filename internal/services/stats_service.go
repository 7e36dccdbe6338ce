package services

import (
	"context"

	"github.com/operman-code/brojgar-worker/internal/models"
	"github.com/operman-code/brojgar-worker/internal/repositories"
)

// StatsService composes read-only dashboard counters from store primitives.
// It never mutates anything.
type StatsService struct {
	Store repositories.Store
}

// WorkerStats reports the stored completed-jobs counter and rating plus the
// system-wide count of active jobs. The available-jobs tile is deliberately
// global, not filtered by the worker's location.
func (s *StatsService) WorkerStats(ctx context.Context, worker models.Worker) (models.WorkerStats, error) {
	available, err := s.Store.CountActiveJobs(ctx)
	if err != nil {
		return models.WorkerStats{}, err
	}
	return models.WorkerStats{
		CompletedJobs: worker.CompletedJobs,
		Rating:        worker.Rating,
		AvailableJobs: available,
	}, nil
}

// BusinessStats counts the business's active, boosted-and-active and inactive
// jobs plus applications across all of its jobs.
func (s *StatsService) BusinessStats(ctx context.Context, businessID string) (models.BusinessStats, error) {
	jobs, err := s.Store.GetJobsByBusiness(ctx, businessID)
	if err != nil {
		return models.BusinessStats{}, err
	}

	var stats models.BusinessStats
	for _, job := range jobs {
		if job.IsActive {
			stats.ActiveJobs++
			if job.IsBoosted {
				stats.BoostedJobs++
			}
		} else {
			stats.CompletedJobs++
		}
		apps, err := s.Store.GetJobApplications(ctx, job.ID)
		if err != nil {
			return models.BusinessStats{}, err
		}
		stats.Applications += len(apps)
	}
	return stats, nil
}
