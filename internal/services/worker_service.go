package services

import (
	"context"

	"github.com/operman-code/brojgar-worker/internal/models"
	"github.com/operman-code/brojgar-worker/internal/repositories"
)

type WorkerService struct {
	Store repositories.Store
	Stats *StatsService
}

func (s *WorkerService) Profile(ctx context.Context, userID string) (models.WorkerProfile, error) {
	user, err := s.Store.GetUser(ctx, userID)
	if err != nil {
		return models.WorkerProfile{}, err
	}
	worker, err := s.Store.GetWorkerByUserID(ctx, userID)
	if err != nil {
		return models.WorkerProfile{}, err
	}
	stats, err := s.Stats.WorkerStats(ctx, worker)
	if err != nil {
		return models.WorkerProfile{}, err
	}
	return models.WorkerProfile{
		User:   user.Sanitized(),
		Worker: worker,
		Stats:  stats,
	}, nil
}

// Jobs returns the ranked listing for a worker, each entry annotated with
// whether this user has already paid to unlock it.
func (s *WorkerService) Jobs(ctx context.Context, userID string) ([]models.JobForWorker, error) {
	user, err := s.Store.GetUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	worker, err := s.Store.GetWorkerByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	active, err := s.Store.GetActiveJobs(ctx)
	if err != nil {
		return nil, err
	}
	ranked := rankJobsForWorker(active, user.Location, worker.Skills)

	listing := make([]models.JobForWorker, 0, len(ranked))
	for _, job := range ranked {
		unlocked, err := s.Store.IsJobUnlocked(ctx, userID, job.ID)
		if err != nil {
			return nil, err
		}
		listing = append(listing, models.JobForWorker{Job: job, IsUnlocked: unlocked})
	}
	return listing, nil
}

// Apply records a pending application. Each attempt creates a fresh row;
// there is no uniqueness constraint on the (job, worker) pair.
func (s *WorkerService) Apply(ctx context.Context, jobID, userID string) (models.JobApplication, error) {
	worker, err := s.Store.GetWorkerByUserID(ctx, userID)
	if err != nil {
		return models.JobApplication{}, err
	}
	if _, err := s.Store.GetJob(ctx, jobID); err != nil {
		return models.JobApplication{}, err
	}
	return s.Store.CreateJobApplication(ctx, jobID, worker.ID)
}
