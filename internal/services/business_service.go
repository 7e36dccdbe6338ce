package services

import (
	"context"

	"github.com/operman-code/brojgar-worker/internal/models"
	"github.com/operman-code/brojgar-worker/internal/repositories"
)

type BusinessService struct {
	Store repositories.Store
	Stats *StatsService
}

func (s *BusinessService) Profile(ctx context.Context, userID string) (models.BusinessProfile, error) {
	user, err := s.Store.GetUser(ctx, userID)
	if err != nil {
		return models.BusinessProfile{}, err
	}
	business, err := s.Store.GetBusinessByUserID(ctx, userID)
	if err != nil {
		return models.BusinessProfile{}, err
	}
	stats, err := s.Stats.BusinessStats(ctx, business.ID)
	if err != nil {
		return models.BusinessProfile{}, err
	}
	return models.BusinessProfile{
		User:     user.Sanitized(),
		Business: business,
		Stats:    stats,
	}, nil
}

// Jobs lists the business's postings newest-first, each with a live count of
// applications received.
func (s *BusinessService) Jobs(ctx context.Context, userID string) ([]models.JobWithApplications, error) {
	business, err := s.Store.GetBusinessByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	jobs, err := s.Store.GetJobsByBusiness(ctx, business.ID)
	if err != nil {
		return nil, err
	}

	listing := make([]models.JobWithApplications, 0, len(jobs))
	for _, job := range jobs {
		apps, err := s.Store.GetJobApplications(ctx, job.ID)
		if err != nil {
			return nil, err
		}
		listing = append(listing, models.JobWithApplications{Job: job, ApplicationsCount: len(apps)})
	}
	return listing, nil
}
