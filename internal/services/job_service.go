package services

import (
	"context"
	"time"

	"github.com/operman-code/brojgar-worker/internal/models"
	"github.com/operman-code/brojgar-worker/internal/repositories"
)

type JobService struct {
	Store    repositories.Store
	Payments *PaymentService
}

// Create posts a job for the business owned by req.UserID. When an inline
// boost is requested the balance is checked before the job is written so a
// failed boost never leaves a half-applied request; the boost itself goes
// through the same paid gate as a standalone boost.
func (s *JobService) Create(ctx context.Context, req models.CreateJobRequest) (models.Job, error) {
	business, err := s.Store.GetBusinessByUserID(ctx, req.UserID)
	if err != nil {
		return models.Job{}, err
	}

	if req.Boost {
		user, err := s.Store.GetUser(ctx, req.UserID)
		if err != nil {
			return models.Job{}, err
		}
		if user.WalletBalance < BoostFee {
			return models.Job{}, models.ErrInsufficientFunds
		}
	}

	job, err := s.Store.CreateJob(ctx, models.Job{
		BusinessID:     business.ID,
		Title:          req.Title,
		Description:    req.Description,
		WorkType:       req.WorkType,
		Location:       req.Location,
		Duration:       req.Duration,
		Salary:         req.Salary,
		WorkersNeeded:  req.WorkersNeeded,
		ContactDetails: req.ContactDetails,
	})
	if err != nil {
		return models.Job{}, err
	}

	if req.Boost {
		if _, err := s.Payments.BoostJob(ctx, req.UserID, job.ID); err != nil {
			return models.Job{}, err
		}
		return s.Store.GetJob(ctx, job.ID)
	}
	return job, nil
}

func (s *JobService) GetByID(ctx context.Context, id string) (models.Job, error) {
	return s.Store.GetJob(ctx, id)
}

// Update applies a partial update; fields absent from the payload keep their
// prior values. Setting isActive=false is how a business marks a job done.
func (s *JobService) Update(ctx context.Context, id string, update models.JobUpdate) (models.Job, error) {
	return s.Store.UpdateJob(ctx, id, update)
}

// ClearExpiredBoosts reverts boosts whose 30-day window has passed. Driven by
// the background sweeper.
func (s *JobService) ClearExpiredBoosts(ctx context.Context, now time.Time) (int, error) {
	if now.IsZero() {
		now = time.Now()
	}
	return s.Store.ClearExpiredBoosts(ctx, now)
}
