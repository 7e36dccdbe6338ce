package repositories

import (
	"context"
	"time"

	"github.com/operman-code/brojgar-worker/internal/models"
)

// Store is the single storage contract shared by the in-memory and mysql
// backends. The backend is picked once at startup and never mixed.
//
// "Not found" is reported through the sentinel errors in internal/models;
// callers translate those at the HTTP boundary.
type Store interface {
	// Users
	GetUser(ctx context.Context, id string) (models.User, error)
	GetUserByEmail(ctx context.Context, email string) (models.User, error)
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	// UpdateUserWalletBalance applies an additive delta. A missing user is a
	// silent no-op; callers validate sufficiency before debiting.
	UpdateUserWalletBalance(ctx context.Context, userID string, delta int) error

	// Workers
	GetWorkerByUserID(ctx context.Context, userID string) (models.Worker, error)
	CreateWorker(ctx context.Context, worker models.Worker) (models.Worker, error)

	// Businesses
	GetBusinessByUserID(ctx context.Context, userID string) (models.Business, error)
	CreateBusiness(ctx context.Context, business models.Business) (models.Business, error)

	// Jobs
	GetJob(ctx context.Context, id string) (models.Job, error)
	GetActiveJobs(ctx context.Context) ([]models.Job, error)
	CountActiveJobs(ctx context.Context) (int, error)
	GetJobsByBusiness(ctx context.Context, businessID string) ([]models.Job, error)
	CreateJob(ctx context.Context, job models.Job) (models.Job, error)
	UpdateJob(ctx context.Context, id string, update models.JobUpdate) (models.Job, error)
	// BoostJob sets boosted=true and expiry=now+BoostDuration unconditionally,
	// resetting the window on re-boost. A missing job is a silent no-op.
	BoostJob(ctx context.Context, jobID string) error
	// ClearExpiredBoosts reverts boosted jobs whose expiry has passed and
	// reports how many were cleared.
	ClearExpiredBoosts(ctx context.Context, now time.Time) (int, error)

	// Applications
	GetJobApplications(ctx context.Context, jobID string) ([]models.JobApplication, error)
	CreateJobApplication(ctx context.Context, jobID, workerID string) (models.JobApplication, error)

	// Payments
	CreatePayment(ctx context.Context, payment models.Payment) (models.Payment, error)
	UpdatePaymentStatus(ctx context.Context, paymentID, status string) error
	GetPaymentsByUser(ctx context.Context, userID string) ([]models.Payment, error)

	// Unlocked jobs
	IsJobUnlocked(ctx context.Context, userID, jobID string) (bool, error)
	UnlockJob(ctx context.Context, userID, jobID string) (models.UnlockedJob, error)
	GetUnlockedJobs(ctx context.Context, userID string) ([]models.UnlockedJob, error)
}
