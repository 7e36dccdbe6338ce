package repositories

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/operman-code/brojgar-worker/internal/models"
)

// MemoryStore keeps every entity in process memory. Jobs are held in
// insertion order so equal-rank listings stay stable between calls.
type MemoryStore struct {
	mu           sync.RWMutex
	users        map[string]models.User
	workers      map[string]models.Worker
	businesses   map[string]models.Business
	jobs         map[string]models.Job
	jobOrder     []string
	applications []models.JobApplication
	payments     []models.Payment
	unlocks      []models.UnlockedJob
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		users:      make(map[string]models.User),
		workers:    make(map[string]models.Worker),
		businesses: make(map[string]models.Business),
		jobs:       make(map[string]models.Job),
	}
}

func (s *MemoryStore) GetUser(ctx context.Context, id string) (models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	user, ok := s.users[id]
	if !ok {
		return models.User{}, models.ErrUserNotFound
	}
	return user, nil
}

func (s *MemoryStore) GetUserByEmail(ctx context.Context, email string) (models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, user := range s.users {
		if user.Email == email {
			return user, nil
		}
	}
	return models.User{}, models.ErrUserNotFound
}

func (s *MemoryStore) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	user.ID = uuid.NewString()
	user.WalletBalance = 0
	user.CreatedAt = time.Now()
	s.users[user.ID] = user
	return user, nil
}

func (s *MemoryStore) UpdateUserWalletBalance(ctx context.Context, userID string, delta int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	user, ok := s.users[userID]
	if !ok {
		return nil
	}
	user.WalletBalance += delta
	s.users[userID] = user
	return nil
}

func (s *MemoryStore) GetWorkerByUserID(ctx context.Context, userID string) (models.Worker, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, worker := range s.workers {
		if worker.UserID == userID {
			return worker, nil
		}
	}
	return models.Worker{}, models.ErrWorkerNotFound
}

func (s *MemoryStore) CreateWorker(ctx context.Context, worker models.Worker) (models.Worker, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	worker.ID = uuid.NewString()
	worker.CompletedJobs = 0
	worker.Rating = 0
	s.workers[worker.ID] = worker
	return worker, nil
}

func (s *MemoryStore) GetBusinessByUserID(ctx context.Context, userID string) (models.Business, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, business := range s.businesses {
		if business.UserID == userID {
			return business, nil
		}
	}
	return models.Business{}, models.ErrBusinessNotFound
}

func (s *MemoryStore) CreateBusiness(ctx context.Context, business models.Business) (models.Business, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	business.ID = uuid.NewString()
	s.businesses[business.ID] = business
	return business, nil
}

func (s *MemoryStore) GetJob(ctx context.Context, id string) (models.Job, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	job, ok := s.jobs[id]
	if !ok {
		return models.Job{}, models.ErrJobNotFound
	}
	return job, nil
}

func (s *MemoryStore) GetActiveJobs(ctx context.Context) ([]models.Job, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var active []models.Job
	for _, id := range s.jobOrder {
		if job := s.jobs[id]; job.IsActive {
			active = append(active, job)
		}
	}
	return active, nil
}

func (s *MemoryStore) CountActiveJobs(ctx context.Context) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	count := 0
	for _, job := range s.jobs {
		if job.IsActive {
			count++
		}
	}
	return count, nil
}

func (s *MemoryStore) GetJobsByBusiness(ctx context.Context, businessID string) ([]models.Job, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var jobs []models.Job
	for _, id := range s.jobOrder {
		if job := s.jobs[id]; job.BusinessID == businessID {
			jobs = append(jobs, job)
		}
	}
	sort.SliceStable(jobs, func(i, j int) bool {
		return jobs[i].CreatedAt.After(jobs[j].CreatedAt)
	})
	return jobs, nil
}

func (s *MemoryStore) CreateJob(ctx context.Context, job models.Job) (models.Job, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	job.ID = uuid.NewString()
	job.IsBoosted = false
	job.BoostExpiresAt = nil
	job.IsActive = true
	job.CreatedAt = time.Now()
	s.jobs[job.ID] = job
	s.jobOrder = append(s.jobOrder, job.ID)
	return job, nil
}

func (s *MemoryStore) UpdateJob(ctx context.Context, id string, update models.JobUpdate) (models.Job, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	job, ok := s.jobs[id]
	if !ok {
		return models.Job{}, models.ErrJobNotFound
	}
	job = update.Apply(job)
	s.jobs[id] = job
	return job, nil
}

func (s *MemoryStore) BoostJob(ctx context.Context, jobID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	job, ok := s.jobs[jobID]
	if !ok {
		return nil
	}
	expiresAt := time.Now().Add(models.BoostDuration)
	job.IsBoosted = true
	job.BoostExpiresAt = &expiresAt
	s.jobs[jobID] = job
	return nil
}

func (s *MemoryStore) ClearExpiredBoosts(ctx context.Context, now time.Time) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	cleared := 0
	for id, job := range s.jobs {
		if !job.IsBoosted || job.BoostExpiresAt == nil {
			continue
		}
		if job.BoostExpiresAt.After(now) {
			continue
		}
		job.IsBoosted = false
		job.BoostExpiresAt = nil
		s.jobs[id] = job
		cleared++
	}
	return cleared, nil
}

func (s *MemoryStore) GetJobApplications(ctx context.Context, jobID string) ([]models.JobApplication, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var apps []models.JobApplication
	for _, app := range s.applications {
		if app.JobID == jobID {
			apps = append(apps, app)
		}
	}
	sort.SliceStable(apps, func(i, j int) bool {
		return apps[i].AppliedAt.After(apps[j].AppliedAt)
	})
	return apps, nil
}

func (s *MemoryStore) CreateJobApplication(ctx context.Context, jobID, workerID string) (models.JobApplication, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	app := models.JobApplication{
		ID:        uuid.NewString(),
		JobID:     jobID,
		WorkerID:  workerID,
		Status:    models.ApplicationPending,
		AppliedAt: time.Now(),
	}
	s.applications = append(s.applications, app)
	return app, nil
}

func (s *MemoryStore) CreatePayment(ctx context.Context, payment models.Payment) (models.Payment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	payment.ID = uuid.NewString()
	payment.Status = models.PaymentStatusCompleted
	payment.CreatedAt = time.Now()
	s.payments = append(s.payments, payment)
	return payment, nil
}

func (s *MemoryStore) UpdatePaymentStatus(ctx context.Context, paymentID, status string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.payments {
		if s.payments[i].ID == paymentID {
			s.payments[i].Status = status
			return nil
		}
	}
	return nil
}

func (s *MemoryStore) GetPaymentsByUser(ctx context.Context, userID string) ([]models.Payment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var payments []models.Payment
	for _, payment := range s.payments {
		if payment.UserID == userID {
			payments = append(payments, payment)
		}
	}
	sort.SliceStable(payments, func(i, j int) bool {
		return payments[i].CreatedAt.After(payments[j].CreatedAt)
	})
	return payments, nil
}

func (s *MemoryStore) IsJobUnlocked(ctx context.Context, userID, jobID string) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, unlock := range s.unlocks {
		if unlock.UserID == userID && unlock.JobID == jobID {
			return true, nil
		}
	}
	return false, nil
}

func (s *MemoryStore) UnlockJob(ctx context.Context, userID, jobID string) (models.UnlockedJob, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	unlock := models.UnlockedJob{
		ID:         uuid.NewString(),
		UserID:     userID,
		JobID:      jobID,
		UnlockedAt: time.Now(),
	}
	s.unlocks = append(s.unlocks, unlock)
	return unlock, nil
}

func (s *MemoryStore) GetUnlockedJobs(ctx context.Context, userID string) ([]models.UnlockedJob, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var unlocks []models.UnlockedJob
	for _, unlock := range s.unlocks {
		if unlock.UserID == userID {
			unlocks = append(unlocks, unlock)
		}
	}
	return unlocks, nil
}
