package repositories

import (
	"time"

	"github.com/google/uuid"

	"github.com/operman-code/brojgar-worker/internal/models"
)

// SeedDemo loads a small demo dataset into the memory backend: one worker,
// one business and a handful of jobs around Mumbai Central. Intended for
// local development only, gated by storage.seed_demo in the config.
func (s *MemoryStore) SeedDemo() {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now()

	workerUser := models.User{
		ID:            uuid.NewString(),
		Name:          "Rajesh Kumar",
		Email:         "rajesh@example.com",
		Phone:         "+91 98765 43210",
		Password:      "password",
		Role:          models.RoleWorker,
		Location:      "Mumbai Central",
		WalletBalance: 50,
		CreatedAt:     now,
	}
	businessUser := models.User{
		ID:            uuid.NewString(),
		Name:          "Sharma Construction Co.",
		Email:         "sharma@example.com",
		Phone:         "+91 98765 43211",
		Password:      "password",
		Role:          models.RoleBusiness,
		Location:      "Mumbai Central",
		WalletBalance: 1000,
		CreatedAt:     now,
	}
	s.users[workerUser.ID] = workerUser
	s.users[businessUser.ID] = businessUser

	worker := models.Worker{
		ID:              uuid.NewString(),
		UserID:          workerUser.ID,
		Skills:          []string{"Construction", "Delivery"},
		ExperienceLevel: "Intermediate (1-3 years)",
		CompletedJobs:   12,
		Rating:          48,
	}
	s.workers[worker.ID] = worker

	business := models.Business{
		ID:           uuid.NewString(),
		UserID:       businessUser.ID,
		BusinessName: "Sharma Construction Co.",
		BusinessType: "Construction",
	}
	s.businesses[business.ID] = business

	boostExpiry := now.Add(models.BoostDuration)
	jobs := []models.Job{
		{
			ID:             uuid.NewString(),
			BusinessID:     business.ID,
			Title:          "Construction Helper Needed",
			Description:    "Looking for experienced construction workers for residential project. Basic tools required.",
			WorkType:       "Construction",
			Location:       "Mumbai Central",
			Duration:       "3 days",
			Salary:         "₹800/day",
			WorkersNeeded:  2,
			ContactDetails: "Contact: Sharma Construction\nPhone: +91 98765 43211",
			IsBoosted:      true,
			BoostExpiresAt: &boostExpiry,
			IsActive:       true,
			CreatedAt:      now.Add(-2 * time.Hour),
		},
		{
			ID:             uuid.NewString(),
			BusinessID:     business.ID,
			Title:          "Delivery Executive Required",
			Description:    "Restaurant chain looking for reliable delivery executives. Own vehicle preferred.",
			WorkType:       "Delivery",
			Location:       "Mumbai Central",
			Duration:       "Full-time",
			Salary:         "₹15,000/month",
			WorkersNeeded:  3,
			ContactDetails: "Contact: Restaurant Manager\nPhone: +91 98765 43212",
			IsActive:       true,
			CreatedAt:      now.Add(-5 * time.Hour),
		},
		{
			ID:             uuid.NewString(),
			BusinessID:     business.ID,
			Title:          "House Cleaning Service",
			Description:    "Family looking for reliable house cleaning service. References required.",
			WorkType:       "Cleaning",
			Location:       "Mumbai Central",
			Duration:       "Weekly",
			Salary:         "₹2,000/week",
			WorkersNeeded:  1,
			ContactDetails: "Contact: Mrs. Sharma\nPhone: +91 98765 43213",
			IsActive:       true,
			CreatedAt:      now.Add(-24 * time.Hour),
		},
	}
	for _, job := range jobs {
		s.jobs[job.ID] = job
		s.jobOrder = append(s.jobOrder, job.ID)
	}
}
