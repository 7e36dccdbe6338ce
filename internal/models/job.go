package models

import (
	"time"
)

// BoostDuration is how long a paid boost keeps a job at the top of
// worker-facing listings. Re-boosting restarts the window.
const BoostDuration = 30 * 24 * time.Hour

type Job struct {
	ID             string     `json:"id"`
	BusinessID     string     `json:"businessId"`
	Title          string     `json:"title"`
	Description    string     `json:"description"`
	WorkType       string     `json:"workType"`
	Location       string     `json:"location"`
	Duration       string     `json:"duration"`
	Salary         string     `json:"salary"`
	WorkersNeeded  int        `json:"workersNeeded"`
	ContactDetails string     `json:"contactDetails"`
	IsBoosted      bool       `json:"isBoosted"`
	BoostExpiresAt *time.Time `json:"boostExpiresAt"`
	IsActive       bool       `json:"isActive"`
	CreatedAt      time.Time  `json:"createdAt"`
}

type CreateJobRequest struct {
	UserID         string `json:"userId" validate:"required"`
	Title          string `json:"title" validate:"required"`
	Description    string `json:"description" validate:"required"`
	WorkType       string `json:"workType" validate:"required"`
	Location       string `json:"location" validate:"required"`
	Duration       string `json:"duration" validate:"required"`
	Salary         string `json:"salary" validate:"required"`
	WorkersNeeded  int    `json:"workersNeeded" validate:"required,min=1"`
	ContactDetails string `json:"contactDetails" validate:"required"`
	Boost          bool   `json:"boost"`
}

// JobUpdate carries a partial update: nil fields keep their prior value.
type JobUpdate struct {
	Title          *string `json:"title"`
	Description    *string `json:"description"`
	WorkType       *string `json:"workType"`
	Location       *string `json:"location"`
	Duration       *string `json:"duration"`
	Salary         *string `json:"salary"`
	WorkersNeeded  *int    `json:"workersNeeded" validate:"omitempty,min=1"`
	ContactDetails *string `json:"contactDetails"`
	IsActive       *bool   `json:"isActive"`
}

// Apply merges the update into the job, overwriting only the set fields.
func (u JobUpdate) Apply(job Job) Job {
	if u.Title != nil {
		job.Title = *u.Title
	}
	if u.Description != nil {
		job.Description = *u.Description
	}
	if u.WorkType != nil {
		job.WorkType = *u.WorkType
	}
	if u.Location != nil {
		job.Location = *u.Location
	}
	if u.Duration != nil {
		job.Duration = *u.Duration
	}
	if u.Salary != nil {
		job.Salary = *u.Salary
	}
	if u.WorkersNeeded != nil {
		job.WorkersNeeded = *u.WorkersNeeded
	}
	if u.ContactDetails != nil {
		job.ContactDetails = *u.ContactDetails
	}
	if u.IsActive != nil {
		job.IsActive = *u.IsActive
	}
	return job
}

// JobForWorker is a listing entry annotated with the caller's unlock state.
type JobForWorker struct {
	Job
	IsUnlocked bool `json:"isUnlocked"`
}

// JobWithApplications is a business-facing listing entry.
type JobWithApplications struct {
	Job
	ApplicationsCount int `json:"applicationsCount"`
}
