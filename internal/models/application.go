package models

import (
	"time"
)

const (
	ApplicationPending  = "pending"
	ApplicationAccepted = "accepted"
	ApplicationRejected = "rejected"
)

type JobApplication struct {
	ID        string    `json:"id"`
	JobID     string    `json:"jobId"`
	WorkerID  string    `json:"workerId"`
	Status    string    `json:"status"`
	AppliedAt time.Time `json:"appliedAt"`
}
