package models

import (
	"time"
)

const (
	PaymentTypeJobUnlock   = "job_unlock"
	PaymentTypeJobBoost    = "job_boost"
	PaymentTypeWalletTopup = "wallet_topup"
)

const (
	PaymentStatusPending   = "pending"
	PaymentStatusCompleted = "completed"
	PaymentStatusFailed    = "failed"
)

// Payment is an append-only ledger entry; only Status is ever rewritten.
type Payment struct {
	ID        string    `json:"id"`
	UserID    string    `json:"userId"`
	Amount    int       `json:"amount"`
	Type      string    `json:"type"`
	Status    string    `json:"status"`
	JobID     string    `json:"jobId,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

type UnlockedJob struct {
	ID         string    `json:"id"`
	UserID     string    `json:"userId"`
	JobID      string    `json:"jobId"`
	UnlockedAt time.Time `json:"unlockedAt"`
}

type UnlockJobRequest struct {
	UserID string `json:"userId" validate:"required"`
	JobID  string `json:"jobId" validate:"required"`
}

type BoostJobRequest struct {
	UserID string `json:"userId" validate:"required"`
	JobID  string `json:"jobId" validate:"required"`
}

type TopUpRequest struct {
	UserID string `json:"userId" validate:"required"`
	Amount int    `json:"amount" validate:"required,min=1"`
}
