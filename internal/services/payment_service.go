package services

import (
	"context"
	"sync"

	"github.com/operman-code/brojgar-worker/internal/models"
	"github.com/operman-code/brojgar-worker/internal/repositories"
)

const (
	UnlockFee = 20
	BoostFee  = 100
)

// userLocks hands out one mutex per user id so the check-debit-record
// sequence of a payment cannot interleave with another payment by the same
// user. Entries are never evicted; the set of users is small.
type userLocks struct {
	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func (l *userLocks) get(userID string) *sync.Mutex {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.locks == nil {
		l.locks = make(map[string]*sync.Mutex)
	}
	lock, ok := l.locks[userID]
	if !ok {
		lock = &sync.Mutex{}
		l.locks[userID] = lock
	}
	return lock
}

// PaymentService is the monetization gate: every wallet movement goes through
// here, and each operation either fully applies (payment row, debit/credit,
// side effect) or returns a single error with no state change.
type PaymentService struct {
	Store repositories.Store
	locks userLocks
}

// UnlockJob charges the unlock fee and grants the (user, job) pair permanent
// access to the job's full details. Preconditions are checked in order: the
// user must exist, hold enough balance, and not already own the unlock.
func (s *PaymentService) UnlockJob(ctx context.Context, userID, jobID string) (models.Payment, error) {
	lock := s.locks.get(userID)
	lock.Lock()
	defer lock.Unlock()

	user, err := s.Store.GetUser(ctx, userID)
	if err != nil {
		return models.Payment{}, err
	}
	if user.WalletBalance < UnlockFee {
		return models.Payment{}, models.ErrInsufficientFunds
	}
	unlocked, err := s.Store.IsJobUnlocked(ctx, userID, jobID)
	if err != nil {
		return models.Payment{}, err
	}
	if unlocked {
		return models.Payment{}, models.ErrJobAlreadyUnlocked
	}

	payment, err := s.Store.CreatePayment(ctx, models.Payment{
		UserID: userID,
		Amount: UnlockFee,
		Type:   models.PaymentTypeJobUnlock,
		JobID:  jobID,
	})
	if err != nil {
		return models.Payment{}, err
	}
	if err := s.Store.UpdateUserWalletBalance(ctx, userID, -UnlockFee); err != nil {
		return models.Payment{}, err
	}
	if _, err := s.Store.UnlockJob(ctx, userID, jobID); err != nil {
		return models.Payment{}, err
	}
	return payment, nil
}

// BoostJob charges the boost fee and promotes the job for 30 days. Boosting
// is re-triggerable: every charge resets the expiry window.
func (s *PaymentService) BoostJob(ctx context.Context, userID, jobID string) (models.Payment, error) {
	lock := s.locks.get(userID)
	lock.Lock()
	defer lock.Unlock()

	user, err := s.Store.GetUser(ctx, userID)
	if err != nil {
		return models.Payment{}, err
	}
	if user.WalletBalance < BoostFee {
		return models.Payment{}, models.ErrInsufficientFunds
	}

	payment, err := s.Store.CreatePayment(ctx, models.Payment{
		UserID: userID,
		Amount: BoostFee,
		Type:   models.PaymentTypeJobBoost,
		JobID:  jobID,
	})
	if err != nil {
		return models.Payment{}, err
	}
	if err := s.Store.UpdateUserWalletBalance(ctx, userID, -BoostFee); err != nil {
		return models.Payment{}, err
	}
	if err := s.Store.BoostJob(ctx, jobID); err != nil {
		return models.Payment{}, err
	}
	return payment, nil
}

// TopUpWallet credits the wallet by the requested amount. No upper bound.
func (s *PaymentService) TopUpWallet(ctx context.Context, userID string, amount int) (models.Payment, error) {
	if amount <= 0 {
		return models.Payment{}, models.ErrInvalidAmount
	}

	lock := s.locks.get(userID)
	lock.Lock()
	defer lock.Unlock()

	if _, err := s.Store.GetUser(ctx, userID); err != nil {
		return models.Payment{}, err
	}

	payment, err := s.Store.CreatePayment(ctx, models.Payment{
		UserID: userID,
		Amount: amount,
		Type:   models.PaymentTypeWalletTopup,
	})
	if err != nil {
		return models.Payment{}, err
	}
	if err := s.Store.UpdateUserWalletBalance(ctx, userID, amount); err != nil {
		return models.Payment{}, err
	}
	return payment, nil
}

// History lists the user's ledger entries, newest first.
func (s *PaymentService) History(ctx context.Context, userID string) ([]models.Payment, error) {
	if _, err := s.Store.GetUser(ctx, userID); err != nil {
		return nil, err
	}
	return s.Store.GetPaymentsByUser(ctx, userID)
}
