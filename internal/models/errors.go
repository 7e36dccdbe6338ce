package models

import (
	"errors"
)

var (
	ErrNoRecord           = errors.New("models: no matching record found")
	ErrInvalidCredentials = errors.New("models: invalid credentials")
	ErrDuplicateEmail     = errors.New("models: duplicate email")
	ErrUserNotFound       = errors.New("models: user not found")
	ErrWorkerNotFound     = errors.New("models: worker not found")
	ErrBusinessNotFound   = errors.New("models: business not found")
	ErrJobNotFound        = errors.New("models: job not found")
	ErrInsufficientFunds  = errors.New("models: insufficient wallet balance")
	ErrJobAlreadyUnlocked = errors.New("models: job already unlocked")
	ErrInvalidAmount      = errors.New("models: amount must be positive")
)
