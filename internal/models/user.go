package models

import (
	"time"
)

const (
	RoleWorker   = "worker"
	RoleBusiness = "business"
)

type User struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	Email         string    `json:"email"`
	Phone         string    `json:"phone"`
	Password      string    `json:"password,omitempty"`
	Role          string    `json:"userType"`
	Location      string    `json:"location"`
	WalletBalance int       `json:"walletBalance"`
	CreatedAt     time.Time `json:"createdAt"`
}

// Sanitized returns a copy safe to serialize in responses.
func (u User) Sanitized() User {
	u.Password = ""
	return u
}

type RegisterRequest struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Phone    string `json:"phone" validate:"required"`
	Password string `json:"password" validate:"required"`
	Role     string `json:"userType" validate:"required,oneof=worker business"`
	Location string `json:"location" validate:"required"`

	// Worker profile fields
	Skills          []string `json:"skills,omitempty"`
	ExperienceLevel string   `json:"experienceLevel,omitempty"`

	// Business profile fields
	BusinessName string `json:"businessName,omitempty"`
	BusinessType string `json:"businessType,omitempty"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}
