package services

import (
	"context"
	"errors"

	"github.com/operman-code/brojgar-worker/internal/models"
	"github.com/operman-code/brojgar-worker/internal/repositories"
)

type UserService struct {
	Store repositories.Store
}

// Register creates the user plus the role-specific profile. Email uniqueness
// is checked up front; the mysql backend backs that with a unique index.
func (s *UserService) Register(ctx context.Context, req models.RegisterRequest) (models.User, error) {
	_, err := s.Store.GetUserByEmail(ctx, req.Email)
	if err == nil {
		return models.User{}, models.ErrDuplicateEmail
	}
	if !errors.Is(err, models.ErrUserNotFound) {
		return models.User{}, err
	}

	user, err := s.Store.CreateUser(ctx, models.User{
		Name:     req.Name,
		Email:    req.Email,
		Phone:    req.Phone,
		Password: req.Password,
		Role:     req.Role,
		Location: req.Location,
	})
	if err != nil {
		return models.User{}, err
	}

	switch req.Role {
	case models.RoleWorker:
		experience := req.ExperienceLevel
		if experience == "" {
			experience = "Beginner"
		}
		skills := req.Skills
		if skills == nil {
			skills = []string{}
		}
		_, err = s.Store.CreateWorker(ctx, models.Worker{
			UserID:          user.ID,
			Skills:          skills,
			ExperienceLevel: experience,
		})
	case models.RoleBusiness:
		_, err = s.Store.CreateBusiness(ctx, models.Business{
			UserID:       user.ID,
			BusinessName: req.BusinessName,
			BusinessType: req.BusinessType,
		})
	}
	if err != nil {
		return models.User{}, err
	}
	return user, nil
}

func (s *UserService) Login(ctx context.Context, req models.LoginRequest) (models.User, error) {
	user, err := s.Store.GetUserByEmail(ctx, req.Email)
	if errors.Is(err, models.ErrUserNotFound) {
		return models.User{}, models.ErrInvalidCredentials
	}
	if err != nil {
		return models.User{}, err
	}
	if user.Password != req.Password {
		return models.User{}, models.ErrInvalidCredentials
	}
	return user, nil
}

func (s *UserService) GetUserByID(ctx context.Context, id string) (models.User, error) {
	return s.Store.GetUser(ctx, id)
}
