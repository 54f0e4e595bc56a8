package user

import (
	"context"
	"fmt"
	"strings"

	"fixitplus-be/internal/auth"
	"fixitplus-be/internal/logger"

	"go.uber.org/zap"
)

type Service interface {
	Register(ctx context.Context, name, email, password, role string) (string, User, error)
	Login(ctx context.Context, email, password string) (string, User, error)
	GetByID(ctx context.Context, id string) (User, error)
	UpdateProfile(ctx context.Context, params UpdateProfileParams) (User, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) Register(ctx context.Context, name, email, password, role string) (string, User, error) {
	log := logger.FromCtx(ctx)

	if strings.TrimSpace(name) == "" || strings.TrimSpace(email) == "" || password == "" {
		return "", User{}, ErrValidation
	}

	// Role is fixed at registration and never changes afterwards.
	if role == "" {
		role = string(RoleUser)
	}
	if !ValidRole(role) {
		return "", User{}, ErrInvalidRole
	}

	hashed, err := HashPassword(password)
	if err != nil {
		log.Error("failed to hash password", zap.Error(err))
		return "", User{}, err
	}

	u, err := s.repo.Create(ctx, name, email, hashed, role)
	if err != nil {
		log.Error("failed to create user", zap.String("email", email), zap.Error(err))
		if strings.Contains(err.Error(), "users_email_key") {
			return "", User{}, ErrEmailExists
		}
		return "", User{}, err
	}

	token, err := auth.GenerateJWT(u.ID, string(u.Role), u.Email)
	if err != nil {
		log.Error("failed to generate jwt", zap.String("user_id", u.ID), zap.Error(err))
		return "", User{}, err
	}

	log.Info("register service completed",
		zap.String("user_id", fmt.Sprint(u.ID)),
		zap.String("email", email),
	)

	return token, u, nil
}

func (s *service) Login(ctx context.Context, email, password string) (string, User, error) {
	log := logger.FromCtx(ctx)

	u, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		log.Info("login failed: email not found", zap.String("email", email))
		return "", User{}, ErrInvalidCredentials
	}

	if !CheckPasswordHash(password, u.Password) {
		log.Info("login failed: password mismatch", zap.String("email", email))
		return "", User{}, ErrInvalidCredentials
	}

	token, err := auth.GenerateJWT(u.ID, string(u.Role), u.Email)
	return token, u, err
}

func (s *service) GetByID(ctx context.Context, id string) (User, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *service) UpdateProfile(ctx context.Context, params UpdateProfileParams) (User, error) {
	if params.Name == nil && params.Email == nil && params.AvatarURL == nil {
		return User{}, ErrNothingToUpdate
	}

	if params.Name != nil && strings.TrimSpace(*params.Name) == "" {
		return User{}, ErrValidation
	}
	if params.Email != nil && strings.TrimSpace(*params.Email) == "" {
		return User{}, ErrValidation
	}

	return s.repo.UpdateProfile(ctx, params)
}
