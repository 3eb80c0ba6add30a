package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/alexedwards/argon2id"

	"github.com/chinda/studio-bookings/internal/domain"
	"github.com/chinda/studio-bookings/internal/repo"
)

// ErrInvalidCredentials covers both unknown username and wrong password;
// the caller must not reveal which.
var ErrInvalidCredentials = errors.New("invalid username or password")

type AuthService interface {
	Login(ctx context.Context, req *domain.LoginRequest) (*domain.Admin, error)
}

type authService struct {
	admins repo.AdminRepository
}

func NewAuthService(admins repo.AdminRepository) AuthService {
	return &authService{admins: admins}
}

func (s *authService) Login(ctx context.Context, req *domain.LoginRequest) (*domain.Admin, error) {
	req.Normalize()
	if errs := req.Validate(); len(errs) > 0 {
		return nil, ErrInvalidCredentials
	}

	admin, err := s.admins.FindByUsername(ctx, req.Username)
	if err != nil {
		return nil, fmt.Errorf("failed to find admin: %w", err)
	}
	if admin == nil {
		return nil, ErrInvalidCredentials
	}

	valid, err := argon2id.ComparePasswordAndHash(req.Password, admin.PasswordHash)
	if err != nil {
		return nil, fmt.Errorf("failed to verify password: %w", err)
	}
	if !valid {
		return nil, ErrInvalidCredentials
	}

	return admin, nil
}
