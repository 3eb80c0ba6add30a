package memory

import (
	"context"

	"github.com/chinda/studio-bookings/internal/domain"
)

type AdminRepository struct {
	store *Store
}

func (r *AdminRepository) Create(_ context.Context, username, passwordHash string) (*domain.Admin, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	admin := domain.Admin{
		ID:           s.nextAdminID,
		Username:     username,
		PasswordHash: passwordHash,
	}
	s.nextAdminID++
	s.admins = append(s.admins, admin)
	return &admin, nil
}

func (r *AdminRepository) FindByUsername(_ context.Context, username string) (*domain.Admin, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	for i := range s.admins {
		if s.admins[i].Username == username {
			a := s.admins[i]
			return &a, nil
		}
	}
	return nil, nil
}

func (r *AdminRepository) Count(_ context.Context) (int, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.admins), nil
}
