package memory

import (
	"context"
	"sort"
	"time"

	"github.com/chinda/studio-bookings/internal/domain"
)

type BookingRepository struct {
	store *Store
}

func (r *BookingRepository) Create(_ context.Context, b *domain.Booking) (*domain.Booking, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	stored := *b
	stored.ID = s.nextBookingID
	stored.Status = domain.BookingPending
	stored.CreatedAt = time.Now().UTC()
	s.nextBookingID++

	s.bookings = append(s.bookings, stored)
	out := stored
	return &out, nil
}

func (r *BookingRepository) GetByID(_ context.Context, id int64) (*domain.Booking, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	for i := range s.bookings {
		if s.bookings[i].ID == id {
			b := s.bookings[i]
			return &b, nil
		}
	}
	return nil, nil
}

func (r *BookingRepository) List(_ context.Context) ([]domain.Booking, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.Booking, len(s.bookings))
	copy(out, s.bookings)

	// Most recent first, with ID as tiebreaker for equal timestamps.
	sort.SliceStable(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.After(out[j].CreatedAt)
		}
		return out[i].ID > out[j].ID
	})
	return out, nil
}

func (r *BookingRepository) CountByStatus(_ context.Context, status domain.BookingStatus) (int, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	count := 0
	for i := range s.bookings {
		if s.bookings[i].Status == status {
			count++
		}
	}
	return count, nil
}

func (r *BookingRepository) UpdateStatus(_ context.Context, id int64, status domain.BookingStatus) (*domain.Booking, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.bookings {
		if s.bookings[i].ID == id {
			s.bookings[i].Status = status
			b := s.bookings[i]
			return &b, nil
		}
	}
	return nil, nil
}
