// Package memory is the ephemeral storage backend: an explicitly owned,
// mutex-guarded in-process store that is discarded on restart.
package memory

import (
	"sync"

	"github.com/chinda/studio-bookings/internal/domain"
)

// Store holds every record of the ephemeral variant. The per-concern
// repositories returned by Bookings, Content and Admins share its lock.
type Store struct {
	mu sync.RWMutex

	nextBookingID int64
	bookings      []domain.Booking

	nextContentID int64
	content       []domain.ContentEntry

	nextAdminID int64
	admins      []domain.Admin
}

func NewStore() *Store {
	return &Store{
		nextBookingID: 1,
		nextContentID: 1,
		nextAdminID:   1,
	}
}

func (s *Store) Bookings() *BookingRepository { return &BookingRepository{store: s} }
func (s *Store) Content() *ContentRepository  { return &ContentRepository{store: s} }
func (s *Store) Admins() *AdminRepository     { return &AdminRepository{store: s} }
