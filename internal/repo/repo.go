// Package repo defines the storage contracts shared by the in-memory and
// Postgres backends. Lookups return (nil, nil) when no record matches;
// callers decide how a miss surfaces.
package repo

import (
	"context"

	"github.com/chinda/studio-bookings/internal/domain"
)

type BookingRepository interface {
	// Create persists b, assigning identity, pending status and the
	// creation timestamp. The stored record is returned.
	Create(ctx context.Context, b *domain.Booking) (*domain.Booking, error)
	GetByID(ctx context.Context, id int64) (*domain.Booking, error)
	// List returns all bookings, most recently created first.
	List(ctx context.Context) ([]domain.Booking, error)
	CountByStatus(ctx context.Context, status domain.BookingStatus) (int, error)
	// UpdateStatus overwrites the status of one booking and returns the
	// updated record, or (nil, nil) when the id is unknown.
	UpdateStatus(ctx context.Context, id int64, status domain.BookingStatus) (*domain.Booking, error)
}

type ContentRepository interface {
	// Upsert replaces the value for (section, key), refreshing the updated
	// timestamp, or creates the entry when the pair is new.
	Upsert(ctx context.Context, section, key, value string) (*domain.ContentEntry, error)
	Get(ctx context.Context, section, key string) (*domain.ContentEntry, error)
	List(ctx context.Context) ([]domain.ContentEntry, error)
}

type AdminRepository interface {
	Create(ctx context.Context, username, passwordHash string) (*domain.Admin, error)
	FindByUsername(ctx context.Context, username string) (*domain.Admin, error)
	Count(ctx context.Context) (int, error)
}
