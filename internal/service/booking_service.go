package service

import (
	"context"
	"fmt"
	"time"

	"github.com/chinda/studio-bookings/internal/domain"
	"github.com/chinda/studio-bookings/internal/repo"
	"github.com/chinda/studio-bookings/pkg/events"
	"github.com/chinda/studio-bookings/pkg/logger"
)

type BookingService interface {
	// Submit validates a booking submission. Field errors are returned in
	// the map with no record created; a nil map means the booking was
	// stored with a fresh identity, pending status and creation timestamp.
	Submit(ctx context.Context, req *domain.BookingRequest) (*domain.Booking, map[string]string, error)
	List(ctx context.Context) ([]domain.Booking, error)
	StatusCounts(ctx context.Context) (pending, confirmed int, err error)
	// UpdateStatus overwrites one booking's status. It returns (nil, nil)
	// when the id is unknown.
	UpdateStatus(ctx context.Context, id int64, status domain.BookingStatus) (*domain.Booking, error)
}

type bookingService struct {
	bookings repo.BookingRepository
	bus      events.Publisher
}

func NewBookingService(bookings repo.BookingRepository, bus events.Publisher) BookingService {
	return &bookingService{
		bookings: bookings,
		bus:      bus,
	}
}

func (s *bookingService) Submit(ctx context.Context, req *domain.BookingRequest) (*domain.Booking, map[string]string, error) {
	req.Normalize()
	if errs := req.Validate(); len(errs) > 0 {
		return nil, errs, nil
	}

	booking, err := s.bookings.Create(ctx, req.Booking())
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create booking: %w", err)
	}

	event := events.BookingCreatedEvent{
		BookingID:   booking.ID,
		Name:        booking.Name,
		Email:       booking.Email,
		ServiceType: string(booking.ServiceType),
		EventDate:   booking.EventDate.Format(domain.DateLayout),
		EventTime:   booking.EventTime,
		Location:    booking.Location,
		CreatedAt:   booking.CreatedAt,
	}
	if err := s.bus.Publish(ctx, events.BookingCreated, event); err != nil {
		logger.ErrorContext(ctx, "Failed to publish booking created event", "error", err, "booking_id", booking.ID)
	}

	return booking, nil, nil
}

func (s *bookingService) List(ctx context.Context) ([]domain.Booking, error) {
	return s.bookings.List(ctx)
}

func (s *bookingService) StatusCounts(ctx context.Context) (int, int, error) {
	pending, err := s.bookings.CountByStatus(ctx, domain.BookingPending)
	if err != nil {
		return 0, 0, fmt.Errorf("failed to count pending bookings: %w", err)
	}
	confirmed, err := s.bookings.CountByStatus(ctx, domain.BookingConfirmed)
	if err != nil {
		return 0, 0, fmt.Errorf("failed to count confirmed bookings: %w", err)
	}
	return pending, confirmed, nil
}

func (s *bookingService) UpdateStatus(ctx context.Context, id int64, status domain.BookingStatus) (*domain.Booking, error) {
	existing, err := s.bookings.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get booking: %w", err)
	}
	if existing == nil {
		return nil, nil
	}

	updated, err := s.bookings.UpdateStatus(ctx, id, status)
	if err != nil {
		return nil, fmt.Errorf("failed to update booking status: %w", err)
	}
	if updated == nil {
		return nil, nil
	}

	if existing.Status != updated.Status {
		event := events.BookingStatusChangedEvent{
			BookingID: updated.ID,
			Email:     updated.Email,
			OldStatus: string(existing.Status),
			NewStatus: string(updated.Status),
			ChangedAt: time.Now(),
		}
		if err := s.bus.Publish(ctx, events.BookingStatusChanged, event); err != nil {
			logger.ErrorContext(ctx, "Failed to publish booking status changed event", "error", err, "booking_id", updated.ID)
		}
	}

	return updated, nil
}
