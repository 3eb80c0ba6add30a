package postgres

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/chinda/studio-bookings/internal/domain"
)

type BookingRepository struct {
	pool *pgxpool.Pool
}

func NewBookingRepository(pool *pgxpool.Pool) *BookingRepository {
	return &BookingRepository{pool: pool}
}

const bookingCols = `id, name, email, phone, service_type,
event_date, event_time, location, message, status, created_at`

func (r *BookingRepository) Create(ctx context.Context, b *domain.Booking) (*domain.Booking, error) {
	const q = `INSERT INTO bookings (
		name, email, phone, service_type,
		event_date, event_time, location, message, status
	) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,'pending')
	RETURNING ` + bookingCols

	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	var stored domain.Booking
	err := r.pool.QueryRow(ctx, q,
		b.Name, b.Email, b.Phone, b.ServiceType,
		b.EventDate, b.EventTime, b.Location, b.Message,
	).Scan(
		&stored.ID, &stored.Name, &stored.Email, &stored.Phone, &stored.ServiceType,
		&stored.EventDate, &stored.EventTime, &stored.Location, &stored.Message,
		&stored.Status, &stored.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &stored, nil
}

func (r *BookingRepository) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	const q = `SELECT ` + bookingCols + ` FROM bookings WHERE id=$1`
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	var b domain.Booking
	err := r.pool.QueryRow(ctx, q, id).Scan(
		&b.ID, &b.Name, &b.Email, &b.Phone, &b.ServiceType,
		&b.EventDate, &b.EventTime, &b.Location, &b.Message,
		&b.Status, &b.CreatedAt,
	)
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	return &b, err
}

func (r *BookingRepository) List(ctx context.Context) ([]domain.Booking, error) {
	const q = `SELECT ` + bookingCols + ` FROM bookings ORDER BY created_at DESC, id DESC`
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	rows, err := r.pool.Query(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var bookings []domain.Booking
	for rows.Next() {
		var b domain.Booking
		if err := rows.Scan(
			&b.ID, &b.Name, &b.Email, &b.Phone, &b.ServiceType,
			&b.EventDate, &b.EventTime, &b.Location, &b.Message,
			&b.Status, &b.CreatedAt,
		); err != nil {
			return nil, err
		}
		bookings = append(bookings, b)
	}
	return bookings, rows.Err()
}

func (r *BookingRepository) CountByStatus(ctx context.Context, status domain.BookingStatus) (int, error) {
	const q = `SELECT count(*) FROM bookings WHERE status=$1`
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	var count int
	err := r.pool.QueryRow(ctx, q, status).Scan(&count)
	return count, err
}

func (r *BookingRepository) UpdateStatus(ctx context.Context, id int64, status domain.BookingStatus) (*domain.Booking, error) {
	const q = `UPDATE bookings SET status=$2 WHERE id=$1 RETURNING ` + bookingCols
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	var b domain.Booking
	err := r.pool.QueryRow(ctx, q, id, status).Scan(
		&b.ID, &b.Name, &b.Email, &b.Phone, &b.ServiceType,
		&b.EventDate, &b.EventTime, &b.Location, &b.Message,
		&b.Status, &b.CreatedAt,
	)
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	return &b, err
}
