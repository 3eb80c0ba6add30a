package postgres

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/chinda/studio-bookings/internal/domain"
)

type AdminRepository struct {
	pool *pgxpool.Pool
}

func NewAdminRepository(pool *pgxpool.Pool) *AdminRepository {
	return &AdminRepository{pool: pool}
}

func (r *AdminRepository) Create(ctx context.Context, username, passwordHash string) (*domain.Admin, error) {
	const q = `INSERT INTO admins (username, password_hash) VALUES ($1,$2)
	RETURNING id, username, password_hash`

	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	var a domain.Admin
	err := r.pool.QueryRow(ctx, q, username, passwordHash).Scan(&a.ID, &a.Username, &a.PasswordHash)
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *AdminRepository) FindByUsername(ctx context.Context, username string) (*domain.Admin, error) {
	const q = `SELECT id, username, password_hash FROM admins WHERE username=$1`
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	var a domain.Admin
	err := r.pool.QueryRow(ctx, q, username).Scan(&a.ID, &a.Username, &a.PasswordHash)
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	return &a, err
}

func (r *AdminRepository) Count(ctx context.Context) (int, error) {
	const q = `SELECT count(*) FROM admins`
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	var count int
	err := r.pool.QueryRow(ctx, q).Scan(&count)
	return count, err
}
