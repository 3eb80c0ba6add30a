package postgres

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/chinda/studio-bookings/internal/domain"
)

type ContentRepository struct {
	pool *pgxpool.Pool
}

func NewContentRepository(pool *pgxpool.Pool) *ContentRepository {
	return &ContentRepository{pool: pool}
}

const contentCols = `id, section, key, value, updated_at`

func (r *ContentRepository) Upsert(ctx context.Context, section, key, value string) (*domain.ContentEntry, error) {
	const q = `INSERT INTO content_entries (section, key, value)
	VALUES ($1,$2,$3)
	ON CONFLICT (section, key) DO UPDATE SET
		value = EXCLUDED.value,
		updated_at = now()
	RETURNING ` + contentCols

	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	var e domain.ContentEntry
	err := r.pool.QueryRow(ctx, q, section, key, value).Scan(
		&e.ID, &e.Section, &e.Key, &e.Value, &e.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &e, nil
}

func (r *ContentRepository) Get(ctx context.Context, section, key string) (*domain.ContentEntry, error) {
	const q = `SELECT ` + contentCols + ` FROM content_entries WHERE section=$1 AND key=$2`
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	var e domain.ContentEntry
	err := r.pool.QueryRow(ctx, q, section, key).Scan(
		&e.ID, &e.Section, &e.Key, &e.Value, &e.UpdatedAt,
	)
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	return &e, err
}

func (r *ContentRepository) List(ctx context.Context) ([]domain.ContentEntry, error) {
	const q = `SELECT ` + contentCols + ` FROM content_entries ORDER BY id`
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	rows, err := r.pool.Query(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []domain.ContentEntry
	for rows.Next() {
		var e domain.ContentEntry
		if err := rows.Scan(&e.ID, &e.Section, &e.Key, &e.Value, &e.UpdatedAt); err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}
