package memory

import (
	"context"
	"time"

	"github.com/chinda/studio-bookings/internal/domain"
)

type ContentRepository struct {
	store *Store
}

func (r *ContentRepository) Upsert(_ context.Context, section, key, value string) (*domain.ContentEntry, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.content {
		if s.content[i].Section == section && s.content[i].Key == key {
			s.content[i].Value = value
			s.content[i].UpdatedAt = time.Now().UTC()
			e := s.content[i]
			return &e, nil
		}
	}

	entry := domain.ContentEntry{
		ID:        s.nextContentID,
		Section:   section,
		Key:       key,
		Value:     value,
		UpdatedAt: time.Now().UTC(),
	}
	s.nextContentID++
	s.content = append(s.content, entry)
	return &entry, nil
}

func (r *ContentRepository) Get(_ context.Context, section, key string) (*domain.ContentEntry, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	for i := range s.content {
		if s.content[i].Section == section && s.content[i].Key == key {
			e := s.content[i]
			return &e, nil
		}
	}
	return nil, nil
}

func (r *ContentRepository) List(_ context.Context) ([]domain.ContentEntry, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.ContentEntry, len(s.content))
	copy(out, s.content)
	return out, nil
}
