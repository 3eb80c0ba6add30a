package service

import (
	"context"
	"fmt"

	"github.com/chinda/studio-bookings/internal/domain"
	"github.com/chinda/studio-bookings/internal/repo"
)

type ContentService interface {
	// Update upserts one (section, key) entry. Field errors cover only an
	// unaddressable pair; the value itself is stored as-is.
	Update(ctx context.Context, upd *domain.ContentUpdate) (*domain.ContentEntry, map[string]string, error)
	List(ctx context.Context) ([]domain.ContentEntry, error)
	// PageContent returns all entries keyed "section.key" for rendering.
	PageContent(ctx context.Context) (map[string]string, error)
}

type contentService struct {
	content repo.ContentRepository
}

func NewContentService(content repo.ContentRepository) ContentService {
	return &contentService{content: content}
}

func (s *contentService) Update(ctx context.Context, upd *domain.ContentUpdate) (*domain.ContentEntry, map[string]string, error) {
	upd.Normalize()
	if errs := upd.Validate(); len(errs) > 0 {
		return nil, errs, nil
	}

	entry, err := s.content.Upsert(ctx, upd.Section, upd.Key, upd.Value)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to upsert content: %w", err)
	}
	return entry, nil, nil
}

func (s *contentService) List(ctx context.Context) ([]domain.ContentEntry, error) {
	return s.content.List(ctx)
}

func (s *contentService) PageContent(ctx context.Context) (map[string]string, error) {
	entries, err := s.content.List(ctx)
	if err != nil {
		return nil, err
	}

	page := make(map[string]string, len(entries))
	for _, e := range entries {
		page[e.Section+"."+e.Key] = e.Value
	}
	return page, nil
}
