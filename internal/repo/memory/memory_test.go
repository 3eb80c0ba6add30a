package memory

import (
	"context"
	"testing"
	"time"

	"github.com/chinda/studio-bookings/internal/domain"
)

func newBooking(name string) *domain.Booking {
	return &domain.Booking{
		Name:        name,
		Email:       "guest@example.com",
		Phone:       "5551234567",
		ServiceType: domain.ServicePortrait,
		EventDate:   time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
		EventTime:   "14:00",
		Location:    "123 Main St, Springfield",
	}
}

func TestBookingRepository_CreateAssignsIdentity(t *testing.T) {
	ctx := context.Background()
	repo := NewStore().Bookings()

	first, err := repo.Create(ctx, newBooking("First"))
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	second, err := repo.Create(ctx, newBooking("Second"))
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	if first.ID != 1 || second.ID != 2 {
		t.Fatalf("expected sequential ids 1 and 2, got %d and %d", first.ID, second.ID)
	}
	if first.Status != domain.BookingPending || second.Status != domain.BookingPending {
		t.Fatal("new bookings must start pending")
	}
	if first.CreatedAt.IsZero() {
		t.Fatal("created_at must be set by the store")
	}
}

func TestBookingRepository_GetByID(t *testing.T) {
	ctx := context.Background()
	repo := NewStore().Bookings()

	created, err := repo.Create(ctx, newBooking("Jane Doe"))
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	got, err := repo.GetByID(ctx, created.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got == nil || got.Name != "Jane Doe" {
		t.Fatalf("expected stored booking back, got %+v", got)
	}

	missing, err := repo.GetByID(ctx, 999)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if missing != nil {
		t.Fatalf("expected nil for unknown id, got %+v", missing)
	}
}

func TestBookingRepository_ListNewestFirst(t *testing.T) {
	ctx := context.Background()
	repo := NewStore().Bookings()

	for _, name := range []string{"First", "Second", "Third"} {
		if _, err := repo.Create(ctx, newBooking(name)); err != nil {
			t.Fatalf("create: %v", err)
		}
	}

	list, err := repo.List(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(list) != 3 {
		t.Fatalf("expected 3 bookings, got %d", len(list))
	}
	// Created within the same instant the ID tiebreaker still puts the
	// newest booking first.
	if list[0].Name != "Third" || list[2].Name != "First" {
		t.Fatalf("expected newest first, got %s .. %s", list[0].Name, list[2].Name)
	}
}

func TestBookingRepository_ListReturnsCopies(t *testing.T) {
	ctx := context.Background()
	repo := NewStore().Bookings()

	if _, err := repo.Create(ctx, newBooking("Original")); err != nil {
		t.Fatalf("create: %v", err)
	}

	list, _ := repo.List(ctx)
	list[0].Name = "Mutated"

	again, _ := repo.List(ctx)
	if again[0].Name != "Original" {
		t.Fatal("mutating a listed booking must not touch the store")
	}
}

func TestBookingRepository_UpdateStatus(t *testing.T) {
	ctx := context.Background()
	repo := NewStore().Bookings()

	created, err := repo.Create(ctx, newBooking("Jane Doe"))
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	updated, err := repo.UpdateStatus(ctx, created.ID, domain.BookingConfirmed)
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated == nil || updated.Status != domain.BookingConfirmed {
		t.Fatalf("expected confirmed booking back, got %+v", updated)
	}

	got, _ := repo.GetByID(ctx, created.ID)
	if got.Status != domain.BookingConfirmed {
		t.Fatalf("expected stored status confirmed, got %s", got.Status)
	}

	missing, err := repo.UpdateStatus(ctx, 7, domain.BookingConfirmed)
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if missing != nil {
		t.Fatalf("expected nil for unknown id, got %+v", missing)
	}
}

func TestBookingRepository_CountByStatus(t *testing.T) {
	ctx := context.Background()
	repo := NewStore().Bookings()

	a, _ := repo.Create(ctx, newBooking("A"))
	if _, err := repo.Create(ctx, newBooking("B")); err != nil {
		t.Fatalf("create: %v", err)
	}
	if _, err := repo.UpdateStatus(ctx, a.ID, domain.BookingConfirmed); err != nil {
		t.Fatalf("update: %v", err)
	}

	pending, _ := repo.CountByStatus(ctx, domain.BookingPending)
	confirmed, _ := repo.CountByStatus(ctx, domain.BookingConfirmed)
	declined, _ := repo.CountByStatus(ctx, domain.BookingDeclined)
	if pending != 1 || confirmed != 1 || declined != 0 {
		t.Fatalf("expected counts 1/1/0, got %d/%d/%d", pending, confirmed, declined)
	}
}

func TestContentRepository_Upsert(t *testing.T) {
	ctx := context.Background()
	repo := NewStore().Content()

	created, err := repo.Upsert(ctx, "hero", "title", "CREATIVE PHOTOGRAPHY")
	if err != nil {
		t.Fatalf("upsert: %v", err)
	}
	if created.ID == 0 || created.UpdatedAt.IsZero() {
		t.Fatalf("expected id and timestamp assigned, got %+v", created)
	}

	updated, err := repo.Upsert(ctx, "hero", "title", "NEW TITLE")
	if err != nil {
		t.Fatalf("upsert: %v", err)
	}
	if updated.ID != created.ID {
		t.Fatalf("upsert of an existing pair must keep its id, got %d and %d", created.ID, updated.ID)
	}
	if updated.Value != "NEW TITLE" {
		t.Fatalf("expected value replaced, got %q", updated.Value)
	}

	list, _ := repo.List(ctx)
	if len(list) != 1 {
		t.Fatalf("expected a single entry after re-upsert, got %d", len(list))
	}

	if _, err := repo.Upsert(ctx, "hero", "subtitle", "Capturing moments"); err != nil {
		t.Fatalf("upsert: %v", err)
	}
	list, _ = repo.List(ctx)
	if len(list) != 2 {
		t.Fatalf("expected 2 entries after a new key, got %d", len(list))
	}
}

func TestContentRepository_Get(t *testing.T) {
	ctx := context.Background()
	repo := NewStore().Content()

	if _, err := repo.Upsert(ctx, "about", "title", "ABOUT JEFFERY"); err != nil {
		t.Fatalf("upsert: %v", err)
	}

	got, err := repo.Get(ctx, "about", "title")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got == nil || got.Value != "ABOUT JEFFERY" {
		t.Fatalf("expected stored entry back, got %+v", got)
	}

	missing, err := repo.Get(ctx, "about", "missing")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if missing != nil {
		t.Fatalf("expected nil for unknown pair, got %+v", missing)
	}
}

func TestAdminRepository(t *testing.T) {
	ctx := context.Background()
	repo := NewStore().Admins()

	count, err := repo.Count(ctx)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 0 {
		t.Fatalf("expected empty store, got %d admins", count)
	}

	created, err := repo.Create(ctx, "admin", "hashed")
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if created.ID == 0 {
		t.Fatal("expected id assigned")
	}

	found, err := repo.FindByUsername(ctx, "admin")
	if err != nil {
		t.Fatalf("find: %v", err)
	}
	if found == nil || found.PasswordHash != "hashed" {
		t.Fatalf("expected stored admin back, got %+v", found)
	}

	missing, err := repo.FindByUsername(ctx, "nobody")
	if err != nil {
		t.Fatalf("find: %v", err)
	}
	if missing != nil {
		t.Fatalf("expected nil for unknown username, got %+v", missing)
	}

	count, _ = repo.Count(ctx)
	if count != 1 {
		t.Fatalf("expected 1 admin, got %d", count)
	}
}
