package service

import (
	"context"
	"errors"
	"testing"

	"github.com/chinda/studio-bookings/internal/domain"
	"github.com/chinda/studio-bookings/internal/repo/memory"
)

func provisionedStore(t *testing.T) *memory.Store {
	t.Helper()
	store := memory.NewStore()
	if err := ProvisionDefaults(context.Background(), store.Admins(), store.Content(), "admin", "admin123"); err != nil {
		t.Fatalf("provision: %v", err)
	}
	return store
}

func TestProvisionDefaults(t *testing.T) {
	ctx := context.Background()
	store := provisionedStore(t)

	admin, err := store.Admins().FindByUsername(ctx, "admin")
	if err != nil {
		t.Fatalf("find: %v", err)
	}
	if admin == nil {
		t.Fatal("expected default admin to exist")
	}
	if admin.PasswordHash == "admin123" {
		t.Fatal("password must be stored hashed")
	}

	entries, err := store.Content().List(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(entries) != len(domain.DefaultContent()) {
		t.Fatalf("expected %d seeded entries, got %d", len(domain.DefaultContent()), len(entries))
	}
}

func TestProvisionDefaults_Idempotent(t *testing.T) {
	ctx := context.Background()
	store := provisionedStore(t)

	// Admin edits survive a restart's re-provisioning.
	if _, err := store.Content().Upsert(ctx, "hero", "title", "EDITED"); err != nil {
		t.Fatalf("upsert: %v", err)
	}

	if err := ProvisionDefaults(ctx, store.Admins(), store.Content(), "admin", "admin123"); err != nil {
		t.Fatalf("re-provision: %v", err)
	}

	count, _ := store.Admins().Count(ctx)
	if count != 1 {
		t.Fatalf("expected a single admin after re-provision, got %d", count)
	}
	entry, _ := store.Content().Get(ctx, "hero", "title")
	if entry.Value != "EDITED" {
		t.Fatalf("re-provision must not overwrite edits, got %q", entry.Value)
	}
}

func TestAuthService_Login(t *testing.T) {
	ctx := context.Background()
	store := provisionedStore(t)
	svc := NewAuthService(store.Admins())

	admin, err := svc.Login(ctx, &domain.LoginRequest{Username: "admin", Password: "admin123"})
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if admin == nil || admin.Username != "admin" {
		t.Fatalf("expected the admin back, got %+v", admin)
	}
}

func TestAuthService_LoginFailures(t *testing.T) {
	ctx := context.Background()
	store := provisionedStore(t)
	svc := NewAuthService(store.Admins())

	tests := []struct {
		name     string
		username string
		password string
	}{
		{"wrong password", "admin", "wrong"},
		{"unknown username", "nobody", "admin123"},
		{"empty username", "", "admin123"},
		{"empty password", "admin", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Login(ctx, &domain.LoginRequest{Username: tt.username, Password: tt.password})
			if !errors.Is(err, ErrInvalidCredentials) {
				t.Fatalf("expected ErrInvalidCredentials, got %v", err)
			}
		})
	}
}
