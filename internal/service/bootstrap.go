package service

import (
	"context"
	"fmt"

	"github.com/alexedwards/argon2id"

	"github.com/chinda/studio-bookings/internal/domain"
	"github.com/chinda/studio-bookings/internal/repo"
	"github.com/chinda/studio-bookings/pkg/logger"
)

// ProvisionDefaults seeds the single admin principal and the default page
// content on first initialization. Existing records are left untouched, so
// running it on every startup is safe.
func ProvisionDefaults(ctx context.Context, admins repo.AdminRepository, content repo.ContentRepository, username, password string) error {
	count, err := admins.Count(ctx)
	if err != nil {
		return fmt.Errorf("failed to count admins: %w", err)
	}
	if count == 0 {
		hash, err := argon2id.CreateHash(password, argon2id.DefaultParams)
		if err != nil {
			return fmt.Errorf("failed to hash admin password: %w", err)
		}
		if _, err := admins.Create(ctx, username, hash); err != nil {
			return fmt.Errorf("failed to create default admin: %w", err)
		}
		logger.InfoContext(ctx, "Provisioned default admin", "username", username)
	}

	for _, c := range domain.DefaultContent() {
		existing, err := content.Get(ctx, c.Section, c.Key)
		if err != nil {
			return fmt.Errorf("failed to check content %s.%s: %w", c.Section, c.Key, err)
		}
		if existing != nil {
			continue
		}
		if _, err := content.Upsert(ctx, c.Section, c.Key, c.Value); err != nil {
			return fmt.Errorf("failed to seed content %s.%s: %w", c.Section, c.Key, err)
		}
	}

	return nil
}
