package app

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/boldbank-backend/internal/config"
	"github.com/heartmarshall/boldbank-backend/internal/domain"
)

// userEnsurer creates an account unless its email is already taken.
type userEnsurer interface {
	EnsureUser(ctx context.Context, email, password string, role domain.UserRole) (*domain.User, bool, error)
}

// SeedDefaults creates the demo customer and admin accounts. Existing
// accounts are left untouched.
func SeedDefaults(ctx context.Context, cfg config.SeedConfig, users userEnsurer, logger *slog.Logger) error {
	if !cfg.Enabled {
		return nil
	}

	accounts := []struct {
		email, password string
		role            domain.UserRole
	}{
		{cfg.UserEmail, cfg.UserPassword, domain.UserRoleUser},
		{cfg.AdminEmail, cfg.AdminPassword, domain.UserRoleAdmin},
	}

	for _, a := range accounts {
		u, created, err := users.EnsureUser(ctx, a.email, a.password, a.role)
		if err != nil {
			return fmt.Errorf("seed %s: %w", a.email, err)
		}
		if !created && u.Role != a.role {
			logger.WarnContext(ctx, "seed account exists with a different role",
				slog.String("email", u.Email),
				slog.String("role", u.Role.String()),
			)
		}
	}

	return nil
}
