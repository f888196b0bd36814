package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/boldbank-backend/internal/auth"
	"github.com/heartmarshall/boldbank-backend/internal/domain"
)

// Register creates a new user-role account with the configured opening balance.
// Returns ErrAlreadyExists if the email is already taken.
func (s *Service) Register(ctx context.Context, input RegisterInput) (*AuthResult, error) {
	input.Email = domain.NormalizeEmail(input.Email)
	input.Name = domain.CompactSpaces(input.Name)

	if err := input.Validate(); err != nil {
		return nil, err
	}

	user, err := s.createUser(ctx, input.Email, input.Password, input.Name, domain.UserRoleUser)
	if err != nil {
		if errors.Is(err, domain.ErrAlreadyExists) {
			return nil, fmt.Errorf("auth.Register: %w", domain.ErrAlreadyExists)
		}
		return nil, fmt.Errorf("auth.Register: %w", err)
	}

	result, err := s.result(user)
	if err != nil {
		return nil, fmt.Errorf("auth.Register: %w", err)
	}

	s.log.InfoContext(ctx, "user registered", slog.String("user_id", user.ID.String()))

	return result, nil
}

// EnsureUser creates the account if no user has the email yet. It is
// idempotent: an existing account is returned unchanged with created=false.
func (s *Service) EnsureUser(ctx context.Context, email, password string, role domain.UserRole) (*domain.User, bool, error) {
	email = domain.NormalizeEmail(email)

	if !role.IsValid() {
		return nil, false, domain.NewValidationError("role", "must be user or admin")
	}

	existing, err := s.users.GetByEmail(ctx, email)
	if err == nil {
		return existing, false, nil
	}
	if !errors.Is(err, domain.ErrNotFound) {
		return nil, false, fmt.Errorf("auth.EnsureUser get user: %w", err)
	}

	input := RegisterInput{Email: email, Password: password}
	if err := input.Validate(); err != nil {
		return nil, false, err
	}

	user, err := s.createUser(ctx, email, password, "", role)
	if err != nil {
		return nil, false, fmt.Errorf("auth.EnsureUser: %w", err)
	}

	s.log.InfoContext(ctx, "user seeded",
		slog.String("user_id", user.ID.String()),
		slog.String("role", role.String()))

	return user, true, nil
}

// SetPassword replaces the password of the account with the given email.
func (s *Service) SetPassword(ctx context.Context, email, password string) error {
	email = domain.NormalizeEmail(email)

	if err := (RegisterInput{Email: email, Password: password}).Validate(); err != nil {
		return err
	}

	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		return fmt.Errorf("auth.SetPassword get user: %w", err)
	}

	hash, err := auth.HashPassword(password, s.cfg.PasswordHashCost)
	if err != nil {
		return fmt.Errorf("auth.SetPassword: %w", err)
	}

	if err := s.users.UpdatePassword(ctx, user.ID, hash); err != nil {
		return fmt.Errorf("auth.SetPassword: %w", err)
	}

	s.log.InfoContext(ctx, "password reset", slog.String("user_id", user.ID.String()))
	return nil
}

func (s *Service) createUser(ctx context.Context, email, password, name string, role domain.UserRole) (*domain.User, error) {
	hash, err := auth.HashPassword(password, s.cfg.PasswordHashCost)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	return s.users.Create(ctx, &domain.User{
		ID:             uuid.New(),
		Email:          email,
		PasswordHash:   hash,
		Role:           role,
		Name:           name,
		OpeningBalance: s.bank.OpeningBalance,
		CreatedAt:      now,
		UpdatedAt:      now,
	})
}
