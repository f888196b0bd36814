package auth

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/boldbank-backend/internal/auth"
	"github.com/heartmarshall/boldbank-backend/internal/config"
	"github.com/heartmarshall/boldbank-backend/internal/domain"
)

// userRepo defines the user repository interface needed by auth service.
type userRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	UpdatePassword(ctx context.Context, id uuid.UUID, hash string) error
}

// jwtManager defines the JWT token management interface needed by auth service.
type jwtManager interface {
	GenerateAccessToken(sub auth.Subject) (string, error)
	ValidateAccessToken(token string) (auth.Subject, error)
}

// Service implements identity resolution: credential checks, token issuance
// and token verification.
type Service struct {
	log   *slog.Logger
	users userRepo
	jwt   jwtManager
	cfg   config.AuthConfig
	bank  config.BankConfig
}

// NewService creates a new auth service instance.
func NewService(
	logger *slog.Logger,
	users userRepo,
	jwt jwtManager,
	cfg config.AuthConfig,
	bank config.BankConfig,
) *Service {
	return &Service{
		log:   logger.With("service", "auth"),
		users: users,
		jwt:   jwt,
		cfg:   cfg,
		bank:  bank,
	}
}

// IssueToken signs an access token carrying the user's id, email and role.
func (s *Service) IssueToken(user *domain.User) (string, error) {
	token, err := s.jwt.GenerateAccessToken(auth.Subject{
		UserID: user.ID,
		Email:  user.Email,
		Role:   user.Role.String(),
	})
	if err != nil {
		return "", fmt.Errorf("generate access token: %w", err)
	}
	return token, nil
}

// AuthResult is what Login and Register hand back to the transport layer.
type AuthResult struct {
	AccessToken string
	User        *domain.User
}

func (s *Service) result(user *domain.User) (*AuthResult, error) {
	token, err := s.IssueToken(user)
	if err != nil {
		return nil, err
	}
	return &AuthResult{AccessToken: token, User: user}, nil
}
