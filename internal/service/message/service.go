// Package message implements user-to-user chat.
package message

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/boldbank-backend/internal/domain"
)

type userRepo interface {
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
}

type messageRepo interface {
	Create(ctx context.Context, m *domain.Message) (*domain.Message, error)
	ListConversation(ctx context.Context, a, b uuid.UUID) ([]*domain.Message, error)
	MarkRead(ctx context.Context, id, recipientID uuid.UUID) (*domain.Message, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Message, error)
}

type eventPublisher interface {
	MessageCreated(m *domain.Message)
}

// Service implements messaging between identities.
type Service struct {
	log      *slog.Logger
	users    userRepo
	messages messageRepo
	events   eventPublisher
}

// NewService creates a new message service.
func NewService(logger *slog.Logger, users userRepo, messages messageRepo, events eventPublisher) *Service {
	return &Service{
		log:      logger.With("service", "message"),
		users:    users,
		messages: messages,
		events:   events,
	}
}
