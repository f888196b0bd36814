// Package transaction implements the transfer workflow: users create Pending
// transactions, admins approve or decline them exactly once.
package transaction

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/boldbank-backend/internal/config"
	"github.com/heartmarshall/boldbank-backend/internal/domain"
)

// ledgerRepo defines the transaction repository interface needed by the workflow.
type ledgerRepo interface {
	Create(ctx context.Context, tx *domain.Transaction) (*domain.Transaction, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Transaction, error)
	ListAll(ctx context.Context) ([]*domain.Transaction, error)
	ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*domain.Transaction, error)
	Approve(ctx context.Context, id, adminID uuid.UUID) (*domain.Transaction, error)
	Decline(ctx context.Context, id, adminID uuid.UUID) (*domain.Transaction, error)
}

// txManager defines the transaction manager interface needed by the workflow.
type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// eventPublisher pushes workflow changes to live connections.
type eventPublisher interface {
	TransactionCreated(tx *domain.Transaction)
	TransactionUpdated(tx *domain.Transaction)
	ForceLogout(userID uuid.UUID, reason string)
}

// Service implements the transaction workflow.
type Service struct {
	log    *slog.Logger
	ledger ledgerRepo
	tx     txManager
	events eventPublisher
	bank   config.BankConfig
	now    func() int64
}

// NewService creates a new transaction service instance.
func NewService(
	logger *slog.Logger,
	ledger ledgerRepo,
	tx txManager,
	events eventPublisher,
	bank config.BankConfig,
) *Service {
	return &Service{
		log:    logger.With("service", "transaction"),
		ledger: ledger,
		tx:     tx,
		events: events,
		bank:   bank,
		now:    nowMillis,
	}
}
