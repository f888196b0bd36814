package user

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/heartmarshall/boldbank-backend/internal/domain"
	"github.com/heartmarshall/boldbank-backend/internal/realtime"
)

// userRepo defines the user repository interface needed by user service.
type userRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	List(ctx context.Context) ([]*domain.User, error)
	EmailTaken(ctx context.Context, email string, exceptID uuid.UUID) (bool, error)
	UpdateProfile(ctx context.Context, id uuid.UUID, changes domain.ProfileChanges) (*domain.User, error)
	UpdateRole(ctx context.Context, id uuid.UUID, role domain.UserRole) (*domain.User, error)
}

// ledgerRepo defines the transaction aggregate needed for balances.
type ledgerRepo interface {
	SumActive(ctx context.Context, ownerID uuid.UUID) (decimal.Decimal, error)
}

// txManager defines the transaction manager interface needed by user service.
type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// tokenIssuer signs a fresh access token for a user.
type tokenIssuer interface {
	IssueToken(user *domain.User) (string, error)
}

// sessionPublisher pushes identity changes to live connections.
type sessionPublisher interface {
	SessionUpdated(oldEmail string, user *domain.User, token string)
	Online() ([]realtime.Presence, int)
}

// Service implements profile, balance and admin user operations.
type Service struct {
	log      *slog.Logger
	users    userRepo
	ledger   ledgerRepo
	tx       txManager
	tokens   tokenIssuer
	sessions sessionPublisher
}

// NewService creates a new user service instance.
func NewService(
	logger *slog.Logger,
	users userRepo,
	ledger ledgerRepo,
	tx txManager,
	tokens tokenIssuer,
	sessions sessionPublisher,
) *Service {
	return &Service{
		log:      logger.With("service", "user"),
		users:    users,
		ledger:   ledger,
		tx:       tx,
		tokens:   tokens,
		sessions: sessions,
	}
}
