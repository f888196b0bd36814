package realtime

import (
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/boldbank-backend/internal/domain"
	"github.com/heartmarshall/boldbank-backend/pkg/api"
)

// Publisher turns domain changes into realtime events.
type Publisher struct {
	d *Dispatcher
}

// NewPublisher creates a publisher over d.
func NewPublisher(d *Dispatcher) *Publisher {
	return &Publisher{d: d}
}

// TransactionCreated broadcasts a new transaction to every open connection.
func (p *Publisher) TransactionCreated(tx *domain.Transaction) {
	p.d.Broadcast(api.EventTransactionsCreated, api.FromTransaction(tx))
}

// TransactionUpdated notifies the owner of a status change.
func (p *Publisher) TransactionUpdated(tx *domain.Transaction) {
	p.d.EmitToUser(tx.OwnerID, api.EventTransactionUpdate, api.FromTransaction(tx))
}

// ForceLogout asks every connection of userID to end its session.
func (p *Publisher) ForceLogout(userID uuid.UUID, reason string) {
	p.d.EmitToUser(userID, api.EventForceLogout, api.ForceLogout{Reason: reason})
}

// MessageCreated notifies both participants of a new message.
func (p *Publisher) MessageCreated(m *domain.Message) {
	payload := api.FromMessage(m)
	p.d.EmitToUser(m.ToID, api.EventMessageCreated, payload)
	if m.FromID != m.ToID {
		p.d.EmitToUser(m.FromID, api.EventMessageCreated, payload)
	}
}

// SessionUpdated rekeys the registry after an email change and pushes the
// reissued token to the identity's connections.
func (p *Publisher) SessionUpdated(oldEmail string, u *domain.User, token string) {
	if p.d.registry.Rekey(u.ID, u.Email) && oldEmail != u.Email {
		p.d.log.Debug("connections rekeyed",
			slog.String("user_id", u.ID.String()),
			slog.String("old_email", oldEmail),
			slog.String("new_email", u.Email),
		)
	}
	p.d.EmitToUser(u.ID, api.EventSessionUpdate, api.SessionUpdate{Token: token, User: api.FromUser(u)})
}

// Online returns the registry presence snapshot and the number of open connections.
func (p *Publisher) Online() ([]Presence, int) {
	return p.d.registry.Online(), p.d.registry.Count()
}
