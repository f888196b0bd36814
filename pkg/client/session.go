package client

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/shopspring/decimal"

	"github.com/heartmarshall/boldbank-backend/pkg/api"
	"github.com/heartmarshall/boldbank-backend/pkg/reconcile"
)

// ErrForcedLogout is returned by Session.Run when the server ends the session.
var ErrForcedLogout = errors.New("session ended by server")

// Session keeps a local ledger in step with the server. On every
// "registered" acknowledgement it refetches the full state, then applies
// realtime events on top of it.
type Session struct {
	client *Client
	log    *slog.Logger

	mu     sync.RWMutex
	ledger *reconcile.Ledger
	user   api.User
	reason string

	// OnEvent, if set, is called after each event has been applied.
	OnEvent func(api.Event)
}

// NewSession wraps an authenticated client.
func NewSession(c *Client, logger *slog.Logger) *Session {
	return &Session{
		client: c,
		log:    logger.With("component", "session"),
	}
}

// Run follows the realtime channel until ctx is done, the connection drops
// or the server forces a logout.
func (s *Session) Run(ctx context.Context) error {
	if s.client.Token() == "" {
		return errors.New("session: not logged in")
	}
	return s.client.Subscribe(ctx, s.handle)
}

// Refresh replaces the local state with the server's.
func (s *Session) Refresh(ctx context.Context) error {
	me, err := s.client.Me(ctx)
	if err != nil {
		return fmt.Errorf("refresh profile: %w", err)
	}
	bal, err := s.client.Balance(ctx)
	if err != nil {
		return fmt.Errorf("refresh balance: %w", err)
	}
	txs, err := s.client.ListTransactions(ctx)
	if err != nil {
		return fmt.Errorf("refresh transactions: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.ledger == nil || s.user.ID != me.ID {
		s.ledger = reconcile.New(me.ID)
	}
	s.user = *me
	s.ledger.Reset(bal.Opening, txs)

	if !s.ledger.Balance().Equal(bal.Balance) {
		s.log.Warn("local balance differs from server",
			slog.String("local", s.ledger.Balance().String()),
			slog.String("server", bal.Balance.String()),
		)
	}
	return nil
}

// CreateTransaction submits a transfer and records it locally. The echo
// from the realtime channel is then ignored as a duplicate.
func (s *Session) CreateTransaction(ctx context.Context, amount decimal.Decimal, description string) (*api.Transaction, error) {
	tx, err := s.client.CreateTransaction(ctx, amount, description)
	if err != nil {
		return nil, err
	}
	if l := s.currentLedger(); l != nil {
		l.ApplyCreated(*tx)
	}
	return tx, nil
}

// Balance returns the locally reconciled balance.
func (s *Session) Balance() decimal.Decimal {
	if l := s.currentLedger(); l != nil {
		return l.Balance()
	}
	return decimal.Zero
}

// Transactions returns the local transaction list, newest first.
func (s *Session) Transactions() []api.Transaction {
	if l := s.currentLedger(); l != nil {
		return l.Transactions()
	}
	return nil
}

// User returns the last known profile.
func (s *Session) User() api.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.user
}

// LogoutReason is the reason of the last forced logout, if any.
func (s *Session) LogoutReason() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.reason
}

func (s *Session) currentLedger() *reconcile.Ledger {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.ledger
}

func (s *Session) handle(ctx context.Context, ev api.Event) error {
	switch ev.Event {
	case api.EventRegistered:
		if err := s.Refresh(ctx); err != nil {
			return err
		}

	case api.EventTransactionsCreated, api.EventTransactionUpdate:
		l := s.currentLedger()
		if l == nil {
			// Not registered yet; the refetch will include it.
			break
		}
		if _, err := l.Apply(ev); err != nil {
			s.log.Warn("bad transaction event", slog.String("event", ev.Event), slog.String("error", err.Error()))
		}

	case api.EventSessionUpdate:
		var upd api.SessionUpdate
		if err := ev.Decode(&upd); err != nil {
			s.log.Warn("bad session update", slog.String("error", err.Error()))
			break
		}
		s.client.SetToken(upd.Token)
		s.mu.Lock()
		s.user = upd.User
		s.mu.Unlock()

	case api.EventForceLogout:
		var fl api.ForceLogout
		_ = ev.Decode(&fl)
		s.mu.Lock()
		s.reason = fl.Reason
		s.mu.Unlock()
		s.client.SetToken("")
		s.notify(ev)
		return ErrForcedLogout

	case api.EventError:
		var e api.ErrorPayload
		if err := ev.Decode(&e); err == nil {
			s.log.Warn("server error event", slog.String("message", e.Message))
		}
	}

	s.notify(ev)
	return nil
}

func (s *Session) notify(ev api.Event) {
	if s.OnEvent != nil {
		s.OnEvent(ev)
	}
}
