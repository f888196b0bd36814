// Package reconcile keeps a client's view of its balance and transaction
// list consistent with the server while events and responses arrive in any
// order and possibly more than once.
package reconcile

import (
	"cmp"
	"fmt"
	"slices"
	"sync"

	"github.com/shopspring/decimal"

	"github.com/heartmarshall/boldbank-backend/pkg/api"
)

// Ledger is keyed by transaction id. Every mutation computes the change in
// a transaction's contribution to the balance, so replaying an event is a
// no-op. Only transactions owned by ownerID count toward the balance; the
// list keeps everything it is given (admins see all transactions).
type Ledger struct {
	mu      sync.Mutex
	ownerID string
	opening decimal.Decimal
	balance decimal.Decimal
	txs     map[string]api.Transaction
}

// New creates an empty ledger for ownerID.
func New(ownerID string) *Ledger {
	return &Ledger{
		ownerID: ownerID,
		txs:     make(map[string]api.Transaction),
	}
}

// Reset replaces the local state with a full server snapshot.
func (l *Ledger) Reset(opening decimal.Decimal, txs []api.Transaction) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.opening = opening
	l.balance = opening
	l.txs = make(map[string]api.Transaction, len(txs))
	for _, tx := range txs {
		if _, dup := l.txs[tx.ID]; dup {
			continue
		}
		l.txs[tx.ID] = tx
		l.balance = l.balance.Add(l.contribution(tx))
	}
}

// ApplyCreated records a newly created transaction. It returns false when
// the id is already known, whether from the create response, an earlier
// push or an update that raced ahead of the creation event.
func (l *Ledger) ApplyCreated(tx api.Transaction) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	if _, ok := l.txs[tx.ID]; ok {
		return false
	}
	l.txs[tx.ID] = tx
	l.balance = l.balance.Add(l.contribution(tx))
	return true
}

// ApplyUpdated records a status change. An unknown id is inserted as is.
// A terminal transaction never changes again, so stale or repeated updates
// return false. Pending to Declined refunds the amount once; Pending to
// Completed leaves the balance untouched.
func (l *Ledger) ApplyUpdated(tx api.Transaction) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	prev, ok := l.txs[tx.ID]
	if !ok {
		l.txs[tx.ID] = tx
		l.balance = l.balance.Add(l.contribution(tx))
		return true
	}
	if isTerminal(prev.Status) || prev.Status == tx.Status {
		return false
	}

	// Amount is immutable server-side; keep the locally applied one.
	tx.Amount = prev.Amount
	delta := l.contribution(tx).Sub(l.contribution(prev))
	l.txs[tx.ID] = tx
	l.balance = l.balance.Add(delta)
	return true
}

// Apply dispatches a realtime event. Events that do not concern the ledger
// are ignored and reported as unchanged.
func (l *Ledger) Apply(ev api.Event) (bool, error) {
	switch ev.Event {
	case api.EventTransactionsCreated, api.EventTransactionUpdate:
	default:
		return false, nil
	}

	var tx api.Transaction
	if err := ev.Decode(&tx); err != nil {
		return false, fmt.Errorf("reconcile: %w", err)
	}

	if ev.Event == api.EventTransactionsCreated {
		return l.ApplyCreated(tx), nil
	}
	return l.ApplyUpdated(tx), nil
}

// Balance returns the locally computed balance.
func (l *Ledger) Balance() decimal.Decimal {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.balance
}

// Opening returns the opening balance of the last snapshot.
func (l *Ledger) Opening() decimal.Decimal {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.opening
}

// Get returns a transaction by id.
func (l *Ledger) Get(id string) (api.Transaction, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	tx, ok := l.txs[id]
	return tx, ok
}

// Transactions returns every known transaction, newest first.
func (l *Ledger) Transactions() []api.Transaction {
	l.mu.Lock()
	out := make([]api.Transaction, 0, len(l.txs))
	for _, tx := range l.txs {
		out = append(out, tx)
	}
	l.mu.Unlock()

	slices.SortFunc(out, func(a, b api.Transaction) int {
		if c := cmp.Compare(b.CreatedAt, a.CreatedAt); c != 0 {
			return c
		}
		return cmp.Compare(b.ID, a.ID)
	})
	return out
}

// contribution is what tx adds to the owner's balance.
func (l *Ledger) contribution(tx api.Transaction) decimal.Decimal {
	if tx.OwnerID != l.ownerID || tx.Status == statusDeclined {
		return decimal.Zero
	}
	return tx.Amount
}

const (
	statusCompleted = "Completed"
	statusDeclined  = "Declined"
)

func isTerminal(status string) bool {
	return status == statusCompleted || status == statusDeclined
}
