package domain

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// DefaultTransactionDescription is used when a transfer is created without one.
const DefaultTransactionDescription = "Money Transfer"

// Transaction is a single ledger entry awaiting or having received an admin decision.
//
// Amount is the signed delta applied to the owner's balance: negative values
// debit the owner, positive values credit. It never changes after creation.
type Transaction struct {
	ID          uuid.UUID
	OwnerID     uuid.UUID
	OwnerEmail  string
	Amount      decimal.Decimal
	Description string
	Status      TransactionStatus
	CreatedAt   int64 // unix milliseconds
	ApprovedBy  *IdentityRef
	DeclinedBy  *IdentityRef
}

// IsOwnedBy reports whether the transaction belongs to userID.
func (t *Transaction) IsOwnedBy(userID uuid.UUID) bool {
	return t.OwnerID == userID
}

// BalanceDelta is the amount this transaction contributes to the owner's
// balance. Declined transactions contribute nothing.
func (t *Transaction) BalanceDelta() decimal.Decimal {
	if t.Status == TransactionDeclined {
		return decimal.Zero
	}
	return t.Amount
}

// Balance computes opening + sum of every non-declined amount.
func Balance(opening decimal.Decimal, txs []Transaction) decimal.Decimal {
	total := opening
	for i := range txs {
		total = total.Add(txs[i].BalanceDelta())
	}
	return total
}
