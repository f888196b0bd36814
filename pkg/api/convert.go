package api

import (
	"github.com/heartmarshall/boldbank-backend/internal/domain"
)

// FromUser converts a domain user to its public view.
func FromUser(u *domain.User) User {
	return User{
		ID:             u.ID.String(),
		Email:          u.Email,
		Role:           u.Role.String(),
		Name:           u.Name,
		AccountNumber:  u.AccountNumber,
		Phone:          u.Phone,
		AvatarURL:      u.AvatarURL,
		OpeningBalance: u.OpeningBalance,
	}
}

// FromTransaction converts a domain transaction to its public view.
func FromTransaction(t *domain.Transaction) Transaction {
	out := Transaction{
		ID:          t.ID.String(),
		OwnerID:     t.OwnerID.String(),
		Email:       t.OwnerEmail,
		Amount:      t.Amount,
		Description: t.Description,
		Status:      t.Status.String(),
		CreatedAt:   t.CreatedAt,
	}
	if t.ApprovedBy != nil {
		email := t.ApprovedBy.Email
		out.ApprovedBy = &email
	}
	if t.DeclinedBy != nil {
		email := t.DeclinedBy.Email
		out.DeclinedBy = &email
	}
	return out
}

// FromTransactions converts a slice; the result is never nil.
func FromTransactions(txs []*domain.Transaction) []Transaction {
	out := make([]Transaction, 0, len(txs))
	for _, t := range txs {
		out = append(out, FromTransaction(t))
	}
	return out
}

// FromMessage converts a domain message to its public view.
func FromMessage(m *domain.Message) Message {
	return Message{
		ID:        m.ID.String(),
		From:      m.FromEmail,
		To:        m.ToEmail,
		Content:   m.Content,
		CreatedAt: m.CreatedAt,
		Read:      m.Read,
	}
}

// FromMessages converts a slice; the result is never nil.
func FromMessages(msgs []*domain.Message) []Message {
	out := make([]Message, 0, len(msgs))
	for _, m := range msgs {
		out = append(out, FromMessage(m))
	}
	return out
}
