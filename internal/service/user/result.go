package user

import (
	"github.com/shopspring/decimal"

	"github.com/heartmarshall/boldbank-backend/internal/domain"
	"github.com/heartmarshall/boldbank-backend/internal/realtime"
)

// ProfileResult is returned by UpdateProfile. Token is set only when the
// email changed and a new access token was issued.
type ProfileResult struct {
	User  *domain.User
	Token string
}

// BalanceResult is the server-side balance of a user.
type BalanceResult struct {
	Opening decimal.Decimal
	Balance decimal.Decimal
}

// PresenceResult is the admin view of live connections.
type PresenceResult struct {
	Online []realtime.Presence
	Total  int
}

// Anonymous returns the number of open connections not bound to an identity.
func (p PresenceResult) Anonymous() int {
	bound := 0
	for _, o := range p.Online {
		bound += o.Connections
	}
	if p.Total < bound {
		return 0
	}
	return p.Total - bound
}
