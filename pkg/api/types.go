package api

import (
	"time"

	"github.com/shopspring/decimal"
)

// User is the public view of an account.
type User struct {
	ID             string          `json:"id"`
	Email          string          `json:"email"`
	Role           string          `json:"role"`
	Name           string          `json:"name"`
	AccountNumber  string          `json:"accountNumber"`
	Phone          string          `json:"phone"`
	AvatarURL      *string         `json:"avatarUrl,omitempty"`
	OpeningBalance decimal.Decimal `json:"openingBalance"`
}

// Transaction is the public view of a ledger entry. Amount is the signed
// delta applied to the owner's balance.
type Transaction struct {
	ID          string          `json:"id"`
	OwnerID     string          `json:"ownerId"`
	Email       string          `json:"email"`
	Amount      decimal.Decimal `json:"amount"`
	Description string          `json:"description"`
	Status      string          `json:"status"`
	CreatedAt   int64           `json:"createdAt"`
	ApprovedBy  *string         `json:"approvedBy,omitempty"`
	DeclinedBy  *string         `json:"declinedBy,omitempty"`
}

// Message is a chat message between two users, addressed by email.
type Message struct {
	ID        string    `json:"id"`
	From      string    `json:"from"`
	To        string    `json:"to"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"createdAt"`
	Read      bool      `json:"read"`
}

// Balance is the server-computed balance of the caller.
type Balance struct {
	Opening decimal.Decimal `json:"opening"`
	Balance decimal.Decimal `json:"balance"`
}

// Presence describes an identity with open realtime connections.
type Presence struct {
	UserID      string `json:"userId"`
	Email       string `json:"email"`
	Connections int    `json:"connections"`
}

// PresenceResponse is the admin presence view.
type PresenceResponse struct {
	Online    []Presence `json:"online"`
	Anonymous int        `json:"anonymous"`
	Total     int        `json:"total"`
}

// ---------------------------------------------------------------------------
// Requests / responses
// ---------------------------------------------------------------------------

// LoginRequest is the body of POST /api/login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// RegisterRequest is the body of POST /api/register.
type RegisterRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
}

// AuthResponse is returned by login and register.
type AuthResponse struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}

// CreateTransactionRequest is the body of POST /api/transactions.
type CreateTransactionRequest struct {
	Amount      decimal.Decimal `json:"amount"`
	Description string          `json:"description"`
}

// DeclineRequest is the optional body of POST /api/transactions/{id}/decline.
type DeclineRequest struct {
	ForceSessionEnd bool `json:"forceSessionEnd"`
}

// SendMessageRequest is the body of POST /api/messages.
type SendMessageRequest struct {
	ToEmail string `json:"toEmail"`
	Content string `json:"content"`
}

// SetRoleRequest is the body of PATCH /api/admin/users/{id}/role.
type SetRoleRequest struct {
	Role string `json:"role"`
}

// ErrorResponse is the body of every non-2xx REST response. Fields lists
// per-field problems for validation failures.
type ErrorResponse struct {
	Error  string            `json:"error"`
	Fields map[string]string `json:"fields,omitempty"`
}

// UpdateProfileRequest is the body of PATCH /api/profile. Omitted fields stay unchanged.
type UpdateProfileRequest struct {
	Email         *string `json:"email,omitempty"`
	Name          *string `json:"name,omitempty"`
	AccountNumber *string `json:"accountNumber,omitempty"`
	Phone         *string `json:"phone,omitempty"`
	AvatarURL     *string `json:"avatarUrl,omitempty"`
}

// ProfileResponse is returned by PATCH /api/profile. Token is set only when
// the email changed and a new token was issued.
type ProfileResponse struct {
	User  User   `json:"user"`
	Token string `json:"token,omitempty"`
}
