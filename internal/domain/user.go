package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// User is a persisted account holder.
type User struct {
	ID             uuid.UUID
	Email          string
	PasswordHash   string
	Role           UserRole
	Name           string
	AccountNumber  string
	Phone          string
	AvatarURL      *string
	OpeningBalance decimal.Decimal
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// Identity returns the authenticated principal view of the user.
func (u *User) Identity() Identity {
	return Identity{ID: u.ID, Email: u.Email, Role: u.Role}
}

// Identity is an authenticated principal as carried by access tokens.
type Identity struct {
	ID    uuid.UUID
	Email string
	Role  UserRole
}

// IsZero reports whether the identity is empty (anonymous).
func (i Identity) IsZero() bool {
	return i.ID == uuid.Nil
}

// IsAdmin reports whether the identity holds the admin role.
func (i Identity) IsAdmin() bool {
	return i.Role.IsAdmin()
}

// IdentityRef points at a user by id and carries the email for display.
type IdentityRef struct {
	ID    uuid.UUID
	Email string
}

// ProfileChanges lists profile fields to overwrite. Nil fields are left
// untouched; an empty AvatarURL clears the avatar.
type ProfileChanges struct {
	Email         *string
	Name          *string
	AccountNumber *string
	Phone         *string
	AvatarURL     *string
}

// IsEmpty reports whether no field would change.
func (c ProfileChanges) IsEmpty() bool {
	return c.Email == nil && c.Name == nil && c.AccountNumber == nil && c.Phone == nil && c.AvatarURL == nil
}
