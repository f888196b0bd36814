package domain

import (
	"time"

	"github.com/google/uuid"
)

// Message is a chat message between two users.
type Message struct {
	ID        uuid.UUID
	FromID    uuid.UUID
	FromEmail string
	ToID      uuid.UUID
	ToEmail   string
	Content   string
	CreatedAt time.Time
	Read      bool
}

// HasParticipant reports whether userID sent or received the message.
func (m *Message) HasParticipant(userID uuid.UUID) bool {
	return m.FromID == userID || m.ToID == userID
}
