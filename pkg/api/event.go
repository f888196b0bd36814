// Package api holds the JSON wire types shared by the HTTP API, the realtime
// channel and the Go client.
package api

import (
	"encoding/json"
	"fmt"
)

// Server → client event names.
const (
	EventTransactionsCreated = "transactions:created"
	EventTransactionUpdate   = "transaction:update"
	EventMessageCreated      = "message:created"
	EventForceLogout         = "force-logout"
	EventSessionUpdate       = "session:update"
	EventRegistered          = "registered"
	EventError               = "error"
)

// Client → server frame names.
const (
	EventRegister   = "register"
	EventUnregister = "unregister"
)

// ForceLogoutDeclined is the reason sent when an admin declines a transaction
// and asks for the owner's session to end.
const ForceLogoutDeclined = "declined_by_admin"

// Event is the realtime envelope: {"event": "...", "data": {...}}.
type Event struct {
	Event string          `json:"event"`
	Data  json.RawMessage `json:"data,omitempty"`
}

// NewEvent encodes payload into an envelope. A nil payload yields no data field.
func NewEvent(name string, payload any) (Event, error) {
	ev := Event{Event: name}
	if payload == nil {
		return ev, nil
	}

	data, err := json.Marshal(payload)
	if err != nil {
		return Event{}, fmt.Errorf("encode %s payload: %w", name, err)
	}
	ev.Data = data

	return ev, nil
}

// EncodeEvent returns the wire bytes of an envelope.
func EncodeEvent(name string, payload any) ([]byte, error) {
	ev, err := NewEvent(name, payload)
	if err != nil {
		return nil, err
	}
	return json.Marshal(ev)
}

// Decode unmarshals the event data into v.
func (e Event) Decode(v any) error {
	if len(e.Data) == 0 {
		return fmt.Errorf("event %s: no data", e.Event)
	}
	if err := json.Unmarshal(e.Data, v); err != nil {
		return fmt.Errorf("decode %s payload: %w", e.Event, err)
	}
	return nil
}

// RegisterFrame is the payload of a client "register" frame.
type RegisterFrame struct {
	Token string `json:"token"`
}

// Registered acknowledges a successful register frame.
type Registered struct {
	UserID string `json:"userId"`
	Email  string `json:"email"`
	Role   string `json:"role"`
}

// ErrorPayload is the payload of an "error" event and of HTTP error bodies.
type ErrorPayload struct {
	Message string `json:"message"`
}

// ForceLogout asks the client to end its session.
type ForceLogout struct {
	Reason string `json:"reason"`
}

// SessionUpdate carries a reissued token after the identity's email changed.
type SessionUpdate struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}
