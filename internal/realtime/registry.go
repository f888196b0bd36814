// Package realtime tracks live client connections and pushes events to them.
package realtime

import (
	"sort"
	"sync"

	"github.com/google/uuid"

	"github.com/heartmarshall/boldbank-backend/internal/domain"
)

// Handle is one live client connection. Send must not block: it returns
// false when the frame was dropped (buffer full or connection closed).
type Handle interface {
	Send(frame []byte) bool
}

// Presence is a registry snapshot entry for one identity.
type Presence struct {
	UserID      uuid.UUID
	Email       string
	Connections int
}

type binding struct {
	email   string
	handles map[Handle]struct{}
}

// Registry maps identities to their live connections. Connections are keyed
// by the stable user id; the email index only serves email-addressed lookups.
type Registry struct {
	mu      sync.RWMutex
	all     map[Handle]struct{}
	owners  map[Handle]uuid.UUID
	byUser  map[uuid.UUID]*binding
	byEmail map[string]uuid.UUID
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		all:     make(map[Handle]struct{}),
		owners:  make(map[Handle]uuid.UUID),
		byUser:  make(map[uuid.UUID]*binding),
		byEmail: make(map[string]uuid.UUID),
	}
}

// Add tracks an open connection. Anonymous connections only receive broadcasts.
func (r *Registry) Add(h Handle) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.all[h] = struct{}{}
}

// Remove forgets a connection entirely, unbinding it first if needed.
func (r *Registry) Remove(h Handle) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.unbindLocked(h)
	delete(r.all, h)
}

// Bind attaches h to the identity. Binding is idempotent; binding a connection
// to another identity detaches it from the previous one first. An identity that
// is already bound keeps its indexed email: only Rekey changes it, so a token
// minted before an email change cannot reclaim the old address.
func (r *Registry) Bind(id domain.Identity, h Handle) {
	email := domain.NormalizeEmail(id.Email)

	r.mu.Lock()
	defer r.mu.Unlock()

	if prev, ok := r.owners[h]; ok && prev != id.ID {
		r.unbindLocked(h)
	}

	r.all[h] = struct{}{}
	r.owners[h] = id.ID

	b, ok := r.byUser[id.ID]
	if ok {
		b.handles[h] = struct{}{}
		return
	}

	b = &binding{email: email, handles: map[Handle]struct{}{h: {}}}
	r.byUser[id.ID] = b
	if email != "" {
		r.byEmail[email] = id.ID
	}
}

// Unbind detaches h from whatever identity it is bound to. The connection
// stays open and keeps receiving broadcasts.
func (r *Registry) Unbind(h Handle) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.unbindLocked(h)
}

func (r *Registry) unbindLocked(h Handle) {
	userID, ok := r.owners[h]
	if !ok {
		return
	}
	delete(r.owners, h)

	b, ok := r.byUser[userID]
	if !ok {
		return
	}
	delete(b.handles, h)

	if len(b.handles) == 0 {
		delete(r.byUser, userID)
		if b.email != "" && r.byEmail[b.email] == userID {
			delete(r.byEmail, b.email)
		}
	}
}

// Rekey points newEmail at userID and drops the identity's previous index
// entry. Handles never move between identities: an entry for newEmail held by
// another id is stale and is simply overwritten. It reports whether userID had
// live connections.
func (r *Registry) Rekey(userID uuid.UUID, newEmail string) bool {
	newEmail = domain.NormalizeEmail(newEmail)

	r.mu.Lock()
	defer r.mu.Unlock()

	b, ok := r.byUser[userID]
	if !ok {
		return false
	}
	if b.email == newEmail {
		return true
	}

	if b.email != "" && r.byEmail[b.email] == userID {
		delete(r.byEmail, b.email)
	}
	b.email = newEmail
	if newEmail != "" {
		r.byEmail[newEmail] = userID
	}
	return true
}

// HandlesFor returns a snapshot of the connections bound to userID.
func (r *Registry) HandlesFor(userID uuid.UUID) []Handle {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.snapshotLocked(userID)
}

// HandlesForEmail returns a snapshot of the connections bound to the identity
// currently indexed under email.
func (r *Registry) HandlesForEmail(email string) []Handle {
	email = domain.NormalizeEmail(email)

	r.mu.RLock()
	defer r.mu.RUnlock()

	userID, ok := r.byEmail[email]
	if !ok {
		return nil
	}
	return r.snapshotLocked(userID)
}

func (r *Registry) snapshotLocked(userID uuid.UUID) []Handle {
	b, ok := r.byUser[userID]
	if !ok {
		return nil
	}
	out := make([]Handle, 0, len(b.handles))
	for h := range b.handles {
		out = append(out, h)
	}
	return out
}

// All returns a snapshot of every open connection.
func (r *Registry) All() []Handle {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Handle, 0, len(r.all))
	for h := range r.all {
		out = append(out, h)
	}
	return out
}

// Count returns the number of open connections, bound or not.
func (r *Registry) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.all)
}

// Online returns one entry per bound identity, ordered by email.
func (r *Registry) Online() []Presence {
	r.mu.RLock()
	out := make([]Presence, 0, len(r.byUser))
	for id, b := range r.byUser {
		out = append(out, Presence{UserID: id, Email: b.email, Connections: len(b.handles)})
	}
	r.mu.RUnlock()

	sort.Slice(out, func(i, j int) bool { return out[i].Email < out[j].Email })
	return out
}

// Stats counts open connections and the identities bound to them.
type Stats struct {
	Connections int
	Identities  int
}

// Stats returns a point-in-time count for health reporting.
func (r *Registry) Stats() Stats {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return Stats{Connections: len(r.all), Identities: len(r.byUser)}
}
