package realtime

import (
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/boldbank-backend/pkg/api"
)

// Dispatcher encodes events once and fans them out to registry handles.
// Delivery is best-effort: a handle that cannot accept a frame loses it.
type Dispatcher struct {
	registry *Registry
	log      *slog.Logger
}

// NewDispatcher creates a dispatcher over registry.
func NewDispatcher(registry *Registry, logger *slog.Logger) *Dispatcher {
	return &Dispatcher{
		registry: registry,
		log:      logger.With("component", "realtime"),
	}
}

// EmitToUser sends an event to every connection bound to userID and returns
// the number of connections that accepted it.
func (d *Dispatcher) EmitToUser(userID uuid.UUID, event string, payload any) int {
	return d.deliver(event, payload, d.registry.HandlesFor(userID), slog.String("user_id", userID.String()))
}

// Broadcast sends an event to every open connection.
func (d *Dispatcher) Broadcast(event string, payload any) int {
	return d.deliver(event, payload, d.registry.All(), slog.String("target", "all"))
}

func (d *Dispatcher) deliver(event string, payload any, handles []Handle, target slog.Attr) int {
	if len(handles) == 0 {
		return 0
	}

	frame, err := api.EncodeEvent(event, payload)
	if err != nil {
		d.log.Error("encode event", slog.String("event", event), slog.String("error", err.Error()))
		return 0
	}

	delivered := 0
	for _, h := range handles {
		if h.Send(frame) {
			delivered++
		}
	}

	if dropped := len(handles) - delivered; dropped > 0 {
		d.log.Warn("event dropped",
			slog.String("event", event),
			target,
			slog.Int("dropped", dropped),
			slog.Int("delivered", delivered),
		)
	}

	return delivered
}
