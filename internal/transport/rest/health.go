package rest

import (
	"context"
	"net/http"
	"time"

	"github.com/heartmarshall/boldbank-backend/internal/realtime"
)

const probeTimeout = 3 * time.Second

type dbPinger interface {
	Ping(ctx context.Context) error
}

type realtimeStats interface {
	Stats() realtime.Stats
}

// HealthHandler serves the probe endpoints.
type HealthHandler struct {
	db      dbPinger
	rt      realtimeStats
	version string
	now     func() time.Time
}

// NewHealthHandler creates a HealthHandler. rt may be nil when the realtime
// channel is not mounted.
func NewHealthHandler(db dbPinger, rt realtimeStats, version string) *HealthHandler {
	return &HealthHandler{db: db, rt: rt, version: version, now: time.Now}
}

// HealthResponse is the body of /live, /ready and /health.
type HealthResponse struct {
	Status    string          `json:"status"`
	Version   string          `json:"version,omitempty"`
	Database  *DatabaseStatus `json:"database,omitempty"`
	Realtime  *RealtimeStatus `json:"realtime,omitempty"`
	Timestamp time.Time       `json:"timestamp"`
}

type DatabaseStatus struct {
	Status  string `json:"status"`
	Latency string `json:"latency,omitempty"`
	Error   string `json:"error,omitempty"`
}

type RealtimeStatus struct {
	Connections int `json:"connections"`
	Identities  int `json:"identities"`
}

// Live always answers 200 while the process serves HTTP.
func (h *HealthHandler) Live(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, HealthResponse{Status: "ok", Timestamp: h.now()})
}

// Healthz is a plain-text liveness check for load balancers.
func (h *HealthHandler) Healthz(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte("ok"))
}

// Ready answers 503 until the database responds.
func (h *HealthHandler) Ready(w http.ResponseWriter, r *http.Request) {
	db := h.pingDB(r.Context())
	writeJSON(w, statusFor(db), HealthResponse{Status: db.Status, Timestamp: h.now()})
}

// Health reports database latency, realtime counts and the build version.
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	db := h.pingDB(r.Context())

	resp := HealthResponse{
		Status:    db.Status,
		Version:   h.version,
		Database:  &db,
		Timestamp: h.now(),
	}
	if h.rt != nil {
		s := h.rt.Stats()
		resp.Realtime = &RealtimeStatus{Connections: s.Connections, Identities: s.Identities}
	}

	writeJSON(w, statusFor(db), resp)
}

func (h *HealthHandler) pingDB(ctx context.Context) DatabaseStatus {
	ctx, cancel := context.WithTimeout(ctx, probeTimeout)
	defer cancel()

	start := time.Now()
	if err := h.db.Ping(ctx); err != nil {
		return DatabaseStatus{Status: "down", Error: err.Error()}
	}
	return DatabaseStatus{Status: "ok", Latency: time.Since(start).String()}
}

func statusFor(db DatabaseStatus) int {
	if db.Status != "ok" {
		return http.StatusServiceUnavailable
	}
	return http.StatusOK
}
