package rest

import (
	"context"
	"net/http"
	"time"
)

const probeTimeout = 3 * time.Second

type pinger interface {
	Ping(ctx context.Context) error
}

// PingFunc adapts a function to a health check.
type PingFunc func(ctx context.Context) error

// Ping calls f.
func (f PingFunc) Ping(ctx context.Context) error { return f(ctx) }

type sessionCounter interface {
	ActiveSessions() int
}

type namedCheck struct {
	name string
	p    pinger
}

// HealthHandler serves the liveness, readiness, and health endpoints.
type HealthHandler struct {
	checks   []namedCheck
	sessions sessionCounter
	version  string
}

// NewHealthHandler creates a HealthHandler with no dependencies.
func NewHealthHandler(version string) *HealthHandler {
	return &HealthHandler{version: version}
}

// WithCheck adds a dependency that must answer Ping for the service to be
// ready. *pgxpool.Pool satisfies pinger.
func (h *HealthHandler) WithCheck(name string, p pinger) *HealthHandler {
	h.checks = append(h.checks, namedCheck{name: name, p: p})
	return h
}

// WithSessions reports the in-memory practice sessions on /health.
func (h *HealthHandler) WithSessions(c sessionCounter) *HealthHandler {
	h.sessions = c
	return h
}

// HealthResponse is the JSON response for the probes.
type HealthResponse struct {
	Status     string                `json:"status"`
	Version    string                `json:"version,omitempty"`
	Components map[string]CompStatus `json:"components,omitempty"`
	Timestamp  time.Time             `json:"timestamp"`
}

// CompStatus is the status of one component.
type CompStatus struct {
	Status  string `json:"status"`
	Latency string `json:"latency,omitempty"`
	Active  *int   `json:"active,omitempty"`
}

// Routes mounts the probes on mux.
func (h *HealthHandler) Routes(mux *http.ServeMux) {
	mux.HandleFunc("GET /live", h.Live)
	mux.HandleFunc("GET /ready", h.Ready)
	mux.HandleFunc("GET /health", h.Health)
}

// Live always answers 200 while the process serves HTTP.
func (h *HealthHandler) Live(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, HealthResponse{Status: "ok", Timestamp: time.Now()})
}

// Ready answers 503 when any dependency fails its ping.
func (h *HealthHandler) Ready(w http.ResponseWriter, r *http.Request) {
	_, ok := h.probe(r.Context())
	if !ok {
		writeJSON(w, http.StatusServiceUnavailable, HealthResponse{Status: "down", Timestamp: time.Now()})
		return
	}
	writeJSON(w, http.StatusOK, HealthResponse{Status: "ok", Timestamp: time.Now()})
}

// Health reports every component with ping latency, plus the version.
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	components, ok := h.probe(r.Context())

	if h.sessions != nil {
		n := h.sessions.ActiveSessions()
		components["practice_sessions"] = CompStatus{Status: "ok", Active: &n}
	}

	resp := HealthResponse{Status: "ok", Version: h.version, Components: components, Timestamp: time.Now()}
	status := http.StatusOK
	if !ok {
		resp.Status = "down"
		status = http.StatusServiceUnavailable
	}
	writeJSON(w, status, resp)
}

// probe pings every check under one shared timeout.
func (h *HealthHandler) probe(ctx context.Context) (map[string]CompStatus, bool) {
	ctx, cancel := context.WithTimeout(ctx, probeTimeout)
	defer cancel()

	components := make(map[string]CompStatus, len(h.checks)+1)
	ok := true
	for _, c := range h.checks {
		start := time.Now()
		if err := c.p.Ping(ctx); err != nil {
			components[c.name] = CompStatus{Status: "down"}
			ok = false
			continue
		}
		components[c.name] = CompStatus{Status: "ok", Latency: time.Since(start).String()}
	}
	return components, ok
}
