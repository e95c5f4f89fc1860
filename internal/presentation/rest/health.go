package rest

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"sync/atomic"
)

// HealthHandler serves liveness and readiness probes over HTTP.
type HealthHandler struct {
	service string
	ready   atomic.Bool
	logger  *slog.Logger
}

// NewHealthHandler creates a health check HTTP handler. It reports not ready
// until SetReady(true) is called.
func NewHealthHandler(service string, logger *slog.Logger) *HealthHandler {
	return &HealthHandler{service: service, logger: logger}
}

// SetReady flips the readiness probe. The process clears it when draining.
func (h *HealthHandler) SetReady(ready bool) {
	h.ready.Store(ready)
	h.logger.Info("readiness changed", "ready", ready)
}

func (h *HealthHandler) liveness(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"status":  "ok",
		"service": h.service,
	})
}

func (h *HealthHandler) readiness(w http.ResponseWriter, _ *http.Request) {
	if !h.ready.Load() {
		writeJSON(w, http.StatusServiceUnavailable, map[string]string{
			"status":  "not_ready",
			"service": h.service,
		})
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{
		"status":  "ready",
		"service": h.service,
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v) //nolint:errcheck
}
