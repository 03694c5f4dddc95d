package handlers

import (
	"context"
	"net/http"

	"go.uber.org/zap"
)

// Pinger is anything whose connectivity the health endpoint reports on.
type Pinger interface {
	Ping(ctx context.Context) error
}

type HealthHandler struct {
	checks map[string]Pinger
	logger *zap.Logger
}

// NewHealthHandler takes named dependency checks; nil entries are skipped.
func NewHealthHandler(logger *zap.Logger, checks map[string]Pinger) *HealthHandler {
	return &HealthHandler{checks: checks, logger: logger}
}

func (h *HealthHandler) Check(w http.ResponseWriter, r *http.Request) {
	status := http.StatusOK
	body := map[string]any{"status": "ok"}

	for name, check := range h.checks {
		if check == nil {
			continue
		}
		if err := check.Ping(r.Context()); err != nil {
			h.logger.Error("health check failed", zap.String("dependency", name), zap.Error(err))
			body[name] = "unavailable"
			body["status"] = "degraded"
			status = http.StatusServiceUnavailable
			continue
		}
		body[name] = "ok"
	}

	writeJSON(w, status, body)
}
