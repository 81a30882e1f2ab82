package handler

import (
	"context"
	"net/http"
	"time"

	"station-reassignment-service/internal/dto"
)

// Pinger checks a backing dependency, e.g. the postgres pool.
type Pinger interface {
	Ping(ctx context.Context) error
}

type HealthHandler struct {
	pinger Pinger
}

// NewHealthHandler accepts a nil pinger when the service has no database.
func NewHealthHandler(pinger Pinger) *HealthHandler {
	return &HealthHandler{pinger: pinger}
}

func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	if h.pinger != nil {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()
		if err := h.pinger.Ping(ctx); err != nil {
			respondError(w, http.StatusServiceUnavailable, dto.ErrCodeInternal, "database unavailable")
			return
		}
	}
	respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
