package api

import (
	"net/http"
	"time"

	"github.com/bornholm/backlog/internal/core/service"
)

type HealthResponse struct {
	// Uptime of the process, in seconds
	Uptime  float64   `json:"uptime"`
	Message string    `json:"message"`
	Date    time.Time `json:"date"`
}

func (h *Handler) handleHealth(w http.ResponseWriter, r *http.Request) {
	if h.maintenanceMode {
		writeError(w, r, service.ErrMaintenance)
		return
	}

	writeJSON(w, r, http.StatusOK, HealthResponse{
		Uptime:  time.Since(h.startedAt).Seconds(),
		Message: "OK",
		Date:    time.Now().UTC(),
	})
}
