package handler

import (
	"log/slog"
	"net/http"
)

type healthResponse struct {
	Status   string `json:"status"`
	Message  string `json:"message"`
	Database string `json:"database"`
}

// Health handles GET /api/health: a liveness probe against the database.
// The underlying error is logged, not returned to the caller.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	if err := h.db.Ping(r.Context()); err != nil {
		slog.Error("health check failed", "error", err)
		writeJSON(w, http.StatusServiceUnavailable, healthResponse{
			Status:   "unhealthy",
			Message:  "Database connection failed",
			Database: "disconnected",
		})
		return
	}

	writeJSON(w, http.StatusOK, healthResponse{
		Status:   "healthy",
		Message:  "API and database are running properly",
		Database: "connected",
	})
}
