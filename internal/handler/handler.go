package handler

import (
	"encoding/json"
	"net/http"

	"github.com/viraj5503/portfolio-api/internal/repository"
)

// Handler carries the shared dependencies of the top-level endpoints
// (liveness, health, CORS).
type Handler struct {
	db            repository.DB
	allowedOrigin string
}

// New creates the base Handler.
func New(db repository.DB, allowedOrigin string) *Handler {
	return &Handler{db: db, allowedOrigin: allowedOrigin}
}

// writeJSON writes v as a JSON response body with the given status code.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// errorJSON writes the standard error body used by every endpoint.
func errorJSON(w http.ResponseWriter, status int, code string) {
	writeJSON(w, status, map[string]string{"error": code})
}

// CORS applies the configured origin policy. The credentials header is only
// emitted for a concrete origin — browsers reject it together with "*".
func (h *Handler) CORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", h.allowedOrigin)
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
		if h.allowedOrigin != "*" {
			w.Header().Set("Access-Control-Allow-Credentials", "true")
		}

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// Root handles GET /api/ — a plain liveness message with no dependencies.
func (h *Handler) Root(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"message": "Portfolio API is running",
		"status":  "healthy",
	})
}
