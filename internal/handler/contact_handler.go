package handler

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/viraj5503/portfolio-api/internal/model"
	"github.com/viraj5503/portfolio-api/internal/repository"
	"github.com/viraj5503/portfolio-api/internal/service"
)

const (
	maxMessageLength = 5000
	maxListLimit     = 100
)

// Notifier is the contact handler's view of the mail notifier. It never
// reports an outcome; delivery is fire-and-forget.
type Notifier interface {
	Notify(ctx context.Context, sub *model.ContactSubmission)
}

// ContactHandler handles contact form submission plus the operator-facing
// listing and status endpoints.
type ContactHandler struct {
	submissions service.SubmissionService
	notifier    Notifier
}

// NewContactHandler creates a ContactHandler with the given service and
// notifier.
func NewContactHandler(submissions service.SubmissionService, notifier Notifier) *ContactHandler {
	return &ContactHandler{submissions: submissions, notifier: notifier}
}

// submitRequest is the expected JSON body for POST /api/contact.
type submitRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}

// submitResponse is returned on successful submission so the caller can show
// the generated id to the user.
type submitResponse struct {
	Success      bool   `json:"success"`
	Message      string `json:"message"`
	SubmissionID string `json:"submission_id"`
}

// Submit handles POST /api/contact. All four fields are required; the email
// notification is launched after the success response and cannot affect it.
func (h *ContactHandler) Submit(w http.ResponseWriter, r *http.Request) {
	var req submitRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		errorJSON(w, http.StatusBadRequest, "invalid_json")
		return
	}

	if len([]rune(req.Message)) > maxMessageLength {
		errorJSON(w, http.StatusBadRequest, "message_too_long")
		return
	}

	sub, err := h.submissions.Create(r.Context(), req.Name, req.Email, req.Subject, req.Message)
	if err != nil {
		var verr *service.ValidationError
		if errors.As(err, &verr) {
			errorJSON(w, http.StatusBadRequest, verr.Error())
			return
		}
		slog.Error("failed to store contact submission", "error", err)
		errorJSON(w, http.StatusInternalServerError, "submit_failed")
		return
	}

	writeJSON(w, http.StatusCreated, submitResponse{
		Success:      true,
		Message:      "Thank you for your message. I'll get back to you soon!",
		SubmissionID: sub.ID,
	})

	// The request context dies with this response; the notification gets its
	// own so slow or failing mail delivery never touches the request path.
	go h.notifier.Notify(context.Background(), sub)
}

// List handles GET /api/contact/submissions (operator endpoint).
// Supports ?limit=N, clamped to 100; defaults to 50.
func (h *ContactHandler) List(w http.ResponseWriter, r *http.Request) {
	limit := service.DefaultListLimit
	if l := r.URL.Query().Get("limit"); l != "" {
		if n, err := strconv.Atoi(l); err == nil && n > 0 {
			if n > maxListLimit {
				n = maxListLimit
			}
			limit = n
		}
	}

	subs, err := h.submissions.List(r.Context(), limit)
	if err != nil {
		slog.Error("failed to list contact submissions", "error", err)
		errorJSON(w, http.StatusInternalServerError, "list_failed")
		return
	}

	// Return [] not null for empty lists
	if subs == nil {
		subs = []*model.ContactSubmission{}
	}

	writeJSON(w, http.StatusOK, subs)
}

// UpdateStatus handles PUT /api/contact/submissions/{id}/status?status=S
// (operator endpoint).
func (h *ContactHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	status := r.URL.Query().Get("status")

	if err := h.submissions.UpdateStatus(r.Context(), id, status); err != nil {
		var verr *service.ValidationError
		switch {
		case errors.As(err, &verr):
			errorJSON(w, http.StatusBadRequest, verr.Error())
		case errors.Is(err, repository.ErrNotFound):
			errorJSON(w, http.StatusNotFound, "not_found")
		default:
			slog.Error("failed to update submission status",
				"submission_id", id, "error", err)
			errorJSON(w, http.StatusInternalServerError, "update_failed")
		}
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"message": "Status updated successfully",
	})
}
