package service

import (
	"context"
	"fmt"

	"github.com/viraj5503/portfolio-api/internal/model"
)

// DefaultListLimit is applied when a caller does not specify how many
// submissions to list.
const DefaultListLimit = 50

// ValidationError reports a missing or malformed caller-supplied field.
// It is user-correctable and maps to a client error at the HTTP boundary,
// unlike storage failures which stay opaque.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s %s", e.Field, e.Reason)
}

// SubmissionService defines the business logic for contact-form submissions.
type SubmissionService interface {
	// Create validates the four caller-supplied fields, assigns the
	// server-generated id, timestamp and status, persists the submission and
	// returns it. Returns *ValidationError for bad input; any other error is
	// a persistence failure.
	Create(ctx context.Context, name, email, subject, message string) (*model.ContactSubmission, error)

	// UpdateStatus changes the status of the submission with the given id.
	// Returns repository.ErrNotFound when no submission matches.
	UpdateStatus(ctx context.Context, id, status string) error

	// List returns up to limit submissions, most recent first. limit <= 0
	// falls back to DefaultListLimit.
	List(ctx context.Context, limit int) ([]*model.ContactSubmission, error)
}
