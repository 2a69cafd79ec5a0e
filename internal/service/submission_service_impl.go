package service

import (
	"context"
	"net/mail"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/viraj5503/portfolio-api/internal/model"
	"github.com/viraj5503/portfolio-api/internal/repository"
)

// submissionServiceImpl is the production implementation of SubmissionService.
type submissionServiceImpl struct {
	repo repository.SubmissionRepository
}

// NewSubmissionService creates a SubmissionService backed by the given
// repository.
func NewSubmissionService(repo repository.SubmissionRepository) SubmissionService {
	return &submissionServiceImpl{repo: repo}
}

// Create validates the form fields, builds the submission with a fresh uuid,
// the current UTC time and status "new", and persists it. Validation failures
// return before any write happens.
func (s *submissionServiceImpl) Create(ctx context.Context, name, email, subject, message string) (*model.ContactSubmission, error) {
	name = strings.TrimSpace(name)
	email = strings.TrimSpace(email)
	subject = strings.TrimSpace(subject)
	message = strings.TrimSpace(message)

	switch {
	case name == "":
		return nil, &ValidationError{Field: "name", Reason: "is required"}
	case email == "":
		return nil, &ValidationError{Field: "email", Reason: "is required"}
	case subject == "":
		return nil, &ValidationError{Field: "subject", Reason: "is required"}
	case message == "":
		return nil, &ValidationError{Field: "message", Reason: "is required"}
	}
	// Shape check only; deep RFC validation is deliberately out of scope.
	if _, err := mail.ParseAddress(email); err != nil {
		return nil, &ValidationError{Field: "email", Reason: "is not a valid address"}
	}

	sub := &model.ContactSubmission{
		ID:          uuid.NewString(),
		Name:        name,
		Email:       email,
		Subject:     subject,
		Message:     message,
		SubmittedAt: time.Now().UTC(),
		Status:      model.StatusNew,
	}
	if err := s.repo.Create(ctx, sub); err != nil {
		return nil, err
	}
	return sub, nil
}

// UpdateStatus changes the status of a submission. The new value is free-form
// but must be non-empty.
func (s *submissionServiceImpl) UpdateStatus(ctx context.Context, id, status string) error {
	status = strings.TrimSpace(status)
	if status == "" {
		return &ValidationError{Field: "status", Reason: "is required"}
	}
	return s.repo.UpdateStatus(ctx, id, status)
}

// List returns submissions most recent first, truncated to limit.
func (s *submissionServiceImpl) List(ctx context.Context, limit int) ([]*model.ContactSubmission, error) {
	if limit <= 0 {
		limit = DefaultListLimit
	}
	return s.repo.List(ctx, limit)
}
