package model

import "time"

// StatusNew is the status every submission carries when it is first stored.
// Operators may later assign any free-form value via the status endpoint.
const StatusNew = "new"

// ContactSubmission is a persisted contact-form entry. ID, SubmittedAt and
// Status are always server-assigned; the caller only supplies the four
// form fields.
type ContactSubmission struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Email       string    `json:"email"`
	Subject     string    `json:"subject"`
	Message     string    `json:"message"`
	SubmittedAt time.Time `json:"submitted_at"`
	Status      string    `json:"status"`
}
