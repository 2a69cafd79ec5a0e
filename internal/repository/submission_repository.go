package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/viraj5503/portfolio-api/internal/model"
)

// SubmissionRepository defines the persistence interface for contact-form
// submissions. It is defined here (in repository) to avoid an import cycle
// with service.
type SubmissionRepository interface {
	Create(ctx context.Context, sub *model.ContactSubmission) error
	UpdateStatus(ctx context.Context, id, status string) error
	List(ctx context.Context, limit int) ([]*model.ContactSubmission, error)
}

// PgSubmissionRepository is the PostgreSQL implementation of
// SubmissionRepository.
type PgSubmissionRepository struct {
	pool *pgxpool.Pool
}

// NewPgSubmissionRepository creates a PgSubmissionRepository backed by the
// given pool.
func NewPgSubmissionRepository(pool *pgxpool.Pool) *PgSubmissionRepository {
	return &PgSubmissionRepository{pool: pool}
}

// Ensure PgSubmissionRepository implements both interfaces at compile time.
var (
	_ SubmissionRepository = (*PgSubmissionRepository)(nil)
	_ DB                   = (*PgSubmissionRepository)(nil)
)

// Ping verifies database connectivity (DB interface implementation).
func (r *PgSubmissionRepository) Ping(ctx context.Context) error {
	return r.pool.Ping(ctx)
}

// Create inserts a new contact_submissions row as a single atomic write.
// All fields, including id, timestamp and status, are assigned by the service
// before the insert — nothing here is taken from caller input directly.
func (r *PgSubmissionRepository) Create(ctx context.Context, sub *model.ContactSubmission) error {
	_, err := r.pool.Exec(ctx,
		`INSERT INTO contact_submissions (id, name, email, subject, message, submitted_at, status)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		sub.ID, sub.Name, sub.Email, sub.Subject, sub.Message, sub.SubmittedAt, sub.Status)
	return err
}

// UpdateStatus sets the status of the submission with the given id.
// Last writer wins; returns ErrNotFound when no row matched the id.
func (r *PgSubmissionRepository) UpdateStatus(ctx context.Context, id, status string) error {
	tag, err := r.pool.Exec(ctx,
		`UPDATE contact_submissions SET status = $2 WHERE id = $1`, id, status)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// List returns up to limit submissions, most recently submitted first.
// The id tiebreak keeps the order deterministic when two rows share a
// timestamp.
func (r *PgSubmissionRepository) List(ctx context.Context, limit int) ([]*model.ContactSubmission, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, name, email, subject, message, submitted_at, status
		 FROM contact_submissions
		 ORDER BY submitted_at DESC, id
		 LIMIT $1`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var subs []*model.ContactSubmission
	for rows.Next() {
		var s model.ContactSubmission
		if err := rows.Scan(&s.ID, &s.Name, &s.Email, &s.Subject, &s.Message, &s.SubmittedAt, &s.Status); err != nil {
			return nil, err
		}
		subs = append(subs, &s)
	}
	return subs, rows.Err()
}
