package postgres

import (
	"context"
	"go-portfolio-backend/internal/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type submissionRepo struct {
	db *pgxpool.Pool
}

func NewSubmissionRepository(db *pgxpool.Pool) domain.SubmissionRepository {
	return &submissionRepo{db: db}
}

// Append writes a validated message as one new row. The timestamp comes from
// the database (column default now()) so a client cannot spoof it, and the
// single INSERT keeps each append atomic under concurrent submissions.
func (r *submissionRepo) Append(ctx context.Context, msg *domain.ContactMessage) (*domain.Submission, error) {
	sub := &domain.Submission{
		ID:      uuid.New(),
		Name:    msg.Name,
		Email:   msg.Email,
		Message: msg.Message,
		Status:  domain.StatusUnread,
	}

	query := `INSERT INTO contact_submissions (id, name, email, message, status)
              VALUES ($1, $2, $3, $4, $5) RETURNING created_at`
	err := r.db.QueryRow(ctx, query,
		sub.ID, sub.Name, sub.Email, sub.Message, sub.Status,
	).Scan(&sub.CreatedAt)
	if err != nil {
		return nil, err
	}
	return sub, nil
}

func (r *submissionRepo) Fetch(ctx context.Context, limit, offset int) ([]domain.Submission, int64, error) {
	query := `SELECT id, name, email, message, status, created_at FROM contact_submissions
              ORDER BY created_at DESC LIMIT $1 OFFSET $2`

	rows, err := r.db.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var subs []domain.Submission
	for rows.Next() {
		var sub domain.Submission
		if err := rows.Scan(&sub.ID, &sub.Name, &sub.Email, &sub.Message, &sub.Status, &sub.CreatedAt); err != nil {
			return nil, 0, err
		}
		subs = append(subs, sub)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	var total int64
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM contact_submissions`).Scan(&total); err != nil {
		return nil, 0, err
	}

	return subs, total, nil
}

// MarkRead is the moderation action: the only mutation ever applied to a
// stored submission. The record itself (fields, timestamp) stays untouched.
func (r *submissionRepo) MarkRead(ctx context.Context, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx,
		`UPDATE contact_submissions SET status = $1 WHERE id = $2`,
		domain.StatusRead, id,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *submissionRepo) CountByStatus(ctx context.Context, status domain.SubmissionStatus) (int64, error) {
	var count int64
	err := r.db.QueryRow(ctx,
		`SELECT COUNT(*) FROM contact_submissions WHERE status = $1`, status,
	).Scan(&count)
	return count, err
}
