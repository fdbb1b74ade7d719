package domain

import (
	"context"

	"github.com/google/uuid"
)

// InboxStats summarizes the submission inbox for the admin dashboard.
type InboxStats struct {
	Total  int64 `json:"total"`
	Unread int64 `json:"unread"`
	Read   int64 `json:"read"`
}

// AdminUsecase defines the interface for inbox moderation. These are the
// only operations that mutate a stored submission, and the only mutation
// they perform is the unread -> read status flip.
type AdminUsecase interface {
	// Login verifies the admin password and returns a signed session token.
	Login(ctx context.Context, password string) (string, error)

	ListSubmissions(ctx context.Context, limit, offset int) ([]Submission, int64, error)
	MarkSubmissionRead(ctx context.Context, id uuid.UUID) error
	Stats(ctx context.Context) (*InboxStats, error)
}
