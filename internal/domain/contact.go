package domain

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// ContactMessage is a contact form submission as received from the frontend.
// Field rules mirror the inline validation the SPA performs, so a visitor
// with JavaScript disabled gets the same errors the form would have shown.
type ContactMessage struct {
	Name    string `json:"name" validate:"required,min=2"`
	Email   string `json:"email" validate:"required,contact_email"`
	Message string `json:"message" validate:"required,min=10"`
}

// SubmissionStatus tracks whether the owner has seen a submission.
// It starts as unread and is only ever flipped by the admin inbox.
type SubmissionStatus string

const (
	StatusUnread SubmissionStatus = "unread"
	StatusRead   SubmissionStatus = "read"
)

// Submission is a persisted contact message. CreatedAt is assigned by the
// database at insert time, never by the client, and is immutable afterwards.
type Submission struct {
	ID        uuid.UUID        `json:"id"`
	Name      string           `json:"name"`
	Email     string           `json:"email"`
	Message   string           `json:"message"`
	Status    SubmissionStatus `json:"status"`
	CreatedAt time.Time        `json:"created_at"`
}

// OutcomeKind discriminates the variants of a SubmissionOutcome.
type OutcomeKind string

const (
	// OutcomeSuccess: message stored and both notification emails sent.
	OutcomeSuccess OutcomeKind = "success"
	// OutcomeValidationFailure: one or more fields rejected; nothing stored.
	OutcomeValidationFailure OutcomeKind = "validation_failure"
	// OutcomeDispatchFailure: storage or email delivery failed. The message
	// may still have been stored (see ContactUsecase.Submit).
	OutcomeDispatchFailure OutcomeKind = "dispatch_failure"
)

// SubmissionOutcome is the single aggregated result of a submission attempt.
// Exactly one variant is populated per call.
type SubmissionOutcome struct {
	Kind        OutcomeKind       `json:"kind"`
	FieldErrors map[string]string `json:"field_errors,omitempty"` // validation failures, keyed by JSON field name
	Reason      string            `json:"reason,omitempty"`       // human-readable dispatch failure reason
}

func SuccessOutcome() SubmissionOutcome {
	return SubmissionOutcome{Kind: OutcomeSuccess}
}

func ValidationFailureOutcome(fieldErrors map[string]string) SubmissionOutcome {
	return SubmissionOutcome{Kind: OutcomeValidationFailure, FieldErrors: fieldErrors}
}

func DispatchFailureOutcome(reason string) SubmissionOutcome {
	return SubmissionOutcome{Kind: OutcomeDispatchFailure, Reason: reason}
}

// SubmissionRepository persists contact submissions.
type SubmissionRepository interface {
	// Append stores a validated message as a single new row with a
	// server-assigned timestamp and status=unread. It never updates an
	// existing row.
	Append(ctx context.Context, msg *ContactMessage) (*Submission, error)

	// Fetch returns submissions newest first, plus the total row count.
	Fetch(ctx context.Context, limit, offset int) ([]Submission, int64, error)

	// MarkRead flips a submission from unread to read.
	MarkRead(ctx context.Context, id uuid.UUID) error

	// CountByStatus returns the number of submissions with the given status.
	CountByStatus(ctx context.Context, status SubmissionStatus) (int64, error)
}

// Notifier delivers the notification emails for a stored submission: an
// alert to the site owner and an acknowledgment to the sender. Delivery is
// only complete when both succeed.
type Notifier interface {
	Dispatch(ctx context.Context, sub *Submission) error
}

// ContactUsecase defines the interface for contact form operations
type ContactUsecase interface {
	// Submit runs the full pipeline: validate, store, notify. It never
	// returns an error; every failure mode is folded into the outcome.
	// A stored message is kept even when notification fails afterwards, so
	// retries after a notify failure produce duplicate rows by design.
	Submit(ctx context.Context, msg *ContactMessage) SubmissionOutcome
}
