package usecase

import (
	"context"
	"strings"

	"go-portfolio-backend/internal/domain"
	"go-portfolio-backend/pkg/logger"
	"go-portfolio-backend/pkg/validation"

	"github.com/go-playground/validator/v10"
)

// User-facing dispatch failure reasons. Store and notify failures share one
// "could not send" category from the UI's point of view, but the reasons
// stay distinct so logs and tests can tell them apart. Raw errors never
// appear here.
const (
	reasonStoreFailed  = "Your message could not be saved. Please try again later."
	reasonNotifyFailed = "Your message was received but the notification email could not be sent."
)

type contactUsecase struct {
	repo     domain.SubmissionRepository
	notifier domain.Notifier
	validate *validator.Validate
}

// NewContactUsecase creates a new contact usecase
func NewContactUsecase(repo domain.SubmissionRepository, notifier domain.Notifier, validate *validator.Validate) domain.ContactUsecase {
	return &contactUsecase{
		repo:     repo,
		notifier: notifier,
		validate: validate,
	}
}

// Submit runs validation, persistence and notification in order, short-
// circuiting on the first failure. A message is never stored or dispatched
// unless every field passed validation. A stored message is never rolled
// back when notification fails; the failure is surfaced so the visitor can
// retry, and a retry simply appends another row.
func (uc *contactUsecase) Submit(ctx context.Context, msg *domain.ContactMessage) domain.SubmissionOutcome {
	// Stored and notified values are the trimmed ones.
	msg.Name = strings.TrimSpace(msg.Name)
	msg.Email = strings.TrimSpace(msg.Email)
	msg.Message = strings.TrimSpace(msg.Message)

	if fieldErrors := validation.ContactFieldErrors(uc.validate.Struct(msg)); len(fieldErrors) > 0 {
		// User-correctable, not a system fault: no log entry.
		return domain.ValidationFailureOutcome(fieldErrors)
	}

	sub, err := uc.repo.Append(ctx, msg)
	if err != nil {
		logger.Log.Error("contact submission store failed", "error", err)
		return domain.DispatchFailureOutcome(reasonStoreFailed)
	}

	if err := uc.notifier.Dispatch(ctx, sub); err != nil {
		// The submission stays persisted; the owner can still find it in
		// the inbox even though no email went out.
		logger.Log.Error("contact notification dispatch failed",
			"submission_id", sub.ID, "error", err)
		return domain.DispatchFailureOutcome(reasonNotifyFailed)
	}

	logger.Log.Info("contact submission processed",
		"submission_id", sub.ID, "sender", sub.Email)
	return domain.SuccessOutcome()
}
