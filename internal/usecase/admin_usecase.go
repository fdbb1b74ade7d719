package usecase

import (
	"context"
	"errors"

	"go-portfolio-backend/internal/domain"
	"go-portfolio-backend/pkg/auth"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

var ErrInvalidCredentials = errors.New("invalid credentials")

type adminUsecase struct {
	repo         domain.SubmissionRepository
	passwordHash string
	tokens       *auth.TokenIssuer
}

// NewAdminUsecase creates a new admin usecase
func NewAdminUsecase(repo domain.SubmissionRepository, passwordHash string, tokens *auth.TokenIssuer) domain.AdminUsecase {
	return &adminUsecase{
		repo:         repo,
		passwordHash: passwordHash,
		tokens:       tokens,
	}
}

func (uc *adminUsecase) Login(ctx context.Context, password string) (string, error) {
	if uc.passwordHash == "" {
		return "", errors.New("admin access is not configured")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(uc.passwordHash), []byte(password)); err != nil {
		return "", ErrInvalidCredentials
	}
	return uc.tokens.Sign()
}

func (uc *adminUsecase) ListSubmissions(ctx context.Context, limit, offset int) ([]domain.Submission, int64, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}
	return uc.repo.Fetch(ctx, limit, offset)
}

func (uc *adminUsecase) MarkSubmissionRead(ctx context.Context, id uuid.UUID) error {
	return uc.repo.MarkRead(ctx, id)
}

func (uc *adminUsecase) Stats(ctx context.Context) (*domain.InboxStats, error) {
	unread, err := uc.repo.CountByStatus(ctx, domain.StatusUnread)
	if err != nil {
		return nil, err
	}
	read, err := uc.repo.CountByStatus(ctx, domain.StatusRead)
	if err != nil {
		return nil, err
	}
	return &domain.InboxStats{
		Total:  unread + read,
		Unread: unread,
		Read:   read,
	}, nil
}
