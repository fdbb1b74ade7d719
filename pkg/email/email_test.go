package email

import (
	"context"
	"errors"
	"net/smtp"
	"strings"
	"testing"
	"time"

	"go-portfolio-backend/config"
	"go-portfolio-backend/internal/domain"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

type capturedSend struct {
	to  []string
	msg string
}

// newTestService returns a configured service whose send function records
// deliveries and fails for any recipient listed in failFor.
func newTestService(sent *[]capturedSend, failFor map[string]error) *EmailService {
	svc := NewEmailService(&config.Config{
		SMTPHost:       "smtp.example.com",
		SMTPPort:       "587",
		SMTPUsername:   "login@example.com",
		SMTPPassword:   "secret",
		SMTPFromEmail:  "noreply@example.com",
		OwnerName:      "Jane Owner",
		ContactEmailTo: "owner@example.com",
	})
	svc.send = func(addr string, a smtp.Auth, from string, to []string, msg []byte) error {
		*sent = append(*sent, capturedSend{to: to, msg: string(msg)})
		for _, rcpt := range to {
			if err, ok := failFor[rcpt]; ok {
				return err
			}
		}
		return nil
	}
	return svc
}

func testSubmission() *domain.Submission {
	return &domain.Submission{
		ID:        uuid.New(),
		Name:      "Jane Doe",
		Email:     "jane@example.com",
		Message:   "I would like to discuss a project.\nSecond line here.",
		Status:    domain.StatusUnread,
		CreatedAt: time.Date(2025, time.January, 6, 15, 4, 0, 0, time.UTC),
	}
}

func TestDispatchSendsBothEmails(t *testing.T) {
	var sent []capturedSend
	svc := newTestService(&sent, nil)

	err := svc.Dispatch(context.Background(), testSubmission())
	assert.NoError(t, err)
	assert.Len(t, sent, 2)

	alert := sent[0]
	assert.Equal(t, []string{"owner@example.com"}, alert.to)
	assert.Contains(t, alert.msg, "Reply-To: jane@example.com")
	assert.Contains(t, alert.msg, "Subject: New Contact Submission: Jane Doe")
	assert.Contains(t, alert.msg, "mailto:jane@example.com")
	assert.Contains(t, alert.msg, "Monday, January 6, 2025 at 3:04 PM UTC")

	ack := sent[1]
	assert.Equal(t, []string{"jane@example.com"}, ack.to)
	assert.Contains(t, ack.msg, "Subject: Thank you for reaching out, Jane Doe")
	assert.Contains(t, ack.msg, "do not reply")
	assert.Contains(t, ack.msg, "Jane Owner")
	assert.NotContains(t, ack.msg, "Reply-To:")
}

func TestDispatchPreservesLineBreaks(t *testing.T) {
	var sent []capturedSend
	svc := newTestService(&sent, nil)

	err := svc.Dispatch(context.Background(), testSubmission())
	assert.NoError(t, err)
	assert.Len(t, sent, 2)

	for _, s := range sent {
		assert.Contains(t, s.msg, "I would like to discuss a project.<br>Second line here.<br>")
	}
}

func TestDispatchFlattensNewlinesInHeaderValues(t *testing.T) {
	var sent []capturedSend
	svc := newTestService(&sent, nil)

	sub := testSubmission()
	sub.Name = "Eve\r\nBcc: victim@example.com"

	err := svc.Dispatch(context.Background(), sub)
	assert.NoError(t, err)
	assert.Len(t, sent, 2)

	for _, s := range sent {
		// The name must not be able to smuggle extra headers into the
		// header block of either message: the injected text may survive
		// inside the subject, but never as a header line of its own.
		headers, _, found := strings.Cut(s.msg, "\r\n\r\n")
		assert.True(t, found)
		for _, line := range strings.Split(headers, "\r\n") {
			assert.False(t, strings.HasPrefix(line, "Bcc:"), "injected header line: %q", line)
		}
	}
	// The flattened name stays on the subject line.
	assert.Contains(t, sent[0].msg, "Subject: New Contact Submission: Eve  Bcc: victim@example.com\r\n")
}

func TestDispatchOwnerAlertFailureStillAttemptsAck(t *testing.T) {
	var sent []capturedSend
	svc := newTestService(&sent, map[string]error{
		"owner@example.com": errors.New("mailbox unavailable"),
	})

	err := svc.Dispatch(context.Background(), testSubmission())
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "owner alert failed, acknowledgment was delivered")
	// Both sends must be attempted even when the first fails.
	assert.Len(t, sent, 2)
}

func TestDispatchAckFailureReportsError(t *testing.T) {
	var sent []capturedSend
	svc := newTestService(&sent, map[string]error{
		"jane@example.com": errors.New("rate limited"),
	})

	err := svc.Dispatch(context.Background(), testSubmission())
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "acknowledgment failed, owner alert was delivered")
	assert.Len(t, sent, 2)
}

func TestDispatchBothFail(t *testing.T) {
	var sent []capturedSend
	svc := newTestService(&sent, map[string]error{
		"owner@example.com": errors.New("auth failed"),
		"jane@example.com":  errors.New("auth failed"),
	})

	err := svc.Dispatch(context.Background(), testSubmission())
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "both notification emails failed")
}

func TestDispatchNotConfigured(t *testing.T) {
	var sent []capturedSend
	svc := newTestService(&sent, nil)
	svc.password = ""

	err := svc.Dispatch(context.Background(), testSubmission())
	assert.Error(t, err)
	assert.Empty(t, sent)
}
