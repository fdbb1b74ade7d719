package email

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"html/template"
	"net/smtp"
	"strings"

	"go-portfolio-backend/config"
	"go-portfolio-backend/internal/domain"
)

// SendFunc matches smtp.SendMail. It is a field on the service so tests can
// intercept delivery without a live SMTP server.
type SendFunc func(addr string, a smtp.Auth, from string, to []string, msg []byte) error

// EmailService delivers contact form notifications via SMTP. One dispatch
// sends two emails: an alert to the site owner and an acknowledgment back to
// the sender. Dispatch only succeeds when both are delivered.
type EmailService struct {
	host       string
	port       string
	username   string
	password   string
	fromEmail  string
	ownerEmail string
	ownerName  string
	send       SendFunc
}

// NewEmailService creates a new email service with Brevo SMTP configuration
func NewEmailService(cfg *config.Config) *EmailService {
	return &EmailService{
		host:       cfg.SMTPHost,
		port:       cfg.SMTPPort,
		username:   cfg.SMTPUsername,
		password:   cfg.SMTPPassword,
		fromEmail:  cfg.SMTPFromEmail,
		ownerEmail: cfg.ContactEmailTo,
		ownerName:  cfg.OwnerName,
		send:       smtp.SendMail,
	}
}

// ownerAlertTemplate is the HTML body of the alert sent to the site owner.
const ownerAlertTemplate = `<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <title>New Contact Form Submission</title>
    <style>
        body { font-family: Arial, sans-serif; line-height: 1.6; color: #333; }
        .container { max-width: 600px; margin: 0 auto; padding: 20px; }
        .header { background: #2c3e50; color: white; padding: 20px; text-align: center; }
        .content { padding: 20px; background: #f9f9f9; }
        .field { margin-bottom: 15px; }
        .label { font-weight: bold; color: #555; }
        .value { margin-top: 5px; }
        .message-box { background: white; padding: 15px; border-left: 4px solid #3498db; margin-top: 10px; }
        .footer { text-align: center; padding: 20px; color: #888; font-size: 12px; }
    </style>
</head>
<body>
    <div class="container">
        <div class="header">
            <h1>New Contact Form Submission</h1>
            <p>{{.Timestamp}}</p>
        </div>
        <div class="content">
            <div class="field">
                <div class="label">Name:</div>
                <div class="value">{{.Name}}</div>
            </div>
            <div class="field">
                <div class="label">Email:</div>
                <div class="value"><a href="mailto:{{.Email}}">{{.Email}}</a></div>
            </div>
            <div class="field">
                <div class="label">Message:</div>
                <div class="message-box">{{range .MessageLines}}{{.}}<br>{{end}}</div>
            </div>
        </div>
        <div class="footer">
            <p>This message was sent via your website contact form.</p>
        </div>
    </div>
</body>
</html>`

// senderAckTemplate is the HTML body of the acknowledgment sent back to the
// visitor. It echoes their message and is explicitly marked automated.
const senderAckTemplate = `<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <title>Thank You for Your Message</title>
    <style>
        body { font-family: Arial, sans-serif; line-height: 1.6; color: #333; }
        .container { max-width: 600px; margin: 0 auto; padding: 20px; }
        .header { background: #3498db; color: white; padding: 20px; text-align: center; }
        .content { padding: 20px; background: #f9f9f9; }
        .summary { background: white; padding: 15px; border-radius: 4px; margin-bottom: 15px; }
        .message-box { background: white; padding: 15px; border-left: 4px solid #3498db; margin-top: 10px; }
        .footer { text-align: center; padding: 20px; color: #888; font-size: 12px; }
    </style>
</head>
<body>
    <div class="container">
        <div class="header">
            <h1>Thank You, {{.Name}}!</h1>
            <p>Your message has been received and will be answered soon.</p>
        </div>
        <div class="content">
            <div class="summary">
                <p><strong>Sent:</strong> {{.Timestamp}}</p>
                <p><strong>From:</strong> {{.Email}}</p>
            </div>
            <div class="message-box">{{range .MessageLines}}{{.}}<br>{{end}}</div>
        </div>
        <div class="footer">
            <p>This is an automated confirmation from {{.OwnerName}}. Please do not reply to this email.</p>
        </div>
    </div>
</body>
</html>`

var (
	ownerAlertTmpl = template.Must(template.New("owner_alert").Parse(ownerAlertTemplate))
	senderAckTmpl  = template.Must(template.New("sender_ack").Parse(senderAckTemplate))
)

// notificationData feeds both templates.
type notificationData struct {
	Name         string
	Email        string
	Timestamp    string
	OwnerName    string
	MessageLines []string
}

// Dispatch sends the owner alert and the sender acknowledgment for a stored
// submission. Both sends are always attempted; the returned error says which
// one failed so partial delivery can be logged distinctly from total failure.
func (s *EmailService) Dispatch(ctx context.Context, sub *domain.Submission) error {
	if !s.IsConfigured() {
		return errors.New("email service is not configured")
	}

	data := notificationData{
		Name:      sub.Name,
		Email:     sub.Email,
		Timestamp: sub.CreatedAt.Format("Monday, January 2, 2006 at 3:04 PM MST"),
		OwnerName: s.ownerName,
		// Split so the template can re-insert <br> tags; html/template
		// escapes the lines themselves.
		MessageLines: strings.Split(sub.Message, "\n"),
	}

	alertErr := s.sendOwnerAlert(data)
	ackErr := s.sendAcknowledgment(data)

	switch {
	case alertErr == nil && ackErr == nil:
		return nil
	case alertErr != nil && ackErr != nil:
		return fmt.Errorf("both notification emails failed: %w", errors.Join(alertErr, ackErr))
	case alertErr != nil:
		return fmt.Errorf("owner alert failed, acknowledgment was delivered: %w", alertErr)
	default:
		return fmt.Errorf("acknowledgment failed, owner alert was delivered: %w", ackErr)
	}
}

func (s *EmailService) sendOwnerAlert(data notificationData) error {
	var body bytes.Buffer
	if err := ownerAlertTmpl.Execute(&body, data); err != nil {
		return fmt.Errorf("failed to execute owner alert template: %w", err)
	}

	msg := buildMessage(
		fmt.Sprintf("\"Contact Form\" <%s>", s.fromEmail),
		s.ownerEmail,
		data.Email, // Reply-To the visitor so the owner can answer directly
		fmt.Sprintf("New Contact Submission: %s", data.Name),
		body.String(),
	)

	return s.deliver(s.ownerEmail, msg)
}

func (s *EmailService) sendAcknowledgment(data notificationData) error {
	var body bytes.Buffer
	if err := senderAckTmpl.Execute(&body, data); err != nil {
		return fmt.Errorf("failed to execute acknowledgment template: %w", err)
	}

	msg := buildMessage(
		fmt.Sprintf("\"%s\" <%s>", s.ownerName, s.fromEmail),
		data.Email,
		"", // no Reply-To, the acknowledgment is a no-reply message
		fmt.Sprintf("Thank you for reaching out, %s", data.Name),
		body.String(),
	)

	return s.deliver(data.Email, msg)
}

func (s *EmailService) deliver(to string, msg []byte) error {
	auth := smtp.PlainAuth("", s.username, s.password, s.host)
	addr := fmt.Sprintf("%s:%s", s.host, s.port)
	if err := s.send(addr, auth, s.fromEmail, []string{to}, msg); err != nil {
		return fmt.Errorf("failed to send email to %s: %w", to, err)
	}
	return nil
}

// sanitizeHeader flattens CR/LF in a header value. Header values carry
// visitor-supplied input (the name feeds the subject line), and net/smtp
// writes the DATA block raw, so an embedded newline would smuggle extra
// headers into the message.
func sanitizeHeader(v string) string {
	v = strings.ReplaceAll(v, "\r", " ")
	v = strings.ReplaceAll(v, "\n", " ")
	return v
}

// buildMessage constructs a MIME message with an HTML body.
func buildMessage(from, to, replyTo, subject, body string) []byte {
	var b strings.Builder
	fmt.Fprintf(&b, "From: %s\r\n", sanitizeHeader(from))
	fmt.Fprintf(&b, "To: %s\r\n", sanitizeHeader(to))
	if replyTo != "" {
		fmt.Fprintf(&b, "Reply-To: %s\r\n", sanitizeHeader(replyTo))
	}
	fmt.Fprintf(&b, "Subject: %s\r\n", sanitizeHeader(subject))
	b.WriteString("MIME-Version: 1.0\r\n")
	b.WriteString("Content-Type: text/html; charset=UTF-8\r\n")
	b.WriteString("\r\n")
	b.WriteString(body)
	return []byte(b.String())
}

// IsConfigured checks if the email service has valid SMTP configuration
func (s *EmailService) IsConfigured() bool {
	return s.host != "" && s.username != "" && s.password != "" &&
		s.fromEmail != "" && s.ownerEmail != ""
}
