package email

import (
	"context"
	"fmt"
	"html"
	"time"

	"gopkg.in/gomail.v2"

	"github.com/orris-inc/helpdesk/internal/shared/config"
)

// sender is the part of *gomail.Dialer used for delivery.
type sender interface {
	DialAndSend(m ...*gomail.Message) error
}

type SMTPEmailService struct {
	fromAddress string
	fromName    string
	timeout     time.Duration
	sender      sender
}

func NewSMTPEmailService(cfg *config.EmailConfig) *SMTPEmailService {
	dialer := gomail.NewDialer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPassword)

	return &SMTPEmailService{
		fromAddress: cfg.FromAddress,
		fromName:    cfg.FromName,
		timeout:     cfg.SendTimeout(),
		sender:      dialer,
	}
}

func (s *SMTPEmailService) SendStatusChanged(ctx context.Context, to string, ticketID uint, subject, from, status string) error {
	mailSubject := fmt.Sprintf("[Ticket #%d] Status changed to %s", ticketID, status)

	htmlBody := fmt.Sprintf(`
		<html>
		<body>
			<h2>Your ticket was updated</h2>
			<p><strong>%s</strong></p>
			<p>Status: %s &rarr; <strong>%s</strong></p>
		</body>
		</html>
	`, html.EscapeString(subject), from, status)

	plainBody := fmt.Sprintf(`
Your ticket was updated

%s

Status: %s -> %s
	`, subject, from, status)

	return s.sendEmail(ctx, to, mailSubject, htmlBody, plainBody)
}

func (s *SMTPEmailService) SendAdminReply(ctx context.Context, to string, ticketID uint, subject, message string) error {
	mailSubject := fmt.Sprintf("[Ticket #%d] New reply from support", ticketID)

	htmlBody := fmt.Sprintf(`
		<html>
		<body>
			<h2>Support replied to your ticket</h2>
			<p><strong>%s</strong></p>
			<blockquote>%s</blockquote>
		</body>
		</html>
	`, html.EscapeString(subject), html.EscapeString(message))

	plainBody := fmt.Sprintf(`
Support replied to your ticket

%s

%s
	`, subject, message)

	return s.sendEmail(ctx, to, mailSubject, htmlBody, plainBody)
}

// sendEmail gives up after the configured timeout. The SMTP session itself
// cannot be interrupted, so it finishes in the background.
func (s *SMTPEmailService) sendEmail(ctx context.Context, to, subject, htmlBody, plainBody string) error {
	m := gomail.NewMessage()
	m.SetAddressHeader("From", s.fromAddress, s.fromName)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/plain", plainBody)
	m.AddAlternative("text/html", htmlBody)

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	done := make(chan error, 1)
	go func() {
		done <- s.sender.DialAndSend(m)
	}()

	select {
	case err := <-done:
		if err != nil {
			return fmt.Errorf("failed to send email: %w", err)
		}
		return nil
	case <-ctx.Done():
		return fmt.Errorf("failed to send email: %w", ctx.Err())
	}
}

// NoopEmailService drops every message. It is used when no SMTP host is set.
type NoopEmailService struct{}

func (NoopEmailService) SendStatusChanged(context.Context, string, uint, string, string, string) error {
	return nil
}

func (NoopEmailService) SendAdminReply(context.Context, string, uint, string, string) error {
	return nil
}
