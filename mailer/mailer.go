// Package mailer delivers transactional email through SendGrid.
package mailer

import (
	"context"
	"fmt"

	"github.com/sendgrid/rest"
	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
	"go.uber.org/zap"

	"github.com/youpower/youpower-api/config"
)

const fromName = "YouPower"

// Mailer sends a single email
type Mailer interface {
	Send(ctx context.Context, toName, toEmail, subject, plainText, htmlContent string) error
}

// sender is the part of the SendGrid client the mailer depends on
type sender interface {
	SendWithContext(ctx context.Context, email *mail.SGMailV3) (*rest.Response, error)
}

// SendGrid is a Mailer backed by the SendGrid v3 API
type SendGrid struct {
	client sender
	from   *mail.Email
}

// New returns a SendGrid mailer, or a Noop mailer when no API key is configured
func New(conf *config.Config) Mailer {
	if conf.SendGridAPIKey == "" {
		zap.S().Warn("SENDGRID_API_KEY not set, emails will only be logged")
		return Noop{}
	}
	return &SendGrid{
		client: sendgrid.NewSendClient(conf.SendGridAPIKey),
		from:   mail.NewEmail(fromName, conf.SendGridFromEmail),
	}
}

// Send sends an email using SendGrid
func (s *SendGrid) Send(ctx context.Context, toName, toEmail, subject, plainText, htmlContent string) error {
	to := mail.NewEmail(toName, toEmail)
	message := mail.NewSingleEmail(s.from, subject, to, plainText, htmlContent)
	response, err := s.client.SendWithContext(ctx, message)
	if err != nil {
		zap.S().Errorw("failed to send email", "error", err, "to", toEmail)
		return err
	}
	if response.StatusCode >= 400 {
		zap.S().Errorw("sendgrid returned error status", "status", response.StatusCode, "body", response.Body, "to", toEmail)
		return fmt.Errorf("sendgrid error: status %d", response.StatusCode)
	}
	zap.S().Infow("email sent successfully", "to", toEmail, "subject", subject)
	return nil
}

// Noop logs emails instead of sending them
type Noop struct{}

// Send logs the email
func (Noop) Send(_ context.Context, _, toEmail, subject, _, _ string) error {
	zap.S().Infow("email not sent, mailer disabled", "to", toEmail, "subject", subject)
	return nil
}
