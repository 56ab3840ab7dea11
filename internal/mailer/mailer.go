// Package mailer delivers rendered reports over SMTP. It is the only place
// email transport appears; the rest of the system sees the narrow Sender
// interface and a success-or-failure outcome.
package mailer

import (
	"context"
	"fmt"
	"log/slog"

	gomail "github.com/wneessen/go-mail"
)

// Sender delivers a rendered report to a destination address.
type Sender interface {
	SendReport(ctx context.Context, to, subject string, document []byte) error
}

// Config holds SMTP settings. An empty Host disables delivery; the service
// still computes, stores, and renders results without a mail server.
type Config struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
}

// SMTPSender is the production Sender.
type SMTPSender struct {
	config Config
}

// NewSMTPSender creates a sender from config. It does not dial; connection
// failures surface per send so one bad delivery never poisons the service.
func NewSMTPSender(config Config) *SMTPSender {
	if config.Host == "" {
		slog.Warn("SMTP host not configured, report email delivery disabled")
	}
	if config.Port == 0 {
		config.Port = 587
	}
	return &SMTPSender{config: config}
}

// Enabled reports whether delivery is configured.
func (s *SMTPSender) Enabled() bool {
	return s.config.Host != ""
}

// SendReport emails the rendered document as an HTML body.
func (s *SMTPSender) SendReport(ctx context.Context, to, subject string, document []byte) error {
	if !s.Enabled() {
		return fmt.Errorf("mail delivery is not configured")
	}

	msg := gomail.NewMsg()
	if err := msg.From(s.config.From); err != nil {
		return fmt.Errorf("invalid from address: %w", err)
	}
	if err := msg.To(to); err != nil {
		return fmt.Errorf("invalid destination address: %w", err)
	}
	msg.Subject(subject)
	msg.SetBodyString(gomail.TypeTextHTML, string(document))

	client, err := gomail.NewClient(s.config.Host,
		gomail.WithPort(s.config.Port),
		gomail.WithSMTPAuth(gomail.SMTPAuthPlain),
		gomail.WithUsername(s.config.Username),
		gomail.WithPassword(s.config.Password),
	)
	if err != nil {
		return fmt.Errorf("failed to create mail client: %w", err)
	}

	if err := client.DialAndSendWithContext(ctx, msg); err != nil {
		return fmt.Errorf("failed to send report: %w", err)
	}

	slog.Info("Report email sent", "to", to)
	return nil
}
