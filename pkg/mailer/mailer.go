// Package mailer delivers transactional email. Production traffic goes to
// SendGrid; without an API key every message is written to the log instead.
package mailer

import (
	"context"
	"errors"

	"yatri-auth/pkg/utils"

	"go.uber.org/zap"
)

// ErrNotAccepted is returned when the provider answered but did not accept the message.
var ErrNotAccepted = errors.New("mailer: message not accepted by provider")

// Message is a single outbound email.
type Message struct {
	To      string
	Subject string
	HTML    string
	Text    string
}

// Sender delivers a Message. A nil error means the provider accepted it.
type Sender interface {
	Send(ctx context.Context, msg Message) error
}

// New returns a SendGrid sender when an API key is configured, otherwise a
// LogSender.
func New(cfg utils.EmailConfig, log *zap.Logger) Sender {
	if cfg.SendGridAPIKey == "" {
		log.Warn("SENDGRID_API_KEY not set, OTP emails are written to the log only")
		return NewLogSender(log)
	}
	return NewSendGridSender(cfg, log)
}
