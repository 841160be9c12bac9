package mailer

import (
	"context"

	"go.uber.org/zap"
)

// LogSender is the development bypass: it never fails and writes the
// plain-text body to the log.
type LogSender struct {
	log *zap.Logger
}

func NewLogSender(log *zap.Logger) *LogSender {
	return &LogSender{log: log.With(zap.String("mailer", "log"))}
}

func (s *LogSender) Send(_ context.Context, msg Message) error {
	s.log.Info("Email not sent, provider not configured",
		zap.String("to", msg.To),
		zap.String("subject", msg.Subject),
		zap.String("body", msg.Text),
	)
	return nil
}
