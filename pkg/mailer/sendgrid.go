package mailer

import (
	"context"
	"fmt"
	"net/http"

	"yatri-auth/pkg/utils"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
	"go.uber.org/zap"
)

const sendEndpoint = "/v3/mail/send"

// SendGridSender posts messages to the SendGrid v3 API. It does not retry.
type SendGridSender struct {
	apiKey string
	host   string
	from   *mail.Email
	log    *zap.Logger
}

func NewSendGridSender(cfg utils.EmailConfig, log *zap.Logger) *SendGridSender {
	host := cfg.SendGridHost
	if host == "" {
		host = "https://api.sendgrid.com"
	}

	return &SendGridSender{
		apiKey: cfg.SendGridAPIKey,
		host:   host,
		from:   mail.NewEmail(cfg.FromName, cfg.From),
		log:    log.With(zap.String("mailer", "sendgrid")),
	}
}

func (s *SendGridSender) Send(ctx context.Context, msg Message) error {
	to := mail.NewEmail("", msg.To)
	m := mail.NewSingleEmail(s.from, msg.Subject, to, msg.Text, msg.HTML)

	request := sendgrid.GetRequest(s.apiKey, sendEndpoint, s.host)
	request.Method = "POST"
	request.Body = mail.GetRequestBody(m)

	resp, err := sendgrid.MakeRequestWithContext(ctx, request)
	if err != nil {
		s.log.Error("SendGrid request failed", zap.Error(err), zap.String("to", msg.To))
		return fmt.Errorf("send email to %s: %w", msg.To, err)
	}

	if resp.StatusCode != http.StatusAccepted {
		s.log.Error("SendGrid rejected message",
			zap.Int("status", resp.StatusCode),
			zap.String("body", resp.Body),
			zap.String("to", msg.To),
		)
		return fmt.Errorf("send email to %s: status %d: %w", msg.To, resp.StatusCode, ErrNotAccepted)
	}

	s.log.Debug("Email accepted", zap.String("to", msg.To))
	return nil
}
