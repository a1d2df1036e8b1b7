package adapter

import (
	"context"
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-contacts-keeper/internal/config"
	"github.com/MKhiriev/go-contacts-keeper/internal/logger"
	"github.com/MKhiriev/go-contacts-keeper/models"
	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
)

const sendGridMailEndpoint = "/v3/mail/send"

type sendGridMailSender struct {
	apiKey   string
	host     string
	from     string
	fromName string

	logger *logger.Logger
}

// NewSendGridMailSender returns a [MailSender] using the SendGrid v3 API.
func NewSendGridMailSender(cfg config.Mail, log *logger.Logger) MailSender {
	return &sendGridMailSender{
		apiKey:   cfg.SendGrid.APIKey,
		host:     cfg.SendGrid.Host,
		from:     cfg.FromAddress,
		fromName: cfg.FromName,
		logger:   log,
	}
}

// Send implements [MailSender]. Any non-2xx answer is an error.
func (s *sendGridMailSender) Send(ctx context.Context, msg models.MailMessage) error {
	message := mail.NewSingleEmail(
		mail.NewEmail(s.fromName, s.from),
		msg.Subject,
		mail.NewEmail(msg.ToName, msg.To),
		"",
		msg.HTML,
	)

	request := sendgrid.GetRequest(s.apiKey, sendGridMailEndpoint, s.host)
	request.Method = http.MethodPost
	request.Body = mail.GetRequestBody(message)

	resp, err := sendgrid.MakeRequestWithContext(ctx, request)
	if err != nil {
		s.logger.Err(err).Str("func", "sendGridMailSender.Send").Str("to", msg.To).Msg("sendgrid request failed")
		return fmt.Errorf("%w: %w", ErrMailSend, err)
	}
	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		err = statusError(resp.StatusCode, resp.Body)
		s.logger.Err(err).Str("func", "sendGridMailSender.Send").Str("to", msg.To).Msg("sendgrid rejected message")
		return fmt.Errorf("%w: %w", ErrMailSend, err)
	}

	return nil
}
