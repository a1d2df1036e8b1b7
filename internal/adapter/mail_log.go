package adapter

import (
	"context"

	"github.com/MKhiriev/go-contacts-keeper/internal/logger"
	"github.com/MKhiriev/go-contacts-keeper/models"
)

type logMailSender struct {
	logger *logger.Logger
}

// NewLogMailSender returns a [MailSender] that only logs messages.
// Intended for local development.
func NewLogMailSender(log *logger.Logger) MailSender {
	return &logMailSender{logger: log}
}

func (l *logMailSender) Send(ctx context.Context, msg models.MailMessage) error {
	l.logger.Info().
		Str("func", "logMailSender.Send").
		Str("to", msg.To).
		Str("subject", msg.Subject).
		Str("body", msg.HTML).
		Msg("mail message")
	return nil
}
