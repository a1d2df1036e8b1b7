package adapter

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-contacts-keeper/internal/config"
	"github.com/MKhiriev/go-contacts-keeper/internal/logger"
	"github.com/MKhiriev/go-contacts-keeper/models"
	"gopkg.in/gomail.v2"
)

// dialer is implemented by *gomail.Dialer.
type dialer interface {
	DialAndSend(m ...*gomail.Message) error
}

type smtpMailSender struct {
	dialer   dialer
	from     string
	fromName string

	logger *logger.Logger
}

// NewSMTPMailSender returns a [MailSender] that relays through an SMTP
// server. Port 465 implies implicit TLS, other ports use STARTTLS when the
// server offers it.
func NewSMTPMailSender(cfg config.Mail, log *logger.Logger) MailSender {
	d := gomail.NewDialer(cfg.SMTP.Host, cfg.SMTP.Port, cfg.SMTP.Username, cfg.SMTP.Password)
	return &smtpMailSender{dialer: d, from: cfg.FromAddress, fromName: cfg.FromName, logger: log}
}

// Send implements [MailSender]. gomail has no context support, so ctx is
// only checked before dialing.
func (s *smtpMailSender) Send(ctx context.Context, msg models.MailMessage) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("%w: %w", ErrMailSend, err)
	}

	m := gomail.NewMessage()
	m.SetAddressHeader("From", s.from, s.fromName)
	if msg.ToName != "" {
		m.SetAddressHeader("To", msg.To, msg.ToName)
	} else {
		m.SetHeader("To", msg.To)
	}
	m.SetHeader("Subject", msg.Subject)
	m.SetBody("text/html", msg.HTML)

	if err := s.dialer.DialAndSend(m); err != nil {
		s.logger.Err(err).Str("func", "smtpMailSender.Send").Str("to", msg.To).Msg("smtp delivery failed")
		return fmt.Errorf("%w: %w", ErrMailSend, err)
	}

	return nil
}
