package workers

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"net/url"

	"github.com/MKhiriev/go-contacts-keeper/models"
)

//go:embed templates/*.html
var mailTemplates embed.FS

type mailTemplate struct {
	subject string
	file    string
	link    func(baseURL, token string) string
}

var mailKinds = map[models.MailKind]mailTemplate{
	models.MailConfirmEmail: {
		subject: "Confirm your email",
		file:    "confirm_email.html",
		link: func(baseURL, token string) string {
			return baseURL + "auth/confirmed_email/" + url.PathEscape(token)
		},
	},
	models.MailResetPassword: {
		subject: "Password reset request",
		file:    "reset_password.html",
		link: func(baseURL, token string) string {
			return baseURL + "auth/reset-password-confirm?token=" + url.QueryEscape(token)
		},
	},
}

// MailRenderer turns mail jobs into HTML messages.
type MailRenderer struct {
	templates *template.Template
}

// NewMailRenderer parses the embedded templates.
func NewMailRenderer() (*MailRenderer, error) {
	tmpl, err := template.ParseFS(mailTemplates, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrRenderingMessage, err)
	}
	return &MailRenderer{templates: tmpl}, nil
}

// Render builds the message for job. The base URL is expected to end with
// a slash.
func (r *MailRenderer) Render(job models.MailJob) (models.MailMessage, error) {
	kind, ok := mailKinds[job.Kind]
	if !ok {
		return models.MailMessage{}, fmt.Errorf("%w: %q", ErrUnknownMailKind, job.Kind)
	}

	data := struct {
		Username string
		Link     string
	}{
		Username: job.Username,
		Link:     kind.link(job.BaseURL, job.Token),
	}

	var buf bytes.Buffer
	if err := r.templates.ExecuteTemplate(&buf, kind.file, data); err != nil {
		return models.MailMessage{}, fmt.Errorf("%w: %w", ErrRenderingMessage, err)
	}

	return models.MailMessage{
		To:      job.To,
		ToName:  job.Username,
		Subject: kind.subject,
		HTML:    buf.String(),
	}, nil
}
