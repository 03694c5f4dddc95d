// Package resend sends contact notifications through the Resend API.
package resend

import (
	"bytes"
	"context"
	"fmt"
	"html/template"
	"time"

	"github.com/resend/resend-go/v2"

	"github.com/gourav02/acda-org/internal/core/domain"
	"github.com/gourav02/acda-org/internal/core/ports"
)

var notificationTmpl = template.Must(template.New("contact").Parse(`<!DOCTYPE html>
<html lang="en">
<body style="font-family: sans-serif; color: #333; max-width: 600px; margin: 0 auto;">
  <h1 style="background: #111184; color: #fff; padding: 16px;">New Membership Application</h1>
  <p style="margin: 4px 0;"><strong>Applicant Name:</strong> {{.Name}}</p>
  <p style="margin: 4px 0;"><strong>Email Address:</strong> <a href="mailto:{{.Email}}">{{.Email}}</a></p>
  {{if .Phone}}<p style="margin: 4px 0;"><strong>Phone Number:</strong> {{.Phone}}</p>{{end}}
  <p style="margin: 4px 0;"><strong>Subject:</strong> {{.Subject}}</p>
  <div style="background: #f8f9fa; padding: 12px; border-left: 4px solid #111184;">{{.Message}}</div>
  <p style="color: #666; font-size: 13px;">Received on {{.ReceivedAt}}. This is an automated message from the ACDA membership system.</p>
</body>
</html>`))

type Config struct {
	APIKey     string
	FromEmail  string
	AdminEmail string
}

type Mailer struct {
	client *resend.Client
	from   string
	to     string
}

var _ ports.Mailer = (*Mailer)(nil)

func New(cfg Config) (*Mailer, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("resend api key is required")
	}
	if cfg.FromEmail == "" || cfg.AdminEmail == "" {
		return nil, fmt.Errorf("sender and recipient addresses are required")
	}

	return &Mailer{
		client: resend.NewClient(cfg.APIKey),
		from:   cfg.FromEmail,
		to:     cfg.AdminEmail,
	}, nil
}

func (m *Mailer) SendContactNotification(ctx context.Context, msg domain.ContactMessage) (string, error) {
	var body bytes.Buffer
	data := struct {
		domain.ContactMessage
		ReceivedAt string
	}{msg, time.Now().Format("Monday, 2 January 2006 15:04 MST")}

	if err := notificationTmpl.Execute(&body, data); err != nil {
		return "", fmt.Errorf("rendering notification: %w", err)
	}

	sent, err := m.client.Emails.SendWithContext(ctx, &resend.SendEmailRequest{
		From:    m.from,
		To:      []string{m.to},
		ReplyTo: msg.Email,
		Subject: fmt.Sprintf("New Contact Form Submission - ACDA: %s", msg.Subject),
		Html:    body.String(),
	})
	if err != nil {
		return "", fmt.Errorf("resend send: %w", err)
	}

	return sent.Id, nil
}
