package email

import (
	"context"
	"fmt"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"

	"callwatch.app/callwatch/internal/channel"
)

type sendGridSender struct {
	client *sendgrid.Client
	from   string
}

func NewSendGridSender(apiKey, from string) channel.EmailSender {
	return &sendGridSender{
		client: sendgrid.NewSendClient(apiKey),
		from:   from,
	}
}

func (s *sendGridSender) Send(ctx context.Context, msg channel.EmailMessage) error {
	if len(msg.Recipients) == 0 {
		return fmt.Errorf("no recipients configured")
	}

	m := mail.NewV3Mail()
	m.SetFrom(mail.NewEmail("", s.from))
	m.Subject = msg.Subject

	p := mail.NewPersonalization()
	for _, recipient := range msg.Recipients {
		p.AddTos(mail.NewEmail("", recipient))
	}
	m.AddPersonalizations(p)

	// Plain text first: SendGrid requires text/plain before text/html.
	if msg.TextBody != "" {
		m.AddContent(mail.NewContent("text/plain", msg.TextBody))
	}
	if msg.HTMLBody != "" {
		m.AddContent(mail.NewContent("text/html", msg.HTMLBody))
	}

	resp, err := s.client.SendWithContext(ctx, m)
	if err != nil {
		return fmt.Errorf("sending email via sendgrid: %w", err)
	}
	if resp.StatusCode >= 400 {
		return fmt.Errorf("sendgrid returned status %d: %s", resp.StatusCode, resp.Body)
	}
	return nil
}
