package email

import (
	"context"
	"fmt"

	"github.com/resend/resend-go/v2"

	"callwatch.app/callwatch/internal/channel"
)

type resendSender struct {
	client *resend.Client
	from   string
}

func NewResendSender(apiKey, from string) channel.EmailSender {
	return &resendSender{
		client: resend.NewClient(apiKey),
		from:   from,
	}
}

func (s *resendSender) Send(ctx context.Context, msg channel.EmailMessage) error {
	if len(msg.Recipients) == 0 {
		return fmt.Errorf("no recipients configured")
	}

	params := &resend.SendEmailRequest{
		From:    s.from,
		To:      msg.Recipients,
		Subject: msg.Subject,
		Html:    msg.HTMLBody,
		Text:    msg.TextBody,
	}

	if _, err := s.client.Emails.SendWithContext(ctx, params); err != nil {
		return fmt.Errorf("sending email via resend: %w", err)
	}
	return nil
}
