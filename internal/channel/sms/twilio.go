package sms

import (
	"context"
	"fmt"

	"github.com/twilio/twilio-go"
	twilioapi "github.com/twilio/twilio-go/rest/api/v2010"

	"callwatch.app/callwatch/internal/channel"
)

type twilioSender struct {
	client *twilio.RestClient
}

func NewTwilioSender(accountSID, authToken string) channel.SMSSender {
	return &twilioSender{
		client: twilio.NewRestClientWithParams(twilio.ClientParams{
			Username: accountSID,
			Password: authToken,
		}),
	}
}

// SendText sends one SMS. The twilio client carries its own HTTP timeout;
// ctx is accepted for interface symmetry even though the v1 Messages API
// does not take one.
func (s *twilioSender) SendText(_ context.Context, to, from, body string) error {
	params := &twilioapi.CreateMessageParams{}
	params.SetTo(to)
	params.SetFrom(from)
	params.SetBody(body)

	if _, err := s.client.Api.CreateMessage(params); err != nil {
		return fmt.Errorf("sending sms: %w", err)
	}
	return nil
}
