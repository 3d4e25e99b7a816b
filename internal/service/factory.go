package service

import (
	"fmt"
	"log/slog"

	"callwatch.app/callwatch/core/config"
	"callwatch.app/callwatch/internal/channel"
	"callwatch.app/callwatch/internal/channel/chat"
	"callwatch.app/callwatch/internal/channel/email"
	"callwatch.app/callwatch/internal/channel/sms"
	"callwatch.app/callwatch/internal/channel/ticket"
	"callwatch.app/callwatch/internal/dispatch"
)

type Services struct {
	processor CallProcessorService
}

// NewServices wires the channel adapters from configuration and builds the
// call processor on top of them. Adapters are only constructed for channels
// that are enabled and fully configured.
func NewServices(channels config.ChannelsConfig) (*Services, error) {
	var (
		emailSender   channel.EmailSender
		chatPoster    channel.ChatPoster
		smsSender     channel.SMSSender
		ticketCreator channel.TicketCreator
		err           error
	)

	if channels.Email.Ready() {
		emailSender, err = email.NewSender(channels.Email)
		if err != nil {
			return nil, fmt.Errorf("building email sender: %w", err)
		}
	}

	if channels.Chat.Ready() {
		chatPoster = chat.NewSlackPoster(channels.Chat.WebhookURL)
	}

	if channels.SMS.Ready() {
		smsSender = sms.NewTwilioSender(channels.SMS.AccountSID, channels.SMS.AuthToken)
	}

	if channels.Ticket.Ready() {
		ticketCreator, err = ticket.NewGitLabTicketCreator(
			channels.Ticket.BaseURL,
			channels.Ticket.Token,
			channels.Ticket.ProjectID,
			channels.Ticket.Labels,
		)
		if err != nil {
			return nil, fmt.Errorf("building ticket creator: %w", err)
		}
	}

	dispatcher := dispatch.New(emailSender, chatPoster, smsSender, ticketCreator, dispatch.Config{
		TicketEnabled:      channels.Ticket.Ready(),
		EmailEnabled:       channels.Email.Ready(),
		ChatEnabled:        channels.Chat.Ready(),
		SMSEnabled:         channels.SMS.Ready(),
		SMSFrom:            channels.SMS.From,
		SMSTo:              channels.SMS.To,
		IncidentRecipients: channels.Email.IncidentRecipients,
		InquiryRecipients:  channels.Email.InquiryRecipients,
		FailureRecipients:  channels.FailureRecipients,
	}, slog.Default())

	return &Services{
		processor: NewCallProcessorService(dispatcher, slog.Default()),
	}, nil
}

func (s *Services) CallProcessor() CallProcessorService {
	return s.processor
}
