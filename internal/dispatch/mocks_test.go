package dispatch_test

import (
	"context"

	"callwatch.app/callwatch/internal/channel"
)

type mockEmailSender struct {
	sendFn func(ctx context.Context, msg channel.EmailMessage) error
}

func (m *mockEmailSender) Send(ctx context.Context, msg channel.EmailMessage) error {
	return m.sendFn(ctx, msg)
}

type mockChatPoster struct {
	postCardFn func(ctx context.Context, card channel.ChatCard) error
}

func (m *mockChatPoster) PostCard(ctx context.Context, card channel.ChatCard) error {
	return m.postCardFn(ctx, card)
}

type mockSMSSender struct {
	sendTextFn func(ctx context.Context, to, from, body string) error
}

func (m *mockSMSSender) SendText(ctx context.Context, to, from, body string) error {
	return m.sendTextFn(ctx, to, from, body)
}

type mockTicketCreator struct {
	createTicketFn func(ctx context.Context, fields channel.TicketFields) (string, error)
}

func (m *mockTicketCreator) CreateTicket(ctx context.Context, fields channel.TicketFields) (string, error) {
	return m.createTicketFn(ctx, fields)
}
