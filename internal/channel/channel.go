// Package channel defines the collaborator interfaces the dispatch core
// calls through, plus the provider adapters that implement them. Each
// adapter owns its provider client and that client's request timeout; the
// core never layers its own timeout on top.
package channel

import "context"

type EmailMessage struct {
	Recipients []string
	Subject    string
	HTMLBody   string
	TextBody   string
}

type ChatCardField struct {
	Label string
	Value string
}

// ChatCard is a provider-neutral structured card. Adapters translate it
// into their provider's card/block format.
type ChatCard struct {
	Title  string
	Fields []ChatCardField
	Text   string
}

type TicketFields struct {
	Title       string
	Description string
	Labels      []string
}

type EmailSender interface {
	Send(ctx context.Context, msg EmailMessage) error
}

type ChatPoster interface {
	PostCard(ctx context.Context, card ChatCard) error
}

type SMSSender interface {
	SendText(ctx context.Context, to, from, body string) error
}

type TicketCreator interface {
	// CreateTicket returns the provider's ticket identifier on success.
	CreateTicket(ctx context.Context, fields TicketFields) (string, error)
}
