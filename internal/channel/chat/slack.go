package chat

import (
	"context"
	"fmt"

	"github.com/slack-go/slack"

	"callwatch.app/callwatch/internal/channel"
)

type slackPoster struct {
	webhookURL string
}

// NewSlackPoster posts cards to a Slack incoming webhook as Block Kit
// messages.
func NewSlackPoster(webhookURL string) channel.ChatPoster {
	return &slackPoster{webhookURL: webhookURL}
}

func (p *slackPoster) PostCard(ctx context.Context, card channel.ChatCard) error {
	blocks := []slack.Block{
		slack.NewHeaderBlock(slack.NewTextBlockObject(slack.PlainTextType, card.Title, false, false)),
	}

	if len(card.Fields) > 0 {
		fields := make([]*slack.TextBlockObject, 0, len(card.Fields))
		for _, f := range card.Fields {
			fields = append(fields, slack.NewTextBlockObject(
				slack.MarkdownType,
				fmt.Sprintf("*%s*\n%s", f.Label, f.Value),
				false, false,
			))
		}
		blocks = append(blocks, slack.NewSectionBlock(nil, fields, nil))
	}

	if card.Text != "" {
		blocks = append(blocks, slack.NewSectionBlock(
			slack.NewTextBlockObject(slack.MarkdownType, card.Text, false, false),
			nil, nil,
		))
	}

	msg := &slack.WebhookMessage{
		Text:   card.Title, // fallback for notification previews
		Blocks: &slack.Blocks{BlockSet: blocks},
	}

	if err := slack.PostWebhookContext(ctx, p.webhookURL, msg); err != nil {
		return fmt.Errorf("posting chat card: %w", err)
	}
	return nil
}
