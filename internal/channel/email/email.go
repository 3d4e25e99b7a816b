package email

import (
	"fmt"

	"callwatch.app/callwatch/core/config"
	"callwatch.app/callwatch/internal/channel"
)

const (
	ProviderSendGrid = "sendgrid"
	ProviderResend   = "resend"
)

// NewSender builds the configured email provider adapter.
func NewSender(cfg config.EmailConfig) (channel.EmailSender, error) {
	switch cfg.Provider {
	case ProviderSendGrid:
		return NewSendGridSender(cfg.SendGridAPIKey, cfg.From), nil
	case ProviderResend:
		return NewResendSender(cfg.ResendAPIKey, cfg.From), nil
	default:
		return nil, fmt.Errorf("unknown email provider %q", cfg.Provider)
	}
}
