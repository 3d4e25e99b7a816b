package config

import (
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	OTel     OTelConfig
	Webhook  WebhookConfig
	Channels ChannelsConfig
	Env      string
	Port     string
}

type OTelConfig struct {
	Endpoint       string
	Headers        string
	ServiceName    string
	ServiceVersion string
}

type WebhookConfig struct {
	// Secret is the shared secret for HMAC signature verification.
	// An empty secret is surfaced per request as a server misconfiguration
	// rather than failing startup, so the error taxonomy stays observable.
	Secret string
}

type ChannelsConfig struct {
	Email  EmailConfig
	Chat   ChatConfig
	SMS    SMSConfig
	Ticket TicketConfig

	// FailureRecipients receive the "ticket creation failed" alert email.
	FailureRecipients []string
}

type EmailConfig struct {
	Enabled            bool
	Provider           string // "sendgrid" or "resend"
	SendGridAPIKey     string
	ResendAPIKey       string
	From               string
	IncidentRecipients []string
	InquiryRecipients  []string
}

type ChatConfig struct {
	Enabled    bool
	WebhookURL string
}

type SMSConfig struct {
	Enabled    bool
	AccountSID string
	AuthToken  string
	From       string
	To         string
}

type TicketConfig struct {
	Enabled   bool
	BaseURL   string
	Token     string
	ProjectID int64
	Labels    []string
}

// Load loads configuration from environment variables.
// In development it also reads .env from the working directory.
func Load() (Config, error) {
	if getEnv("CALLWATCH_ENV", "development") == "development" {
		_ = godotenv.Load(".env")
	}

	cfg := Config{
		Env:  getEnv("CALLWATCH_ENV", "development"),
		Port: getEnv("PORT", "8080"),
		OTel: OTelConfig{
			Endpoint:       getEnv("OTEL_EXPORTER_OTLP_ENDPOINT", ""),
			Headers:        getEnv("OTEL_EXPORTER_OTLP_HEADERS", ""),
			ServiceName:    getEnv("OTEL_SERVICE_NAME", "callwatch"),
			ServiceVersion: getEnv("OTEL_SERVICE_VERSION", "dev"),
		},
		Webhook: WebhookConfig{
			Secret: getEnv("CALL_WEBHOOK_SECRET", ""),
		},
		Channels: ChannelsConfig{
			Email: EmailConfig{
				Enabled:            getEnvBool("EMAIL_ENABLED", false),
				Provider:           getEnv("EMAIL_PROVIDER", "sendgrid"),
				SendGridAPIKey:     getEnv("SENDGRID_API_KEY", ""),
				ResendAPIKey:       getEnv("RESEND_API_KEY", ""),
				From:               getEnv("EMAIL_FROM", ""),
				IncidentRecipients: splitList(getEnv("INCIDENT_EMAIL_RECIPIENTS", "")),
				InquiryRecipients:  splitList(getEnv("INQUIRY_EMAIL_RECIPIENTS", "")),
			},
			Chat: ChatConfig{
				Enabled:    getEnvBool("CHAT_ENABLED", false),
				WebhookURL: getEnv("SLACK_WEBHOOK_URL", ""),
			},
			SMS: SMSConfig{
				Enabled:    getEnvBool("SMS_ENABLED", false),
				AccountSID: getEnv("TWILIO_ACCOUNT_SID", ""),
				AuthToken:  getEnv("TWILIO_AUTH_TOKEN", ""),
				From:       getEnv("TWILIO_FROM_NUMBER", ""),
				To:         getEnv("TWILIO_TO_NUMBER", ""),
			},
			Ticket: TicketConfig{
				Enabled:   getEnvBool("TICKET_ENABLED", false),
				BaseURL:   getEnv("GITLAB_BASE_URL", ""),
				Token:     getEnv("GITLAB_TOKEN", ""),
				ProjectID: getEnvInt64("GITLAB_PROJECT_ID", 0),
				Labels:    splitList(getEnv("GITLAB_ISSUE_LABELS", "security-incident")),
			},
			FailureRecipients: splitList(getEnv("FAILURE_EMAIL_RECIPIENTS", "")),
		},
	}

	return cfg, nil
}

func (c Config) IsProduction() bool {
	return c.Env == "production"
}

func (c Config) IsDevelopment() bool {
	return c.Env == "development"
}

func (c OTelConfig) Enabled() bool {
	return c.Endpoint != ""
}

func (c EmailConfig) Ready() bool {
	if !c.Enabled || c.From == "" {
		return false
	}
	switch c.Provider {
	case "sendgrid":
		return c.SendGridAPIKey != ""
	case "resend":
		return c.ResendAPIKey != ""
	}
	return false
}

func (c ChatConfig) Ready() bool {
	return c.Enabled && c.WebhookURL != ""
}

func (c SMSConfig) Ready() bool {
	return c.Enabled && c.AccountSID != "" && c.AuthToken != "" && c.From != "" && c.To != ""
}

func (c TicketConfig) Ready() bool {
	return c.Enabled && c.Token != "" && c.ProjectID != 0
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	if value, ok := os.LookupEnv(key); ok {
		if b, err := strconv.ParseBool(value); err == nil {
			return b
		}
	}
	return fallback
}

func getEnvInt64(key string, fallback int64) int64 {
	if value, ok := os.LookupEnv(key); ok {
		if i, err := strconv.ParseInt(value, 10, 64); err == nil {
			return i
		}
	}
	return fallback
}

// splitList splits a comma-separated value into trimmed, non-empty entries.
func splitList(s string) []string {
	if s == "" {
		return nil
	}
	var out []string
	for _, part := range strings.Split(s, ",") {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
