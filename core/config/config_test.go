package config_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"callwatch.app/callwatch/core/config"
)

var _ = Describe("Load", func() {
	BeforeEach(func() {
		// Keep Load away from any .env file in the working directory.
		GinkgoT().Setenv("CALLWATCH_ENV", "test")
	})

	It("applies defaults when nothing is set", func() {
		cfg, err := config.Load()
		Expect(err).NotTo(HaveOccurred())

		Expect(cfg.Port).To(Equal("8080"))
		Expect(cfg.Webhook.Secret).To(BeEmpty())
		Expect(cfg.Channels.Email.Enabled).To(BeFalse())
		Expect(cfg.Channels.Email.Provider).To(Equal("sendgrid"))
		Expect(cfg.Channels.Ticket.Labels).To(Equal([]string{"security-incident"}))
		Expect(cfg.OTel.Enabled()).To(BeFalse())
	})

	It("reads the webhook secret and channel settings from the environment", func() {
		GinkgoT().Setenv("CALL_WEBHOOK_SECRET", "s3cret")
		GinkgoT().Setenv("EMAIL_ENABLED", "true")
		GinkgoT().Setenv("EMAIL_PROVIDER", "resend")
		GinkgoT().Setenv("RESEND_API_KEY", "re_123")
		GinkgoT().Setenv("EMAIL_FROM", "alerts@acme.test")
		GinkgoT().Setenv("TICKET_ENABLED", "true")
		GinkgoT().Setenv("GITLAB_TOKEN", "glpat-x")
		GinkgoT().Setenv("GITLAB_PROJECT_ID", "1234")

		cfg, err := config.Load()
		Expect(err).NotTo(HaveOccurred())

		Expect(cfg.Webhook.Secret).To(Equal("s3cret"))
		Expect(cfg.Channels.Email.Ready()).To(BeTrue())
		Expect(cfg.Channels.Ticket.ProjectID).To(Equal(int64(1234)))
		Expect(cfg.Channels.Ticket.Ready()).To(BeTrue())
	})

	It("splits recipient lists on commas, trimming blanks", func() {
		GinkgoT().Setenv("INCIDENT_EMAIL_RECIPIENTS", "a@x.com, b@x.com,, c@x.com ")
		GinkgoT().Setenv("FAILURE_EMAIL_RECIPIENTS", "")

		cfg, err := config.Load()
		Expect(err).NotTo(HaveOccurred())

		Expect(cfg.Channels.Email.IncidentRecipients).To(Equal([]string{"a@x.com", "b@x.com", "c@x.com"}))
		Expect(cfg.Channels.FailureRecipients).To(BeNil())
	})

	It("falls back on unparseable booleans and integers", func() {
		GinkgoT().Setenv("EMAIL_ENABLED", "definitely")
		GinkgoT().Setenv("GITLAB_PROJECT_ID", "not-a-number")

		cfg, err := config.Load()
		Expect(err).NotTo(HaveOccurred())

		Expect(cfg.Channels.Email.Enabled).To(BeFalse())
		Expect(cfg.Channels.Ticket.ProjectID).To(Equal(int64(0)))
	})
})

var _ = Describe("channel readiness", func() {
	It("requires a provider key matching the selected email provider", func() {
		cfg := config.EmailConfig{
			Enabled:        true,
			Provider:       "sendgrid",
			From:           "alerts@acme.test",
			SendGridAPIKey: "SG.key",
		}
		Expect(cfg.Ready()).To(BeTrue())

		cfg.Provider = "resend"
		Expect(cfg.Ready()).To(BeFalse(), "resend selected but only a sendgrid key present")

		cfg.ResendAPIKey = "re_123"
		Expect(cfg.Ready()).To(BeTrue())

		cfg.Provider = "smtp"
		Expect(cfg.Ready()).To(BeFalse(), "unknown providers are never ready")
	})

	It("requires a sender address regardless of provider", func() {
		cfg := config.EmailConfig{Enabled: true, Provider: "sendgrid", SendGridAPIKey: "SG.key"}
		Expect(cfg.Ready()).To(BeFalse())
	})

	It("requires the chat webhook URL", func() {
		Expect(config.ChatConfig{Enabled: true}.Ready()).To(BeFalse())
		Expect(config.ChatConfig{Enabled: true, WebhookURL: "https://hooks.slack.test/x"}.Ready()).To(BeTrue())
		Expect(config.ChatConfig{WebhookURL: "https://hooks.slack.test/x"}.Ready()).To(BeFalse())
	})

	It("requires the full twilio credential set", func() {
		cfg := config.SMSConfig{
			Enabled:    true,
			AccountSID: "AC1",
			AuthToken:  "tok",
			From:       "+15550000001",
			To:         "+15550000002",
		}
		Expect(cfg.Ready()).To(BeTrue())

		cfg.To = ""
		Expect(cfg.Ready()).To(BeFalse())
	})

	It("requires a token and project for tickets", func() {
		Expect(config.TicketConfig{Enabled: true, Token: "t"}.Ready()).To(BeFalse())
		Expect(config.TicketConfig{Enabled: true, Token: "t", ProjectID: 1}.Ready()).To(BeTrue())
	})
})
