package dispatch

import (
	"fmt"
	"html"
	"strings"

	"callwatch.app/callwatch/internal/channel"
	"callwatch.app/callwatch/internal/model"
)

// Provider-facing message construction. Everything here is deterministic
// string building; values are HTML-escaped for the HTML email bodies.

func incidentSubject(fields model.AnalysisFields) string {
	company := strings.TrimSpace(fields.CompanyName)
	if company == "" {
		company = "unknown company"
	}
	return fmt.Sprintf("Security incident reported by %s", company)
}

func IncidentEmail(callID string, fields model.AnalysisFields, recipients []string) channel.EmailMessage {
	rows := incidentRows(callID, fields)
	return channel.EmailMessage{
		Recipients: recipients,
		Subject:    incidentSubject(fields),
		HTMLBody:   htmlBody("Security Incident Report", rows, fields.IncidentDescription),
		TextBody:   textBody("Security Incident Report", rows, fields.IncidentDescription),
	}
}

func InquiryEmail(callID string, fields model.AnalysisFields, recipients []string) channel.EmailMessage {
	rows := inquiryRows(callID, fields)
	caller := strings.TrimSpace(fields.CallerName)
	if caller == "" {
		caller = "unknown caller"
	}
	return channel.EmailMessage{
		Recipients: recipients,
		Subject:    fmt.Sprintf("General inquiry from %s", caller),
		HTMLBody:   htmlBody("General Inquiry", rows, fields.InquiryReason),
		TextBody:   textBody("General Inquiry", rows, fields.InquiryReason),
	}
}

// TicketAlertEmail is the safety side-channel message sent when ticket
// creation failed but email is still available.
func TicketAlertEmail(callID string, ticketErr error, recipients []string) channel.EmailMessage {
	rows := []row{
		{"Call ID", callID},
		{"Error", ticketErr.Error()},
	}
	return channel.EmailMessage{
		Recipients: recipients,
		Subject:    fmt.Sprintf("Ticket creation failed for call %s", callID),
		HTMLBody:   htmlBody("Ticket Creation Failed", rows, "The incident ticket could not be created. Follow up manually."),
		TextBody:   textBody("Ticket Creation Failed", rows, "The incident ticket could not be created. Follow up manually."),
	}
}

func IncidentCard(callID string, fields model.AnalysisFields) channel.ChatCard {
	var cardFields []channel.ChatCardField
	for _, r := range incidentRows(callID, fields) {
		cardFields = append(cardFields, channel.ChatCardField{Label: r.label, Value: orDash(r.value)})
	}
	return channel.ChatCard{
		Title:  incidentSubject(fields),
		Fields: cardFields,
		Text:   strings.TrimSpace(fields.IncidentDescription),
	}
}

func IncidentSMS(callID string, fields model.AnalysisFields) string {
	return fmt.Sprintf("Security incident: %s (%s) at %s, phone %s. Call %s.",
		orDash(fields.CallerName),
		orDash(fields.CompanyName),
		orDash(fields.Location),
		orDash(fields.PhoneNumber),
		callID,
	)
}

func IncidentTicket(callID string, fields model.AnalysisFields) channel.TicketFields {
	return channel.TicketFields{
		Title:       incidentSubject(fields),
		Description: textBody("Security Incident Report", incidentRows(callID, fields), fields.IncidentDescription),
	}
}

type row struct {
	label string
	value string
}

func incidentRows(callID string, fields model.AnalysisFields) []row {
	return []row{
		{"Call ID", callID},
		{"Caller", fields.CallerName},
		{"Company", fields.CompanyName},
		{"Phone", fields.PhoneNumber},
		{"Email", fields.Email},
		{"Location", fields.Location},
		{"Insurance status", fields.InsuranceStatus},
		{"Customer status", fields.CustomerStatus},
	}
}

func inquiryRows(callID string, fields model.AnalysisFields) []row {
	return []row{
		{"Call ID", callID},
		{"Caller", fields.CallerName},
		{"Company", fields.CompanyName},
		{"Phone", fields.PhoneNumber},
		{"Email", fields.Email},
		{"Customer status", fields.CustomerStatus},
	}
}

func htmlBody(title string, rows []row, description string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "<h2>%s</h2>\n<table>\n", html.EscapeString(title))
	for _, r := range rows {
		fmt.Fprintf(&b, "<tr><td><strong>%s</strong></td><td>%s</td></tr>\n",
			html.EscapeString(r.label), html.EscapeString(orDash(r.value)))
	}
	b.WriteString("</table>\n")
	if strings.TrimSpace(description) != "" {
		fmt.Fprintf(&b, "<p>%s</p>\n", html.EscapeString(strings.TrimSpace(description)))
	}
	return b.String()
}

func textBody(title string, rows []row, description string) string {
	var b strings.Builder
	b.WriteString(title + "\n\n")
	for _, r := range rows {
		fmt.Fprintf(&b, "%s: %s\n", r.label, orDash(r.value))
	}
	if strings.TrimSpace(description) != "" {
		b.WriteString("\n" + strings.TrimSpace(description) + "\n")
	}
	return b.String()
}

func orDash(s string) string {
	if strings.TrimSpace(s) == "" {
		return "-"
	}
	return strings.TrimSpace(s)
}
