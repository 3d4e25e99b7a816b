package logger

import "context"

type contextKey string

const logFieldsKey contextKey = "log_fields"

// LogFields contains structured fields automatically added to all logs within
// a context. Fields flow through context enrichment, so business context
// (call_id, dispatch_id, etc.) is included in every log statement without
// each call site repeating it.
type LogFields struct {
	CallID         *string // Provider call identifier from the webhook payload
	EventType      *string // Webhook event kind (e.g., "call_analyzed")
	DispatchID     *int64  // Fan-out correlation ID for one dispatch run
	Classification *string // Derived call classification
	Channel        *string // Notification channel (e.g., "sms_notification")
	Component      string  // Component name (e.g., "callwatch.dispatch")
}

// WithLogFields enriches context with structured log fields.
// Multiple calls merge fields, with newer non-nil/non-empty values taking
// precedence. Context timeouts and cancellation are preserved.
func WithLogFields(ctx context.Context, fields LogFields) context.Context {
	existing := GetLogFields(ctx)
	merged := mergeFields(existing, fields)
	return context.WithValue(ctx, logFieldsKey, merged)
}

// GetLogFields retrieves log fields from context.
// Returns empty LogFields if none are set.
func GetLogFields(ctx context.Context) LogFields {
	if fields, ok := ctx.Value(logFieldsKey).(LogFields); ok {
		return fields
	}
	return LogFields{}
}

func mergeFields(existing, incoming LogFields) LogFields {
	result := existing

	if incoming.CallID != nil {
		result.CallID = incoming.CallID
	}
	if incoming.EventType != nil {
		result.EventType = incoming.EventType
	}
	if incoming.DispatchID != nil {
		result.DispatchID = incoming.DispatchID
	}
	if incoming.Classification != nil {
		result.Classification = incoming.Classification
	}
	if incoming.Channel != nil {
		result.Channel = incoming.Channel
	}
	if incoming.Component != "" {
		result.Component = incoming.Component
	}

	return result
}

// Ptr is a helper to create a pointer from a value.
// Useful for setting LogFields inline: logger.WithLogFields(ctx, logger.LogFields{CallID: logger.Ptr(id)})
func Ptr[T any](v T) *T {
	return &v
}

// Truncate truncates a string to maxLen characters, appending "..." if
// truncated. Useful for logging potentially long incident descriptions.
func Truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen] + "..."
}
