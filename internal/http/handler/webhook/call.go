package webhook

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"callwatch.app/callwatch/internal/http/dto"
	"callwatch.app/callwatch/internal/service"
	"callwatch.app/callwatch/internal/signature"
)

// SignatureHeader carries the hex HMAC-SHA256 of the raw request body.
const SignatureHeader = "X-Call-Signature"

type CallWebhookHandler struct {
	processor service.CallProcessorService
	secret    string
}

func NewCallWebhookHandler(processor service.CallProcessorService, secret string) *CallWebhookHandler {
	return &CallWebhookHandler{
		processor: processor,
		secret:    secret,
	}
}

func (h *CallWebhookHandler) HandleEvent(c *gin.Context) {
	ctx := c.Request.Context()

	// The signature is computed over the raw bytes, so the body must be
	// read before any parsing.
	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "failed to read request body"})
		return
	}

	if err := signature.Verify(body, h.secret, c.GetHeader(SignatureHeader)); err != nil {
		if errors.Is(err, signature.ErrMissingSecret) {
			slog.ErrorContext(ctx, "webhook secret not configured, rejecting event")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "server misconfigured"})
			return
		}
		slog.WarnContext(ctx, "rejected call webhook", "error", err)
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid signature"})
		return
	}

	var req dto.CallEventRequest
	if err := json.Unmarshal(body, &req); err != nil {
		slog.WarnContext(ctx, "invalid call webhook payload", "error", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
		return
	}

	event := req.ToEvent()

	result, err := h.processor.Process(ctx, event)
	if err != nil {
		slog.ErrorContext(ctx, "failed to process call event",
			"error", err,
			"call_id", event.CallID,
			"event_type", string(event.Kind),
		)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to process event"})
		return
	}

	slog.InfoContext(ctx, "call webhook processed",
		"call_id", event.CallID,
		"event_type", string(event.Kind),
		"status", string(result.Status),
		"classification", string(result.Classification),
	)

	c.JSON(http.StatusOK, dto.NewCallEventResponse(result))
}
