package router

import (
	"github.com/gin-gonic/gin"

	"callwatch.app/callwatch/internal/http/handler/webhook"
)

func WebhookRouter(router *gin.RouterGroup, handler *webhook.CallWebhookHandler) {
	router.POST("/call", handler.HandleEvent)
}
