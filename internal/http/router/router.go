package router

import (
	"github.com/gin-gonic/gin"

	"callwatch.app/callwatch/internal/http/handler/webhook"
	"callwatch.app/callwatch/internal/service"
)

type RouterConfig struct {
	WebhookSecret string
}

func SetupRoutes(router *gin.Engine, services *service.Services, cfg RouterConfig) {
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	callHandler := webhook.NewCallWebhookHandler(services.CallProcessor(), cfg.WebhookSecret)
	WebhookRouter(router.Group("/webhooks"), callHandler)
}
