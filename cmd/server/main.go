package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	"callwatch.app/callwatch/common/id"
	"callwatch.app/callwatch/common/logger"
	"callwatch.app/callwatch/common/otel"
	"callwatch.app/callwatch/core/config"
	"callwatch.app/callwatch/internal/http/middleware"
	httprouter "callwatch.app/callwatch/internal/http/router"
	"callwatch.app/callwatch/internal/service"
)

func main() {
	fmt.Printf("%s\n", banner)
	ctx := context.Background()

	cfg, err := config.Load()
	if err != nil {
		slog.ErrorContext(ctx, "failed to load config", "error", err)
		os.Exit(1)
	}

	// OTel must init before logger (logger uses OTel provider in production)
	telemetry, err := otel.Setup(ctx, cfg.OTel)
	if err != nil {
		// Can't use slog yet — OTel failed before logger setup
		os.Stderr.WriteString("failed to initialize otel: " + err.Error() + "\n")
		os.Exit(1)
	}

	logger.Setup(cfg)

	if telemetry != nil {
		slog.InfoContext(ctx, "otel initialized", "endpoint", cfg.OTel.Endpoint)
	} else {
		slog.InfoContext(ctx, "otel disabled (no endpoint configured)")
	}

	slog.InfoContext(ctx, "callwatch starting", "env", cfg.Env, "service", cfg.OTel.ServiceName)

	if cfg.Webhook.Secret == "" {
		// Startup still succeeds so the misconfiguration is observable;
		// every webhook delivery is rejected until the secret is set.
		slog.WarnContext(ctx, "CALL_WEBHOOK_SECRET is not set, all webhook deliveries will be rejected")
	}

	if err := id.Init(1); err != nil {
		slog.ErrorContext(ctx, "failed to initialize snowflake id generator", "error", err)
		os.Exit(1)
	}

	services, err := service.NewServices(cfg.Channels)
	if err != nil {
		slog.ErrorContext(ctx, "failed to build services", "error", err)
		os.Exit(1)
	}

	slog.InfoContext(ctx, "channels configured",
		"ticket", cfg.Channels.Ticket.Ready(),
		"email", cfg.Channels.Email.Ready(),
		"chat", cfg.Channels.Chat.Ready(),
		"sms", cfg.Channels.SMS.Ready(),
	)

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	router := setupRouter(cfg, services)
	server := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	go func() {
		slog.InfoContext(ctx, "http server starting", "port", cfg.Port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.ErrorContext(ctx, "http server error", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.InfoContext(ctx, "shutting down...")

	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		slog.ErrorContext(shutdownCtx, "http server shutdown error", "error", err)
	}

	if telemetry != nil {
		if err := telemetry.Shutdown(shutdownCtx); err != nil {
			slog.ErrorContext(shutdownCtx, "otel shutdown error", "error", err)
		}
	}

	slog.InfoContext(shutdownCtx, "shutdown complete")
}

func setupRouter(cfg config.Config, services *service.Services) *gin.Engine {
	router := gin.New()

	// Order matters: OTel creates span → Recovery catches panics → Logger logs with trace context
	if cfg.OTel.Enabled() {
		router.Use(otelgin.Middleware(cfg.OTel.ServiceName))
	}
	router.Use(middleware.Recovery())
	router.Use(middleware.Logger())

	httprouter.SetupRoutes(router, services, httprouter.RouterConfig{
		WebhookSecret: cfg.Webhook.Secret,
	})

	return router
}

const banner = `
 ██████╗ █████╗ ██╗     ██╗     ██╗    ██╗ █████╗ ████████╗ ██████╗██╗  ██╗
██╔════╝██╔══██╗██║     ██║     ██║    ██║██╔══██╗╚══██╔══╝██╔════╝██║  ██║
██║     ███████║██║     ██║     ██║ █╗ ██║███████║   ██║   ██║     ███████║
██║     ██╔══██║██║     ██║     ██║███╗██║██╔══██║   ██║   ██║     ██╔══██║
╚██████╗██║  ██║███████╗███████╗╚███╔███╔╝██║  ██║   ██║   ╚██████╗██║  ██║
 ╚═════╝╚═╝  ╚═╝╚══════╝╚══════╝ ╚══╝╚══╝ ╚═╝  ╚═╝   ╚═╝    ╚═════╝╚═╝  ╚═╝
`
