package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"github.com/notifyhub/registration-notifier/internal/api"
	"github.com/notifyhub/registration-notifier/internal/config"
	"github.com/notifyhub/registration-notifier/internal/metrics"
	"github.com/notifyhub/registration-notifier/internal/notifier"
	"github.com/notifyhub/registration-notifier/internal/telegram"
)

func main() {
	logger, _ := zap.NewProduction()
	defer logger.Sync() //nolint:errcheck

	// ---- configuration ----
	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("failed to load config", zap.Error(err))
	}

	// ---- telegram client ----
	// Send-only: the bot never polls for updates, so button presses in the
	// group are acted on outside this service.
	client, err := telegram.NewClient(cfg.BotToken, cfg.TelegramTimeout)
	if err != nil {
		logger.Fatal("failed to create telegram client", zap.Error(err))
	}

	// ---- core dependencies ----
	reg := prometheus.NewRegistry()
	m := metrics.New(reg)

	onSent, onFailed, onAdminAlert := m.NotifierHooks()
	svc := notifier.New(client, cfg.GroupID, cfg.AdminID, logger, notifier.MetricHooks{
		OnSent:       onSent,
		OnFailed:     onFailed,
		OnAdminAlert: onAdminAlert,
	})

	// ---- HTTP server ----
	router := api.NewRouter(svc, reg, logger)
	srv := &http.Server{
		Addr:         ":" + cfg.HTTPPort,
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	// Start server in a goroutine so it does not block the shutdown listener.
	go func() {
		logger.Info("server starting", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("server error", zap.Error(err))
		}
	}()

	// ---- graceful shutdown ----
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutdown signal received")

	// In-flight requests block on their outbound Telegram calls; give them
	// the full grace window before pulling the plug.
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("HTTP server shutdown error", zap.Error(err))
	}

	logger.Info("server stopped cleanly")
}
