package main

import (
	"context"
	"errors"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ignite/newsletter/internal/api"
	"github.com/ignite/newsletter/internal/config"
	"github.com/ignite/newsletter/internal/emailclient"
	"github.com/ignite/newsletter/internal/mailing"
	"github.com/ignite/newsletter/internal/pkg/logger"
)

func main() {
	configPath := flag.String("config", "configuration/base.yaml", "Path to configuration file")
	flag.Parse()

	cfg, err := config.LoadFromEnv(*configPath)
	if err != nil {
		logger.Error("failed to load configuration", "path", *configPath, "error", err)
		os.Exit(1)
	}

	level, err := logger.ParseLevel(cfg.Log.Level)
	if err != nil {
		logger.Warn("unknown log level, using info", "level", cfg.Log.Level)
		level = logger.INFO
	}
	logger.SetLevel(level)
	logger.SetRedactPII(cfg.Log.ShouldRedactPII())

	sender, err := cfg.EmailClient.Sender()
	if err != nil {
		logger.Error("invalid sender email", "error", err)
		os.Exit(1)
	}
	if cfg.EmailClient.AuthorizationToken.IsZero() {
		logger.Warn("email client authorization token is not set")
	}

	emailClient := emailclient.New(
		cfg.EmailClient.BaseURL,
		sender,
		cfg.EmailClient.AuthorizationToken,
		emailclient.WithTimeout(cfg.EmailClient.Timeout()),
	)

	handlers := api.NewHandlers(emailClient, mailing.NewTemplateService())

	srv := &http.Server{
		Addr:         cfg.Application.Address(),
		Handler:      api.SetupRoutes(handlers, cfg.Application.AllowedOrigins),
		ReadTimeout:  5 * time.Second,
		WriteTimeout: cfg.EmailClient.Timeout() + 5*time.Second,
		IdleTimeout:  120 * time.Second,
	}

	go func() {
		logger.Info("newsletter server listening", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("listen failed", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("shutting down newsletter server")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("graceful shutdown failed", "error", err)
	}
}
