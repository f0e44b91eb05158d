// Package main is the entry point for the WhatsApp webhook server.
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/popeskul/wa-webhook-bridge/internal/config"
	"github.com/popeskul/wa-webhook-bridge/internal/handler"
	"github.com/popeskul/wa-webhook-bridge/internal/middleware"
	"github.com/popeskul/wa-webhook-bridge/internal/service"
)

func main() {
	cfg, err := config.LoadConfig("config.yaml")
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	logger, err := newLogger(&cfg.App)
	if err != nil {
		panic(fmt.Sprintf("failed to initialize logger: %v", err))
	}
	defer func() {
		_ = logger.Sync()
	}()

	if missing := cfg.MissingSecrets(); len(missing) > 0 {
		logger.Warn("Configuration is incomplete, affected requests will fail",
			zap.Strings("missing", missing))
	}

	svc := service.NewService(cfg, nil, logger)
	h := handler.NewHandler(svc, cfg, logger)

	router := setupRouter(h, logger)

	finalHandler := middleware.Chain(&middleware.Config{
		Logger:         logger,
		RequestTimeout: time.Duration(cfg.Server.RequestTimeout) * time.Second,
	})(router)

	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      finalHandler,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("Starting server",
			zap.String("address", srv.Addr),
			zap.String("environment", cfg.App.Environment),
			zap.String("api_version", cfg.WhatsApp.Version))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Fatal("Server forced to shutdown", zap.Error(err))
	}

	logger.Info("Server exited")
}
