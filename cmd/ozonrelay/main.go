package main

import (
	"log"
	"net/http"
	"time"

	"ozonrelay/internal/bootstrap"
	"ozonrelay/internal/config"

	"github.com/go-logr/zapr"
	"go.uber.org/zap"
)

func main() {
	cfg := config.LoadFromEnv()
	if err := cfg.Validate(); err != nil {
		log.Fatal(err)
	}

	zapLogger, err := zap.NewProduction()
	if err != nil {
		log.Fatal(err)
	}
	defer func() { _ = zapLogger.Sync() }()
	logger := zapr.NewLogger(zapLogger)

	rt := bootstrap.NewRuntime(cfg, logger)

	summary := cfg.Summary()
	logger.Info("startup config",
		"addr", summary.Addr,
		"webhook_host", summary.WebhookHost,
		"webhook_timeout", summary.Timeout.String(),
	)
	logger.Info("ozonrelay listening", "addr", cfg.Addr)
	server := &http.Server{
		Addr:              cfg.Addr,
		Handler:           rt.Handler,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      60 * time.Second,
		IdleTimeout:       120 * time.Second,
	}
	if err := server.ListenAndServe(); err != nil {
		logger.Error(err, "http server failed")
		log.Fatal(err)
	}
}
