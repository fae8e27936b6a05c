// Package bootstrap wires configuration into the running HTTP handler.
package bootstrap

import (
	"net/http"

	"github.com/go-logr/logr"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"ozonrelay/internal/api"
	"ozonrelay/internal/config"
	"ozonrelay/internal/notify"
	"ozonrelay/internal/observability"
)

type Runtime struct {
	Handler http.Handler
}

func NewRuntime(cfg config.Config, logger logr.Logger) *Runtime {
	notifier := notify.NewWebhook(
		cfg.Webhook.URL,
		cfg.Webhook.Timeout,
		notify.WithMetrics(observability.NewNotifierMetrics()),
	)
	server := api.NewServerWithOptions(notifier, logger.WithName("api"), api.ServerOptions{
		MirrorTimeout: cfg.Webhook.Timeout,
	})

	metrics := observability.NewHTTPMetrics()
	handler := api.WithRequestID(api.WithLogging(server.Routes(), logger.WithName("http")))

	rootMux := http.NewServeMux()
	rootMux.Handle("/metrics", promhttp.Handler())
	rootMux.Handle("/", metrics.Wrap(handler))

	return &Runtime{Handler: rootMux}
}
