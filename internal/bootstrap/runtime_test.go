package bootstrap

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-logr/logr"

	"ozonrelay/internal/config"
)

func TestRuntimeServesCoreEndpoints(t *testing.T) {
	cfg := config.Config{
		Addr: ":3000",
		Webhook: config.WebhookConfig{
			URL:     "https://example.invalid/hook",
			Timeout: time.Second,
		},
	}
	rt := NewRuntime(cfg, logr.Discard())

	res := httptest.NewRecorder()
	rt.Handler.ServeHTTP(res, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	if res.Code != http.StatusOK {
		t.Fatalf("healthz got %d", res.Code)
	}

	res = httptest.NewRecorder()
	rt.Handler.ServeHTTP(res, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	if res.Code != http.StatusOK {
		t.Fatalf("metrics got %d", res.Code)
	}

	res = httptest.NewRecorder()
	rt.Handler.ServeHTTP(res, httptest.NewRequest(http.MethodPost, "/ozon/events", nil))
	if res.Code != http.StatusBadRequest {
		t.Fatalf("empty event body got %d", res.Code)
	}
}
