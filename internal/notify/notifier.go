// Package notify delivers plain-text summaries to the downstream chat webhook.
package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"ozonrelay/internal/observability"
)

// Notifier sends one text message downstream. Delivery is best-effort and
// at-most-one-attempt; transport failures are reported to the caller.
type Notifier interface {
	Notify(ctx context.Context, text string) error
}

const defaultTimeout = 10 * time.Second

type envelope struct {
	MsgType string  `json:"msg_type"`
	Content content `json:"content"`
}

type content struct {
	Text string `json:"text"`
}

// Webhook posts messages to a single fixed endpoint.
type Webhook struct {
	url     string
	client  *http.Client
	metrics *observability.NotifierMetrics
}

type Option func(*Webhook)

func WithMetrics(m *observability.NotifierMetrics) Option {
	return func(w *Webhook) { w.metrics = m }
}

func WithClient(c *http.Client) Option {
	return func(w *Webhook) { w.client = c }
}

func NewWebhook(url string, timeout time.Duration, opts ...Option) *Webhook {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	w := &Webhook{
		url:    url,
		client: &http.Client{Timeout: timeout},
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// Notify performs exactly one POST of the fixed text envelope. No retry,
// no backoff, no queueing.
func (w *Webhook) Notify(ctx context.Context, text string) error {
	body, err := json.Marshal(envelope{MsgType: "text", Content: content{Text: text}})
	if err != nil {
		w.metrics.Observe("error")
		return fmt.Errorf("encode notification: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, w.url, bytes.NewReader(body))
	if err != nil {
		w.metrics.Observe("error")
		return fmt.Errorf("build notification request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	res, err := w.client.Do(req)
	if err != nil {
		w.metrics.Observe("error")
		return fmt.Errorf("post notification: %w", err)
	}
	defer func() {
		_, _ = io.Copy(io.Discard, res.Body)
		_ = res.Body.Close()
	}()
	if res.StatusCode < 200 || res.StatusCode > 299 {
		w.metrics.Observe("error")
		return fmt.Errorf("notification webhook returned status %d", res.StatusCode)
	}
	w.metrics.Observe("ok")
	return nil
}
