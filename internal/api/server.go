// Package api exposes the relay's HTTP surface: the event ingress endpoint,
// the health probe, and the response contract the platform expects.
package api

import (
	"context"
	"time"

	"github.com/go-logr/logr"

	"ozonrelay/internal/dispatch"
	"ozonrelay/internal/notify"
)

const defaultMirrorTimeout = 10 * time.Second

type ServerOptions struct {
	// Now overrides the clock used for ping responses.
	Now func() time.Time
	// MirrorTimeout bounds the fire-and-forget error-mirroring delivery.
	MirrorTimeout time.Duration
}

type Server struct {
	dispatcher    *dispatch.Dispatcher
	notifier      notify.Notifier
	log           logr.Logger
	now           func() time.Time
	mirrorTimeout time.Duration
}

func NewServer(n notify.Notifier, log logr.Logger) *Server {
	return NewServerWithOptions(n, log, ServerOptions{})
}

func NewServerWithOptions(n notify.Notifier, log logr.Logger, opts ServerOptions) *Server {
	now := opts.Now
	if now == nil {
		now = time.Now
	}
	mirrorTimeout := opts.MirrorTimeout
	if mirrorTimeout <= 0 {
		mirrorTimeout = defaultMirrorTimeout
	}
	return &Server{
		dispatcher:    dispatch.New(n, log.WithName("dispatch")),
		notifier:      n,
		log:           log,
		now:           now,
		mirrorTimeout: mirrorTimeout,
	}
}

// mirrorError forwards an error summary downstream without blocking the
// response. The request context is already finished by delivery time, so the
// call runs on a detached, timeout-bounded context; a failed mirror is
// logged and never produces a second response.
func (s *Server) mirrorError(resp ErrorResponse) {
	text := "Error handling event: " + resp.Error.Code + ": " + resp.Error.Message
	if resp.Error.Details != nil {
		text += " (" + *resp.Error.Details + ")"
	}
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), s.mirrorTimeout)
		defer cancel()
		if err := s.notifier.Notify(ctx, text); err != nil {
			s.log.Error(err, "error mirror notification failed", "code", resp.Error.Code)
		}
	}()
}
