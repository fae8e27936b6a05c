package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"ozonrelay/internal/dispatch"
	"ozonrelay/internal/model"
)

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"status":  "ok",
		"service": ServiceName,
		"time":    time.Now().UTC().Format(time.RFC3339),
	})
}

// handleOzonEvents is the single ingress point. It writes exactly one
// terminal response per request: the ping identity, {result:true}, or a
// nested error object.
func (s *Server) handleOzonEvents(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, NewErrorResponse("METHOD_NOT_ALLOWED", "method not allowed", nil))
		return
	}
	body, err := readBodyLimited(w, r, maxIngestBodyBytes)
	if err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			writeError(w, http.StatusRequestEntityTooLarge, NewErrorResponse("PAYLOAD_TOO_LARGE", "request body is too large", nil))
			return
		}
		writeError(w, http.StatusBadRequest, NewErrorResponse("INVALID_BODY", "unable to read body", nil))
		return
	}

	var ev model.Event
	if err := json.Unmarshal(body, &ev); err != nil {
		writeError(w, http.StatusBadRequest, NewErrorResponse("INVALID_BODY", "unable to decode event payload", strPtr(err.Error())))
		return
	}
	ev.Raw = body

	if ev.MessageType == "" {
		resp := NewErrorResponse(CodeParameterValueMissed, "Missing required parameter: message_type", nil)
		s.mirrorError(resp)
		writeError(w, http.StatusBadRequest, resp)
		return
	}

	if ev.MessageType == model.TypePing {
		s.log.V(1).Info("ping received", "request_id", RequestIDFromContext(r.Context()), "sender_time", ev.Time)
		writeJSON(w, http.StatusOK, NewPingResponse(s.now()))
		return
	}

	if err := s.dispatcher.Handle(r.Context(), &ev); err != nil {
		s.respondError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, NewSuccessResponse())
}

// respondError converts a dispatch failure into the single terminal error
// response and mirrors it downstream best-effort.
func (s *Server) respondError(w http.ResponseWriter, r *http.Request, err error) {
	var missing *dispatch.MissingParamError
	var unknown *dispatch.UnknownTypeError

	var status int
	var resp ErrorResponse
	switch {
	case errors.As(err, &missing):
		status = http.StatusBadRequest
		resp = NewErrorResponse(CodeParameterValueMissed, missing.Error(), nil)
	case errors.As(err, &unknown):
		status = http.StatusBadRequest
		resp = NewErrorResponse(CodeUnknownEventType, unknown.Error(), nil)
	default:
		status = http.StatusInternalServerError
		resp = NewErrorResponse(CodeUnknown, "An unknown error occurred", strPtr(err.Error()))
	}

	s.log.Info("event handling failed",
		"request_id", RequestIDFromContext(r.Context()),
		"code", resp.Error.Code,
		"status", status,
		"reason", err.Error(),
	)
	s.mirrorError(resp)
	writeError(w, status, resp)
}
