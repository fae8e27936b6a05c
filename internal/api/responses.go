package api

import "time"

// Process-wide identity reported on the ping path.
const (
	ServiceName    = "ozon-webhook-relay"
	ServiceVersion = "1.0.0"
)

// Error codes visible to the sender.
const (
	CodeParameterValueMissed = "ERROR_PARAMETER_VALUE_MISSED"
	CodeUnknownEventType     = "ERROR_UNKNOWN_EVENT_TYPE"
	CodeUnknown              = "ERROR_UNKNOWN"
)

// ErrorBody is always nested under the "error" key; details serializes as
// JSON null when absent.
type ErrorBody struct {
	Code    string  `json:"code"`
	Message string  `json:"message"`
	Details *string `json:"details"`
}

type ErrorResponse struct {
	Error ErrorBody `json:"error"`
}

type PingResponse struct {
	Version string `json:"version"`
	Name    string `json:"name"`
	Time    string `json:"time"`
}

type SuccessResponse struct {
	Result bool `json:"result"`
}

func NewErrorResponse(code, message string, details *string) ErrorResponse {
	return ErrorResponse{Error: ErrorBody{Code: code, Message: message, Details: details}}
}

func NewPingResponse(now time.Time) PingResponse {
	return PingResponse{
		Version: ServiceVersion,
		Name:    ServiceName,
		Time:    now.UTC().Format(time.RFC3339),
	}
}

func NewSuccessResponse() SuccessResponse {
	return SuccessResponse{Result: true}
}
