package api

import (
	"encoding/json"
	"testing"
	"time"
)

func TestErrorResponseShape(t *testing.T) {
	resp := NewErrorResponse(CodeUnknown, "An unknown error occurred", strPtr("boom"))
	b, err := json.Marshal(resp)
	if err != nil {
		t.Fatal(err)
	}
	want := `{"error":{"code":"ERROR_UNKNOWN","message":"An unknown error occurred","details":"boom"}}`
	if string(b) != want {
		t.Fatalf("got %s want %s", b, want)
	}
}

func TestErrorResponseNullDetails(t *testing.T) {
	b, err := json.Marshal(NewErrorResponse(CodeParameterValueMissed, "Missing required parameter: message_type", nil))
	if err != nil {
		t.Fatal(err)
	}
	want := `{"error":{"code":"ERROR_PARAMETER_VALUE_MISSED","message":"Missing required parameter: message_type","details":null}}`
	if string(b) != want {
		t.Fatalf("got %s want %s", b, want)
	}
}

func TestPingResponseIsUTC(t *testing.T) {
	loc := time.FixedZone("UTC+7", 7*3600)
	resp := NewPingResponse(time.Date(2026, 8, 29, 19, 30, 0, 0, loc))
	if resp.Time != "2026-08-29T12:30:00Z" {
		t.Fatalf("time got %q", resp.Time)
	}
	if resp.Name != ServiceName || resp.Version != ServiceVersion {
		t.Fatalf("identity got %+v", resp)
	}
}
