package model

import (
	"encoding/json"
	"testing"
)

func TestFlexStringDecoding(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"string", `"123"`, "123"},
		{"integer", `123`, "123"},
		{"decimal", `9.99`, "9.99"},
		{"null", `null`, ""},
		{"empty string", `""`, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var f FlexString
			if err := json.Unmarshal([]byte(tt.in), &f); err != nil {
				t.Fatalf("unmarshal %s: %v", tt.in, err)
			}
			if f.String() != tt.want {
				t.Fatalf("got %q want %q", f, tt.want)
			}
		})
	}
}

func TestEventProductsAbsentVersusEmpty(t *testing.T) {
	var absent Event
	if err := json.Unmarshal([]byte(`{"message_type":"TYPE_NEW_POSTING","posting_number":"1"}`), &absent); err != nil {
		t.Fatal(err)
	}
	if absent.Products != nil {
		t.Fatalf("expected nil products when field is absent, got %v", absent.Products)
	}

	var empty Event
	if err := json.Unmarshal([]byte(`{"message_type":"TYPE_NEW_POSTING","posting_number":"1","products":[]}`), &empty); err != nil {
		t.Fatal(err)
	}
	if empty.Products == nil || len(empty.Products) != 0 {
		t.Fatalf("expected empty non-nil products, got %v", empty.Products)
	}
}

func TestEventDecodesMixedScalarPayload(t *testing.T) {
	body := []byte(`{
		"message_type": "TYPE_NEW_POSTING",
		"posting_number": "24219509-0020-1",
		"products": [{"sku": 147451959, "quantity": 2}],
		"warehouse_id": 18850503335000,
		"seller_id": "7780142"
	}`)
	var ev Event
	if err := json.Unmarshal(body, &ev); err != nil {
		t.Fatal(err)
	}
	if ev.Products[0].SKU != "147451959" || ev.Products[0].Quantity != "2" {
		t.Fatalf("unexpected product decode: %+v", ev.Products[0])
	}
	if ev.WarehouseID == nil || *ev.WarehouseID != "18850503335000" {
		t.Fatalf("unexpected warehouse_id: %v", ev.WarehouseID)
	}
	if ev.SellerID == nil || *ev.SellerID != "7780142" {
		t.Fatalf("unexpected seller_id: %v", ev.SellerID)
	}
	if ev.InProcessAt != nil {
		t.Fatalf("expected nil in_process_at, got %v", *ev.InProcessAt)
	}
}
