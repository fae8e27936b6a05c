// Package model defines the inbound event types pushed by the commerce platform.
package model

import "encoding/json"

// Message types pushed to the relay. Anything else is treated as unknown.
const (
	TypePing               = "TYPE_PING"
	TypeNewPosting         = "TYPE_NEW_POSTING"
	TypeOrderStatusUpdated = "ORDER_STATUS_UPDATED"
	TypeStockLevelUpdated  = "STOCK_LEVEL_UPDATED"
	TypePriceUpdated       = "PRICE_UPDATED"
)

// FlexString decodes a JSON string or a bare scalar literal (number, bool)
// into its verbatim text. Platform payloads are inconsistent about quoting
// numeric IDs, and summaries must render the value exactly as sent.
type FlexString string

func (f *FlexString) UnmarshalJSON(data []byte) error {
	if len(data) == 0 || string(data) == "null" {
		*f = ""
		return nil
	}
	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*f = FlexString(s)
		return nil
	}
	*f = FlexString(data)
	return nil
}

func (f FlexString) String() string { return string(f) }

// PostingProduct is one line item of a new posting.
type PostingProduct struct {
	SKU      FlexString `json:"sku"`
	Quantity FlexString `json:"quantity"`
}

// EventData is the nested payload of status/stock/price events. The platform
// does not guarantee which fields are set for which type; absent fields
// decode to the empty string.
type EventData struct {
	OrderID   FlexString `json:"order_id"`
	Status    FlexString `json:"status"`
	ProductID FlexString `json:"product_id"`
	Stock     FlexString `json:"stock"`
	Price     FlexString `json:"price"`
}

// Event is one inbound notification payload. It lives for a single request:
// decoded from the body, consumed by the dispatcher, then discarded.
type Event struct {
	MessageType string `json:"message_type"`
	Time        string `json:"time,omitempty"`

	PostingNumber string           `json:"posting_number,omitempty"`
	Products      []PostingProduct `json:"products,omitempty"`
	InProcessAt   *FlexString      `json:"in_process_at,omitempty"`
	WarehouseID   *FlexString      `json:"warehouse_id,omitempty"`
	SellerID      *FlexString      `json:"seller_id,omitempty"`

	Data *EventData `json:"data,omitempty"`

	// Raw is the undecoded request body, kept for whole-payload
	// serialization of unknown event types.
	Raw json.RawMessage `json:"-"`
}
