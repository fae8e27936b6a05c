// Package dispatch classifies inbound events and routes their summaries to
// the downstream notifier.
package dispatch

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/go-logr/logr"

	"ozonrelay/internal/model"
	"ozonrelay/internal/notify"
)

// Kind is the closed set of event classes the relay understands. Adding a
// message type means adding a Kind and a case in Handle.
type Kind int

const (
	KindUnknown Kind = iota
	KindPing
	KindNewPosting
	KindOrderStatusUpdated
	KindStockLevelUpdated
	KindPriceUpdated
)

// Classify maps the wire discriminator onto a Kind.
func Classify(messageType string) Kind {
	switch messageType {
	case model.TypePing:
		return KindPing
	case model.TypeNewPosting:
		return KindNewPosting
	case model.TypeOrderStatusUpdated:
		return KindOrderStatusUpdated
	case model.TypeStockLevelUpdated:
		return KindStockLevelUpdated
	case model.TypePriceUpdated:
		return KindPriceUpdated
	default:
		return KindUnknown
	}
}

// MissingParamError reports an absent required field. It maps to HTTP 400
// with code ERROR_PARAMETER_VALUE_MISSED at the API boundary.
type MissingParamError struct {
	Param string
}

func (e *MissingParamError) Error() string {
	return "Missing required parameter: " + e.Param
}

// UnknownTypeError reports an unrecognized message_type. The "unknown event"
// notification has already been sent by the time it is returned.
type UnknownTypeError struct {
	MessageType string
}

func (e *UnknownTypeError) Error() string {
	return "Unknown event type: " + e.MessageType
}

// absentPlaceholder renders optional posting fields that were not sent.
const absentPlaceholder = "N/A"

type Dispatcher struct {
	notifier notify.Notifier
	log      logr.Logger
}

func New(n notify.Notifier, log logr.Logger) *Dispatcher {
	return &Dispatcher{notifier: n, log: log}
}

// Handle identifies a non-ping event, validates its required fields and
// produces exactly one downstream notification, or fails. Validation always
// precedes notification.
func (d *Dispatcher) Handle(ctx context.Context, ev *model.Event) error {
	switch Classify(ev.MessageType) {
	case KindPing:
		// Answered synchronously by the API layer; nothing to notify.
		return nil
	case KindNewPosting:
		if strings.TrimSpace(ev.PostingNumber) == "" {
			return &MissingParamError{Param: "posting_number"}
		}
		if ev.Products == nil {
			return &MissingParamError{Param: "products"}
		}
		return d.send(ctx, summarizeNewPosting(ev))
	case KindOrderStatusUpdated:
		data, err := eventData(ev)
		if err != nil {
			return err
		}
		return d.send(ctx, fmt.Sprintf("Order status updated: Order ID %s, new status: %s", data.OrderID, data.Status))
	case KindStockLevelUpdated:
		data, err := eventData(ev)
		if err != nil {
			return err
		}
		return d.send(ctx, fmt.Sprintf("Stock level updated: Product ID %s, new stock: %s", data.ProductID, data.Stock))
	case KindPriceUpdated:
		data, err := eventData(ev)
		if err != nil {
			return err
		}
		return d.send(ctx, fmt.Sprintf("Price updated: Product ID %s, new price: %s", data.ProductID, data.Price))
	default:
		if err := d.send(ctx, "Unknown event received: "+string(rawPayload(ev))); err != nil {
			return err
		}
		return &UnknownTypeError{MessageType: ev.MessageType}
	}
}

func (d *Dispatcher) send(ctx context.Context, text string) error {
	if err := d.notifier.Notify(ctx, text); err != nil {
		return fmt.Errorf("send notification: %w", err)
	}
	d.log.V(1).Info("notification sent", "text", text)
	return nil
}

// eventData faults when the nested data object is absent; field access on a
// missing object surfaces as an internal error, not a silent null render.
func eventData(ev *model.Event) (*model.EventData, error) {
	if ev.Data == nil {
		return nil, fmt.Errorf("event %s carries no data object", ev.MessageType)
	}
	return ev.Data, nil
}

func summarizeNewPosting(ev *model.Event) string {
	parts := make([]string, 0, len(ev.Products))
	for _, p := range ev.Products {
		parts = append(parts, fmt.Sprintf("SKU: %s, Quantity: %s", p.SKU, p.Quantity))
	}
	return fmt.Sprintf(
		"New Posting Received: Posting Number: %s, Products: %s, In Process At: %s, Warehouse ID: %s, Seller ID: %s",
		ev.PostingNumber,
		strings.Join(parts, ", "),
		orPlaceholder(ev.InProcessAt),
		orPlaceholder(ev.WarehouseID),
		orPlaceholder(ev.SellerID),
	)
}

func orPlaceholder(v *model.FlexString) string {
	if v == nil {
		return absentPlaceholder
	}
	return v.String()
}

func rawPayload(ev *model.Event) json.RawMessage {
	if len(ev.Raw) > 0 {
		return ev.Raw
	}
	raw, err := json.Marshal(ev)
	if err != nil {
		return json.RawMessage(`{}`)
	}
	return raw
}
