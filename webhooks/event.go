package webhooks

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"

	"github.com/goliatone/go-wekeza/core"
)

type EventType string

const (
	EventTransactionPosted EventType = "transaction.posted"
	EventPaymentCompleted  EventType = "payment.completed"
	EventPaymentFailed     EventType = "payment.failed"
	EventAccountBalanceLow EventType = "account.balance_low"
)

func KnownEventTypes() []EventType {
	return []EventType{
		EventTransactionPosted,
		EventPaymentCompleted,
		EventPaymentFailed,
		EventAccountBalanceLow,
	}
}

func (t EventType) Known() bool {
	for _, known := range KnownEventTypes() {
		if t == known {
			return true
		}
	}
	return false
}

// Event is a verified, normalized webhook delivery.
type Event struct {
	Type EventType
	// Data is the event body taken from "data", or "payload" when "data" is
	// absent or null.
	Data json.RawMessage
	// Raw is the complete delivery document.
	Raw json.RawMessage
}

// Decode unmarshals the event data into target.
func (e Event) Decode(target any) error {
	data := e.Data
	if len(data) == 0 {
		data = json.RawMessage("null")
	}
	if err := json.Unmarshal(data, target); err != nil {
		return core.NewPayloadError("webhooks: decode "+string(e.Type)+" event data", err)
	}
	return nil
}

// DecodeEvent parses a delivery document that has already been verified.
func DecodeEvent(payload []byte) (Event, error) {
	var document map[string]json.RawMessage
	if err := json.Unmarshal(payload, &document); err != nil {
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) {
			return Event{}, core.NewPayloadError("webhooks: payload must be a JSON object", err)
		}
		return Event{}, core.NewPayloadError("webhooks: payload is not valid JSON", err)
	}
	if document == nil {
		return Event{}, core.NewPayloadError("webhooks: payload must be a JSON object", nil)
	}
	return normalizeEvent(document, payload), nil
}

func normalizeEvent(document map[string]json.RawMessage, raw []byte) Event {
	event := Event{Raw: append(json.RawMessage(nil), raw...)}
	for _, key := range []string{"type", "event_type"} {
		var value string
		if json.Unmarshal(document[key], &value) == nil && strings.TrimSpace(value) != "" {
			event.Type = EventType(strings.TrimSpace(value))
			break
		}
	}
	for _, key := range []string{"data", "payload"} {
		if value, ok := document[key]; ok && !isJSONNull(value) {
			event.Data = value
			break
		}
	}
	return event
}

func isJSONNull(value json.RawMessage) bool {
	trimmed := bytes.TrimSpace(value)
	return len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null"))
}
