package razorpay

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/fr0stylo/listingpay/internal/app/domain"
)

// ErrMalformedPayload indicates a webhook body that is not a JSON object.
var ErrMalformedPayload = errors.New("malformed webhook payload")

// NormalizeEvent extracts the event kind and provider references from a raw
// webhook body. Fields that are missing or of an unexpected type come back empty.
func NormalizeEvent(body []byte) (domain.PaymentEvent, error) {
	raw, err := decodeObject(body)
	if err != nil {
		return domain.PaymentEvent{}, fmt.Errorf("%w: %v", ErrMalformedPayload, err)
	}

	rawKind := readString(raw, "event")
	payload := readMap(raw, "payload")
	paymentEntity := readMap(readMap(payload, "payment"), "entity")
	orderEntity := readMap(readMap(payload, "order"), "entity")

	orderID := readString(paymentEntity, "order_id")
	if orderID == "" {
		orderID = readString(orderEntity, "id")
	}

	return domain.PaymentEvent{
		Kind:      domain.ParseEventKind(rawKind),
		RawKind:   rawKind,
		OrderID:   orderID,
		PaymentID: readString(paymentEntity, "id"),
	}, nil
}

func decodeObject(body []byte) (map[string]interface{}, error) {
	decoder := json.NewDecoder(bytes.NewReader(body))
	decoder.UseNumber()
	var raw map[string]interface{}
	if err := decoder.Decode(&raw); err != nil {
		return nil, err
	}
	if raw == nil {
		return nil, errors.New("payload is not an object")
	}
	if _, err := decoder.Token(); !errors.Is(err, io.EOF) {
		return nil, errors.New("trailing data after payload")
	}
	return raw, nil
}

func readString(raw map[string]interface{}, key string) string {
	if raw == nil || strings.TrimSpace(key) == "" {
		return ""
	}
	value, ok := raw[key].(string)
	if !ok {
		return ""
	}
	return strings.TrimSpace(value)
}

func readMap(raw map[string]interface{}, key string) map[string]interface{} {
	if raw == nil || strings.TrimSpace(key) == "" {
		return nil
	}
	mapped, ok := raw[key].(map[string]interface{})
	if !ok {
		return nil
	}
	return mapped
}

func readInt64(raw map[string]interface{}, key string) (int64, bool) {
	if raw == nil {
		return 0, false
	}
	switch typed := raw[key].(type) {
	case json.Number:
		parsed, err := typed.Int64()
		if err != nil {
			return 0, false
		}
		return parsed, true
	case float64:
		return int64(typed), true
	case string:
		parsed, err := strconv.ParseInt(strings.TrimSpace(typed), 10, 64)
		if err != nil {
			return 0, false
		}
		return parsed, true
	default:
		return 0, false
	}
}
