package razorpay

import (
	"errors"
	"testing"

	"github.com/fr0stylo/listingpay/internal/app/domain"
)

func TestNormalizeEvent(t *testing.T) {
	cases := []struct {
		name string
		body string
		want domain.PaymentEvent
	}{
		{
			name: "payment captured",
			body: `{"event":"payment.captured","payload":{"payment":{"entity":{"id":"pay_1","order_id":"order_A"}}}}`,
			want: domain.PaymentEvent{Kind: domain.EventPaymentCaptured, RawKind: "payment.captured", OrderID: "order_A", PaymentID: "pay_1"},
		},
		{
			name: "order paid falls back to order entity",
			body: `{"event":"order.paid","payload":{"order":{"entity":{"id":"order_B"}}}}`,
			want: domain.PaymentEvent{Kind: domain.EventOrderPaid, RawKind: "order.paid", OrderID: "order_B"},
		},
		{
			name: "payment order id wins over order entity",
			body: `{"event":"order.paid","payload":{"payment":{"entity":{"id":"pay_2","order_id":"order_P"}},"order":{"entity":{"id":"order_O"}}}}`,
			want: domain.PaymentEvent{Kind: domain.EventOrderPaid, RawKind: "order.paid", OrderID: "order_P", PaymentID: "pay_2"},
		},
		{
			name: "unknown kind",
			body: `{"event":"refund.created","payload":{"refund":{"entity":{"id":"rfnd_1"}}}}`,
			want: domain.PaymentEvent{Kind: domain.EventOther, RawKind: "refund.created"},
		},
		{
			name: "wrong types treated as absent",
			body: `{"event":42,"payload":{"payment":{"entity":{"id":7,"order_id":["x"]}}}}`,
			want: domain.PaymentEvent{Kind: domain.EventOther},
		},
		{
			name: "payload not an object",
			body: `{"event":"payment.authorized","payload":"nope"}`,
			want: domain.PaymentEvent{Kind: domain.EventPaymentAuthorized, RawKind: "payment.authorized"},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := NormalizeEvent([]byte(tc.body))
			if err != nil {
				t.Fatalf("NormalizeEvent returned error: %v", err)
			}
			if got != tc.want {
				t.Fatalf("NormalizeEvent = %+v, want %+v", got, tc.want)
			}
		})
	}
}

func TestNormalizeEventMalformed(t *testing.T) {
	for _, body := range []string{``, `not json`, `[1,2]`, `null`, `"text"`, `{"event":"order.paid"} trailing`} {
		_, err := NormalizeEvent([]byte(body))
		if !errors.Is(err, ErrMalformedPayload) {
			t.Fatalf("NormalizeEvent(%q) error = %v, want ErrMalformedPayload", body, err)
		}
	}
}
