package domain

import "time"

// EventKind is the normalized Razorpay event discriminator.
type EventKind int

const (
	EventOther EventKind = iota
	EventPaymentCaptured
	EventPaymentAuthorized
	EventOrderPaid
)

func (k EventKind) String() string {
	switch k {
	case EventPaymentCaptured:
		return "payment.captured"
	case EventPaymentAuthorized:
		return "payment.authorized"
	case EventOrderPaid:
		return "order.paid"
	default:
		return "other"
	}
}

// TriggersMutation reports whether the event kind moves a listing to featured.
func (k EventKind) TriggersMutation() bool {
	switch k {
	case EventPaymentCaptured, EventPaymentAuthorized, EventOrderPaid:
		return true
	default:
		return false
	}
}

// ParseEventKind maps the raw event name to its kind.
func ParseEventKind(raw string) EventKind {
	switch raw {
	case "payment.captured":
		return EventPaymentCaptured
	case "payment.authorized":
		return EventPaymentAuthorized
	case "order.paid":
		return EventOrderPaid
	default:
		return EventOther
	}
}

// PaymentEvent is the untrusted projection of a webhook body. Empty strings
// mean the field was absent.
type PaymentEvent struct {
	Kind      EventKind
	RawKind   string
	OrderID   string
	PaymentID string
}

// ProviderOrder is the authoritative order as reported by the Razorpay API.
type ProviderOrder struct {
	ID               string
	AmountMinorUnits int64
	Receipt          string
}

// Payment is one recorded payment against a listing.
type Payment struct {
	ID                string
	ListingID         string
	ProviderOrderID   string
	ProviderPaymentID string
	AmountMinorUnits  int64
	Currency          string
	Status            string
	EventKind         string
	FeaturedUntil     time.Time
	CreatedAt         time.Time
}

const PaymentStatusCaptured = "captured"
