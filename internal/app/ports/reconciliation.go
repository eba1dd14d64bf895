package ports

import (
	"context"
	"errors"
	"time"

	"github.com/fr0stylo/listingpay/internal/app/domain"
)

var (
	// ErrProviderNotConfigured indicates missing payment provider credentials.
	ErrProviderNotConfigured = errors.New("payment provider not configured")
	// ErrProviderUnavailable indicates a transient provider failure worth redelivering.
	ErrProviderUnavailable = errors.New("payment provider unavailable")
	// ErrOrderNotFound indicates the provider has no order with the requested id.
	ErrOrderNotFound = errors.New("provider order not found")
	// ErrListingNotFound indicates no listing row matched a featured update.
	ErrListingNotFound = errors.New("listing not found")
)

// OrderResolver fetches authoritative order data from the payment provider.
type OrderResolver interface {
	FetchOrder(ctx context.Context, orderID string) (domain.ProviderOrder, error)
}

// PaymentRecord is one insert-if-absent payment write.
type PaymentRecord struct {
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

// ReconciliationStore is the storage contract for applying a paid order.
type ReconciliationStore interface {
	// RecordPayment inserts the payment unless one exists for the same provider
	// order and payment ids. It returns the stored row and whether it was created.
	RecordPayment(ctx context.Context, record PaymentRecord) (domain.Payment, bool, error)
	// MarkListingFeatured sets the listing featured and paid through until,
	// never moving an existing window backwards.
	MarkListingFeatured(ctx context.Context, listingID string, until time.Time) error
	Close() error
}

// ReconciliationStoreFactory creates request-scoped reconciliation stores.
type ReconciliationStoreFactory interface {
	Open() (ReconciliationStore, error)
}
