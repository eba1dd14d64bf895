package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/fr0stylo/listingpay/internal/app/domain"
	"github.com/fr0stylo/listingpay/internal/app/ports"
)

const (
	defaultFeaturedDuration = 7 * 24 * time.Hour
	defaultCurrency         = "INR"
	defaultStoreTimeout     = 5 * time.Second

	writePayment = "payment"
	writeListing = "listing"
)

// ReconciliationConfig tunes how a paid order is applied.
type ReconciliationConfig struct {
	FeaturedDuration time.Duration
	Currency         string
	StoreTimeout     time.Duration
}

// ReconciliationResult describes what one Apply call changed.
type ReconciliationResult struct {
	Skipped        bool
	PaymentID      string
	PaymentCreated bool
	FeaturedUntil  time.Time
	Inconsistent   bool
	FailedWrite    string
}

// ReconciliationEngine records payments and features listings for paid orders.
type ReconciliationEngine struct {
	stores  ports.ReconciliationStoreFactory
	cfg     ReconciliationConfig
	now     func() time.Time
	newID   func() string
	metrics webhookMetrics
}

// NewReconciliationEngine constructs an engine. Zero config fields take defaults.
func NewReconciliationEngine(stores ports.ReconciliationStoreFactory, cfg ReconciliationConfig) *ReconciliationEngine {
	if cfg.FeaturedDuration <= 0 {
		cfg.FeaturedDuration = defaultFeaturedDuration
	}
	cfg.Currency = strings.ToUpper(strings.TrimSpace(cfg.Currency))
	if cfg.Currency == "" {
		cfg.Currency = defaultCurrency
	}
	if cfg.StoreTimeout <= 0 {
		cfg.StoreTimeout = defaultStoreTimeout
	}
	return &ReconciliationEngine{
		stores:  stores,
		cfg:     cfg,
		now:     time.Now,
		newID:   uuid.NewString,
		metrics: newWebhookMetrics(),
	}
}

// Apply records the payment for order and features the receipt's listing.
//
// The payment is written first. On redelivery the insert is a no-op and the
// listing is re-featured with the window stored on the original payment, so
// duplicates never extend the window and a listing write that failed earlier
// is healed. When exactly one write fails the result is marked inconsistent
// and no error is returned. When both fail nothing changed and
// ErrPersistenceFailed is returned.
func (e *ReconciliationEngine) Apply(ctx context.Context, event domain.PaymentEvent, order domain.ProviderOrder, receipt domain.Receipt) (ReconciliationResult, error) {
	if !event.Kind.TriggersMutation() || receipt.ListingID == "" {
		return ReconciliationResult{Skipped: true}, nil
	}

	store, err := e.stores.Open()
	if err != nil {
		return ReconciliationResult{}, fmt.Errorf("%w: open store: %w", ErrPersistenceFailed, err)
	}
	defer func() {
		_ = store.Close()
	}()

	orderID := order.ID
	if orderID == "" {
		orderID = event.OrderID
	}
	now := e.now().UTC()
	featuredUntil := now.Add(e.cfg.FeaturedDuration)

	result := ReconciliationResult{FeaturedUntil: featuredUntil}

	paymentCtx, cancelPayment := context.WithTimeout(ctx, e.cfg.StoreTimeout)
	payment, created, paymentErr := store.RecordPayment(paymentCtx, ports.PaymentRecord{
		ID:                e.newID(),
		ListingID:         receipt.ListingID,
		ProviderOrderID:   orderID,
		ProviderPaymentID: event.PaymentID,
		AmountMinorUnits:  order.AmountMinorUnits,
		Currency:          e.cfg.Currency,
		Status:            domain.PaymentStatusCaptured,
		EventKind:         event.Kind.String(),
		FeaturedUntil:     featuredUntil,
		CreatedAt:         now,
	})
	cancelPayment()
	if paymentErr == nil {
		result.PaymentID = payment.ID
		result.PaymentCreated = created
		if !payment.FeaturedUntil.IsZero() {
			result.FeaturedUntil = payment.FeaturedUntil
		}
	}

	listingCtx, cancelListing := context.WithTimeout(ctx, e.cfg.StoreTimeout)
	listingErr := store.MarkListingFeatured(listingCtx, receipt.ListingID, result.FeaturedUntil)
	cancelListing()

	switch {
	case paymentErr != nil && listingErr != nil:
		return result, fmt.Errorf("%w: %w", ErrPersistenceFailed, errors.Join(paymentErr, listingErr))
	case paymentErr != nil:
		result.Inconsistent = true
		result.FailedWrite = writePayment
		e.reportInconsistent(ctx, event, orderID, receipt.ListingID, writePayment, paymentErr)
	case listingErr != nil:
		result.Inconsistent = true
		result.FailedWrite = writeListing
		e.reportInconsistent(ctx, event, orderID, receipt.ListingID, writeListing, listingErr)
	}
	return result, nil
}

func (e *ReconciliationEngine) reportInconsistent(ctx context.Context, event domain.PaymentEvent, orderID, listingID, failedWrite string, err error) {
	e.metrics.recordInconsistency(ctx, failedWrite)
	slog.ErrorContext(ctx, "reconciliation_inconsistent",
		"failed_write", failedWrite,
		"listing_id", listingID,
		"order_id", orderID,
		"payment_id", event.PaymentID,
		"event", event.RawKind,
		"error", err,
	)
}
