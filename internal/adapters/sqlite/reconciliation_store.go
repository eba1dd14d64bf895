package sqlite

import (
	"context"
	"fmt"
	"time"

	"github.com/fr0stylo/listingpay/internal/app/domain"
	"github.com/fr0stylo/listingpay/internal/app/ports"
	"github.com/fr0stylo/listingpay/internal/db/queries"
)

type reconciliationStore struct {
	db      reconciliationDatabase
	closeFn func() error
}

func newReconciliationStore(database reconciliationDatabase, closeFn func() error) *reconciliationStore {
	return &reconciliationStore{db: database, closeFn: closeFn}
}

func (s *reconciliationStore) RecordPayment(ctx context.Context, record ports.PaymentRecord) (domain.Payment, bool, error) {
	params := queries.InsertPaymentIfAbsentParams{
		ID:                record.ID,
		ListingID:         record.ListingID,
		ProviderOrderID:   record.ProviderOrderID,
		ProviderPaymentID: record.ProviderPaymentID,
		AmountMinor:       record.AmountMinorUnits,
		Currency:          record.Currency,
		Status:            record.Status,
		EventKind:         record.EventKind,
		FeaturedUntilMs:   record.FeaturedUntil.UTC().UnixMilli(),
		CreatedAtMs:       record.CreatedAt.UTC().UnixMilli(),
	}
	created, err := s.db.InsertPaymentIfAbsent(ctx, params)
	if err != nil {
		return domain.Payment{}, false, fmt.Errorf("insert payment: %w", err)
	}
	if created {
		return mapPayment(queries.Payment(params)), true, nil
	}

	existing, err := s.db.GetPaymentByProviderRef(ctx, record.ProviderOrderID, record.ProviderPaymentID)
	if err != nil {
		return domain.Payment{}, false, fmt.Errorf("load existing payment: %w", err)
	}
	return mapPayment(existing), false, nil
}

func (s *reconciliationStore) MarkListingFeatured(ctx context.Context, listingID string, until time.Time) error {
	found, err := s.db.MarkListingFeatured(ctx, listingID, until)
	if err != nil {
		return fmt.Errorf("mark listing featured: %w", err)
	}
	if !found {
		return fmt.Errorf("%w: %s", ports.ErrListingNotFound, listingID)
	}
	return nil
}

func (s *reconciliationStore) Close() error {
	if s.closeFn == nil {
		return nil
	}
	return s.closeFn()
}

func mapPayment(row queries.Payment) domain.Payment {
	return domain.Payment{
		ID:                row.ID,
		ListingID:         row.ListingID,
		ProviderOrderID:   row.ProviderOrderID,
		ProviderPaymentID: row.ProviderPaymentID,
		AmountMinorUnits:  row.AmountMinor,
		Currency:          row.Currency,
		Status:            row.Status,
		EventKind:         row.EventKind,
		FeaturedUntil:     time.UnixMilli(row.FeaturedUntilMs).UTC(),
		CreatedAt:         time.UnixMilli(row.CreatedAtMs).UTC(),
	}
}

var _ ports.ReconciliationStore = (*reconciliationStore)(nil)
