package db

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/fr0stylo/listingpay/internal/db/queries"
)

// RepairStats summarizes one featured-listing repair pass.
type RepairStats struct {
	Scanned        int
	ListingsHealed int
	OrphanPayments int
}

// CreateListing inserts a listing row with default (unfeatured, unpaid) state.
func (c *Database) CreateListing(ctx context.Context, id, title string) (queries.Listing, error) {
	return c.Queries.CreateListing(ctx, queries.CreateListingParams{ID: id, Title: title})
}

// MarkListingFeatured flags the listing featured and paid, moving featured_until
// forward to until when it is currently earlier. Reports false when no listing matched.
func (c *Database) MarkListingFeatured(ctx context.Context, listingID string, until time.Time) (bool, error) {
	affected, err := c.Queries.MarkListingFeatured(ctx, queries.MarkListingFeaturedParams{
		FeaturedUntilMs: sql.NullInt64{Int64: until.UTC().UnixMilli(), Valid: true},
		ID:              listingID,
	})
	if err != nil {
		return false, err
	}
	return affected > 0, nil
}

// InsertPaymentIfAbsent inserts the payment unless one already exists for the
// same provider order and payment ids. Reports whether a row was created.
func (c *Database) InsertPaymentIfAbsent(ctx context.Context, params queries.InsertPaymentIfAbsentParams) (bool, error) {
	affected, err := c.Queries.InsertPaymentIfAbsent(ctx, params)
	if err != nil {
		return false, err
	}
	return affected > 0, nil
}

// GetPaymentByProviderRef fetches the payment recorded for a provider order/payment pair.
func (c *Database) GetPaymentByProviderRef(ctx context.Context, orderID, paymentID string) (queries.Payment, error) {
	return c.Queries.GetPaymentByProviderRef(ctx, queries.GetPaymentByProviderRefParams{
		ProviderOrderID:   orderID,
		ProviderPaymentID: paymentID,
	})
}

// RepairFeaturedListings re-applies the feature window granted by every
// still-active payment whose listing is not featured through that window.
func (c *Database) RepairFeaturedListings(ctx context.Context, now time.Time) (RepairStats, error) {
	var stats RepairStats
	err := c.WithTx(ctx, func(q *queries.Queries) error {
		pending, err := q.ListPaymentsNeedingListingRepair(ctx, now.UTC().UnixMilli())
		if err != nil {
			return fmt.Errorf("list payments needing repair: %w", err)
		}
		stats.Scanned = len(pending)
		for _, payment := range pending {
			affected, err := q.MarkListingFeatured(ctx, queries.MarkListingFeaturedParams{
				FeaturedUntilMs: sql.NullInt64{Int64: payment.FeaturedUntilMs, Valid: true},
				ID:              payment.ListingID,
			})
			if err != nil {
				return fmt.Errorf("repair listing %s: %w", payment.ListingID, err)
			}
			if affected > 0 {
				stats.ListingsHealed++
			}
		}

		orphans, err := q.ListOrphanPayments(ctx)
		if err != nil {
			return fmt.Errorf("list orphan payments: %w", err)
		}
		stats.OrphanPayments = len(orphans)
		return nil
	})
	return stats, err
}

// WithTx runs a function within a transaction.
func (c *Database) WithTx(ctx context.Context, fn func(*queries.Queries) error) error {
	tx, err := c.db.BeginTx(ctx, &sql.TxOptions{})
	if err != nil {
		return err
	}
	if err := fn(queries.New(newInstrumentedDBTX(tx, c.tracker))); err != nil {
		if rollbackErr := tx.Rollback(); rollbackErr != nil {
			return rollbackErr
		}
		return err
	}
	return tx.Commit()
}
