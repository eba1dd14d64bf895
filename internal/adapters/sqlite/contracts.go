package sqlite

import (
	"context"
	"time"

	"github.com/fr0stylo/listingpay/internal/db/queries"
)

type reconciliationDatabase interface {
	InsertPaymentIfAbsent(ctx context.Context, params queries.InsertPaymentIfAbsentParams) (bool, error)
	GetPaymentByProviderRef(ctx context.Context, orderID, paymentID string) (queries.Payment, error)
	MarkListingFeatured(ctx context.Context, listingID string, until time.Time) (bool, error)
}
