package sqlite

import (
	"github.com/fr0stylo/listingpay/internal/app/ports"
	"github.com/fr0stylo/listingpay/internal/db"
)

// ReconciliationStoreFactory opens sqlite-backed stores for payment reconciliation.
type ReconciliationStoreFactory struct {
	dbPath string
	shared *db.Database
}

// NewReconciliationStoreFactory creates a factory backed by DB path.
// Opened stores own and close their DB handle.
func NewReconciliationStoreFactory(dbPath string) *ReconciliationStoreFactory {
	return &ReconciliationStoreFactory{dbPath: dbPath}
}

// NewSharedReconciliationStoreFactory creates a factory backed by an existing shared DB handle.
// Opened stores do not close the shared handle.
func NewSharedReconciliationStoreFactory(shared *db.Database) *ReconciliationStoreFactory {
	return &ReconciliationStoreFactory{shared: shared}
}

// Open creates a request-scoped reconciliation store.
func (f *ReconciliationStoreFactory) Open() (ports.ReconciliationStore, error) {
	if f.shared != nil {
		return newReconciliationStore(f.shared, nil), nil
	}
	database, err := db.New(f.dbPath)
	if err != nil {
		return nil, err
	}
	return newReconciliationStore(database, database.Close), nil
}

var _ ports.ReconciliationStoreFactory = (*ReconciliationStoreFactory)(nil)
