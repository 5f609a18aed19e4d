// Package stock provides the stock record register.
package stock

import (
	"context"

	"stockledger/internal/core/entity"
	"stockledger/internal/core/id"
	"stockledger/internal/core/types"
)

// Repository defines storage operations for stock records.
// Returns (nil, nil) from the Get variants when no record exists for the key.
type Repository interface {
	// Get returns the current record for a key without locking.
	Get(ctx context.Context, key entity.StockKey) (*entity.StockRecord, error)

	// GetForUpdate returns the record with a row lock.
	// Callers must hold an open transaction.
	GetForUpdate(ctx context.Context, key entity.StockKey) (*entity.StockRecord, error)

	// GetByID retrieves a record by its identity.
	GetByID(ctx context.Context, recordID id.ID) (*entity.StockRecord, error)

	// GetForUpdateByID retrieves a record by its identity with a row lock.
	// Callers must hold an open transaction.
	GetForUpdateByID(ctx context.Context, recordID id.ID) (*entity.StockRecord, error)

	// Insert creates a new record.
	Insert(ctx context.Context, record *entity.StockRecord) error

	// Update persists quantity and unit cost changes.
	Update(ctx context.Context, record *entity.StockRecord) error

	// ListByProduct returns records across all stores for a product.
	ListByProduct(ctx context.Context, productID id.ID) ([]entity.StockRecord, error)

	// ListByStore returns records for a store.
	ListByStore(ctx context.Context, storeID id.ID, filter RecordFilter) ([]entity.StockRecord, error)
}

// RecordFilter for filtering record queries.
type RecordFilter struct {
	ProductIDs  []id.ID
	ExcludeZero bool
	MinQuantity *types.Quantity
	Limit       int
	Offset      int
}
