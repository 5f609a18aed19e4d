// Package entity provides core domain entities.
package entity

import (
	"time"

	"stockledger/internal/core/id"
	"stockledger/internal/core/types"
)

// StockKey identifies a stock record.
// StoreID and BatchID are optional dimensions: nil means the record is
// not tracked per store / per batch.
type StockKey struct {
	ProductID id.ID  `db:"product_id" json:"productId"`
	StoreID   *id.ID `db:"store_id" json:"storeId,omitempty"`
	BatchID   *id.ID `db:"batch_id" json:"batchId,omitempty"`
}

// NewStockKey builds a key for the given product with optional dimensions.
func NewStockKey(productID id.ID, storeID, batchID *id.ID) StockKey {
	return StockKey{ProductID: productID, StoreID: storeID, BatchID: batchID}
}

// String renders the key for logs and error details.
func (k StockKey) String() string {
	s := k.ProductID.String()
	if k.StoreID != nil {
		s += "@" + k.StoreID.String()
	}
	if k.BatchID != nil {
		s += "#" + k.BatchID.String()
	}
	return s
}

// Equal compares two keys including optional dimensions.
func (k StockKey) Equal(o StockKey) bool {
	if k.ProductID != o.ProductID {
		return false
	}
	if !equalOptID(k.StoreID, o.StoreID) {
		return false
	}
	return equalOptID(k.BatchID, o.BatchID)
}

func equalOptID(a, b *id.ID) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

// StockRecord is the current balance for a stock key.
// Quantity never goes below zero. UnitCost carries the latest known
// acquisition cost (last write wins).
type StockRecord struct {
	ID id.ID `db:"id" json:"id"`

	// Dimensions
	ProductID id.ID  `db:"product_id" json:"productId"`
	StoreID   *id.ID `db:"store_id" json:"storeId,omitempty"`
	BatchID   *id.ID `db:"batch_id" json:"batchId,omitempty"`

	// Resources
	Quantity types.Quantity `db:"quantity" json:"quantity"`
	UnitCost types.Money    `db:"unit_cost" json:"unitCost"`

	// Metadata
	CreatedAt time.Time `db:"created_at" json:"createdAt"`
	UpdatedAt time.Time `db:"updated_at" json:"updatedAt"`
}

// NewStockRecord creates a record at the given key with zero quantity.
func NewStockRecord(key StockKey) StockRecord {
	now := time.Now().UTC()
	return StockRecord{
		ID:        id.New(),
		ProductID: key.ProductID,
		StoreID:   key.StoreID,
		BatchID:   key.BatchID,
		UnitCost:  types.ZeroMoney(),
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// Key returns the record's stock key.
func (r *StockRecord) Key() StockKey {
	return StockKey{ProductID: r.ProductID, StoreID: r.StoreID, BatchID: r.BatchID}
}

// StockDirective is one quantity change a document requests against the
// stock register. Directives are computed from document lines and applied
// atomically inside the document transaction.
type StockDirective struct {
	// Key selects the stock record to change
	Key StockKey

	// StockID pins the directive to a specific record when the line was
	// composed against one. The key is the fallback for new records.
	StockID *id.ID

	// Delta is the signed quantity change
	Delta types.Quantity

	// ClampAtZero floors the resulting quantity at zero instead of
	// failing when the change would drive it negative. Used by reversals.
	ClampAtZero bool

	// UnitCost is the acquisition cost to record when HasCost is set.
	// Only positive deltas carry cost (last write wins).
	UnitCost types.Money
	HasCost  bool
}

// Inverted returns a directive that undoes this one.
// Reversals always clamp at zero so that undoing an inflow after the
// stock was already consumed does not fail.
func (d StockDirective) Inverted() StockDirective {
	return StockDirective{
		Key:         d.Key,
		StockID:     d.StockID,
		Delta:       d.Delta.Neg(),
		ClampAtZero: true,
	}
}
