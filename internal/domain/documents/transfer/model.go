// Package transfer provides the StockTransfer document: a single-product
// movement between two stores.
package transfer

import (
	"context"

	"stockledger/internal/core/apperror"
	"stockledger/internal/core/entity"
	"stockledger/internal/core/id"
	"stockledger/internal/core/types"
	"stockledger/internal/domain/ledger"
)

// StockTransfer moves a quantity of one product from a source store to
// a destination store. Lifecycle: Pending -> Completed (applies both
// legs exactly once) or Pending -> Cancelled (no effect, terminal).
//
// Conservation holds by construction: the source decrement and the
// destination increment carry the same quantity and commit in the same
// transaction.
type StockTransfer struct {
	entity.Document

	ProductID     id.ID  `db:"product_id" json:"productId"`
	SourceStoreID id.ID  `db:"source_store_id" json:"sourceStoreId"`
	DestStoreID   id.ID  `db:"dest_store_id" json:"destStoreId"`
	BatchID       *id.ID `db:"batch_id" json:"batchId,omitempty"`

	Quantity types.Quantity `db:"quantity" json:"quantity"`

	// SourceUnitCost is captured from the source stock record when the
	// transfer completes, so the destination record keeps the valuation.
	SourceUnitCost types.Money `db:"source_unit_cost" json:"sourceUnitCost"`

	Reason string `db:"reason" json:"reason,omitempty"`
}

// New creates a transfer in Pending status.
func New() *StockTransfer {
	return &StockTransfer{
		Document:       entity.NewDocument(),
		SourceUnitCost: types.ZeroMoney(),
	}
}

// DocumentType returns the document type name.
func (t *StockTransfer) DocumentType() string {
	return "StockTransfer"
}

// AppliedStatus returns the status entered when the effect is recorded.
func (t *StockTransfer) AppliedStatus() entity.DocStatus {
	return entity.StatusCompleted
}

// StockDirectives produces both legs: the source decrement (fails with
// InsufficientStock on shortfall) and the destination increment carrying
// the source unit cost.
func (t *StockTransfer) StockDirectives(ctx context.Context) ([]entity.StockDirective, error) {
	sourceStore := t.SourceStoreID
	destStore := t.DestStoreID
	return []entity.StockDirective{
		{
			Key:   entity.NewStockKey(t.ProductID, &sourceStore, t.BatchID),
			Delta: t.Quantity.Neg(),
		},
		{
			Key:      entity.NewStockKey(t.ProductID, &destStore, t.BatchID),
			Delta:    t.Quantity,
			UnitCost: t.SourceUnitCost,
			HasCost:  true,
		},
	}, nil
}

// Validate implements entity.Validatable.
func (t *StockTransfer) Validate(ctx context.Context) error {
	if err := t.Document.Validate(ctx); err != nil {
		return err
	}

	if id.IsNil(t.ProductID) {
		return apperror.NewValidation("product is required").
			WithDetail("field", "productId")
	}
	if id.IsNil(t.SourceStoreID) {
		return apperror.NewValidation("source store is required").
			WithDetail("field", "sourceStoreId")
	}
	if id.IsNil(t.DestStoreID) {
		return apperror.NewValidation("destination store is required").
			WithDetail("field", "destStoreId")
	}
	if t.SourceStoreID == t.DestStoreID {
		return apperror.NewValidation("source and destination stores must differ").
			WithDetail("field", "destStoreId")
	}
	if !t.Quantity.IsPositive() {
		return apperror.NewValidation("quantity must be positive").
			WithDetail("field", "quantity")
	}

	return nil
}

// CanApply implements the ledger contract.
func (t *StockTransfer) CanApply(ctx context.Context) error {
	return t.Validate(ctx)
}

var _ ledger.Effector = (*StockTransfer)(nil)
