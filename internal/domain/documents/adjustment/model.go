// Package adjustment provides the StockAdjustment document: a signed
// single-product quantity correction.
package adjustment

import (
	"context"

	"stockledger/internal/core/apperror"
	"stockledger/internal/core/entity"
	"stockledger/internal/core/id"
	"stockledger/internal/core/types"
	"stockledger/internal/domain/ledger"
)

// Direction of the adjustment.
type Direction string

const (
	DirectionIncrease Direction = "Increase"
	DirectionDecrease Direction = "Decrease"
)

// IsValid reports whether d is a known direction.
func (d Direction) IsValid() bool {
	return d == DirectionIncrease || d == DirectionDecrease
}

// StockAdjustment corrects the quantity of one stock key.
// Lifecycle: Pending -> Done (applies the effect exactly once) or
// Pending -> Cancelled (no effect, terminal).
type StockAdjustment struct {
	entity.Document

	ProductID id.ID  `db:"product_id" json:"productId"`
	StoreID   *id.ID `db:"store_id" json:"storeId,omitempty"`
	BatchID   *id.ID `db:"batch_id" json:"batchId,omitempty"`

	Direction Direction      `db:"direction" json:"direction"`
	Quantity  types.Quantity `db:"quantity" json:"quantity"`

	Reason string `db:"reason" json:"reason,omitempty"`
}

// New creates an adjustment in Pending status.
func New() *StockAdjustment {
	return &StockAdjustment{Document: entity.NewDocument()}
}

// DocumentType returns the document type name.
func (a *StockAdjustment) DocumentType() string {
	return "StockAdjustment"
}

// AppliedStatus returns the status entered when the effect is recorded.
func (a *StockAdjustment) AppliedStatus() entity.DocStatus {
	return entity.StatusDone
}

// StockDirectives produces the signed quantity change. A decrease that
// exceeds the available quantity fails with InsufficientStock.
func (a *StockAdjustment) StockDirectives(ctx context.Context) ([]entity.StockDirective, error) {
	delta := a.Quantity
	if a.Direction == DirectionDecrease {
		delta = delta.Neg()
	}
	return []entity.StockDirective{{
		Key:   entity.NewStockKey(a.ProductID, a.StoreID, a.BatchID),
		Delta: delta,
	}}, nil
}

// Validate implements entity.Validatable.
func (a *StockAdjustment) Validate(ctx context.Context) error {
	if err := a.Document.Validate(ctx); err != nil {
		return err
	}

	if id.IsNil(a.ProductID) {
		return apperror.NewValidation("product is required").
			WithDetail("field", "productId")
	}
	if !a.Direction.IsValid() {
		return apperror.NewValidation("unknown adjustment direction").
			WithDetail("field", "direction").
			WithDetail("value", string(a.Direction))
	}
	if !a.Quantity.IsPositive() {
		return apperror.NewValidation("quantity must be positive").
			WithDetail("field", "quantity")
	}

	return nil
}

// CanApply implements the ledger contract.
func (a *StockAdjustment) CanApply(ctx context.Context) error {
	return a.Validate(ctx)
}

var _ ledger.Effector = (*StockAdjustment)(nil)
