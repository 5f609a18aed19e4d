// Package sale provides the Sale document: an outbound trade transaction
// that decreases stock for every line.
package sale

import (
	"context"

	"stockledger/internal/core/entity"
	"stockledger/internal/core/id"
	"stockledger/internal/domain/documents"
	"stockledger/internal/domain/ledger"
)

// Sale records goods sold to a customer from a store.
type Sale struct {
	documents.TradeDocument
}

// New creates an empty sale in Pending status.
func New() *Sale {
	return &Sale{TradeDocument: documents.NewTradeDocument()}
}

// DocumentType returns the document type name.
func (s *Sale) DocumentType() string {
	return "Sale"
}

// AppliedStatus returns the status entered when the effect is recorded.
func (s *Sale) AppliedStatus() entity.DocStatus {
	return entity.StatusCompleted
}

// StockDirectives produces the forward stock effect: one negative delta
// per line against the (product, store, batch) key. Selling below the
// available quantity is rejected by the register, never clamped.
func (s *Sale) StockDirectives(ctx context.Context) ([]entity.StockDirective, error) {
	directives := make([]entity.StockDirective, 0, len(s.Lines))
	for _, line := range s.Lines {
		directives = append(directives, entity.StockDirective{
			Key:     entity.NewStockKey(line.ProductID, s.StoreID, line.BatchID),
			StockID: line.StockID,
			Delta:   line.Quantity.Neg(),
		})
	}
	return directives, nil
}

// Validate implements entity.Validatable.
func (s *Sale) Validate(ctx context.Context) error {
	if err := s.TradeDocument.Validate(ctx); err != nil {
		return err
	}
	return nil
}

// CanApply implements the ledger contract.
func (s *Sale) CanApply(ctx context.Context) error {
	return s.Validate(ctx)
}

// CustomerID is an alias for the counterparty reference.
func (s *Sale) CustomerID() *id.ID {
	return s.CounterpartyID
}

var _ ledger.Effector = (*Sale)(nil)
