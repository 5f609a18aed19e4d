// Package sale_return provides the SaleReturn document: goods coming
// back from a customer, increasing stock for every line.
package sale_return

import (
	"context"

	"stockledger/internal/core/apperror"
	"stockledger/internal/core/entity"
	"stockledger/internal/core/id"
	"stockledger/internal/domain/documents"
	"stockledger/internal/domain/ledger"
)

// SaleReturn records goods returned against an earlier sale.
// Quantities are validated against the original sale: cumulatively, a
// product can never be returned in a greater quantity than it was sold.
type SaleReturn struct {
	documents.TradeDocument

	// OriginalSaleID references the sale being returned against
	OriginalSaleID id.ID `db:"original_document_id" json:"originalSaleId"`
}

// New creates an empty sale return in Pending status.
func New() *SaleReturn {
	return &SaleReturn{TradeDocument: documents.NewTradeDocument()}
}

// DocumentType returns the document type name.
func (r *SaleReturn) DocumentType() string {
	return "SaleReturn"
}

// AppliedStatus returns the status entered when the effect is recorded.
func (r *SaleReturn) AppliedStatus() entity.DocStatus {
	return entity.StatusCompleted
}

// StockDirectives produces the forward stock effect: returned goods go
// back onto the stock they were drawn from.
func (r *SaleReturn) StockDirectives(ctx context.Context) ([]entity.StockDirective, error) {
	directives := make([]entity.StockDirective, 0, len(r.Lines))
	for _, line := range r.Lines {
		directives = append(directives, entity.StockDirective{
			Key:     entity.NewStockKey(line.ProductID, r.StoreID, line.BatchID),
			StockID: line.StockID,
			Delta:   line.Quantity,
		})
	}
	return directives, nil
}

// Validate implements entity.Validatable.
func (r *SaleReturn) Validate(ctx context.Context) error {
	if err := r.TradeDocument.Validate(ctx); err != nil {
		return err
	}

	if id.IsNil(r.OriginalSaleID) {
		return apperror.NewValidation("original sale is required").
			WithDetail("field", "originalSaleId")
	}

	return nil
}

// CanApply implements the ledger contract.
func (r *SaleReturn) CanApply(ctx context.Context) error {
	return r.Validate(ctx)
}

var _ ledger.Effector = (*SaleReturn)(nil)
