// Package purchase_return provides the PurchaseReturn document: goods
// returned against an earlier purchase, increasing the referenced stock
// for every line.
package purchase_return

import (
	"context"

	"stockledger/internal/core/apperror"
	"stockledger/internal/core/entity"
	"stockledger/internal/core/id"
	"stockledger/internal/domain/documents"
	"stockledger/internal/domain/ledger"
)

// PurchaseReturn records goods returned against an earlier purchase.
// Like a sale return, quantities are validated cumulatively against the
// original document.
type PurchaseReturn struct {
	documents.TradeDocument

	// OriginalPurchaseID references the purchase being returned against
	OriginalPurchaseID id.ID `db:"original_document_id" json:"originalPurchaseId"`
}

// New creates an empty purchase return in Pending status.
func New() *PurchaseReturn {
	return &PurchaseReturn{TradeDocument: documents.NewTradeDocument()}
}

// DocumentType returns the document type name.
func (r *PurchaseReturn) DocumentType() string {
	return "PurchaseReturn"
}

// AppliedStatus returns the status entered when the effect is recorded.
func (r *PurchaseReturn) AppliedStatus() entity.DocStatus {
	return entity.StatusCompleted
}

// StockDirectives produces the forward stock effect: one positive delta
// per line against the referenced stock. Cancelling the document undoes
// the increment, clamped at zero when the quantity has already been
// consumed.
func (r *PurchaseReturn) StockDirectives(ctx context.Context) ([]entity.StockDirective, error) {
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
func (r *PurchaseReturn) Validate(ctx context.Context) error {
	if err := r.TradeDocument.Validate(ctx); err != nil {
		return err
	}

	if id.IsNil(r.OriginalPurchaseID) {
		return apperror.NewValidation("original purchase is required").
			WithDetail("field", "originalPurchaseId")
	}

	return nil
}

// CanApply implements the ledger contract.
func (r *PurchaseReturn) CanApply(ctx context.Context) error {
	return r.Validate(ctx)
}

var _ ledger.Effector = (*PurchaseReturn)(nil)
