// Package purchase provides the Purchase document: an inbound trade
// transaction that increases stock for every line.
package purchase

import (
	"context"

	"stockledger/internal/core/entity"
	"stockledger/internal/core/id"
	"stockledger/internal/domain/documents"
	"stockledger/internal/domain/ledger"
)

// Purchase records goods received from a supplier into a store.
// The stock record for each (product, store, batch) key is created on
// first receipt; subsequent receipts overwrite the stored unit cost
// with the latest one (last write wins).
type Purchase struct {
	documents.TradeDocument
}

// New creates an empty purchase in Pending status.
func New() *Purchase {
	return &Purchase{TradeDocument: documents.NewTradeDocument()}
}

// DocumentType returns the document type name.
func (p *Purchase) DocumentType() string {
	return "Purchase"
}

// AppliedStatus returns the status entered when the effect is recorded.
func (p *Purchase) AppliedStatus() entity.DocStatus {
	return entity.StatusCompleted
}

// StockDirectives produces the forward stock effect: one positive delta
// per line carrying the line's unit cost.
func (p *Purchase) StockDirectives(ctx context.Context) ([]entity.StockDirective, error) {
	directives := make([]entity.StockDirective, 0, len(p.Lines))
	for _, line := range p.Lines {
		directives = append(directives, entity.StockDirective{
			Key:      entity.NewStockKey(line.ProductID, p.StoreID, line.BatchID),
			Delta:    line.Quantity,
			UnitCost: line.UnitAmount,
			HasCost:  true,
		})
	}
	return directives, nil
}

// CanApply implements the ledger contract.
func (p *Purchase) CanApply(ctx context.Context) error {
	return p.Validate(ctx)
}

// SupplierID is an alias for the counterparty reference.
func (p *Purchase) SupplierID() *id.ID {
	return p.CounterpartyID
}

var _ ledger.Effector = (*Purchase)(nil)
