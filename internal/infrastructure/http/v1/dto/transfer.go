package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"stockledger/internal/core/id"
	"stockledger/internal/core/types"
	"stockledger/internal/domain/documents/transfer"
)

// CreateTransferRequest represents a request to create a stock transfer.
type CreateTransferRequest struct {
	Number         string          `json:"number,omitempty"`
	Date           time.Time       `json:"date"`
	ProductID      string          `json:"productId" binding:"required"`
	SourceStoreID  string          `json:"sourceStoreId" binding:"required"`
	DestStoreID    string          `json:"destStoreId" binding:"required"`
	BatchID        *string         `json:"batchId,omitempty"`
	Quantity       float64         `json:"quantity" binding:"required,gt=0"`
	SourceUnitCost decimal.Decimal `json:"sourceUnitCost"`
	Reason         string          `json:"reason,omitempty"`
	Notes          string          `json:"notes,omitempty"`
}

// ToEntity converts request to domain entity.
func (r *CreateTransferRequest) ToEntity() (*transfer.StockTransfer, error) {
	productID, err := id.Parse(r.ProductID)
	if err != nil {
		return nil, err
	}
	sourceID, err := id.Parse(r.SourceStoreID)
	if err != nil {
		return nil, err
	}
	destID, err := id.Parse(r.DestStoreID)
	if err != nil {
		return nil, err
	}

	doc := transfer.New()
	doc.Number = r.Number
	if !r.Date.IsZero() {
		doc.Date = r.Date
	}
	doc.ProductID = productID
	doc.SourceStoreID = sourceID
	doc.DestStoreID = destID
	doc.BatchID = parseOptionalID(r.BatchID)
	doc.Quantity = types.NewQuantityFromFloat64(r.Quantity)
	doc.SourceUnitCost = r.SourceUnitCost
	doc.Reason = r.Reason
	doc.Notes = r.Notes

	return doc, nil
}

// UpdateTransferRequest represents a request to update a pending transfer.
type UpdateTransferRequest struct {
	Date           *time.Time       `json:"date,omitempty"`
	ProductID      *string          `json:"productId,omitempty"`
	SourceStoreID  *string          `json:"sourceStoreId,omitempty"`
	DestStoreID    *string          `json:"destStoreId,omitempty"`
	BatchID        *string          `json:"batchId,omitempty"`
	Quantity       *float64         `json:"quantity,omitempty"`
	SourceUnitCost *decimal.Decimal `json:"sourceUnitCost,omitempty"`
	Reason         *string          `json:"reason,omitempty"`
	Notes          *string          `json:"notes,omitempty"`
}

// ApplyTo applies updates to an existing entity.
func (r *UpdateTransferRequest) ApplyTo(doc *transfer.StockTransfer) {
	if r.Date != nil {
		doc.Date = *r.Date
	}
	if r.ProductID != nil {
		if parsed, err := id.Parse(*r.ProductID); err == nil {
			doc.ProductID = parsed
		}
	}
	if r.SourceStoreID != nil {
		if parsed, err := id.Parse(*r.SourceStoreID); err == nil {
			doc.SourceStoreID = parsed
		}
	}
	if r.DestStoreID != nil {
		if parsed, err := id.Parse(*r.DestStoreID); err == nil {
			doc.DestStoreID = parsed
		}
	}
	if r.BatchID != nil {
		doc.BatchID = parseOptionalID(r.BatchID)
	}
	if r.Quantity != nil {
		doc.Quantity = types.NewQuantityFromFloat64(*r.Quantity)
	}
	if r.SourceUnitCost != nil {
		doc.SourceUnitCost = *r.SourceUnitCost
	}
	if r.Reason != nil {
		doc.Reason = *r.Reason
	}
	if r.Notes != nil {
		doc.Notes = *r.Notes
	}
}

// TransferResponse represents a transfer in API responses.
type TransferResponse struct {
	DocumentResponse
	ProductID      string          `json:"productId"`
	SourceStoreID  string          `json:"sourceStoreId"`
	DestStoreID    string          `json:"destStoreId"`
	BatchID        *string         `json:"batchId,omitempty"`
	Quantity       float64         `json:"quantity"`
	SourceUnitCost decimal.Decimal `json:"sourceUnitCost"`
	Reason         string          `json:"reason,omitempty"`
}

// FromTransfer converts a domain transfer.
func FromTransfer(doc *transfer.StockTransfer) *TransferResponse {
	return &TransferResponse{
		DocumentResponse: FromDocument(doc.Document),
		ProductID:        doc.ProductID.String(),
		SourceStoreID:    doc.SourceStoreID.String(),
		DestStoreID:      doc.DestStoreID.String(),
		BatchID:          formatOptionalID(doc.BatchID),
		Quantity:         doc.Quantity.Float64(),
		SourceUnitCost:   doc.SourceUnitCost,
		Reason:           doc.Reason,
	}
}

// TransferListResponse is a paginated list of transfers.
type TransferListResponse struct {
	Items      []*TransferResponse `json:"items"`
	TotalCount int                 `json:"totalCount"`
	Limit      int                 `json:"limit"`
	Offset     int                 `json:"offset"`
}
