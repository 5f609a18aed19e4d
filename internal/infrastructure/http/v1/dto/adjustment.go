package dto

import (
	"time"

	"stockledger/internal/core/id"
	"stockledger/internal/core/types"
	"stockledger/internal/domain/documents/adjustment"
)

// CreateAdjustmentRequest represents a request to create a stock adjustment.
type CreateAdjustmentRequest struct {
	Number    string    `json:"number,omitempty"`
	Date      time.Time `json:"date"`
	ProductID string    `json:"productId" binding:"required"`
	StoreID   *string   `json:"storeId,omitempty"`
	BatchID   *string   `json:"batchId,omitempty"`
	Direction string    `json:"direction" binding:"required"`
	Quantity  float64   `json:"quantity" binding:"required,gt=0"`
	Reason    string    `json:"reason,omitempty"`
	Notes     string    `json:"notes,omitempty"`
}

// ToEntity converts request to domain entity.
func (r *CreateAdjustmentRequest) ToEntity() (*adjustment.StockAdjustment, error) {
	productID, err := id.Parse(r.ProductID)
	if err != nil {
		return nil, err
	}

	doc := adjustment.New()
	doc.Number = r.Number
	if !r.Date.IsZero() {
		doc.Date = r.Date
	}
	doc.ProductID = productID
	doc.StoreID = parseOptionalID(r.StoreID)
	doc.BatchID = parseOptionalID(r.BatchID)
	doc.Direction = adjustment.Direction(r.Direction)
	doc.Quantity = types.NewQuantityFromFloat64(r.Quantity)
	doc.Reason = r.Reason
	doc.Notes = r.Notes

	return doc, nil
}

// UpdateAdjustmentRequest represents a request to update a pending adjustment.
type UpdateAdjustmentRequest struct {
	Date      *time.Time `json:"date,omitempty"`
	ProductID *string    `json:"productId,omitempty"`
	StoreID   *string    `json:"storeId,omitempty"`
	BatchID   *string    `json:"batchId,omitempty"`
	Direction *string    `json:"direction,omitempty"`
	Quantity  *float64   `json:"quantity,omitempty"`
	Reason    *string    `json:"reason,omitempty"`
	Notes     *string    `json:"notes,omitempty"`
}

// ApplyTo applies updates to an existing entity.
func (r *UpdateAdjustmentRequest) ApplyTo(doc *adjustment.StockAdjustment) {
	if r.Date != nil {
		doc.Date = *r.Date
	}
	if r.ProductID != nil {
		if parsed, err := id.Parse(*r.ProductID); err == nil {
			doc.ProductID = parsed
		}
	}
	if r.StoreID != nil {
		doc.StoreID = parseOptionalID(r.StoreID)
	}
	if r.BatchID != nil {
		doc.BatchID = parseOptionalID(r.BatchID)
	}
	if r.Direction != nil {
		doc.Direction = adjustment.Direction(*r.Direction)
	}
	if r.Quantity != nil {
		doc.Quantity = types.NewQuantityFromFloat64(*r.Quantity)
	}
	if r.Reason != nil {
		doc.Reason = *r.Reason
	}
	if r.Notes != nil {
		doc.Notes = *r.Notes
	}
}

// AdjustmentResponse represents an adjustment in API responses.
type AdjustmentResponse struct {
	DocumentResponse
	ProductID string  `json:"productId"`
	StoreID   *string `json:"storeId,omitempty"`
	BatchID   *string `json:"batchId,omitempty"`
	Direction string  `json:"direction"`
	Quantity  float64 `json:"quantity"`
	Reason    string  `json:"reason,omitempty"`
}

// FromAdjustment converts a domain adjustment.
func FromAdjustment(doc *adjustment.StockAdjustment) *AdjustmentResponse {
	return &AdjustmentResponse{
		DocumentResponse: FromDocument(doc.Document),
		ProductID:        doc.ProductID.String(),
		StoreID:          formatOptionalID(doc.StoreID),
		BatchID:          formatOptionalID(doc.BatchID),
		Direction:        string(doc.Direction),
		Quantity:         doc.Quantity.Float64(),
		Reason:           doc.Reason,
	}
}

// AdjustmentListResponse is a paginated list of adjustments.
type AdjustmentListResponse struct {
	Items      []*AdjustmentResponse `json:"items"`
	TotalCount int                   `json:"totalCount"`
	Limit      int                   `json:"limit"`
	Offset     int                   `json:"offset"`
}
