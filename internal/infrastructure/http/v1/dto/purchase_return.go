package dto

import (
	"stockledger/internal/core/id"
	"stockledger/internal/domain/documents/purchase_return"
)

// CreatePurchaseReturnRequest represents a request to create a purchase return.
type CreatePurchaseReturnRequest struct {
	TradeHeaderRequest
	OriginalPurchaseID string        `json:"originalPurchaseId" binding:"required"`
	Lines              []LineRequest `json:"lines" binding:"required,min=1,dive"`
}

// ToEntity converts request to domain entity.
func (r *CreatePurchaseReturnRequest) ToEntity() (*purchase_return.PurchaseReturn, error) {
	originalID, err := id.Parse(r.OriginalPurchaseID)
	if err != nil {
		return nil, err
	}

	doc := purchase_return.New()
	doc.OriginalPurchaseID = originalID
	r.TradeHeaderRequest.ApplyTo(&doc.TradeDocument)
	return doc, nil
}

// UpdatePurchaseReturnRequest represents a request to update a purchase return.
type UpdatePurchaseReturnRequest struct {
	TradeHeaderRequest
	Lines []LineRequest `json:"lines" binding:"required,min=1,dive"`
}

// PurchaseReturnResponse represents a purchase return in API responses.
type PurchaseReturnResponse struct {
	TradeDocumentResponse
	OriginalPurchaseID string `json:"originalPurchaseId"`
}

// FromPurchaseReturn converts a domain purchase return.
func FromPurchaseReturn(doc *purchase_return.PurchaseReturn) *PurchaseReturnResponse {
	return &PurchaseReturnResponse{
		TradeDocumentResponse: FromTradeDocument(doc.TradeDocument),
		OriginalPurchaseID:    doc.OriginalPurchaseID.String(),
	}
}

// PurchaseReturnListResponse is a paginated list of purchase returns.
type PurchaseReturnListResponse struct {
	Items      []*PurchaseReturnResponse `json:"items"`
	TotalCount int                       `json:"totalCount"`
	Limit      int                       `json:"limit"`
	Offset     int                       `json:"offset"`
}
