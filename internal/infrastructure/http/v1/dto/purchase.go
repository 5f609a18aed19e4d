package dto

import (
	"stockledger/internal/domain/documents/purchase"
)

// CreatePurchaseRequest represents a request to create a purchase.
type CreatePurchaseRequest struct {
	TradeHeaderRequest
	Lines []LineRequest `json:"lines" binding:"required,min=1,dive"`
}

// ToEntity converts request to domain entity.
func (r *CreatePurchaseRequest) ToEntity() *purchase.Purchase {
	doc := purchase.New()
	r.TradeHeaderRequest.ApplyTo(&doc.TradeDocument)
	return doc
}

// UpdatePurchaseRequest represents a request to update a purchase.
type UpdatePurchaseRequest struct {
	TradeHeaderRequest
	Lines []LineRequest `json:"lines" binding:"required,min=1,dive"`
}

// PurchaseResponse represents a purchase in API responses.
type PurchaseResponse struct {
	TradeDocumentResponse
}

// FromPurchase converts a domain purchase.
func FromPurchase(doc *purchase.Purchase) *PurchaseResponse {
	return &PurchaseResponse{TradeDocumentResponse: FromTradeDocument(doc.TradeDocument)}
}

// PurchaseListResponse is a paginated list of purchases.
type PurchaseListResponse struct {
	Items      []*PurchaseResponse `json:"items"`
	TotalCount int                 `json:"totalCount"`
	Limit      int                 `json:"limit"`
	Offset     int                 `json:"offset"`
}
