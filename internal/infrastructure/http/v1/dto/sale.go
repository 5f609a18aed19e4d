package dto

import (
	"stockledger/internal/domain/documents/sale"
)

// CreateSaleRequest represents a request to create a sale.
type CreateSaleRequest struct {
	TradeHeaderRequest
	Lines []LineRequest `json:"lines" binding:"required,min=1,dive"`
}

// ToEntity converts request to domain entity.
func (r *CreateSaleRequest) ToEntity() *sale.Sale {
	doc := sale.New()
	r.TradeHeaderRequest.ApplyTo(&doc.TradeDocument)
	return doc
}

// UpdateSaleRequest represents a request to update a sale.
type UpdateSaleRequest struct {
	TradeHeaderRequest
	Lines []LineRequest `json:"lines" binding:"required,min=1,dive"`
}

// SaleResponse represents a sale in API responses.
type SaleResponse struct {
	TradeDocumentResponse
}

// FromSale converts a domain sale.
func FromSale(doc *sale.Sale) *SaleResponse {
	return &SaleResponse{TradeDocumentResponse: FromTradeDocument(doc.TradeDocument)}
}

// SaleListResponse is a paginated list of sales.
type SaleListResponse struct {
	Items      []*SaleResponse `json:"items"`
	TotalCount int             `json:"totalCount"`
	Limit      int             `json:"limit"`
	Offset     int             `json:"offset"`
}
