package dto

import (
	"stockledger/internal/core/id"
	"stockledger/internal/domain/documents/sale_return"
)

// CreateSaleReturnRequest represents a request to create a sale return.
type CreateSaleReturnRequest struct {
	TradeHeaderRequest
	OriginalSaleID string        `json:"originalSaleId" binding:"required"`
	Lines          []LineRequest `json:"lines" binding:"required,min=1,dive"`
}

// ToEntity converts request to domain entity.
func (r *CreateSaleReturnRequest) ToEntity() (*sale_return.SaleReturn, error) {
	originalID, err := id.Parse(r.OriginalSaleID)
	if err != nil {
		return nil, err
	}

	doc := sale_return.New()
	doc.OriginalSaleID = originalID
	r.TradeHeaderRequest.ApplyTo(&doc.TradeDocument)
	return doc, nil
}

// UpdateSaleReturnRequest represents a request to update a sale return.
type UpdateSaleReturnRequest struct {
	TradeHeaderRequest
	Lines []LineRequest `json:"lines" binding:"required,min=1,dive"`
}

// SaleReturnResponse represents a sale return in API responses.
type SaleReturnResponse struct {
	TradeDocumentResponse
	OriginalSaleID string `json:"originalSaleId"`
}

// FromSaleReturn converts a domain sale return.
func FromSaleReturn(doc *sale_return.SaleReturn) *SaleReturnResponse {
	return &SaleReturnResponse{
		TradeDocumentResponse: FromTradeDocument(doc.TradeDocument),
		OriginalSaleID:        doc.OriginalSaleID.String(),
	}
}

// SaleReturnListResponse is a paginated list of sale returns.
type SaleReturnListResponse struct {
	Items      []*SaleReturnResponse `json:"items"`
	TotalCount int                   `json:"totalCount"`
	Limit      int                   `json:"limit"`
	Offset     int                   `json:"offset"`
}
