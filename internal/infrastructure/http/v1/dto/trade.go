package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"stockledger/internal/core/id"
	"stockledger/internal/core/types"
	"stockledger/internal/domain/documents"
)

// --- Line DTOs ---

// LineRequest represents a line item in create/update requests.
type LineRequest struct {
	ProductID  string           `json:"productId" binding:"required"`
	Quantity   float64          `json:"quantity" binding:"required,gt=0"`
	UnitAmount decimal.Decimal  `json:"unitAmount"`
	BatchID    *string          `json:"batchId,omitempty"`
	StockID    *string          `json:"stockId,omitempty"`
	Total      *decimal.Decimal `json:"total,omitempty"`
}

// ToRawItem converts the request line to a composer input.
func (r LineRequest) ToRawItem() documents.RawItem {
	productID, _ := id.Parse(r.ProductID)

	item := documents.RawItem{
		ProductID:  productID,
		Quantity:   types.NewQuantityFromFloat64(r.Quantity),
		UnitAmount: r.UnitAmount,
		Total:      r.Total,
	}

	if r.BatchID != nil {
		if parsed, err := id.Parse(*r.BatchID); err == nil {
			item.BatchID = &parsed
		}
	}
	if r.StockID != nil {
		if parsed, err := id.Parse(*r.StockID); err == nil {
			item.StockID = &parsed
		}
	}

	return item
}

// ToRawItems converts a slice of line requests.
func ToRawItems(lines []LineRequest) []documents.RawItem {
	items := make([]documents.RawItem, 0, len(lines))
	for _, line := range lines {
		items = append(items, line.ToRawItem())
	}
	return items
}

// LineResponse represents a line item in responses.
type LineResponse struct {
	ID         string          `json:"id"`
	LineNo     int             `json:"lineNo"`
	ProductID  string          `json:"productId"`
	StockID    *string         `json:"stockId,omitempty"`
	BatchID    *string         `json:"batchId,omitempty"`
	Quantity   float64         `json:"quantity"`
	UnitAmount decimal.Decimal `json:"unitAmount"`
	Total      decimal.Decimal `json:"total"`
}

// FromLine converts a domain line.
func FromLine(l documents.Line) LineResponse {
	resp := LineResponse{
		ID:         l.ID.String(),
		LineNo:     l.LineNo,
		ProductID:  l.ProductID.String(),
		Quantity:   l.Quantity.Float64(),
		UnitAmount: l.UnitAmount,
		Total:      l.Total,
	}
	if l.StockID != nil {
		s := l.StockID.String()
		resp.StockID = &s
	}
	if l.BatchID != nil {
		s := l.BatchID.String()
		resp.BatchID = &s
	}
	return resp
}

// FromLines converts a slice of domain lines.
func FromLines(lines []documents.Line) []LineResponse {
	out := make([]LineResponse, len(lines))
	for i, l := range lines {
		out[i] = FromLine(l)
	}
	return out
}

// --- Trade header DTOs ---

// TradeHeaderRequest holds the shared header fields of trade documents.
type TradeHeaderRequest struct {
	Number          string    `json:"number,omitempty"`
	Date            time.Time `json:"date"`
	CounterpartyID  *string   `json:"counterpartyId,omitempty"`
	StoreID         *string   `json:"storeId,omitempty"`
	EmployeeID      *string   `json:"employeeId,omitempty"`
	PaymentMethodID *string   `json:"paymentMethodId,omitempty"`

	PaymentStatus string          `json:"paymentStatus,omitempty"`
	Discount      decimal.Decimal `json:"discount"`
	TaxAmount     decimal.Decimal `json:"taxAmount"`
	ExtraCharge   decimal.Decimal `json:"extraCharge"`

	// Due applies only when paymentStatus is Partial
	Due *decimal.Decimal `json:"due,omitempty"`

	Notes string `json:"notes,omitempty"`
}

// ApplyTo writes the header fields onto a trade document.
func (r TradeHeaderRequest) ApplyTo(doc *documents.TradeDocument) {
	doc.Number = r.Number
	if !r.Date.IsZero() {
		doc.Date = r.Date
	}
	doc.CounterpartyID = parseOptionalID(r.CounterpartyID)
	doc.StoreID = parseOptionalID(r.StoreID)
	doc.EmployeeID = parseOptionalID(r.EmployeeID)
	doc.PaymentMethodID = parseOptionalID(r.PaymentMethodID)

	if r.PaymentStatus != "" {
		doc.PaymentStatus = documents.PaymentStatus(r.PaymentStatus)
	}
	doc.Discount = r.Discount
	doc.TaxAmount = r.TaxAmount
	doc.ExtraCharge = r.ExtraCharge
	if r.Due != nil {
		doc.Due = *r.Due
	}
	doc.Notes = r.Notes
}

// TradeDocumentResponse is the shared response shape of trade documents.
type TradeDocumentResponse struct {
	DocumentResponse

	CounterpartyID  *string `json:"counterpartyId,omitempty"`
	StoreID         *string `json:"storeId,omitempty"`
	EmployeeID      *string `json:"employeeId,omitempty"`
	PaymentMethodID *string `json:"paymentMethodId,omitempty"`

	PaymentStatus string          `json:"paymentStatus"`
	Subtotal      decimal.Decimal `json:"subtotal"`
	Discount      decimal.Decimal `json:"discount"`
	TaxAmount     decimal.Decimal `json:"taxAmount"`
	ExtraCharge   decimal.Decimal `json:"extraCharge"`
	Total         decimal.Decimal `json:"total"`
	Due           decimal.Decimal `json:"due"`

	Lines []LineResponse `json:"lines"`
}

// FromTradeDocument converts the shared parts of a trade document.
func FromTradeDocument(d documents.TradeDocument) TradeDocumentResponse {
	return TradeDocumentResponse{
		DocumentResponse: FromDocument(d.Document),
		CounterpartyID:   formatOptionalID(d.CounterpartyID),
		StoreID:          formatOptionalID(d.StoreID),
		EmployeeID:       formatOptionalID(d.EmployeeID),
		PaymentMethodID:  formatOptionalID(d.PaymentMethodID),
		PaymentStatus:    string(d.PaymentStatus),
		Subtotal:         d.Subtotal,
		Discount:         d.Discount,
		TaxAmount:        d.TaxAmount,
		ExtraCharge:      d.ExtraCharge,
		Total:            d.Total,
		Due:              d.Due,
		Lines:            FromLines(d.Lines),
	}
}

// --- helpers ---

func parseOptionalID(s *string) *id.ID {
	if s == nil || *s == "" {
		return nil
	}
	parsed, err := id.Parse(*s)
	if err != nil {
		return nil
	}
	return &parsed
}

func formatOptionalID(i *id.ID) *string {
	if i == nil {
		return nil
	}
	s := i.String()
	return &s
}
