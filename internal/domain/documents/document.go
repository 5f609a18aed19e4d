// Package documents provides shared types and logic for trade documents:
// headers, line items, totals and line composition.
package documents

import (
	"context"

	"stockledger/internal/core/apperror"
	"stockledger/internal/core/entity"
	"stockledger/internal/core/id"
	"stockledger/internal/core/types"
)

// PaymentStatus is the settlement state of a trade document header.
type PaymentStatus string

const (
	PaymentPending   PaymentStatus = "Pending"
	PaymentPartial   PaymentStatus = "Partial"
	PaymentPaid      PaymentStatus = "Paid"
	PaymentCancelled PaymentStatus = "Cancelled"
)

// IsValid reports whether s is a known payment status.
func (s PaymentStatus) IsValid() bool {
	switch s {
	case PaymentPending, PaymentPartial, PaymentPaid, PaymentCancelled:
		return true
	}
	return false
}

// Line is one item of a trade document.
type Line struct {
	ID         id.ID `db:"id" json:"id"`
	DocumentID id.ID `db:"document_id" json:"documentId"`
	LineNo     int   `db:"line_no" json:"lineNo"`

	ProductID id.ID  `db:"product_id" json:"productId"`
	StockID   *id.ID `db:"stock_id" json:"stockId,omitempty"`
	BatchID   *id.ID `db:"batch_id" json:"batchId,omitempty"`

	Quantity   types.Quantity `db:"quantity" json:"quantity"`
	UnitAmount types.Money    `db:"unit_amount" json:"unitAmount"`
	Total      types.Money    `db:"total" json:"total"`
}

// TradeDocument is the shared header for Sale, Purchase, SaleReturn and
// PurchaseReturn. Lines are loaded and saved alongside the header.
type TradeDocument struct {
	entity.Document

	CounterpartyID  *id.ID `db:"counterparty_id" json:"counterpartyId,omitempty"`
	StoreID         *id.ID `db:"store_id" json:"storeId,omitempty"`
	EmployeeID      *id.ID `db:"employee_id" json:"employeeId,omitempty"`
	PaymentMethodID *id.ID `db:"payment_method_id" json:"paymentMethodId,omitempty"`

	PaymentStatus PaymentStatus `db:"payment_status" json:"paymentStatus"`

	Subtotal    types.Money `db:"subtotal" json:"subtotal"`
	Discount    types.Money `db:"discount" json:"discount"`
	TaxAmount   types.Money `db:"tax_amount" json:"taxAmount"`
	ExtraCharge types.Money `db:"extra_charge" json:"extraCharge"`
	Total       types.Money `db:"total" json:"total"`
	Due         types.Money `db:"due" json:"due"`

	// Lines are stored in a separate table
	Lines []Line `db:"-" json:"lines"`
}

// NewTradeDocument creates a header in Pending status with zero totals.
func NewTradeDocument() TradeDocument {
	return TradeDocument{
		Document:      entity.NewDocument(),
		PaymentStatus: PaymentPending,
		Subtotal:      types.ZeroMoney(),
		Discount:      types.ZeroMoney(),
		TaxAmount:     types.ZeroMoney(),
		ExtraCharge:   types.ZeroMoney(),
		Total:         types.ZeroMoney(),
		Due:           types.ZeroMoney(),
	}
}

// Validate implements entity.Validatable.
func (d *TradeDocument) Validate(ctx context.Context) error {
	if err := d.Document.Validate(ctx); err != nil {
		return err
	}

	if !d.PaymentStatus.IsValid() {
		return apperror.NewValidation("unknown payment status").
			WithDetail("field", "paymentStatus").
			WithDetail("value", string(d.PaymentStatus))
	}

	if d.Discount.IsNegative() {
		return apperror.NewValidation("discount cannot be negative").
			WithDetail("field", "discount")
	}
	if d.TaxAmount.IsNegative() {
		return apperror.NewValidation("tax amount cannot be negative").
			WithDetail("field", "taxAmount")
	}
	if d.ExtraCharge.IsNegative() {
		return apperror.NewValidation("extra charge cannot be negative").
			WithDetail("field", "extraCharge")
	}

	if len(d.Lines) == 0 {
		return apperror.NewValidation("document must have at least one line").
			WithDetail("field", "lines")
	}
	for i, line := range d.Lines {
		if id.IsNil(line.ProductID) {
			return apperror.NewValidation("line product is required").
				WithDetail("line", i)
		}
		if !line.Quantity.IsPositive() {
			return apperror.NewValidation("line quantity must be positive").
				WithDetail("line", i).
				WithDetail("product_id", line.ProductID.String())
		}
		if line.UnitAmount.IsNegative() {
			return apperror.NewValidation("line unit amount cannot be negative").
				WithDetail("line", i)
		}
	}

	return nil
}

// LineQuantities returns the quantity per product across all lines.
// Products appearing on several lines are summed.
func (d *TradeDocument) LineQuantities() map[id.ID]types.Quantity {
	result := make(map[id.ID]types.Quantity, len(d.Lines))
	for _, line := range d.Lines {
		result[line.ProductID] += line.Quantity
	}
	return result
}

// SetLines replaces the line set, renumbering and stamping document ID.
func (d *TradeDocument) SetLines(lines []Line) {
	for i := range lines {
		lines[i].DocumentID = d.ID
		lines[i].LineNo = i + 1
		if id.IsNil(lines[i].ID) {
			lines[i].ID = id.New()
		}
	}
	d.Lines = lines
}
