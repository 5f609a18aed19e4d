package documents

import (
	"stockledger/internal/core/types"
)

// moneyScale is the rounding precision for monetary totals.
const moneyScale = 2

// Totals holds the derived header amounts.
type Totals struct {
	Subtotal types.Money `json:"subtotal"`
	Total    types.Money `json:"total"`
	Due      types.Money `json:"due"`
}

// ComputeLineTotal derives a line total from quantity and unit amount.
func ComputeLineTotal(qty types.Quantity, unitAmount types.Money) types.Money {
	return unitAmount.Mul(qty.Decimal()).Round(moneyScale)
}

// ComputeTotals derives header totals from lines and header adjustments.
// Pure function: same inputs always yield the same totals.
//
//	subtotal = sum(line totals)
//	total    = subtotal - discount + taxAmount + extraCharge
//	due      = 0 when Paid; partialDue when Partial; total otherwise
//
// extraCharge is the shipping charge for purchases, the delivery charge
// for sales.
func ComputeTotals(lines []Line, discount, taxAmount, extraCharge types.Money, status PaymentStatus, partialDue types.Money) Totals {
	subtotal := types.ZeroMoney()
	for _, line := range lines {
		subtotal = subtotal.Add(line.Total)
	}
	subtotal = subtotal.Round(moneyScale)

	total := subtotal.Sub(discount).Add(taxAmount).Add(extraCharge).Round(moneyScale)

	var due types.Money
	switch status {
	case PaymentPaid:
		due = types.ZeroMoney()
	case PaymentPartial:
		// Caller-supplied, passed through unchanged.
		due = partialDue
	default:
		due = total
	}

	return Totals{Subtotal: subtotal, Total: total, Due: due}
}

// ApplyTotals writes computed totals onto the header.
func (d *TradeDocument) ApplyTotals(t Totals) {
	d.Subtotal = t.Subtotal
	d.Total = t.Total
	d.Due = t.Due
}

// RecomputeTotals recomputes and applies totals from the document's own
// lines and header adjustments.
func (d *TradeDocument) RecomputeTotals() {
	d.ApplyTotals(ComputeTotals(d.Lines, d.Discount, d.TaxAmount, d.ExtraCharge, d.PaymentStatus, d.Due))
}
