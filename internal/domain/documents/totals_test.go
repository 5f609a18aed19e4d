package documents

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"stockledger/internal/core/types"
)

func mkLine(qty float64, unitAmount string) Line {
	q := types.NewQuantityFromFloat64(qty)
	unit := types.MustMoney(unitAmount)
	return Line{
		Quantity:   q,
		UnitAmount: unit,
		Total:      ComputeLineTotal(q, unit),
	}
}

func TestComputeLineTotal(t *testing.T) {
	tests := []struct {
		name string
		qty  float64
		unit string
		want string
	}{
		{"whole units", 3, "10.50", "31.5"},
		{"fractional quantity", 0.5, "9.99", "5"},
		{"rounds half up", 1.5, "0.01", "0.02"},
		{"zero", 0, "100", "0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ComputeLineTotal(types.NewQuantityFromFloat64(tt.qty), types.MustMoney(tt.unit))
			assert.Equal(t, tt.want, got.String())
		})
	}
}

func TestComputeTotals(t *testing.T) {
	lines := []Line{
		mkLine(2, "10.00"),
		mkLine(1, "5.50"),
	}

	totals := ComputeTotals(lines,
		types.MustMoney("2.00"), // discount
		types.MustMoney("1.25"), // tax
		types.MustMoney("3.00"), // extra charge
		PaymentPending,
		types.ZeroMoney())

	assert.Equal(t, "25.5", totals.Subtotal.String())
	assert.Equal(t, "27.75", totals.Total.String())
	assert.Equal(t, "27.75", totals.Due.String())
}

func TestComputeTotalsDueByStatus(t *testing.T) {
	lines := []Line{mkLine(1, "100.00")}
	zero := types.ZeroMoney()

	paid := ComputeTotals(lines, zero, zero, zero, PaymentPaid, zero)
	assert.True(t, paid.Due.IsZero())

	partial := ComputeTotals(lines, zero, zero, zero, PaymentPartial, types.MustMoney("40.00"))
	assert.Equal(t, "40", partial.Due.String())

	pending := ComputeTotals(lines, zero, zero, zero, PaymentPending, zero)
	assert.Equal(t, "100", pending.Due.String())
}

func TestComputeTotalsEmptyLines(t *testing.T) {
	zero := types.ZeroMoney()
	totals := ComputeTotals(nil, zero, zero, zero, PaymentPending, zero)

	assert.True(t, totals.Subtotal.IsZero())
	assert.True(t, totals.Total.IsZero())
	assert.True(t, totals.Due.IsZero())
}

func TestComputeTotalsIsDeterministic(t *testing.T) {
	lines := []Line{mkLine(3, "7.77"), mkLine(2.5, "1.10")}
	zero := types.ZeroMoney()

	a := ComputeTotals(lines, types.MustMoney("1.00"), zero, zero, PaymentPending, zero)
	b := ComputeTotals(lines, types.MustMoney("1.00"), zero, zero, PaymentPending, zero)

	assert.True(t, a.Subtotal.Equal(b.Subtotal))
	assert.True(t, a.Total.Equal(b.Total))
	assert.True(t, a.Due.Equal(b.Due))
}

func TestRecomputeTotals(t *testing.T) {
	doc := NewTradeDocument()
	doc.Lines = []Line{mkLine(2, "10.00")}
	doc.Discount = types.MustMoney("5.00")

	doc.RecomputeTotals()

	assert.Equal(t, "20", doc.Subtotal.String())
	assert.Equal(t, "15", doc.Total.String())
	assert.Equal(t, "15", doc.Due.String())

	// Editing lines and recomputing never compounds.
	doc.Lines = append(doc.Lines, mkLine(1, "1.00"))
	doc.RecomputeTotals()
	assert.Equal(t, "21", doc.Subtotal.String())
	assert.Equal(t, "16", doc.Total.String())
}
