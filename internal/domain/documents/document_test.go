package documents

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"stockledger/internal/core/id"
	"stockledger/internal/core/types"
)

func validTradeDoc(t *testing.T) TradeDocument {
	t.Helper()
	doc := NewTradeDocument()
	doc.Number = "S-000001"
	line := mkLine(2, "10.00")
	line.ProductID = id.New()
	doc.SetLines([]Line{line})
	return doc
}

func TestTradeDocumentValidate(t *testing.T) {
	ctx := context.Background()

	t.Run("valid", func(t *testing.T) {
		doc := validTradeDoc(t)
		assert.NoError(t, doc.Validate(ctx))
	})

	tests := []struct {
		name   string
		mutate func(*TradeDocument)
	}{
		{"unknown payment status", func(d *TradeDocument) { d.PaymentStatus = "Settled" }},
		{"negative discount", func(d *TradeDocument) { d.Discount = types.MustMoney("-1") }},
		{"negative tax", func(d *TradeDocument) { d.TaxAmount = types.MustMoney("-0.01") }},
		{"negative extra charge", func(d *TradeDocument) { d.ExtraCharge = types.MustMoney("-5") }},
		{"no lines", func(d *TradeDocument) { d.Lines = nil }},
		{"line without product", func(d *TradeDocument) { d.Lines[0].ProductID = id.Nil() }},
		{"zero quantity", func(d *TradeDocument) { d.Lines[0].Quantity = 0 }},
		{"negative quantity", func(d *TradeDocument) { d.Lines[0].Quantity = types.NewQuantityFromFloat64(-1) }},
		{"negative unit amount", func(d *TradeDocument) { d.Lines[0].UnitAmount = types.MustMoney("-2") }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := validTradeDoc(t)
			tt.mutate(&doc)
			assert.Error(t, doc.Validate(ctx))
		})
	}
}

func TestSetLines(t *testing.T) {
	doc := validTradeDoc(t)

	lines := []Line{mkLine(1, "1.00"), mkLine(2, "2.00")}
	lines[0].ProductID = id.New()
	lines[1].ProductID = id.New()
	doc.SetLines(lines)

	require.Len(t, doc.Lines, 2)
	for i, line := range doc.Lines {
		assert.Equal(t, doc.ID, line.DocumentID)
		assert.Equal(t, i+1, line.LineNo)
		assert.False(t, id.IsNil(line.ID))
	}
}

func TestLineQuantities(t *testing.T) {
	doc := NewTradeDocument()
	productA := id.New()
	productB := id.New()

	a1 := mkLine(2, "1.00")
	a1.ProductID = productA
	a2 := mkLine(3, "1.00")
	a2.ProductID = productA
	b := mkLine(5, "1.00")
	b.ProductID = productB
	doc.SetLines([]Line{a1, a2, b})

	got := doc.LineQuantities()
	require.Len(t, got, 2)
	assert.Equal(t, types.NewQuantityFromFloat64(5), got[productA])
	assert.Equal(t, types.NewQuantityFromFloat64(5), got[productB])
}
