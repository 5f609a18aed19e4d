package transfer

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"stockledger/internal/core/entity"
	"stockledger/internal/core/id"
	"stockledger/internal/core/types"
)

func validTransfer() *StockTransfer {
	doc := New()
	doc.ProductID = id.New()
	doc.SourceStoreID = id.New()
	doc.DestStoreID = id.New()
	doc.Quantity = types.NewQuantityFromFloat64(4)
	doc.SourceUnitCost = types.MustMoney("2.50")
	return doc
}

func TestTransferStockDirectives(t *testing.T) {
	doc := validTransfer()

	directives, err := doc.StockDirectives(context.Background())
	require.NoError(t, err)
	require.Len(t, directives, 2)

	source, dest := directives[0], directives[1]

	assert.Equal(t, entity.NewStockKey(doc.ProductID, &doc.SourceStoreID, nil), source.Key)
	assert.Equal(t, types.NewQuantityFromFloat64(-4), source.Delta)
	assert.False(t, source.ClampAtZero)
	assert.False(t, source.HasCost)

	assert.Equal(t, entity.NewStockKey(doc.ProductID, &doc.DestStoreID, nil), dest.Key)
	assert.Equal(t, types.NewQuantityFromFloat64(4), dest.Delta)
	assert.True(t, dest.HasCost)
	assert.Equal(t, "2.5", dest.UnitCost.String())

	// Both legs move the same quantity.
	assert.Equal(t, types.Quantity(0), source.Delta+dest.Delta)
}

func TestTransferAppliedStatus(t *testing.T) {
	assert.Equal(t, entity.StatusCompleted, New().AppliedStatus())
	assert.Equal(t, "StockTransfer", New().DocumentType())
}

func TestTransferValidate(t *testing.T) {
	ctx := context.Background()
	assert.NoError(t, validTransfer().Validate(ctx))

	tests := []struct {
		name   string
		mutate func(*StockTransfer)
	}{
		{"missing product", func(d *StockTransfer) { d.ProductID = id.Nil() }},
		{"missing source store", func(d *StockTransfer) { d.SourceStoreID = id.Nil() }},
		{"missing dest store", func(d *StockTransfer) { d.DestStoreID = id.Nil() }},
		{"same store", func(d *StockTransfer) { d.DestStoreID = d.SourceStoreID }},
		{"zero quantity", func(d *StockTransfer) { d.Quantity = 0 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := validTransfer()
			tt.mutate(doc)
			assert.Error(t, doc.Validate(ctx))
		})
	}
}
