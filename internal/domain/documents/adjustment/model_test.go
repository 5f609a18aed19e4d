package adjustment

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"stockledger/internal/core/entity"
	"stockledger/internal/core/id"
	"stockledger/internal/core/types"
)

func TestAdjustmentStockDirectives(t *testing.T) {
	storeID := id.New()
	productID := id.New()

	tests := []struct {
		name      string
		direction Direction
		wantDelta types.Quantity
	}{
		{"increase", DirectionIncrease, types.NewQuantityFromFloat64(3)},
		{"decrease", DirectionDecrease, types.NewQuantityFromFloat64(-3)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := New()
			doc.ProductID = productID
			doc.StoreID = &storeID
			doc.Direction = tt.direction
			doc.Quantity = types.NewQuantityFromFloat64(3)

			directives, err := doc.StockDirectives(context.Background())
			require.NoError(t, err)
			require.Len(t, directives, 1)
			assert.Equal(t, tt.wantDelta, directives[0].Delta)
			assert.False(t, directives[0].ClampAtZero)
			assert.Equal(t, entity.NewStockKey(productID, &storeID, nil), directives[0].Key)
		})
	}
}

func TestAdjustmentAppliedStatus(t *testing.T) {
	assert.Equal(t, entity.StatusDone, New().AppliedStatus())
	assert.Equal(t, "StockAdjustment", New().DocumentType())
}

func TestAdjustmentValidate(t *testing.T) {
	valid := func() *StockAdjustment {
		doc := New()
		doc.ProductID = id.New()
		doc.Direction = DirectionIncrease
		doc.Quantity = types.NewQuantityFromFloat64(1)
		return doc
	}

	ctx := context.Background()
	assert.NoError(t, valid().Validate(ctx))

	tests := []struct {
		name   string
		mutate func(*StockAdjustment)
	}{
		{"missing product", func(d *StockAdjustment) { d.ProductID = id.Nil() }},
		{"unknown direction", func(d *StockAdjustment) { d.Direction = "Sideways" }},
		{"zero quantity", func(d *StockAdjustment) { d.Quantity = 0 }},
		{"negative quantity", func(d *StockAdjustment) { d.Quantity = types.NewQuantityFromFloat64(-1) }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := valid()
			tt.mutate(doc)
			assert.Error(t, doc.Validate(ctx))
		})
	}
}
