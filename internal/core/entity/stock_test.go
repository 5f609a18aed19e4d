package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"stockledger/internal/core/id"
	"stockledger/internal/core/types"
)

func TestStockKeyEqual(t *testing.T) {
	productID := id.New()
	storeA := id.New()
	storeB := id.New()
	batchID := id.New()

	tests := []struct {
		name string
		a, b StockKey
		want bool
	}{
		{
			"same product no dimensions",
			NewStockKey(productID, nil, nil),
			NewStockKey(productID, nil, nil),
			true,
		},
		{
			"same store different pointer",
			NewStockKey(productID, &storeA, nil),
			NewStockKey(productID, ptrOf(storeA), nil),
			true,
		},
		{
			"different store",
			NewStockKey(productID, &storeA, nil),
			NewStockKey(productID, &storeB, nil),
			false,
		},
		{
			"nil vs set store",
			NewStockKey(productID, nil, nil),
			NewStockKey(productID, &storeA, nil),
			false,
		},
		{
			"batch mismatch",
			NewStockKey(productID, &storeA, &batchID),
			NewStockKey(productID, &storeA, nil),
			false,
		},
		{
			"different product",
			NewStockKey(productID, nil, nil),
			NewStockKey(id.New(), nil, nil),
			false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.a.Equal(tt.b))
			assert.Equal(t, tt.want, tt.b.Equal(tt.a))
		})
	}
}

func ptrOf(v id.ID) *id.ID { return &v }

func TestStockKeyString(t *testing.T) {
	productID := id.New()
	storeID := id.New()
	batchID := id.New()

	assert.Equal(t, productID.String(), NewStockKey(productID, nil, nil).String())

	full := NewStockKey(productID, &storeID, &batchID).String()
	assert.Contains(t, full, productID.String())
	assert.Contains(t, full, "@"+storeID.String())
	assert.Contains(t, full, "#"+batchID.String())
}

func TestNewStockRecord(t *testing.T) {
	key := NewStockKey(id.New(), ptrOf(id.New()), nil)
	record := NewStockRecord(key)

	assert.False(t, id.IsNil(record.ID))
	assert.True(t, record.Quantity.IsZero())
	assert.True(t, record.UnitCost.IsZero())
	assert.True(t, record.Key().Equal(key))
}

func TestStockDirectiveInverted(t *testing.T) {
	stockID := id.New()
	d := StockDirective{
		Key:      NewStockKey(id.New(), nil, nil),
		StockID:  &stockID,
		Delta:    types.NewQuantityFromInt(5),
		UnitCost: types.MustMoney("12.50"),
		HasCost:  true,
	}

	inv := d.Inverted()

	assert.Equal(t, d.Key, inv.Key)
	assert.Equal(t, d.Delta.Neg(), inv.Delta)
	// Reversals keep the record pin, clamp, and never carry cost.
	assert.Equal(t, d.StockID, inv.StockID)
	assert.True(t, inv.ClampAtZero)
	assert.False(t, inv.HasCost)
	assert.True(t, inv.UnitCost.IsZero())
}
