package purchase_return

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"stockledger/internal/core/id"
	"stockledger/internal/core/types"
	"stockledger/internal/domain/documents"
)

func TestPurchaseReturnStockDirectives(t *testing.T) {
	storeID := id.New()
	productID := id.New()

	stockID := id.New()

	doc := New()
	doc.StoreID = &storeID
	doc.OriginalPurchaseID = id.New()
	doc.SetLines([]documents.Line{{
		ProductID:  productID,
		StockID:    &stockID,
		Quantity:   types.NewQuantityFromFloat64(5),
		UnitAmount: types.MustMoney("3.00"),
	}})

	directives, err := doc.StockDirectives(context.Background())
	require.NoError(t, err)
	require.Len(t, directives, 1)

	// Forward effect increases the referenced stock; the clamped
	// decrement belongs to the reversal.
	d := directives[0]
	assert.Equal(t, types.NewQuantityFromFloat64(5), d.Delta)
	assert.False(t, d.ClampAtZero)
	assert.False(t, d.HasCost)
	require.NotNil(t, d.StockID)
	assert.Equal(t, stockID, *d.StockID)

	inv := d.Inverted()
	assert.Equal(t, types.NewQuantityFromFloat64(-5), inv.Delta)
	assert.True(t, inv.ClampAtZero)
	require.NotNil(t, inv.StockID)
	assert.Equal(t, stockID, *inv.StockID)
}

func TestPurchaseReturnValidateRequiresOriginal(t *testing.T) {
	doc := New()
	doc.SetLines([]documents.Line{{
		ProductID:  id.New(),
		Quantity:   types.NewQuantityFromFloat64(1),
		UnitAmount: types.MustMoney("1.00"),
	}})

	assert.Error(t, doc.Validate(context.Background()))

	doc.OriginalPurchaseID = id.New()
	assert.NoError(t, doc.Validate(context.Background()))
}
