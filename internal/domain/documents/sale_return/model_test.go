package sale_return

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"stockledger/internal/core/id"
	"stockledger/internal/core/types"
	"stockledger/internal/domain/documents"
)

func TestSaleReturnStockDirectives(t *testing.T) {
	storeID := id.New()
	stockID := id.New()
	productID := id.New()

	doc := New()
	doc.StoreID = &storeID
	doc.OriginalSaleID = id.New()
	doc.SetLines([]documents.Line{{
		ProductID:  productID,
		StockID:    &stockID,
		Quantity:   types.NewQuantityFromFloat64(2),
		UnitAmount: types.MustMoney("5.00"),
	}})

	directives, err := doc.StockDirectives(context.Background())
	require.NoError(t, err)
	require.Len(t, directives, 1)

	// Returned goods flow back onto the record they were drawn from;
	// the stored unit cost is untouched.
	d := directives[0]
	assert.Equal(t, types.NewQuantityFromFloat64(2), d.Delta)
	assert.False(t, d.HasCost)
	assert.False(t, d.ClampAtZero)
	require.NotNil(t, d.StockID)
	assert.Equal(t, stockID, *d.StockID)
}

func TestSaleReturnValidateRequiresOriginal(t *testing.T) {
	doc := New()
	doc.SetLines([]documents.Line{{
		ProductID:  id.New(),
		Quantity:   types.NewQuantityFromFloat64(1),
		UnitAmount: types.MustMoney("1.00"),
	}})

	assert.Error(t, doc.Validate(context.Background()))

	doc.OriginalSaleID = id.New()
	assert.NoError(t, doc.Validate(context.Background()))
}
