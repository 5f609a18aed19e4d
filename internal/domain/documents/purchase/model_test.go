package purchase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"stockledger/internal/core/entity"
	"stockledger/internal/core/id"
	"stockledger/internal/core/types"
	"stockledger/internal/domain/documents"
)

func TestPurchaseStockDirectives(t *testing.T) {
	storeID := id.New()
	productID := id.New()

	doc := New()
	doc.StoreID = &storeID
	doc.SetLines([]documents.Line{{
		ProductID:  productID,
		Quantity:   types.NewQuantityFromFloat64(20),
		UnitAmount: types.MustMoney("4.75"),
	}})

	directives, err := doc.StockDirectives(context.Background())
	require.NoError(t, err)
	require.Len(t, directives, 1)

	d := directives[0]
	assert.Equal(t, entity.NewStockKey(productID, &storeID, nil), d.Key)
	assert.Equal(t, types.NewQuantityFromFloat64(20), d.Delta)
	assert.True(t, d.HasCost)
	assert.Equal(t, "4.75", d.UnitCost.String())
	assert.False(t, d.ClampAtZero)
}

func TestPurchaseAppliedStatus(t *testing.T) {
	assert.Equal(t, entity.StatusCompleted, New().AppliedStatus())
	assert.Equal(t, "Purchase", New().DocumentType())
}
