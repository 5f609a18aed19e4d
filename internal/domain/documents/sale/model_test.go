package sale

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

func TestSaleStockDirectives(t *testing.T) {
	storeID := id.New()
	batchID := id.New()
	stockID := id.New()
	productA := id.New()
	productB := id.New()

	doc := New()
	doc.StoreID = &storeID
	doc.SetLines([]documents.Line{
		{ProductID: productA, StockID: &stockID, BatchID: &batchID, Quantity: types.NewQuantityFromFloat64(3), UnitAmount: types.MustMoney("5.00")},
		{ProductID: productB, Quantity: types.NewQuantityFromFloat64(1.5), UnitAmount: types.MustMoney("2.00")},
	})

	directives, err := doc.StockDirectives(context.Background())
	require.NoError(t, err)
	require.Len(t, directives, 2)

	assert.Equal(t, entity.NewStockKey(productA, &storeID, &batchID), directives[0].Key)
	assert.Equal(t, types.NewQuantityFromFloat64(-3), directives[0].Delta)
	assert.False(t, directives[0].ClampAtZero)
	assert.False(t, directives[0].HasCost)
	require.NotNil(t, directives[0].StockID)
	assert.Equal(t, stockID, *directives[0].StockID)

	assert.Equal(t, types.NewQuantityFromFloat64(-1.5), directives[1].Delta)
	assert.Nil(t, directives[1].Key.BatchID)
	assert.Nil(t, directives[1].StockID)
}

func TestSaleAppliedStatus(t *testing.T) {
	assert.Equal(t, entity.StatusCompleted, New().AppliedStatus())
	assert.Equal(t, "Sale", New().DocumentType())
}

func TestSaleValidate(t *testing.T) {
	doc := New()
	assert.Error(t, doc.Validate(context.Background()), "sale without lines is invalid")

	doc.SetLines([]documents.Line{{
		ProductID:  id.New(),
		Quantity:   types.NewQuantityFromFloat64(1),
		UnitAmount: types.MustMoney("1.00"),
	}})
	assert.NoError(t, doc.Validate(context.Background()))
}
