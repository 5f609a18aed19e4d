package documents

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"stockledger/internal/core/apperror"
	"stockledger/internal/core/entity"
	"stockledger/internal/core/id"
	"stockledger/internal/core/types"
)

type fakeProducts struct {
	known map[id.ID]bool
}

func (f *fakeProducts) Exists(_ context.Context, productID id.ID) (bool, error) {
	return f.known[productID], nil
}

type fakeStock struct {
	records []*entity.StockRecord
}

func (f *fakeStock) Get(_ context.Context, key entity.StockKey) (*entity.StockRecord, error) {
	for _, r := range f.records {
		if r.Key().Equal(key) {
			return r, nil
		}
	}
	return nil, nil
}

func (f *fakeStock) GetByID(_ context.Context, recordID id.ID) (*entity.StockRecord, error) {
	for _, r := range f.records {
		if r.ID == recordID {
			return r, nil
		}
	}
	return nil, apperror.NewNotFound("stock record", recordID.String())
}

func stockRecord(productID id.ID, storeID *id.ID, qty float64) *entity.StockRecord {
	r := entity.NewStockRecord(entity.NewStockKey(productID, storeID, nil))
	r.Quantity = types.NewQuantityFromFloat64(qty)
	return &r
}

func TestComposeSale(t *testing.T) {
	ctx := context.Background()
	productID := id.New()
	storeID := id.New()
	record := stockRecord(productID, &storeID, 10)

	composer := NewComposer(
		&fakeProducts{known: map[id.ID]bool{productID: true}},
		&fakeStock{records: []*entity.StockRecord{record}},
	)

	item := RawItem{ProductID: productID, Quantity: types.NewQuantityFromFloat64(3), UnitAmount: types.MustMoney("5.00")}

	lines, err := composer.ComposeSale(ctx, &storeID, []RawItem{item})
	require.NoError(t, err)
	require.Len(t, lines, 1)
	assert.Equal(t, "15", lines[0].Total.String())
	require.NotNil(t, lines[0].StockID)
	assert.Equal(t, record.ID, *lines[0].StockID)
}

func TestComposeSaleInsufficientStock(t *testing.T) {
	ctx := context.Background()
	productID := id.New()
	storeID := id.New()

	composer := NewComposer(
		&fakeProducts{known: map[id.ID]bool{productID: true}},
		&fakeStock{records: []*entity.StockRecord{stockRecord(productID, &storeID, 2)}},
	)

	item := RawItem{ProductID: productID, Quantity: types.NewQuantityFromFloat64(5), UnitAmount: types.MustMoney("1.00")}

	_, err := composer.ComposeSale(ctx, &storeID, []RawItem{item})
	assert.True(t, apperror.IsInsufficientStock(err))
}

func TestComposeSaleNoStockRecord(t *testing.T) {
	ctx := context.Background()
	productID := id.New()
	storeID := id.New()

	composer := NewComposer(
		&fakeProducts{known: map[id.ID]bool{productID: true}},
		&fakeStock{},
	)

	item := RawItem{ProductID: productID, Quantity: types.NewQuantityFromFloat64(1), UnitAmount: types.MustMoney("1.00")}

	// Missing record means zero available.
	_, err := composer.ComposeSale(ctx, &storeID, []RawItem{item})
	assert.True(t, apperror.IsInsufficientStock(err))
}

func TestComposeSaleRejectsBadItems(t *testing.T) {
	ctx := context.Background()
	productID := id.New()
	storeID := id.New()

	composer := NewComposer(
		&fakeProducts{known: map[id.ID]bool{productID: true}},
		&fakeStock{records: []*entity.StockRecord{stockRecord(productID, &storeID, 100)}},
	)

	tests := []struct {
		name string
		item RawItem
	}{
		{"nil product", RawItem{Quantity: types.NewQuantityFromFloat64(1), UnitAmount: types.MustMoney("1")}},
		{"zero quantity", RawItem{ProductID: productID, UnitAmount: types.MustMoney("1")}},
		{"negative unit amount", RawItem{ProductID: productID, Quantity: types.NewQuantityFromFloat64(1), UnitAmount: types.MustMoney("-1")}},
		{"unknown product", RawItem{ProductID: id.New(), Quantity: types.NewQuantityFromFloat64(1), UnitAmount: types.MustMoney("1")}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := composer.ComposeSale(ctx, &storeID, []RawItem{tt.item})
			assert.Error(t, err)
		})
	}
}

func TestComposeSaleTotalOverride(t *testing.T) {
	ctx := context.Background()
	productID := id.New()
	storeID := id.New()

	composer := NewComposer(
		&fakeProducts{known: map[id.ID]bool{productID: true}},
		&fakeStock{records: []*entity.StockRecord{stockRecord(productID, &storeID, 10)}},
	)

	override := types.MustMoney("9.99")
	item := RawItem{
		ProductID:  productID,
		Quantity:   types.NewQuantityFromFloat64(2),
		UnitAmount: types.MustMoney("5.00"),
		Total:      &override,
	}

	lines, err := composer.ComposeSale(ctx, &storeID, []RawItem{item})
	require.NoError(t, err)
	assert.Equal(t, "9.99", lines[0].Total.String())
}

func TestComposePurchase(t *testing.T) {
	ctx := context.Background()
	productID := id.New()
	storeID := id.New()

	composer := NewComposer(
		&fakeProducts{known: map[id.ID]bool{productID: true}},
		&fakeStock{},
	)

	// No stock record yet; the purchase creates it on apply.
	item := RawItem{ProductID: productID, Quantity: types.NewQuantityFromFloat64(50), UnitAmount: types.MustMoney("2.40")}

	lines, err := composer.ComposePurchase(ctx, &storeID, []RawItem{item})
	require.NoError(t, err)
	require.Len(t, lines, 1)
	assert.Nil(t, lines[0].StockID)
	assert.Equal(t, "120", lines[0].Total.String())
}

func TestComposeReturn(t *testing.T) {
	ctx := context.Background()
	productID := id.New()
	storeID := id.New()
	record := stockRecord(productID, &storeID, 10)

	composer := NewComposer(
		&fakeProducts{known: map[id.ID]bool{productID: true}},
		&fakeStock{records: []*entity.StockRecord{record}},
	)

	original := NewTradeDocument()
	origLine := mkLine(5, "4.00")
	origLine.ProductID = productID
	recordID := record.ID
	origLine.StockID = &recordID
	original.SetLines([]Line{origLine})

	t.Run("within original quantity", func(t *testing.T) {
		item := RawItem{ProductID: productID, Quantity: types.NewQuantityFromFloat64(2), UnitAmount: types.MustMoney("4.00")}
		lines, err := composer.ComposeReturn(ctx, &original, nil, &storeID, []RawItem{item})
		require.NoError(t, err)
		require.Len(t, lines, 1)
		require.NotNil(t, lines[0].StockID)
		assert.Equal(t, record.ID, *lines[0].StockID)
	})

	t.Run("exceeds original", func(t *testing.T) {
		item := RawItem{ProductID: productID, Quantity: types.NewQuantityFromFloat64(6), UnitAmount: types.MustMoney("4.00")}
		_, err := composer.ComposeReturn(ctx, &original, nil, &storeID, []RawItem{item})
		assert.Error(t, err)
	})

	t.Run("exceeds remaining after earlier returns", func(t *testing.T) {
		already := map[id.ID]types.Quantity{productID: types.NewQuantityFromFloat64(4)}
		item := RawItem{ProductID: productID, Quantity: types.NewQuantityFromFloat64(2), UnitAmount: types.MustMoney("4.00")}
		_, err := composer.ComposeReturn(ctx, &original, already, &storeID, []RawItem{item})
		assert.Error(t, err)
	})

	t.Run("cumulative across lines of one return", func(t *testing.T) {
		items := []RawItem{
			{ProductID: productID, Quantity: types.NewQuantityFromFloat64(3), UnitAmount: types.MustMoney("4.00")},
			{ProductID: productID, Quantity: types.NewQuantityFromFloat64(3), UnitAmount: types.MustMoney("4.00")},
		}
		_, err := composer.ComposeReturn(ctx, &original, nil, &storeID, items)
		assert.Error(t, err)
	})

	t.Run("product not in original", func(t *testing.T) {
		other := id.New()
		composer := NewComposer(
			&fakeProducts{known: map[id.ID]bool{productID: true, other: true}},
			&fakeStock{records: []*entity.StockRecord{record}},
		)
		item := RawItem{ProductID: other, Quantity: types.NewQuantityFromFloat64(1), UnitAmount: types.MustMoney("1.00")}
		_, err := composer.ComposeReturn(ctx, &original, nil, &storeID, []RawItem{item})
		assert.Error(t, err)
	})

	t.Run("nil original", func(t *testing.T) {
		_, err := composer.ComposeReturn(ctx, nil, nil, &storeID, nil)
		assert.Error(t, err)
	})
}
