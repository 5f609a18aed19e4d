package ledger_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"stockledger/internal/core/apperror"
	"stockledger/internal/core/entity"
	"stockledger/internal/core/id"
	"stockledger/internal/core/types"
	"stockledger/internal/domain/documents"
	"stockledger/internal/domain/documents/purchase"
	"stockledger/internal/domain/documents/purchase_return"
	"stockledger/internal/domain/documents/sale"
	"stockledger/internal/domain/documents/sale_return"
	"stockledger/internal/domain/documents/transfer"
	"stockledger/internal/domain/ledger"
	"stockledger/internal/domain/registers/stock"
)

// These tests drive real document kinds through the composer and the
// engine end to end, over an in-memory register.

type scenarioTx struct{}

func (scenarioTx) RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type scenarioStockRepo struct {
	records map[id.ID]*entity.StockRecord
}

func newScenarioStockRepo() *scenarioStockRepo {
	return &scenarioStockRepo{records: make(map[id.ID]*entity.StockRecord)}
}

func (m *scenarioStockRepo) Get(_ context.Context, key entity.StockKey) (*entity.StockRecord, error) {
	for _, r := range m.records {
		if r.Key().Equal(key) {
			clone := *r
			return &clone, nil
		}
	}
	return nil, nil
}

func (m *scenarioStockRepo) GetForUpdate(ctx context.Context, key entity.StockKey) (*entity.StockRecord, error) {
	return m.Get(ctx, key)
}

func (m *scenarioStockRepo) GetByID(_ context.Context, recordID id.ID) (*entity.StockRecord, error) {
	if r, ok := m.records[recordID]; ok {
		clone := *r
		return &clone, nil
	}
	return nil, nil
}

func (m *scenarioStockRepo) GetForUpdateByID(ctx context.Context, recordID id.ID) (*entity.StockRecord, error) {
	return m.GetByID(ctx, recordID)
}

func (m *scenarioStockRepo) Insert(_ context.Context, record *entity.StockRecord) error {
	clone := *record
	m.records[record.ID] = &clone
	return nil
}

func (m *scenarioStockRepo) Update(_ context.Context, record *entity.StockRecord) error {
	clone := *record
	m.records[record.ID] = &clone
	return nil
}

func (m *scenarioStockRepo) ListByProduct(_ context.Context, productID id.ID) ([]entity.StockRecord, error) {
	var out []entity.StockRecord
	for _, r := range m.records {
		if r.ProductID == productID {
			out = append(out, *r)
		}
	}
	return out, nil
}

func (m *scenarioStockRepo) ListByStore(_ context.Context, _ id.ID, _ stock.RecordFilter) ([]entity.StockRecord, error) {
	return nil, nil
}

func (m *scenarioStockRepo) quantity(key entity.StockKey) types.Quantity {
	for _, r := range m.records {
		if r.Key().Equal(key) {
			return r.Quantity
		}
	}
	return 0
}

func (m *scenarioStockRepo) seed(key entity.StockKey, qty float64, cost string) *entity.StockRecord {
	r := entity.NewStockRecord(key)
	r.Quantity = types.NewQuantityFromFloat64(qty)
	r.UnitCost = types.MustMoney(cost)
	m.records[r.ID] = &r
	return &r
}

// allProducts resolves every product reference.
type allProducts struct{}

func (allProducts) Exists(context.Context, id.ID) (bool, error) { return true, nil }

type harness struct {
	repo     *scenarioStockRepo
	stock    *stock.Service
	engine   *ledger.Engine
	composer *documents.Composer
}

func newHarness() *harness {
	repo := newScenarioStockRepo()
	svc := stock.NewService(repo)
	return &harness{
		repo:     repo,
		stock:    svc,
		engine:   ledger.NewEngine(scenarioTx{}, svc, nil),
		composer: documents.NewComposer(allProducts{}, svc),
	}
}

func (h *harness) createPurchase(t *testing.T, ctx context.Context, storeID id.ID, items []documents.RawItem) *purchase.Purchase {
	t.Helper()
	doc := purchase.New()
	doc.StoreID = &storeID

	lines, err := h.composer.ComposePurchase(ctx, &storeID, items)
	require.NoError(t, err)
	doc.SetLines(lines)
	doc.RecomputeTotals()

	require.NoError(t, h.engine.RunCreate(ctx, doc, noPersist))
	return doc
}

func (h *harness) createSale(t *testing.T, ctx context.Context, storeID id.ID, items []documents.RawItem) *sale.Sale {
	t.Helper()
	doc := sale.New()
	doc.StoreID = &storeID

	lines, err := h.composer.ComposeSale(ctx, &storeID, items)
	require.NoError(t, err)
	doc.SetLines(lines)
	doc.RecomputeTotals()

	require.NoError(t, h.engine.RunCreate(ctx, doc, noPersist))
	return doc
}

func noPersist(context.Context) error { return nil }

func qty(v float64) types.Quantity { return types.NewQuantityFromFloat64(v) }

func TestPurchaseThenSaleFlow(t *testing.T) {
	ctx := context.Background()
	h := newHarness()

	productX := id.New()
	storeA := id.New()
	key := entity.NewStockKey(productX, &storeA, nil)

	h.createPurchase(t, ctx, storeA, []documents.RawItem{
		{ProductID: productX, Quantity: qty(10), UnitAmount: types.MustMoney("5.00")},
	})
	require.Equal(t, qty(10), h.repo.quantity(key))

	record, err := h.stock.Get(ctx, key)
	require.NoError(t, err)
	assert.True(t, record.UnitCost.Equal(types.MustMoney("5.00")), "purchase records the unit cost")

	saleDoc := h.createSale(t, ctx, storeA, []documents.RawItem{
		{ProductID: productX, Quantity: qty(4), UnitAmount: types.MustMoney("9.00")},
	})
	assert.Equal(t, qty(6), h.repo.quantity(key))
	assert.True(t, saleDoc.Subtotal.Equal(types.MustMoney("36.00")))
	assert.True(t, saleDoc.IsApplied())
	assert.Equal(t, entity.StatusCompleted, saleDoc.Status)

	// Overselling fails at composition and leaves the record untouched.
	_, err = h.composer.ComposeSale(ctx, &storeA, []documents.RawItem{
		{ProductID: productX, Quantity: qty(10), UnitAmount: types.MustMoney("9.00")},
	})
	require.Error(t, err)
	assert.True(t, apperror.IsInsufficientStock(err))
	assert.Equal(t, qty(6), h.repo.quantity(key))
}

func TestSaleReturnCumulativeAcrossDocuments(t *testing.T) {
	ctx := context.Background()
	h := newHarness()

	productX := id.New()
	storeA := id.New()
	key := entity.NewStockKey(productX, &storeA, nil)

	h.createPurchase(t, ctx, storeA, []documents.RawItem{
		{ProductID: productX, Quantity: qty(10), UnitAmount: types.MustMoney("5.00")},
	})
	saleDoc := h.createSale(t, ctx, storeA, []documents.RawItem{
		{ProductID: productX, Quantity: qty(4), UnitAmount: types.MustMoney("9.00")},
	})
	require.Equal(t, qty(6), h.repo.quantity(key))

	returned := func(ret *sale_return.SaleReturn, q float64, already map[id.ID]types.Quantity) error {
		lines, err := h.composer.ComposeReturn(ctx, &saleDoc.TradeDocument, already, &storeA, []documents.RawItem{
			{ProductID: productX, Quantity: qty(q), UnitAmount: types.MustMoney("9.00")},
		})
		if err != nil {
			return err
		}
		ret.SetLines(lines)
		ret.RecomputeTotals()
		return h.engine.RunCreate(ctx, ret, noPersist)
	}

	first := sale_return.New()
	first.StoreID = &storeA
	first.OriginalSaleID = saleDoc.ID
	require.NoError(t, returned(first, 2, nil))
	assert.Equal(t, qty(8), h.repo.quantity(key))

	// A second document may not push the cumulative returned quantity
	// past what the sale transacted.
	second := sale_return.New()
	second.StoreID = &storeA
	second.OriginalSaleID = saleDoc.ID
	err := returned(second, 3, map[id.ID]types.Quantity{productX: qty(2)})
	require.Error(t, err)
	assert.Equal(t, qty(8), h.repo.quantity(key))

	require.NoError(t, returned(second, 2, map[id.ID]types.Quantity{productX: qty(2)}))
	assert.Equal(t, qty(10), h.repo.quantity(key))
}

func TestPurchaseReturnIncreasesReferencedStock(t *testing.T) {
	ctx := context.Background()
	h := newHarness()

	productX := id.New()
	storeA := id.New()
	key := entity.NewStockKey(productX, &storeA, nil)

	original := h.createPurchase(t, ctx, storeA, []documents.RawItem{
		{ProductID: productX, Quantity: qty(5), UnitAmount: types.MustMoney("3.00")},
	})
	require.Equal(t, qty(5), h.repo.quantity(key))

	ret := purchase_return.New()
	ret.StoreID = &storeA
	ret.OriginalPurchaseID = original.ID
	lines, err := h.composer.ComposeReturn(ctx, &original.TradeDocument, nil, &storeA, []documents.RawItem{
		{ProductID: productX, Quantity: qty(2), UnitAmount: types.MustMoney("3.00")},
	})
	require.NoError(t, err)
	ret.SetLines(lines)
	ret.RecomputeTotals()

	require.NoError(t, h.engine.RunCreate(ctx, ret, noPersist))
	assert.Equal(t, qty(7), h.repo.quantity(key), "forward effect increases the referenced stock")

	// Deleting the return takes the increment back out.
	require.NoError(t, h.engine.RunDelete(ctx, ret, noPersist))
	assert.Equal(t, qty(5), h.repo.quantity(key))
}

func TestSaleDrawsFromReferencedRecord(t *testing.T) {
	ctx := context.Background()
	h := newHarness()

	productX := id.New()
	storeA := id.New()
	batchB := id.New()

	// The record has no store dimension; the document header does. The
	// explicit reference must win over the key the header would build.
	record := h.repo.seed(entity.NewStockKey(productX, nil, &batchB), 10, "1.00")

	doc := sale.New()
	doc.StoreID = &storeA
	lines, err := h.composer.ComposeSale(ctx, &storeA, []documents.RawItem{
		{ProductID: productX, StockID: &record.ID, Quantity: qty(4), UnitAmount: types.MustMoney("2.00")},
	})
	require.NoError(t, err)
	doc.SetLines(lines)
	doc.RecomputeTotals()

	require.NoError(t, h.engine.RunCreate(ctx, doc, noPersist))

	got, err := h.repo.GetByID(ctx, record.ID)
	require.NoError(t, err)
	assert.Equal(t, qty(6), got.Quantity)
	assert.Len(t, h.repo.records, 1, "no record created under the header key")
}

func TestUpdateShrinkingAppliedSale(t *testing.T) {
	ctx := context.Background()
	h := newHarness()

	productX := id.New()
	storeA := id.New()
	key := entity.NewStockKey(productX, &storeA, nil)
	h.repo.seed(key, 10, "1.00")

	prev := h.createSale(t, ctx, storeA, []documents.RawItem{
		{ProductID: productX, Quantity: qty(10), UnitAmount: types.MustMoney("4.00")},
	})
	require.Equal(t, qty(0), h.repo.quantity(key))

	// The edit composes inside the update transaction, after the old
	// effect is reversed, so the availability check sees the full 10.
	next := sale.New()
	next.TradeDocument = prev.TradeDocument

	err := h.engine.RunUpdate(ctx, prev, next, func(ctx context.Context) error {
		lines, err := h.composer.ComposeSale(ctx, &storeA, []documents.RawItem{
			{ProductID: productX, Quantity: qty(6), UnitAmount: types.MustMoney("4.00")},
		})
		if err != nil {
			return err
		}
		next.SetLines(lines)
		next.RecomputeTotals()
		return nil
	}, noPersist)
	require.NoError(t, err)

	assert.Equal(t, qty(4), h.repo.quantity(key))
	assert.True(t, next.IsApplied())
	assert.True(t, next.Subtotal.Equal(types.MustMoney("24.00")))
}

func TestUpdateNetEffectMatchesFinalState(t *testing.T) {
	ctx := context.Background()
	h := newHarness()

	productX := id.New()
	storeA := id.New()
	key := entity.NewStockKey(productX, &storeA, nil)

	prev := h.createPurchase(t, ctx, storeA, []documents.RawItem{
		{ProductID: productX, Quantity: qty(10), UnitAmount: types.MustMoney("5.00")},
	})
	require.Equal(t, qty(10), h.repo.quantity(key))

	next := purchase.New()
	next.TradeDocument = prev.TradeDocument

	err := h.engine.RunUpdate(ctx, prev, next, func(ctx context.Context) error {
		lines, err := h.composer.ComposePurchase(ctx, &storeA, []documents.RawItem{
			{ProductID: productX, Quantity: qty(3), UnitAmount: types.MustMoney("5.00")},
		})
		if err != nil {
			return err
		}
		next.SetLines(lines)
		next.RecomputeTotals()
		return nil
	}, noPersist)
	require.NoError(t, err)

	// Net +3, never +13.
	assert.Equal(t, qty(3), h.repo.quantity(key))
}

func TestTransferConservationAndCostCarry(t *testing.T) {
	ctx := context.Background()
	h := newHarness()

	productX := id.New()
	storeA := id.New()
	storeB := id.New()
	sourceKey := entity.NewStockKey(productX, &storeA, nil)
	destKey := entity.NewStockKey(productX, &storeB, nil)

	h.repo.seed(sourceKey, 8, "2.50")

	doc := transfer.New()
	doc.ProductID = productX
	doc.SourceStoreID = storeA
	doc.DestStoreID = storeB
	doc.Quantity = qty(5)

	source, err := h.stock.Get(ctx, sourceKey)
	require.NoError(t, err)
	doc.SourceUnitCost = source.UnitCost

	require.NoError(t, h.engine.RunStatus(ctx, doc, entity.StatusCompleted, noPersist))

	assert.Equal(t, qty(3), h.repo.quantity(sourceKey))
	assert.Equal(t, qty(5), h.repo.quantity(destKey))
	assert.Equal(t, qty(8), h.repo.quantity(sourceKey)+h.repo.quantity(destKey), "total quantity is conserved")

	dest, err := h.stock.Get(ctx, destKey)
	require.NoError(t, err)
	assert.True(t, dest.UnitCost.Equal(types.MustMoney("2.50")), "destination keeps the source valuation")
}
