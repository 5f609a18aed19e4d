package stock

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

// memRepo is an in-memory Repository for service tests.
type memRepo struct {
	records map[id.ID]*entity.StockRecord
}

func newMemRepo() *memRepo {
	return &memRepo{records: make(map[id.ID]*entity.StockRecord)}
}

func (m *memRepo) Get(_ context.Context, key entity.StockKey) (*entity.StockRecord, error) {
	for _, r := range m.records {
		if r.Key().Equal(key) {
			clone := *r
			return &clone, nil
		}
	}
	return nil, nil
}

func (m *memRepo) GetForUpdate(ctx context.Context, key entity.StockKey) (*entity.StockRecord, error) {
	return m.Get(ctx, key)
}

func (m *memRepo) GetByID(_ context.Context, recordID id.ID) (*entity.StockRecord, error) {
	r, ok := m.records[recordID]
	if !ok {
		return nil, nil
	}
	clone := *r
	return &clone, nil
}

func (m *memRepo) GetForUpdateByID(ctx context.Context, recordID id.ID) (*entity.StockRecord, error) {
	return m.GetByID(ctx, recordID)
}

func (m *memRepo) Insert(_ context.Context, record *entity.StockRecord) error {
	clone := *record
	m.records[record.ID] = &clone
	return nil
}

func (m *memRepo) Update(_ context.Context, record *entity.StockRecord) error {
	clone := *record
	m.records[record.ID] = &clone
	return nil
}

func (m *memRepo) ListByProduct(_ context.Context, productID id.ID) ([]entity.StockRecord, error) {
	var out []entity.StockRecord
	for _, r := range m.records {
		if r.ProductID == productID {
			out = append(out, *r)
		}
	}
	return out, nil
}

func (m *memRepo) ListByStore(_ context.Context, storeID id.ID, filter RecordFilter) ([]entity.StockRecord, error) {
	var out []entity.StockRecord
	for _, r := range m.records {
		if r.StoreID == nil || *r.StoreID != storeID {
			continue
		}
		if filter.ExcludeZero && r.Quantity.IsZero() {
			continue
		}
		out = append(out, *r)
	}
	return out, nil
}

func (m *memRepo) seed(key entity.StockKey, qty float64, cost string) *entity.StockRecord {
	r := entity.NewStockRecord(key)
	r.Quantity = types.NewQuantityFromFloat64(qty)
	r.UnitCost = types.MustMoney(cost)
	m.records[r.ID] = &r
	return &r
}

func qty(v float64) types.Quantity { return types.NewQuantityFromFloat64(v) }

func TestApplyCreatesRecordOnFirstInflow(t *testing.T) {
	ctx := context.Background()
	repo := newMemRepo()
	svc := NewService(repo)

	storeID := id.New()
	key := entity.NewStockKey(id.New(), &storeID, nil)

	err := svc.Apply(ctx, []entity.StockDirective{{
		Key:      key,
		Delta:    qty(10),
		UnitCost: types.MustMoney("3.50"),
		HasCost:  true,
	}})
	require.NoError(t, err)

	record, err := svc.Get(ctx, key)
	require.NoError(t, err)
	require.NotNil(t, record)
	assert.Equal(t, qty(10), record.Quantity)
	assert.Equal(t, "3.5", record.UnitCost.String())
}

func TestApplyIncrementsAndDecrements(t *testing.T) {
	ctx := context.Background()
	repo := newMemRepo()
	svc := NewService(repo)

	key := entity.NewStockKey(id.New(), nil, nil)
	repo.seed(key, 10, "2.00")

	err := svc.Apply(ctx, []entity.StockDirective{
		{Key: key, Delta: qty(5)},
		{Key: key, Delta: qty(-7)},
	})
	require.NoError(t, err)

	record, err := svc.Get(ctx, key)
	require.NoError(t, err)
	assert.Equal(t, qty(8), record.Quantity)
}

func TestApplyRejectsOverdraw(t *testing.T) {
	ctx := context.Background()
	repo := newMemRepo()
	svc := NewService(repo)

	key := entity.NewStockKey(id.New(), nil, nil)
	repo.seed(key, 3, "1.00")

	err := svc.Apply(ctx, []entity.StockDirective{{Key: key, Delta: qty(-5)}})
	assert.True(t, apperror.IsInsufficientStock(err))

	// Balance unchanged after the failed apply.
	record, _ := svc.Get(ctx, key)
	assert.Equal(t, qty(3), record.Quantity)
}

func TestApplyClampAtZero(t *testing.T) {
	ctx := context.Background()
	repo := newMemRepo()
	svc := NewService(repo)

	key := entity.NewStockKey(id.New(), nil, nil)
	repo.seed(key, 3, "1.00")

	err := svc.Apply(ctx, []entity.StockDirective{{Key: key, Delta: qty(-5), ClampAtZero: true}})
	require.NoError(t, err)

	record, _ := svc.Get(ctx, key)
	assert.True(t, record.Quantity.IsZero())
}

func TestApplyAbsentKey(t *testing.T) {
	ctx := context.Background()

	t.Run("outflow fails", func(t *testing.T) {
		svc := NewService(newMemRepo())
		key := entity.NewStockKey(id.New(), nil, nil)
		err := svc.Apply(ctx, []entity.StockDirective{{Key: key, Delta: qty(-1)}})
		assert.True(t, apperror.IsInsufficientStock(err))
	})

	t.Run("clamped outflow is a no-op", func(t *testing.T) {
		repo := newMemRepo()
		svc := NewService(repo)
		key := entity.NewStockKey(id.New(), nil, nil)
		err := svc.Apply(ctx, []entity.StockDirective{{Key: key, Delta: qty(-1), ClampAtZero: true}})
		require.NoError(t, err)
		assert.Empty(t, repo.records)
	})
}

func TestApplySkipsZeroDelta(t *testing.T) {
	ctx := context.Background()
	repo := newMemRepo()
	svc := NewService(repo)

	err := svc.Apply(ctx, []entity.StockDirective{{Key: entity.NewStockKey(id.New(), nil, nil)}})
	require.NoError(t, err)
	assert.Empty(t, repo.records)
}

func TestApplyRequiresProduct(t *testing.T) {
	svc := NewService(newMemRepo())
	err := svc.Apply(context.Background(), []entity.StockDirective{{Delta: qty(1)}})
	assert.Error(t, err)
}

func TestApplyPinnedRecordOverridesKey(t *testing.T) {
	ctx := context.Background()
	repo := newMemRepo()
	svc := NewService(repo)

	productID := id.New()
	storeID := id.New()
	batchID := id.New()

	// The record lives under (product, batch) with no store dimension.
	record := repo.seed(entity.NewStockKey(productID, nil, &batchID), 10, "1.00")

	// The directive key carries the document's store, which matches no
	// record. The pin must still land the change on the right row.
	err := svc.Apply(ctx, []entity.StockDirective{{
		Key:     entity.NewStockKey(productID, &storeID, &batchID),
		StockID: &record.ID,
		Delta:   qty(-4),
	}})
	require.NoError(t, err)

	got, err := repo.GetByID(ctx, record.ID)
	require.NoError(t, err)
	assert.Equal(t, qty(6), got.Quantity)
	assert.Len(t, repo.records, 1, "no record created under the key")
}

func TestApplyPinnedRecordMissing(t *testing.T) {
	missing := id.New()
	svc := NewService(newMemRepo())

	err := svc.Apply(context.Background(), []entity.StockDirective{{
		Key:     entity.NewStockKey(id.New(), nil, nil),
		StockID: &missing,
		Delta:   qty(1),
	}})
	require.Error(t, err)
	assert.True(t, apperror.IsNotFound(err))
}

func TestApplyCostLastWriteWins(t *testing.T) {
	ctx := context.Background()
	repo := newMemRepo()
	svc := NewService(repo)

	key := entity.NewStockKey(id.New(), nil, nil)
	repo.seed(key, 5, "2.00")

	// Inbound with cost overwrites; outbound never touches cost.
	err := svc.Apply(ctx, []entity.StockDirective{
		{Key: key, Delta: qty(5), UnitCost: types.MustMoney("2.80"), HasCost: true},
		{Key: key, Delta: qty(-3), UnitCost: types.MustMoney("9.99"), HasCost: true},
	})
	require.NoError(t, err)

	record, _ := svc.Get(ctx, key)
	assert.Equal(t, "2.8", record.UnitCost.String())
	assert.Equal(t, qty(7), record.Quantity)
}

func TestCheckAvailability(t *testing.T) {
	ctx := context.Background()
	repo := newMemRepo()
	svc := NewService(repo)

	key := entity.NewStockKey(id.New(), nil, nil)
	repo.seed(key, 4, "1.00")

	assert.NoError(t, svc.CheckAvailability(ctx, key, qty(4)))
	assert.True(t, apperror.IsInsufficientStock(svc.CheckAvailability(ctx, key, qty(5))))

	missing := entity.NewStockKey(id.New(), nil, nil)
	assert.True(t, apperror.IsInsufficientStock(svc.CheckAvailability(ctx, missing, qty(1))))
}

func TestGetByID(t *testing.T) {
	ctx := context.Background()
	repo := newMemRepo()
	svc := NewService(repo)

	seeded := repo.seed(entity.NewStockKey(id.New(), nil, nil), 1, "1.00")

	record, err := svc.GetByID(ctx, seeded.ID)
	require.NoError(t, err)
	assert.Equal(t, seeded.ID, record.ID)

	_, err = svc.GetByID(ctx, id.New())
	assert.True(t, apperror.IsNotFound(err))
}

func TestGetProductAvailability(t *testing.T) {
	ctx := context.Background()
	repo := newMemRepo()
	svc := NewService(repo)

	productID := id.New()
	storeA := id.New()
	storeB := id.New()
	repo.seed(entity.NewStockKey(productID, &storeA, nil), 4, "1.00")
	repo.seed(entity.NewStockKey(productID, &storeB, nil), 6, "1.00")
	repo.seed(entity.NewStockKey(id.New(), &storeA, nil), 100, "1.00")

	total, err := svc.GetProductAvailability(ctx, productID)
	require.NoError(t, err)
	assert.Equal(t, qty(10), total)
}

func TestGetStoreStock(t *testing.T) {
	ctx := context.Background()
	repo := newMemRepo()
	svc := NewService(repo)

	storeID := id.New()
	repo.seed(entity.NewStockKey(id.New(), &storeID, nil), 5, "1.00")
	repo.seed(entity.NewStockKey(id.New(), &storeID, nil), 0, "1.00")
	repo.seed(entity.NewStockKey(id.New(), nil, nil), 9, "1.00")

	records, err := svc.GetStoreStock(ctx, storeID)
	require.NoError(t, err)
	assert.Len(t, records, 1)
}
