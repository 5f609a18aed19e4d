package ledger

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"stockledger/internal/core/entity"
	"stockledger/internal/core/id"
	"stockledger/internal/core/types"
	"stockledger/internal/domain/registers/stock"
)

// passthroughTx runs the callback without a real transaction.
type passthroughTx struct {
	calls int
}

func (m *passthroughTx) RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	m.calls++
	return fn(ctx)
}

// memStockRepo is a minimal in-memory stock repository.
type memStockRepo struct {
	records map[id.ID]*entity.StockRecord
}

func newMemStockRepo() *memStockRepo {
	return &memStockRepo{records: make(map[id.ID]*entity.StockRecord)}
}

func (m *memStockRepo) Get(_ context.Context, key entity.StockKey) (*entity.StockRecord, error) {
	for _, r := range m.records {
		if r.Key().Equal(key) {
			clone := *r
			return &clone, nil
		}
	}
	return nil, nil
}

func (m *memStockRepo) GetForUpdate(ctx context.Context, key entity.StockKey) (*entity.StockRecord, error) {
	return m.Get(ctx, key)
}

func (m *memStockRepo) GetByID(_ context.Context, recordID id.ID) (*entity.StockRecord, error) {
	if r, ok := m.records[recordID]; ok {
		clone := *r
		return &clone, nil
	}
	return nil, nil
}

func (m *memStockRepo) GetForUpdateByID(ctx context.Context, recordID id.ID) (*entity.StockRecord, error) {
	return m.GetByID(ctx, recordID)
}

func (m *memStockRepo) Insert(_ context.Context, record *entity.StockRecord) error {
	clone := *record
	m.records[record.ID] = &clone
	return nil
}

func (m *memStockRepo) Update(_ context.Context, record *entity.StockRecord) error {
	clone := *record
	m.records[record.ID] = &clone
	return nil
}

func (m *memStockRepo) ListByProduct(_ context.Context, productID id.ID) ([]entity.StockRecord, error) {
	var out []entity.StockRecord
	for _, r := range m.records {
		if r.ProductID == productID {
			out = append(out, *r)
		}
	}
	return out, nil
}

func (m *memStockRepo) ListByStore(_ context.Context, _ id.ID, _ stock.RecordFilter) ([]entity.StockRecord, error) {
	return nil, nil
}

func (m *memStockRepo) quantity(key entity.StockKey) types.Quantity {
	for _, r := range m.records {
		if r.Key().Equal(key) {
			return r.Quantity
		}
	}
	return 0
}

func (m *memStockRepo) seed(key entity.StockKey, qty float64) {
	r := entity.NewStockRecord(key)
	r.Quantity = types.NewQuantityFromFloat64(qty)
	m.records[r.ID] = &r
}

// testDoc is a minimal Effector over a fixed directive set.
type testDoc struct {
	entity.Document
	deltas map[entity.StockKey]types.Quantity
}

func newTestDoc(deltas map[entity.StockKey]types.Quantity) *testDoc {
	return &testDoc{Document: entity.NewDocument(), deltas: deltas}
}

func (d *testDoc) DocumentType() string { return "TestDoc" }

func (d *testDoc) AppliedStatus() entity.DocStatus { return entity.StatusDone }

func (d *testDoc) StockDirectives(context.Context) ([]entity.StockDirective, error) {
	directives := make([]entity.StockDirective, 0, len(d.deltas))
	for key, delta := range d.deltas {
		directives = append(directives, entity.StockDirective{Key: key, Delta: delta})
	}
	return directives, nil
}

type capturingPublisher struct {
	events []Event
}

func (p *capturingPublisher) Publish(_ context.Context, event Event) error {
	p.events = append(p.events, event)
	return nil
}

func newTestEngine(repo *memStockRepo, events EventPublisher) (*Engine, *passthroughTx) {
	txm := &passthroughTx{}
	return NewEngine(txm, stock.NewService(repo), events), txm
}

func qty(v float64) types.Quantity { return types.NewQuantityFromFloat64(v) }

func TestRunCreateAppliesEffect(t *testing.T) {
	ctx := context.Background()
	repo := newMemStockRepo()
	key := entity.NewStockKey(id.New(), nil, nil)
	repo.seed(key, 10)

	publisher := &capturingPublisher{}
	engine, txm := newTestEngine(repo, publisher)

	doc := newTestDoc(map[entity.StockKey]types.Quantity{key: qty(-4)})
	persisted := false

	err := engine.RunCreate(ctx, doc, func(context.Context) error {
		persisted = true
		return nil
	})
	require.NoError(t, err)

	assert.True(t, persisted)
	assert.Equal(t, 1, txm.calls)
	assert.True(t, doc.IsApplied())
	assert.Equal(t, entity.StatusDone, doc.Status)
	assert.Equal(t, qty(6), repo.quantity(key))

	require.Len(t, publisher.events, 1)
	assert.Equal(t, EventCreated, publisher.events[0].Type)
	assert.Equal(t, "TestDoc", publisher.events[0].DocumentType)
	assert.Equal(t, doc.ID, publisher.events[0].DocumentID)
}

func TestRunCreateRejectsAppliedDocument(t *testing.T) {
	repo := newMemStockRepo()
	engine, _ := newTestEngine(repo, nil)

	doc := newTestDoc(nil)
	doc.MarkApplied(entity.StatusDone)

	err := engine.RunCreate(context.Background(), doc, func(context.Context) error { return nil })
	assert.Error(t, err)
}

func TestRunCreateInsufficientStockRollsBack(t *testing.T) {
	ctx := context.Background()
	repo := newMemStockRepo()
	key := entity.NewStockKey(id.New(), nil, nil)
	repo.seed(key, 2)

	engine, _ := newTestEngine(repo, nil)
	doc := newTestDoc(map[entity.StockKey]types.Quantity{key: qty(-5)})

	persisted := false
	err := engine.RunCreate(ctx, doc, func(context.Context) error {
		persisted = true
		return nil
	})
	assert.Error(t, err)
	assert.False(t, persisted)
	assert.False(t, doc.IsApplied())
}

func TestRunUpdateReversesThenReapplies(t *testing.T) {
	ctx := context.Background()
	repo := newMemStockRepo()
	key := entity.NewStockKey(id.New(), nil, nil)
	repo.seed(key, 10)

	engine, _ := newTestEngine(repo, nil)

	prev := newTestDoc(map[entity.StockKey]types.Quantity{key: qty(-4)})
	require.NoError(t, engine.RunCreate(ctx, prev, func(context.Context) error { return nil }))
	require.Equal(t, qty(6), repo.quantity(key))

	// Edit reduces the sold quantity from 4 to 1; net effect must match
	// the final state, not accumulate.
	next := newTestDoc(map[entity.StockKey]types.Quantity{key: qty(-1)})
	next.Document = prev.Document

	err := engine.RunUpdate(ctx, prev, next, nil, func(context.Context) error { return nil })
	require.NoError(t, err)
	assert.Equal(t, qty(9), repo.quantity(key))
	assert.True(t, next.IsApplied())
	assert.Equal(t, 2, next.AppliedVersion)
}

func TestRunUpdateComposeSeesReversedEffect(t *testing.T) {
	ctx := context.Background()
	repo := newMemStockRepo()
	key := entity.NewStockKey(id.New(), nil, nil)
	repo.seed(key, 10)

	stockSvc := stock.NewService(repo)
	engine := NewEngine(&passthroughTx{}, stockSvc, nil)

	// The document consumed the entire balance.
	prev := newTestDoc(map[entity.StockKey]types.Quantity{key: qty(-10)})
	require.NoError(t, engine.RunCreate(ctx, prev, func(context.Context) error { return nil }))
	require.Equal(t, qty(0), repo.quantity(key))

	// Shrinking it to 6 must pass availability: the compose stage runs
	// after the reversal, so the 10 the document holds are back on the
	// record when the check happens.
	next := newTestDoc(map[entity.StockKey]types.Quantity{key: qty(-6)})
	next.Document = prev.Document

	err := engine.RunUpdate(ctx, prev, next, func(ctx context.Context) error {
		return stockSvc.CheckAvailability(ctx, key, qty(6))
	}, func(context.Context) error { return nil })
	require.NoError(t, err)
	assert.Equal(t, qty(4), repo.quantity(key))
}

func TestRunUpdateComposeFailureRollsBack(t *testing.T) {
	ctx := context.Background()
	repo := newMemStockRepo()
	key := entity.NewStockKey(id.New(), nil, nil)
	repo.seed(key, 10)

	engine, _ := newTestEngine(repo, nil)

	prev := newTestDoc(map[entity.StockKey]types.Quantity{key: qty(-4)})
	require.NoError(t, engine.RunCreate(ctx, prev, func(context.Context) error { return nil }))

	next := newTestDoc(map[entity.StockKey]types.Quantity{key: qty(-1)})
	next.Document = prev.Document

	wantErr := errors.New("unknown product")
	persisted := false
	err := engine.RunUpdate(ctx, prev, next, func(context.Context) error {
		return wantErr
	}, func(context.Context) error {
		persisted = true
		return nil
	})
	assert.ErrorIs(t, err, wantErr)
	assert.False(t, persisted)
}

func TestRunUpdatePendingDocumentSkipsRegister(t *testing.T) {
	ctx := context.Background()
	repo := newMemStockRepo()
	key := entity.NewStockKey(id.New(), nil, nil)
	repo.seed(key, 10)

	engine, _ := newTestEngine(repo, nil)

	prev := newTestDoc(map[entity.StockKey]types.Quantity{key: qty(-4)})
	next := newTestDoc(map[entity.StockKey]types.Quantity{key: qty(-9)})

	err := engine.RunUpdate(ctx, prev, next, nil, func(context.Context) error { return nil })
	require.NoError(t, err)
	assert.Equal(t, qty(10), repo.quantity(key))
	assert.False(t, next.IsApplied())
}

func TestRunDeleteReversesEffect(t *testing.T) {
	ctx := context.Background()
	repo := newMemStockRepo()
	key := entity.NewStockKey(id.New(), nil, nil)
	repo.seed(key, 10)

	engine, _ := newTestEngine(repo, nil)

	doc := newTestDoc(map[entity.StockKey]types.Quantity{key: qty(-4)})
	require.NoError(t, engine.RunCreate(ctx, doc, func(context.Context) error { return nil }))
	require.Equal(t, qty(6), repo.quantity(key))

	err := engine.RunDelete(ctx, doc, func(context.Context) error { return nil })
	require.NoError(t, err)
	assert.Equal(t, qty(10), repo.quantity(key))
	assert.False(t, doc.IsApplied())
	assert.Equal(t, entity.StatusCancelled, doc.Status)
}

func TestRunDeletePendingDocument(t *testing.T) {
	ctx := context.Background()
	repo := newMemStockRepo()
	key := entity.NewStockKey(id.New(), nil, nil)
	repo.seed(key, 10)

	engine, _ := newTestEngine(repo, nil)
	doc := newTestDoc(map[entity.StockKey]types.Quantity{key: qty(-4)})

	err := engine.RunDelete(ctx, doc, func(context.Context) error { return nil })
	require.NoError(t, err)
	assert.Equal(t, qty(10), repo.quantity(key))
	assert.Equal(t, entity.StatusCancelled, doc.Status)
}

func TestRunStatusFinalAppliesOnce(t *testing.T) {
	ctx := context.Background()
	repo := newMemStockRepo()
	key := entity.NewStockKey(id.New(), nil, nil)
	repo.seed(key, 10)

	engine, _ := newTestEngine(repo, nil)
	doc := newTestDoc(map[entity.StockKey]types.Quantity{key: qty(-3)})

	err := engine.RunStatus(ctx, doc, entity.StatusDone, func(context.Context) error { return nil })
	require.NoError(t, err)
	assert.Equal(t, qty(7), repo.quantity(key))
	assert.True(t, doc.IsApplied())

	// Applied documents cannot re-enter a final status.
	doc.Status = entity.StatusPending
	err = engine.RunStatus(ctx, doc, entity.StatusDone, func(context.Context) error { return nil })
	assert.Error(t, err)
	assert.Equal(t, qty(7), repo.quantity(key))
}

func TestRunStatusCancelReversesApplied(t *testing.T) {
	ctx := context.Background()
	repo := newMemStockRepo()
	key := entity.NewStockKey(id.New(), nil, nil)
	repo.seed(key, 10)

	engine, _ := newTestEngine(repo, nil)
	doc := newTestDoc(map[entity.StockKey]types.Quantity{key: qty(-3)})

	require.NoError(t, engine.RunStatus(ctx, doc, entity.StatusDone, func(context.Context) error { return nil }))
	require.Equal(t, qty(7), repo.quantity(key))

	err := engine.RunStatus(ctx, doc, entity.StatusCancelled, func(context.Context) error { return nil })
	require.NoError(t, err)
	assert.Equal(t, qty(10), repo.quantity(key))
	assert.False(t, doc.IsApplied())
	assert.Equal(t, entity.StatusCancelled, doc.Status)
}

func TestRunStatusRejectsIllegalTransition(t *testing.T) {
	repo := newMemStockRepo()
	engine, txm := newTestEngine(repo, nil)

	doc := newTestDoc(nil)
	doc.Status = entity.StatusCancelled

	err := engine.RunStatus(context.Background(), doc, entity.StatusDone, func(context.Context) error { return nil })
	assert.Error(t, err)
	assert.Zero(t, txm.calls)
}

func TestRunSave(t *testing.T) {
	repo := newMemStockRepo()
	publisher := &capturingPublisher{}
	engine, _ := newTestEngine(repo, publisher)

	doc := newTestDoc(nil)
	err := engine.RunSave(context.Background(), doc, EventCreated, func(context.Context) error { return nil })
	require.NoError(t, err)
	assert.Empty(t, repo.records)
	require.Len(t, publisher.events, 1)
}

func TestPersistFailureIsReturned(t *testing.T) {
	ctx := context.Background()
	repo := newMemStockRepo()
	key := entity.NewStockKey(id.New(), nil, nil)
	repo.seed(key, 10)

	engine, _ := newTestEngine(repo, nil)
	doc := newTestDoc(map[entity.StockKey]types.Quantity{key: qty(-1)})

	wantErr := errors.New("db down")
	err := engine.RunCreate(ctx, doc, func(context.Context) error { return wantErr })
	assert.ErrorIs(t, err, wantErr)
}

func TestAfterCommitHooks(t *testing.T) {
	ctx := context.Background()
	repo := newMemStockRepo()
	engine, _ := newTestEngine(repo, nil)

	var fired []Event
	engine.OnAfterCommit(func(_ context.Context, event Event) error {
		fired = append(fired, event)
		return nil
	})
	engine.OnAfterCommit(func(context.Context, Event) error {
		// Hook failures are logged, never propagated.
		return errors.New("webhook unreachable")
	})

	doc := newTestDoc(nil)
	err := engine.RunSave(ctx, doc, EventUpdated, func(context.Context) error { return nil })
	require.NoError(t, err)
	require.Len(t, fired, 1)
	assert.Equal(t, EventUpdated, fired[0].Type)
}

func TestInvert(t *testing.T) {
	key := entity.NewStockKey(id.New(), nil, nil)
	directives := []entity.StockDirective{
		{Key: key, Delta: qty(5), UnitCost: types.MustMoney("2.00"), HasCost: true},
		{Key: key, Delta: qty(-3)},
	}

	inverted := Invert(directives)
	require.Len(t, inverted, 2)
	assert.Equal(t, qty(-5), inverted[0].Delta)
	assert.Equal(t, qty(3), inverted[1].Delta)
	for _, d := range inverted {
		assert.True(t, d.ClampAtZero)
		assert.False(t, d.HasCost)
	}
}
