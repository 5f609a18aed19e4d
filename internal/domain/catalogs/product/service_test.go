package product

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"stockledger/internal/core/apperror"
	"stockledger/internal/core/id"
	"stockledger/internal/domain"
	"stockledger/pkg/numerator"
)

type passthroughTx struct{}

func (passthroughTx) RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type fakeRepo struct {
	items map[id.ID]*Product
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{items: make(map[id.ID]*Product)}
}

func (f *fakeRepo) Create(_ context.Context, item *Product) error {
	f.items[item.ID] = item
	return nil
}

func (f *fakeRepo) GetByID(_ context.Context, entityID id.ID) (*Product, error) {
	if item, ok := f.items[entityID]; ok {
		return item, nil
	}
	return nil, apperror.NewNotFound("products", entityID.String())
}

func (f *fakeRepo) GetByCode(_ context.Context, code string) (*Product, error) {
	for _, item := range f.items {
		if item.Code == code {
			return item, nil
		}
	}
	return nil, apperror.NewNotFound("products", code)
}

func (f *fakeRepo) Update(_ context.Context, item *Product) error {
	f.items[item.ID] = item
	return nil
}

func (f *fakeRepo) Delete(ctx context.Context, entityID id.ID) error {
	return f.SetDeletionMark(ctx, entityID, true)
}

func (f *fakeRepo) SetDeletionMark(_ context.Context, entityID id.ID, marked bool) error {
	item, ok := f.items[entityID]
	if !ok {
		return apperror.NewNotFound("products", entityID.String())
	}
	item.DeletionMark = marked
	return nil
}

func (f *fakeRepo) List(_ context.Context, _ domain.ListFilter) (domain.ListResult[*Product], error) {
	result := domain.ListResult[*Product]{}
	for _, item := range f.items {
		result.Items = append(result.Items, item)
	}
	result.TotalCount = int64(len(result.Items))
	return result, nil
}

func (f *fakeRepo) Exists(_ context.Context, entityID id.ID) (bool, error) {
	_, ok := f.items[entityID]
	return ok, nil
}

func (f *fakeRepo) ExistsByCode(_ context.Context, code string) (bool, error) {
	_, err := f.GetByCode(context.Background(), code)
	return err == nil, nil
}

func (f *fakeRepo) GetBySKU(_ context.Context, sku string) (*Product, error) {
	for _, item := range f.items {
		if item.SKU != nil && *item.SKU == sku {
			return item, nil
		}
	}
	return nil, apperror.NewNotFound("products", sku)
}

func (f *fakeRepo) GetByBarcode(_ context.Context, barcode string) (*Product, error) {
	for _, item := range f.items {
		if item.Barcode != nil && *item.Barcode == barcode {
			return item, nil
		}
	}
	return nil, apperror.NewNotFound("products", barcode)
}

var _ Repository = (*fakeRepo)(nil)

func newTestService(repo *fakeRepo) *Service {
	return NewService(repo, passthroughTx{}, &numerator.MockGenerator{})
}

func TestCreateGeneratesCode(t *testing.T) {
	ctx := context.Background()
	repo := newFakeRepo()
	svc := newTestService(repo)

	item := New("", "Espresso Beans 1kg")
	require.NoError(t, svc.Create(ctx, item))
	assert.Equal(t, "MOCK-2026-00001", item.Code)
}

func TestCreateKeepsExplicitCode(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(newFakeRepo())

	item := New("PR-CUSTOM", "Filter Paper")
	require.NoError(t, svc.Create(ctx, item))
	assert.Equal(t, "PR-CUSTOM", item.Code)
}

func TestCreateRejectsDuplicateSKU(t *testing.T) {
	ctx := context.Background()
	repo := newFakeRepo()
	svc := newTestService(repo)

	sku := "SKU-1"
	first := New("PR-1", "First")
	first.SKU = &sku
	require.NoError(t, svc.Create(ctx, first))

	second := New("PR-2", "Second")
	second.SKU = &sku
	err := svc.Create(ctx, second)
	require.Error(t, err)

	appErr, ok := apperror.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperror.CodeConflict, appErr.Code)
}

func TestUpdateAllowsOwnSKU(t *testing.T) {
	ctx := context.Background()
	repo := newFakeRepo()
	svc := newTestService(repo)

	sku := "SKU-1"
	item := New("PR-1", "First")
	item.SKU = &sku
	require.NoError(t, svc.Create(ctx, item))

	item.Name = "First, renamed"
	assert.NoError(t, svc.Update(ctx, item))
}

func TestCreateRejectsDuplicateBarcode(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(newFakeRepo())

	barcode := "4006381333931"
	first := New("PR-1", "First")
	first.Barcode = &barcode
	require.NoError(t, svc.Create(ctx, first))

	second := New("PR-2", "Second")
	second.Barcode = &barcode
	assert.Error(t, svc.Create(ctx, second))
}

func TestResolve(t *testing.T) {
	ctx := context.Background()
	repo := newFakeRepo()
	svc := newTestService(repo)

	item := New("PR-1", "Live product")
	require.NoError(t, svc.Create(ctx, item))

	got, err := svc.Resolve(ctx, item.ID)
	require.NoError(t, err)
	assert.Equal(t, item.ID, got.ID)

	require.NoError(t, repo.SetDeletionMark(ctx, item.ID, true))
	_, err = svc.Resolve(ctx, item.ID)
	assert.Error(t, err)

	_, err = svc.Resolve(ctx, id.New())
	assert.True(t, apperror.IsNotFound(err))
}

func TestProductValidate(t *testing.T) {
	ctx := context.Background()

	item := New("PR-1", "Good")
	assert.NoError(t, item.Validate(ctx))

	item.Type = "subscription"
	assert.Error(t, item.Validate(ctx))
}

func TestIsStocked(t *testing.T) {
	goods := New("PR-1", "Beans")
	assert.True(t, goods.IsStocked())

	service := New("PR-2", "Grinding")
	service.Type = TypeService
	assert.False(t, service.IsStocked())
}
