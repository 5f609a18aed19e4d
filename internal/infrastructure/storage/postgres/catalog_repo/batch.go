package catalog_repo

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"

	"stockledger/internal/core/id"
	"stockledger/internal/domain/catalogs/batch"
	"stockledger/internal/infrastructure/storage/postgres"
)

const batchesTable = "cat_batches"

var _ batch.Repository = (*BatchRepo)(nil)

// BatchRepo implements the batch repository.
type BatchRepo struct {
	*BaseCatalogRepo[*batch.Batch]
}

// NewBatchRepo creates a new batch repository.
func NewBatchRepo(txManager *postgres.TxManager) *BatchRepo {
	return &BatchRepo{
		BaseCatalogRepo: NewBaseCatalogRepo(
			txManager,
			batchesTable,
			postgres.ExtractDBColumns[batch.Batch](),
			func() *batch.Batch { return &batch.Batch{} },
		),
	}
}

// ListByProduct retrieves live batches of a product, oldest expiry first.
func (r *BatchRepo) ListByProduct(ctx context.Context, productID id.ID) ([]*batch.Batch, error) {
	q := r.baseSelect().
		Where(squirrel.Eq{"product_id": productID}).
		Where(squirrel.Eq{"deletion_mark": false}).
		OrderBy("expires_at NULLS LAST", "code")

	sql, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var batches []*batch.Batch
	querier := r.txManager.GetQuerier(ctx)
	if err := pgxscan.Select(ctx, querier, &batches, sql, args...); err != nil {
		return nil, fmt.Errorf("list batches: %w", err)
	}

	return batches, nil
}
