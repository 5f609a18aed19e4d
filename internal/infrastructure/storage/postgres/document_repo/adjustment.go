package document_repo

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"

	"stockledger/internal/domain"
	"stockledger/internal/domain/documents/adjustment"
	"stockledger/internal/infrastructure/storage/postgres"
)

const adjustmentsTable = "doc_stock_adjustments"

// Compile-time check.
var _ adjustment.Repository = (*AdjustmentRepo)(nil)

// AdjustmentRepo implements adjustment.Repository.
// Adjustments are single-row documents, no line table.
type AdjustmentRepo struct {
	*BaseDocumentRepo[*adjustment.StockAdjustment]
}

// NewAdjustmentRepo creates a new adjustment repository.
func NewAdjustmentRepo(txManager *postgres.TxManager) *AdjustmentRepo {
	return &AdjustmentRepo{
		BaseDocumentRepo: NewBaseDocumentRepo(
			txManager,
			adjustmentsTable,
			postgres.ExtractDBColumns[adjustment.StockAdjustment](),
			adjustment.New,
		),
	}
}

// List retrieves adjustments with filtering.
func (r *AdjustmentRepo) List(ctx context.Context, filter adjustment.ListFilter) (domain.ListResult[*adjustment.StockAdjustment], error) {
	result := domain.ListResult[*adjustment.StockAdjustment]{
		Limit:  filter.Limit,
		Offset: filter.Offset,
	}

	q := r.baseSelect()

	if !filter.IncludeDeleted {
		q = q.Where(squirrel.Eq{"deletion_mark": false})
	}

	if filter.ProductID != nil {
		q = q.Where(squirrel.Eq{"product_id": *filter.ProductID})
	}

	if filter.StoreID != nil {
		q = q.Where(squirrel.Eq{"store_id": *filter.StoreID})
	}

	if filter.Status != nil {
		q = q.Where(squirrel.Eq{"status": *filter.Status})
	}

	if filter.DateFrom != nil {
		q = q.Where(squirrel.GtOrEq{"date": *filter.DateFrom})
	}

	if filter.DateTo != nil {
		q = q.Where(squirrel.LtOrEq{"date": *filter.DateTo})
	}

	if filter.Search != "" {
		q = q.Where(squirrel.ILike{"number": "%" + filter.Search + "%"})
	}

	countQ := r.Builder().Select("COUNT(*)").FromSelect(q, "sub")
	countSQL, countArgs, err := countQ.ToSql()
	if err != nil {
		return result, fmt.Errorf("build count: %w", err)
	}

	querier := r.txManager.GetQuerier(ctx)
	if err := querier.QueryRow(ctx, countSQL, countArgs...).Scan(&result.TotalCount); err != nil {
		return result, fmt.Errorf("count: %w", err)
	}

	orderBy, err := r.parseOrderBy(filter.OrderBy)
	if err != nil {
		return result, err
	}
	q = q.OrderBy(orderBy)

	if filter.Limit > 0 {
		q = q.Limit(uint64(filter.Limit))
	}
	if filter.Offset > 0 {
		q = q.Offset(uint64(filter.Offset))
	}

	sql, args, err := q.ToSql()
	if err != nil {
		return result, fmt.Errorf("build query: %w", err)
	}

	if err := pgxscan.Select(ctx, querier, &result.Items, sql, args...); err != nil {
		return result, fmt.Errorf("select: %w", err)
	}

	return result, nil
}
