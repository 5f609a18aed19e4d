package document_repo

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"

	"stockledger/internal/core/id"
	"stockledger/internal/core/types"
	"stockledger/internal/domain"
	"stockledger/internal/domain/documents/purchase_return"
	"stockledger/internal/infrastructure/storage/postgres"
)

const (
	purchaseReturnsTable     = "doc_purchase_returns"
	purchaseReturnLinesTable = "doc_purchase_return_lines"
)

// Compile-time check.
var _ purchase_return.Repository = (*PurchaseReturnRepo)(nil)

// PurchaseReturnRepo implements purchase_return.Repository.
type PurchaseReturnRepo struct {
	*BaseDocumentRepo[*purchase_return.PurchaseReturn]
	*lineStore
}

// NewPurchaseReturnRepo creates a new purchase return repository.
func NewPurchaseReturnRepo(txManager *postgres.TxManager) *PurchaseReturnRepo {
	return &PurchaseReturnRepo{
		BaseDocumentRepo: NewBaseDocumentRepo(
			txManager,
			purchaseReturnsTable,
			postgres.ExtractDBColumns[purchase_return.PurchaseReturn](),
			purchase_return.New,
		),
		lineStore: newLineStore(txManager, purchaseReturnLinesTable),
	}
}

// SumReturnedQuantities sums, per product, quantities already returned
// against an original purchase by live applied returns.
func (r *PurchaseReturnRepo) SumReturnedQuantities(ctx context.Context, originalID id.ID, excludeDocID *id.ID) (map[id.ID]types.Quantity, error) {
	return sumReturnedQuantities(ctx, r.txManager, purchaseReturnsTable, purchaseReturnLinesTable, originalID, excludeDocID)
}

// List retrieves purchase returns with filtering.
func (r *PurchaseReturnRepo) List(ctx context.Context, filter purchase_return.ListFilter) (domain.ListResult[*purchase_return.PurchaseReturn], error) {
	result := domain.ListResult[*purchase_return.PurchaseReturn]{
		Limit:  filter.Limit,
		Offset: filter.Offset,
	}

	q := r.baseSelect()

	if !filter.IncludeDeleted {
		q = q.Where(squirrel.Eq{"deletion_mark": false})
	}

	if filter.SupplierID != nil {
		q = q.Where(squirrel.Eq{"counterparty_id": *filter.SupplierID})
	}

	if filter.StoreID != nil {
		q = q.Where(squirrel.Eq{"store_id": *filter.StoreID})
	}

	if filter.OriginalPurchaseID != nil {
		q = q.Where(squirrel.Eq{"original_document_id": *filter.OriginalPurchaseID})
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
