package document_repo

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"

	"stockledger/internal/core/id"
	"stockledger/internal/core/types"
	"stockledger/internal/domain"
	"stockledger/internal/domain/documents/sale_return"
	"stockledger/internal/infrastructure/storage/postgres"
)

const (
	saleReturnsTable     = "doc_sale_returns"
	saleReturnLinesTable = "doc_sale_return_lines"
)

// Compile-time check.
var _ sale_return.Repository = (*SaleReturnRepo)(nil)

// SaleReturnRepo implements sale_return.Repository.
type SaleReturnRepo struct {
	*BaseDocumentRepo[*sale_return.SaleReturn]
	*lineStore
}

// NewSaleReturnRepo creates a new sale return repository.
func NewSaleReturnRepo(txManager *postgres.TxManager) *SaleReturnRepo {
	return &SaleReturnRepo{
		BaseDocumentRepo: NewBaseDocumentRepo(
			txManager,
			saleReturnsTable,
			postgres.ExtractDBColumns[sale_return.SaleReturn](),
			sale_return.New,
		),
		lineStore: newLineStore(txManager, saleReturnLinesTable),
	}
}

// SumReturnedQuantities sums, per product, quantities already returned
// against an original sale. Only live applied returns count: cancelled
// and soft-deleted documents do not consume the returnable quantity.
func (r *SaleReturnRepo) SumReturnedQuantities(ctx context.Context, originalID id.ID, excludeDocID *id.ID) (map[id.ID]types.Quantity, error) {
	return sumReturnedQuantities(ctx, r.txManager, saleReturnsTable, saleReturnLinesTable, originalID, excludeDocID)
}

// sumReturnedQuantities is shared by both return repositories (the two
// line tables have identical shape).
func sumReturnedQuantities(
	ctx context.Context,
	txManager *postgres.TxManager,
	docTable, linesTable string,
	originalID id.ID,
	excludeDocID *id.ID,
) (map[id.ID]types.Quantity, error) {
	q := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar).
		Select("l.product_id", "COALESCE(SUM(l.quantity), 0)::bigint AS returned").
		From(linesTable + " l").
		Join(docTable + " d ON d.id = l.document_id").
		Where(squirrel.Eq{"d.original_document_id": originalID}).
		Where(squirrel.Eq{"d.applied": true}).
		Where(squirrel.Eq{"d.deletion_mark": false}).
		GroupBy("l.product_id")

	if excludeDocID != nil {
		q = q.Where(squirrel.NotEq{"d.id": *excludeDocID})
	}

	sql, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	querier := txManager.GetQuerier(ctx)
	rows, err := querier.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("sum returned quantities: %w", err)
	}
	defer rows.Close()

	sums := make(map[id.ID]types.Quantity)
	for rows.Next() {
		var productID id.ID
		var returned int64
		if err := rows.Scan(&productID, &returned); err != nil {
			return nil, fmt.Errorf("scan returned quantity: %w", err)
		}
		sums[productID] = types.NewQuantityFromInt64Scaled(returned)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate returned quantities: %w", err)
	}

	return sums, nil
}

// List retrieves sale returns with filtering.
func (r *SaleReturnRepo) List(ctx context.Context, filter sale_return.ListFilter) (domain.ListResult[*sale_return.SaleReturn], error) {
	result := domain.ListResult[*sale_return.SaleReturn]{
		Limit:  filter.Limit,
		Offset: filter.Offset,
	}

	q := r.baseSelect()

	if !filter.IncludeDeleted {
		q = q.Where(squirrel.Eq{"deletion_mark": false})
	}

	if filter.CustomerID != nil {
		q = q.Where(squirrel.Eq{"counterparty_id": *filter.CustomerID})
	}

	if filter.StoreID != nil {
		q = q.Where(squirrel.Eq{"store_id": *filter.StoreID})
	}

	if filter.OriginalSaleID != nil {
		q = q.Where(squirrel.Eq{"original_document_id": *filter.OriginalSaleID})
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
