package catalog_repo

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"

	"stockledger/internal/domain"
	"stockledger/internal/domain/catalogs/counterparty"
	"stockledger/internal/infrastructure/storage/postgres"
)

const counterpartiesTable = "cat_counterparties"

var _ counterparty.Repository = (*CounterpartyRepo)(nil)

// CounterpartyRepo implements the counterparty repository.
type CounterpartyRepo struct {
	*BaseCatalogRepo[*counterparty.Counterparty]
}

// NewCounterpartyRepo creates a new counterparty repository.
func NewCounterpartyRepo(txManager *postgres.TxManager) *CounterpartyRepo {
	return &CounterpartyRepo{
		BaseCatalogRepo: NewBaseCatalogRepo(
			txManager,
			counterpartiesTable,
			postgres.ExtractDBColumns[counterparty.Counterparty](),
			func() *counterparty.Counterparty { return &counterparty.Counterparty{} },
		),
	}
}

// ListByKind retrieves counterparties of a given kind.
// Rows marked "both" satisfy customer and supplier queries alike.
func (r *CounterpartyRepo) ListByKind(ctx context.Context, kind counterparty.Kind, filter domain.ListFilter) (domain.ListResult[*counterparty.Counterparty], error) {
	result := domain.ListResult[*counterparty.Counterparty]{
		Limit:  filter.Limit,
		Offset: filter.Offset,
	}

	kinds := []counterparty.Kind{kind, counterparty.KindBoth}
	if kind == counterparty.KindBoth {
		kinds = []counterparty.Kind{counterparty.KindBoth}
	}

	q := r.baseSelect().
		Where(squirrel.Eq{"deletion_mark": false}).
		Where(squirrel.Eq{"kind": kinds}).
		OrderBy("name ASC")

	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		q = q.Where(squirrel.Or{
			squirrel.ILike{"name": pattern},
			squirrel.ILike{"code": pattern},
		})
	}

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

	querier := r.txManager.GetQuerier(ctx)
	if err := pgxscan.Select(ctx, querier, &result.Items, sql, args...); err != nil {
		return result, fmt.Errorf("list by kind: %w", err)
	}
	result.TotalCount = int64(len(result.Items))

	return result, nil
}

// GetByTaxNumber retrieves a counterparty by tax number.
func (r *CounterpartyRepo) GetByTaxNumber(ctx context.Context, taxNumber string) (*counterparty.Counterparty, error) {
	q := r.baseSelect().
		Where(squirrel.Eq{"tax_number": taxNumber}).
		Where(squirrel.Eq{"deletion_mark": false}).
		Limit(1)

	return r.FindOne(ctx, q)
}
