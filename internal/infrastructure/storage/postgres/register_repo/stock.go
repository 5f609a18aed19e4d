// Package register_repo provides PostgreSQL implementations for register repositories.
package register_repo

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"

	"stockledger/internal/core/entity"
	"stockledger/internal/core/id"
	"stockledger/internal/domain/registers/stock"
	"stockledger/internal/infrastructure/storage/postgres"
)

const stockRecordsTable = "reg_stock_records"

var stockRecordColumns = []string{
	"id", "product_id", "store_id", "batch_id",
	"quantity", "unit_cost", "created_at", "updated_at",
}

// Ensure interface compliance.
var _ stock.Repository = (*StockRepo)(nil)

// StockRepo implements stock.Repository over a single current-quantity
// table keyed by (product_id, store_id, batch_id).
type StockRepo struct {
	txManager *postgres.TxManager
	builder   squirrel.StatementBuilderType
}

// NewStockRepo creates a new stock register repository.
func NewStockRepo(txManager *postgres.TxManager) *StockRepo {
	return &StockRepo{
		txManager: txManager,
		builder:   squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// keyConditions builds the NULL-safe match for a stock key.
// store_id and batch_id are nullable dimensions: a nil pointer matches
// only rows where the column IS NULL.
func keyConditions(key entity.StockKey) squirrel.And {
	cond := squirrel.And{squirrel.Eq{"product_id": key.ProductID}}

	if key.StoreID != nil {
		cond = append(cond, squirrel.Eq{"store_id": *key.StoreID})
	} else {
		cond = append(cond, squirrel.Eq{"store_id": nil})
	}

	if key.BatchID != nil {
		cond = append(cond, squirrel.Eq{"batch_id": *key.BatchID})
	} else {
		cond = append(cond, squirrel.Eq{"batch_id": nil})
	}

	return cond
}

// Get returns the current record for a key, or (nil, nil) when absent.
func (r *StockRepo) Get(ctx context.Context, key entity.StockKey) (*entity.StockRecord, error) {
	return r.getByKey(ctx, key, false)
}

// GetForUpdate returns the record with a row lock, or (nil, nil) when absent.
func (r *StockRepo) GetForUpdate(ctx context.Context, key entity.StockKey) (*entity.StockRecord, error) {
	return r.getByKey(ctx, key, true)
}

func (r *StockRepo) selectByKey(key entity.StockKey, forUpdate bool) squirrel.SelectBuilder {
	q := r.builder.Select(stockRecordColumns...).
		From(stockRecordsTable).
		Where(keyConditions(key)).
		Limit(1)

	if forUpdate {
		q = q.Suffix("FOR UPDATE")
	}
	return q
}

func (r *StockRepo) selectByID(recordID id.ID, forUpdate bool) squirrel.SelectBuilder {
	q := r.builder.Select(stockRecordColumns...).
		From(stockRecordsTable).
		Where(squirrel.Eq{"id": recordID})

	if forUpdate {
		q = q.Suffix("FOR UPDATE")
	}
	return q
}

func (r *StockRepo) getByKey(ctx context.Context, key entity.StockKey, forUpdate bool) (*entity.StockRecord, error) {
	sql, args, err := r.selectByKey(key, forUpdate).ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var record entity.StockRecord
	querier := r.txManager.GetQuerier(ctx)
	if err := pgxscan.Get(ctx, querier, &record, sql, args...); err != nil {
		if pgxscan.NotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get stock record: %w", err)
	}

	return &record, nil
}

// GetByID retrieves a record by its identity, or (nil, nil) when absent.
func (r *StockRepo) GetByID(ctx context.Context, recordID id.ID) (*entity.StockRecord, error) {
	return r.getByID(ctx, recordID, false)
}

// GetForUpdateByID retrieves a record by its identity with a row lock,
// or (nil, nil) when absent.
func (r *StockRepo) GetForUpdateByID(ctx context.Context, recordID id.ID) (*entity.StockRecord, error) {
	return r.getByID(ctx, recordID, true)
}

func (r *StockRepo) getByID(ctx context.Context, recordID id.ID, forUpdate bool) (*entity.StockRecord, error) {
	sql, args, err := r.selectByID(recordID, forUpdate).ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var record entity.StockRecord
	querier := r.txManager.GetQuerier(ctx)
	if err := pgxscan.Get(ctx, querier, &record, sql, args...); err != nil {
		if pgxscan.NotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get stock record by id: %w", err)
	}

	return &record, nil
}

// Insert creates a new record.
func (r *StockRepo) Insert(ctx context.Context, record *entity.StockRecord) error {
	q := r.builder.Insert(stockRecordsTable).
		Columns(stockRecordColumns...).
		Values(
			record.ID, record.ProductID, record.StoreID, record.BatchID,
			record.Quantity, record.UnitCost, record.CreatedAt, record.UpdatedAt,
		)

	sql, args, err := q.ToSql()
	if err != nil {
		return fmt.Errorf("build insert: %w", err)
	}

	querier := r.txManager.GetQuerier(ctx)
	if _, err := querier.Exec(ctx, sql, args...); err != nil {
		return fmt.Errorf("insert stock record: %w", err)
	}

	return nil
}

// Update persists quantity and unit cost changes.
func (r *StockRepo) Update(ctx context.Context, record *entity.StockRecord) error {
	q := r.builder.Update(stockRecordsTable).
		Set("quantity", record.Quantity).
		Set("unit_cost", record.UnitCost).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": record.ID})

	sql, args, err := q.ToSql()
	if err != nil {
		return fmt.Errorf("build update: %w", err)
	}

	querier := r.txManager.GetQuerier(ctx)
	result, err := querier.Exec(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("update stock record: %w", err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("stock record %s not found", record.ID)
	}

	return nil
}

// ListByProduct returns records across all stores for a product.
func (r *StockRepo) ListByProduct(ctx context.Context, productID id.ID) ([]entity.StockRecord, error) {
	q := r.builder.Select(stockRecordColumns...).
		From(stockRecordsTable).
		Where(squirrel.Eq{"product_id": productID}).
		OrderBy("store_id NULLS FIRST", "batch_id NULLS FIRST")

	sql, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var records []entity.StockRecord
	querier := r.txManager.GetQuerier(ctx)
	if err := pgxscan.Select(ctx, querier, &records, sql, args...); err != nil {
		return nil, fmt.Errorf("select stock records: %w", err)
	}

	return records, nil
}

// ListByStore returns records for a store.
func (r *StockRepo) ListByStore(ctx context.Context, storeID id.ID, filter stock.RecordFilter) ([]entity.StockRecord, error) {
	q := r.builder.Select(stockRecordColumns...).
		From(stockRecordsTable).
		Where(squirrel.Eq{"store_id": storeID})

	if len(filter.ProductIDs) > 0 {
		q = q.Where(squirrel.Eq{"product_id": filter.ProductIDs})
	}

	if filter.ExcludeZero {
		q = q.Where(squirrel.NotEq{"quantity": int64(0)})
	}

	if filter.MinQuantity != nil {
		q = q.Where(squirrel.GtOrEq{"quantity": filter.MinQuantity.Int64Scaled()})
	}

	q = q.OrderBy("product_id")

	if filter.Limit > 0 {
		q = q.Limit(uint64(filter.Limit))
	}
	if filter.Offset > 0 {
		q = q.Offset(uint64(filter.Offset))
	}

	sql, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var records []entity.StockRecord
	querier := r.txManager.GetQuerier(ctx)
	if err := pgxscan.Select(ctx, querier, &records, sql, args...); err != nil {
		return nil, fmt.Errorf("select stock records: %w", err)
	}

	return records, nil
}
