package register_repo

import (
	"strings"
	"testing"

	"stockledger/internal/core/entity"
	"stockledger/internal/core/id"
)

func TestSelectByKeyNullSafeSQL(t *testing.T) {
	repo := NewStockRepo(nil)
	productID := id.New()

	sql, args, err := repo.selectByKey(entity.NewStockKey(productID, nil, nil), false).ToSql()
	if err != nil {
		t.Fatalf("ToSql failed: %v", err)
	}

	want := "SELECT id, product_id, store_id, batch_id, quantity, unit_cost, created_at, updated_at " +
		"FROM reg_stock_records WHERE (product_id = $1 AND store_id IS NULL AND batch_id IS NULL) LIMIT 1"
	if sql != want {
		t.Errorf("SQL mismatch\nwant: %s\ngot:  %s", want, sql)
	}
	if len(args) != 1 {
		t.Errorf("expected 1 arg, got %d", len(args))
	}
}

func TestSelectByKeyWithDimensions(t *testing.T) {
	repo := NewStockRepo(nil)
	storeID := id.New()
	batchID := id.New()

	sql, args, err := repo.selectByKey(entity.NewStockKey(id.New(), &storeID, &batchID), true).ToSql()
	if err != nil {
		t.Fatalf("ToSql failed: %v", err)
	}

	if !strings.Contains(sql, "store_id = $2") || !strings.Contains(sql, "batch_id = $3") {
		t.Errorf("dimensions not matched by value: %s", sql)
	}
	if !strings.HasSuffix(sql, "FOR UPDATE") {
		t.Errorf("lock suffix missing: %s", sql)
	}
	if len(args) != 3 {
		t.Errorf("expected 3 args, got %d", len(args))
	}
}

func TestSelectByIDLockSuffix(t *testing.T) {
	repo := NewStockRepo(nil)
	recordID := id.New()

	sql, _, err := repo.selectByID(recordID, false).ToSql()
	if err != nil {
		t.Fatalf("ToSql failed: %v", err)
	}
	if strings.Contains(sql, "FOR UPDATE") {
		t.Errorf("plain read must not lock: %s", sql)
	}

	sql, _, err = repo.selectByID(recordID, true).ToSql()
	if err != nil {
		t.Fatalf("ToSql failed: %v", err)
	}
	if !strings.HasSuffix(sql, "FOR UPDATE") {
		t.Errorf("lock suffix missing: %s", sql)
	}
}
