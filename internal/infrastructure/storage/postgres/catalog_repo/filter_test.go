package catalog_repo

import (
	"testing"

	"github.com/Masterminds/squirrel"

	"stockledger/internal/core/id"
)

func newTestRepo() *BaseCatalogRepo[any] {
	return NewBaseCatalogRepo[any](nil, "test_table", []string{"id", "code", "name"}, func() any { return nil })
}

func TestBaseSelectSQL(t *testing.T) {
	repo := newTestRepo()

	sql, _, err := repo.baseSelect().ToSql()
	if err != nil {
		t.Fatalf("ToSql failed: %v", err)
	}

	want := "SELECT id, code, name FROM test_table"
	if sql != want {
		t.Errorf("SQL mismatch\nwant: %s\ngot:  %s", want, sql)
	}
}

func TestListFilterSQL(t *testing.T) {
	repo := newTestRepo()
	entityID := id.New()

	q := repo.baseSelect().
		Where(squirrel.Eq{"deletion_mark": false}).
		Where(squirrel.Or{
			squirrel.ILike{"name": "%cof%"},
			squirrel.ILike{"code": "%cof%"},
		}).
		Where(squirrel.Eq{"id": []id.ID{entityID}})

	sql, args, err := q.ToSql()
	if err != nil {
		t.Fatalf("ToSql failed: %v", err)
	}

	want := "SELECT id, code, name FROM test_table WHERE deletion_mark = $1 AND (name ILIKE $2 OR code ILIKE $3) AND id IN ($4)"
	if sql != want {
		t.Errorf("SQL mismatch\nwant: %s\ngot:  %s", want, sql)
	}
	if len(args) != 4 {
		t.Errorf("expected 4 args, got %d: %v", len(args), args)
	}
}

func TestParseOrderBy(t *testing.T) {
	repo := newTestRepo()

	tests := []struct {
		name    string
		orderBy string
		want    string
		wantErr bool
	}{
		{"default", "", "name ASC", false},
		{"plain field", "code", "code ASC", false},
		{"explicit asc", "+code", "code ASC", false},
		{"desc prefix", "-created_at", "created_at DESC", false},
		{"unknown field", "sku; DROP TABLE test_table", "", true},
		{"bare minus", "-", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := repo.parseOrderBy(tt.orderBy)
			if tt.wantErr {
				if err == nil {
					t.Errorf("expected error for %q, got %q", tt.orderBy, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("parseOrderBy(%q) = %q, want %q", tt.orderBy, got, tt.want)
			}
		})
	}
}

func TestSetDeletionMarkSQL(t *testing.T) {
	repo := newTestRepo()
	entityID := id.New()

	q := repo.Builder().
		Update(repo.tableName).
		Set("deletion_mark", true).
		Set("version", squirrel.Expr("version + 1")).
		Where(squirrel.Eq{"id": entityID})

	sql, args, err := q.ToSql()
	if err != nil {
		t.Fatalf("ToSql failed: %v", err)
	}

	want := "UPDATE test_table SET deletion_mark = $1, version = version + 1 WHERE id = $2"
	if sql != want {
		t.Errorf("SQL mismatch\nwant: %s\ngot:  %s", want, sql)
	}
	if len(args) != 2 || args[0] != true || args[1] != entityID {
		t.Errorf("Args mismatch: %v", args)
	}
}
