package postgres

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"stockledger/internal/core/entity"
	"stockledger/internal/core/id"
	"stockledger/internal/core/types"
)

type mockCatalog struct {
	entity.BaseEntity
	Code string `db:"code" json:"code"`
	Name string `db:"name" json:"name"`
}

type mockDocument struct {
	entity.Document
	StoreID  *id.ID         `db:"store_id" json:"storeId,omitempty"`
	Quantity types.Quantity `db:"quantity" json:"quantity"`
	Skipped  string         `db:"-" json:"skipped"`
	NoTag    string
}

func TestExtractDBColumns(t *testing.T) {
	cols := ExtractDBColumns[mockCatalog]()

	expected := []string{"id", "deletion_mark", "version", "attributes", "code", "name"}
	for _, col := range expected {
		assert.Contains(t, cols, col)
	}
}

func TestExtractDBColumnsNestedEmbedding(t *testing.T) {
	cols := ExtractDBColumns[mockDocument]()

	// BaseEntity -> BaseDocument -> Document chain flattens.
	expected := []string{
		"id", "version", "created_at", "updated_at",
		"number", "date", "status", "applied", "applied_version",
		"store_id", "quantity",
	}
	for _, col := range expected {
		assert.Contains(t, cols, col)
	}
	assert.NotContains(t, cols, "-")
	assert.NotContains(t, cols, "Skipped")
	assert.NotContains(t, cols, "NoTag")
}

func TestStructToMap(t *testing.T) {
	cat := mockCatalog{
		BaseEntity: entity.BaseEntity{
			ID:           id.New(),
			DeletionMark: true,
			Version:      5,
		},
		Code: "PR-000001",
		Name: "Espresso Beans 1kg",
	}

	m := StructToMap(cat)

	assert.Equal(t, cat.ID, m["id"])
	assert.Equal(t, true, m["deletion_mark"])
	assert.Equal(t, 5, m["version"])
	assert.Equal(t, "PR-000001", m["code"])
	assert.Equal(t, "Espresso Beans 1kg", m["name"])
}

func TestStructToMapDocument(t *testing.T) {
	storeID := id.New()
	doc := mockDocument{
		Document: entity.NewDocument(),
		StoreID:  &storeID,
		Quantity: types.NewQuantityFromFloat64(2.5),
		Skipped:  "never stored",
	}
	doc.Number = "SA-000042"
	doc.Applied = true
	doc.AppliedVersion = 2

	m := StructToMap(doc)

	assert.Equal(t, doc.ID, m["id"])
	assert.Equal(t, "SA-000042", m["number"])
	assert.Equal(t, entity.StatusPending, m["status"])
	assert.Equal(t, true, m["applied"])
	assert.Equal(t, 2, m["applied_version"])
	assert.Equal(t, &storeID, m["store_id"])
	assert.Equal(t, types.NewQuantityFromFloat64(2.5), m["quantity"])
	assert.NotContains(t, m, "-")
}

func TestStructToMapPointerReceiver(t *testing.T) {
	cat := &mockCatalog{Code: "X"}
	m := StructToMap(cat)
	assert.Equal(t, "X", m["code"])
}

func TestStructToMapNonStruct(t *testing.T) {
	assert.Nil(t, StructToMap(42))
	assert.Nil(t, StructToMap("text"))
}

func TestStructToMapCachedMetadata(t *testing.T) {
	// Repeated calls for the same type reuse cached reflection metadata.
	for i := 0; i < 3; i++ {
		m := StructToMap(mockCatalog{Code: "C"})
		assert.Equal(t, "C", m["code"])
	}
}

func TestStructToMapIgnoresUntaggedFields(t *testing.T) {
	doc := mockDocument{Document: entity.NewDocument(), NoTag: "invisible"}
	m := StructToMap(doc)
	for k := range m {
		assert.NotEqual(t, "NoTag", k)
	}
}
