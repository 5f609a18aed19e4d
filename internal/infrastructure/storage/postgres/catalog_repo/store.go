package catalog_repo

import (
	"stockledger/internal/domain/catalogs/store"
	"stockledger/internal/infrastructure/storage/postgres"
)

const storesTable = "cat_stores"

var _ store.Repository = (*StoreRepo)(nil)

// StoreRepo implements the store repository.
type StoreRepo struct {
	*BaseCatalogRepo[*store.Store]
}

// NewStoreRepo creates a new store repository.
func NewStoreRepo(txManager *postgres.TxManager) *StoreRepo {
	return &StoreRepo{
		BaseCatalogRepo: NewBaseCatalogRepo(
			txManager,
			storesTable,
			postgres.ExtractDBColumns[store.Store](),
			func() *store.Store { return &store.Store{} },
		),
	}
}
