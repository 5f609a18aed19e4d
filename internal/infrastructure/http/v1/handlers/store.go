package handlers

import (
	"stockledger/internal/domain/catalogs/store"
	"stockledger/internal/infrastructure/http/v1/dto"
)

// StoreHandler handles HTTP requests for the Store catalog.
type StoreHandler struct {
	*CatalogHandler[*store.Store, dto.CreateStoreRequest, dto.UpdateStoreRequest]
}

// NewStoreHandler creates a new store handler.
func NewStoreHandler(base *BaseHandler, service *store.Service) *StoreHandler {
	cfg := CatalogHandlerConfig[*store.Store, dto.CreateStoreRequest, dto.UpdateStoreRequest]{
		Service:    service.CatalogService,
		EntityName: "store",
		MapCreateDTO: func(req dto.CreateStoreRequest) (*store.Store, error) {
			return req.ToEntity(), nil
		},
		MapUpdateDTO: func(req dto.UpdateStoreRequest, existing *store.Store) *store.Store {
			req.ApplyTo(existing)
			return existing
		},
		MapToDTO: func(item *store.Store) any {
			return dto.FromStore(item)
		},
	}

	return &StoreHandler{CatalogHandler: NewCatalogHandler(base, cfg)}
}
