package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"stockledger/internal/domain"
	"stockledger/internal/domain/catalogs/counterparty"
	"stockledger/internal/infrastructure/http/v1/dto"
)

// CounterpartyHandler handles HTTP requests for the Counterparty catalog.
type CounterpartyHandler struct {
	*CatalogHandler[*counterparty.Counterparty, dto.CreateCounterpartyRequest, dto.UpdateCounterpartyRequest]
	service *counterparty.Service
}

// NewCounterpartyHandler creates a new counterparty handler.
func NewCounterpartyHandler(base *BaseHandler, service *counterparty.Service) *CounterpartyHandler {
	cfg := CatalogHandlerConfig[*counterparty.Counterparty, dto.CreateCounterpartyRequest, dto.UpdateCounterpartyRequest]{
		Service:    service.CatalogService,
		EntityName: "counterparty",
		MapCreateDTO: func(req dto.CreateCounterpartyRequest) (*counterparty.Counterparty, error) {
			return req.ToEntity(), nil
		},
		MapUpdateDTO: func(req dto.UpdateCounterpartyRequest, existing *counterparty.Counterparty) *counterparty.Counterparty {
			req.ApplyTo(existing)
			return existing
		},
		MapToDTO: func(item *counterparty.Counterparty) any {
			return dto.FromCounterparty(item)
		},
	}

	return &CounterpartyHandler{
		CatalogHandler: NewCatalogHandler(base, cfg),
		service:        service,
	}
}

// RegisterRoutes registers counterparty routes.
func (h *CounterpartyHandler) RegisterRoutes(rg *gin.RouterGroup) {
	h.CatalogHandler.RegisterRoutes(rg)
	rg.GET("/customers", h.ListCustomers)
	rg.GET("/suppliers", h.ListSuppliers)
}

// ListCustomers handles GET /counterparties/customers.
func (h *CounterpartyHandler) ListCustomers(c *gin.Context) {
	h.listByRole(c, h.service.ListCustomers)
}

// ListSuppliers handles GET /counterparties/suppliers.
func (h *CounterpartyHandler) ListSuppliers(c *gin.Context) {
	h.listByRole(c, h.service.ListSuppliers)
}

func (h *CounterpartyHandler) listByRole(
	c *gin.Context,
	list func(ctx context.Context, filter domain.ListFilter) (domain.ListResult[*counterparty.Counterparty], error),
) {
	filter := domain.DefaultListFilter()
	filter.Search = c.Query("search")
	filter.Limit = h.ParseIntQuery(c, "limit", 50)
	filter.Offset = h.ParseIntQuery(c, "offset", 0)

	result, err := list(c.Request.Context(), filter)
	if err != nil {
		h.Error(c, err)
		return
	}

	items := make([]*dto.CounterpartyResponse, len(result.Items))
	for i, item := range result.Items {
		items[i] = dto.FromCounterparty(item)
	}

	c.JSON(http.StatusOK, dto.ListResponse{
		Items:      items,
		TotalCount: result.TotalCount,
		Limit:      result.Limit,
		Offset:     result.Offset,
	})
}
