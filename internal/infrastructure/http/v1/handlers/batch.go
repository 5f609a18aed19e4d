package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"stockledger/internal/core/apperror"
	"stockledger/internal/core/id"
	"stockledger/internal/domain/catalogs/batch"
	"stockledger/internal/infrastructure/http/v1/dto"
)

// BatchHandler handles HTTP requests for the Batch catalog.
type BatchHandler struct {
	*CatalogHandler[*batch.Batch, dto.CreateBatchRequest, dto.UpdateBatchRequest]
	service *batch.Service
}

// NewBatchHandler creates a new batch handler.
func NewBatchHandler(base *BaseHandler, service *batch.Service) *BatchHandler {
	cfg := CatalogHandlerConfig[*batch.Batch, dto.CreateBatchRequest, dto.UpdateBatchRequest]{
		Service:    service.CatalogService,
		EntityName: "batch",
		MapCreateDTO: func(req dto.CreateBatchRequest) (*batch.Batch, error) {
			return req.ToEntity()
		},
		MapUpdateDTO: func(req dto.UpdateBatchRequest, existing *batch.Batch) *batch.Batch {
			req.ApplyTo(existing)
			return existing
		},
		MapToDTO: func(item *batch.Batch) any {
			return dto.FromBatch(item)
		},
	}

	return &BatchHandler{
		CatalogHandler: NewCatalogHandler(base, cfg),
		service:        service,
	}
}

// RegisterRoutes registers batch routes.
func (h *BatchHandler) RegisterRoutes(rg *gin.RouterGroup) {
	h.CatalogHandler.RegisterRoutes(rg)
	rg.GET("/by-product/:productId", h.ListByProduct)
}

// ListByProduct handles GET /batches/by-product/:productId.
func (h *BatchHandler) ListByProduct(c *gin.Context) {
	productID, err := id.Parse(c.Param("productId"))
	if err != nil {
		h.Error(c, apperror.NewValidation("invalid productId format"))
		return
	}

	items, err := h.service.ListByProduct(c.Request.Context(), productID)
	if err != nil {
		h.Error(c, err)
		return
	}

	dtos := make([]*dto.BatchResponse, len(items))
	for i, item := range items {
		dtos[i] = dto.FromBatch(item)
	}

	c.JSON(http.StatusOK, gin.H{"items": dtos})
}
