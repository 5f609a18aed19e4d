package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"stockledger/internal/core/apperror"
	"stockledger/internal/core/entity"
	"stockledger/internal/core/id"
	"stockledger/internal/domain"
	"stockledger/internal/domain/documents/transfer"
	"stockledger/internal/infrastructure/http/v1/dto"
)

// TransferHandler handles HTTP requests for StockTransfer documents.
type TransferHandler struct {
	*BaseHandler
	service *transfer.Service
}

// NewTransferHandler creates a new transfer handler.
func NewTransferHandler(base *BaseHandler, service *transfer.Service) *TransferHandler {
	return &TransferHandler{BaseHandler: base, service: service}
}

// RegisterRoutes registers transfer routes.
func (h *TransferHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("", h.List)
	rg.POST("", h.Create)
	rg.GET("/:id", h.Get)
	rg.PUT("/:id", h.Update)
	rg.DELETE("/:id", h.Delete)
	rg.POST("/:id/status", h.SetStatus)
}

// Create handles POST /stock-transfers.
func (h *TransferHandler) Create(c *gin.Context) {
	ctx := c.Request.Context()

	var req dto.CreateTransferRequest
	if !h.BindJSON(c, &req) {
		return
	}

	doc, err := req.ToEntity()
	if err != nil {
		h.Error(c, apperror.NewValidation(err.Error()))
		return
	}

	if err := h.service.Create(ctx, doc); err != nil {
		h.Error(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.FromTransfer(doc))
}

// Get handles GET /stock-transfers/:id.
func (h *TransferHandler) Get(c *gin.Context) {
	docID, err := id.Parse(c.Param("id"))
	if err != nil {
		h.Error(c, apperror.NewValidation("invalid id format"))
		return
	}

	doc, err := h.service.GetByID(c.Request.Context(), docID)
	if err != nil {
		h.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.FromTransfer(doc))
}

// Update handles PUT /stock-transfers/:id.
func (h *TransferHandler) Update(c *gin.Context) {
	ctx := c.Request.Context()

	docID, err := id.Parse(c.Param("id"))
	if err != nil {
		h.Error(c, apperror.NewValidation("invalid id format"))
		return
	}

	var req dto.UpdateTransferRequest
	if !h.BindJSON(c, &req) {
		return
	}

	doc, err := h.service.GetByID(ctx, docID)
	if err != nil {
		h.Error(c, err)
		return
	}

	req.ApplyTo(doc)

	if err := h.service.Update(ctx, doc); err != nil {
		h.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.FromTransfer(doc))
}

// SetStatus handles POST /stock-transfers/:id/status.
func (h *TransferHandler) SetStatus(c *gin.Context) {
	docID, err := id.Parse(c.Param("id"))
	if err != nil {
		h.Error(c, apperror.NewValidation("invalid id format"))
		return
	}

	var req dto.SetStatusRequest
	if !h.BindJSON(c, &req) {
		return
	}

	status := entity.DocStatus(req.Status)
	if !status.IsValid() {
		h.Error(c, apperror.NewValidation("unknown status").WithDetail("value", req.Status))
		return
	}

	if err := h.service.SetStatus(c.Request.Context(), docID, status); err != nil {
		h.Error(c, err)
		return
	}

	h.Success(c, "status updated")
}

// Delete handles DELETE /stock-transfers/:id.
func (h *TransferHandler) Delete(c *gin.Context) {
	docID, err := id.Parse(c.Param("id"))
	if err != nil {
		h.Error(c, apperror.NewValidation("invalid id format"))
		return
	}

	if err := h.service.Delete(c.Request.Context(), docID); err != nil {
		h.Error(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// List handles GET /stock-transfers.
func (h *TransferHandler) List(c *gin.Context) {
	ctx := c.Request.Context()

	filter := transfer.ListFilter{ListFilter: domain.DefaultListFilter()}
	filter.Search = c.Query("search")
	filter.Limit = h.ParseIntQuery(c, "limit", 50)
	filter.Offset = h.ParseIntQuery(c, "offset", 0)
	filter.OrderBy = c.DefaultQuery("orderBy", "date DESC")
	filter.IncludeDeleted = c.Query("includeDeleted") == "true"

	if productID := c.Query("productId"); productID != "" {
		if parsed, err := id.Parse(productID); err == nil {
			filter.ProductID = &parsed
		}
	}

	if sourceID := c.Query("sourceStoreId"); sourceID != "" {
		if parsed, err := id.Parse(sourceID); err == nil {
			filter.SourceStoreID = &parsed
		}
	}

	if destID := c.Query("destStoreId"); destID != "" {
		if parsed, err := id.Parse(destID); err == nil {
			filter.DestStoreID = &parsed
		}
	}

	if status := c.Query("status"); status != "" {
		val := entity.DocStatus(status)
		filter.Status = &val
	}

	if dateFrom := c.Query("dateFrom"); dateFrom != "" {
		if parsed, err := time.Parse(time.RFC3339, dateFrom); err == nil {
			filter.DateFrom = &parsed
		}
	}

	if dateTo := c.Query("dateTo"); dateTo != "" {
		if parsed, err := time.Parse(time.RFC3339, dateTo); err == nil {
			filter.DateTo = &parsed
		}
	}

	result, err := h.service.List(ctx, filter)
	if err != nil {
		h.Error(c, err)
		return
	}

	items := make([]*dto.TransferResponse, len(result.Items))
	for i, doc := range result.Items {
		items[i] = dto.FromTransfer(doc)
	}

	c.JSON(http.StatusOK, dto.ListResponse{
		Items:      items,
		TotalCount: result.TotalCount,
		Limit:      result.Limit,
		Offset:     result.Offset,
	})
}
