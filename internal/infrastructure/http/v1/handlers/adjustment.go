package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"stockledger/internal/core/apperror"
	"stockledger/internal/core/entity"
	"stockledger/internal/core/id"
	"stockledger/internal/domain"
	"stockledger/internal/domain/documents/adjustment"
	"stockledger/internal/infrastructure/http/v1/dto"
)

// AdjustmentHandler handles HTTP requests for StockAdjustment documents.
type AdjustmentHandler struct {
	*BaseHandler
	service *adjustment.Service
}

// NewAdjustmentHandler creates a new adjustment handler.
func NewAdjustmentHandler(base *BaseHandler, service *adjustment.Service) *AdjustmentHandler {
	return &AdjustmentHandler{BaseHandler: base, service: service}
}

// RegisterRoutes registers adjustment routes.
func (h *AdjustmentHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("", h.List)
	rg.POST("", h.Create)
	rg.GET("/:id", h.Get)
	rg.PUT("/:id", h.Update)
	rg.DELETE("/:id", h.Delete)
	rg.POST("/:id/status", h.SetStatus)
}

// Create handles POST /stock-adjustments.
func (h *AdjustmentHandler) Create(c *gin.Context) {
	ctx := c.Request.Context()

	var req dto.CreateAdjustmentRequest
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

	c.JSON(http.StatusCreated, dto.FromAdjustment(doc))
}

// Get handles GET /stock-adjustments/:id.
func (h *AdjustmentHandler) Get(c *gin.Context) {
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

	c.JSON(http.StatusOK, dto.FromAdjustment(doc))
}

// Update handles PUT /stock-adjustments/:id.
func (h *AdjustmentHandler) Update(c *gin.Context) {
	ctx := c.Request.Context()

	docID, err := id.Parse(c.Param("id"))
	if err != nil {
		h.Error(c, apperror.NewValidation("invalid id format"))
		return
	}

	var req dto.UpdateAdjustmentRequest
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

	c.JSON(http.StatusOK, dto.FromAdjustment(doc))
}

// SetStatus handles POST /stock-adjustments/:id/status.
// Moving to Done applies the stock effect, leaving Done reverses it.
func (h *AdjustmentHandler) SetStatus(c *gin.Context) {
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

// Delete handles DELETE /stock-adjustments/:id.
func (h *AdjustmentHandler) Delete(c *gin.Context) {
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

// List handles GET /stock-adjustments.
func (h *AdjustmentHandler) List(c *gin.Context) {
	ctx := c.Request.Context()

	filter := adjustment.ListFilter{ListFilter: domain.DefaultListFilter()}
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

	if storeID := c.Query("storeId"); storeID != "" {
		if parsed, err := id.Parse(storeID); err == nil {
			filter.StoreID = &parsed
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

	items := make([]*dto.AdjustmentResponse, len(result.Items))
	for i, doc := range result.Items {
		items[i] = dto.FromAdjustment(doc)
	}

	c.JSON(http.StatusOK, dto.ListResponse{
		Items:      items,
		TotalCount: result.TotalCount,
		Limit:      result.Limit,
		Offset:     result.Offset,
	})
}
