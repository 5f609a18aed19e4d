package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"stockledger/internal/core/apperror"
	"stockledger/internal/core/id"
	"stockledger/internal/domain"
	"stockledger/internal/domain/documents/sale_return"
	"stockledger/internal/infrastructure/http/v1/dto"
)

// SaleReturnHandler handles HTTP requests for SaleReturn documents.
type SaleReturnHandler struct {
	*BaseHandler
	service *sale_return.Service
}

// NewSaleReturnHandler creates a new sale return handler.
func NewSaleReturnHandler(base *BaseHandler, service *sale_return.Service) *SaleReturnHandler {
	return &SaleReturnHandler{BaseHandler: base, service: service}
}

// RegisterRoutes registers sale return routes.
func (h *SaleReturnHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("", h.List)
	rg.POST("", h.Create)
	rg.GET("/:id", h.Get)
	rg.PUT("/:id", h.Update)
	rg.DELETE("/:id", h.Delete)
}

// Create handles POST /sale-returns.
func (h *SaleReturnHandler) Create(c *gin.Context) {
	ctx := c.Request.Context()

	var req dto.CreateSaleReturnRequest
	if !h.BindJSON(c, &req) {
		return
	}

	doc, err := req.ToEntity()
	if err != nil {
		h.Error(c, apperror.NewValidation(err.Error()))
		return
	}

	items := dto.ToRawItems(req.Lines)

	if err := h.service.Create(ctx, doc, items); err != nil {
		h.Error(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.FromSaleReturn(doc))
}

// Get handles GET /sale-returns/:id.
func (h *SaleReturnHandler) Get(c *gin.Context) {
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

	c.JSON(http.StatusOK, dto.FromSaleReturn(doc))
}

// Update handles PUT /sale-returns/:id.
func (h *SaleReturnHandler) Update(c *gin.Context) {
	ctx := c.Request.Context()

	docID, err := id.Parse(c.Param("id"))
	if err != nil {
		h.Error(c, apperror.NewValidation("invalid id format"))
		return
	}

	var req dto.UpdateSaleReturnRequest
	if !h.BindJSON(c, &req) {
		return
	}

	doc, err := h.service.GetByID(ctx, docID)
	if err != nil {
		h.Error(c, err)
		return
	}

	req.TradeHeaderRequest.ApplyTo(&doc.TradeDocument)
	items := dto.ToRawItems(req.Lines)

	if err := h.service.Update(ctx, doc, items); err != nil {
		h.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.FromSaleReturn(doc))
}

// Delete handles DELETE /sale-returns/:id.
func (h *SaleReturnHandler) Delete(c *gin.Context) {
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

// List handles GET /sale-returns.
func (h *SaleReturnHandler) List(c *gin.Context) {
	ctx := c.Request.Context()

	filter := sale_return.ListFilter{ListFilter: domain.DefaultListFilter()}
	filter.Search = c.Query("search")
	filter.Limit = h.ParseIntQuery(c, "limit", 50)
	filter.Offset = h.ParseIntQuery(c, "offset", 0)
	filter.OrderBy = c.DefaultQuery("orderBy", "date DESC")
	filter.IncludeDeleted = c.Query("includeDeleted") == "true"

	if customerID := c.Query("customerId"); customerID != "" {
		if parsed, err := id.Parse(customerID); err == nil {
			filter.CustomerID = &parsed
		}
	}

	if storeID := c.Query("storeId"); storeID != "" {
		if parsed, err := id.Parse(storeID); err == nil {
			filter.StoreID = &parsed
		}
	}

	if originalID := c.Query("originalSaleId"); originalID != "" {
		if parsed, err := id.Parse(originalID); err == nil {
			filter.OriginalSaleID = &parsed
		}
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

	items := make([]*dto.SaleReturnResponse, len(result.Items))
	for i, doc := range result.Items {
		items[i] = dto.FromSaleReturn(doc)
	}

	c.JSON(http.StatusOK, dto.ListResponse{
		Items:      items,
		TotalCount: result.TotalCount,
		Limit:      result.Limit,
		Offset:     result.Offset,
	})
}
