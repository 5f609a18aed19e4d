package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"stockledger/internal/core/apperror"
	"stockledger/internal/core/id"
	"stockledger/internal/domain"
	"stockledger/internal/domain/documents/purchase_return"
	"stockledger/internal/infrastructure/http/v1/dto"
)

// PurchaseReturnHandler handles HTTP requests for PurchaseReturn documents.
type PurchaseReturnHandler struct {
	*BaseHandler
	service *purchase_return.Service
}

// NewPurchaseReturnHandler creates a new purchase return handler.
func NewPurchaseReturnHandler(base *BaseHandler, service *purchase_return.Service) *PurchaseReturnHandler {
	return &PurchaseReturnHandler{BaseHandler: base, service: service}
}

// RegisterRoutes registers purchase return routes.
func (h *PurchaseReturnHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("", h.List)
	rg.POST("", h.Create)
	rg.GET("/:id", h.Get)
	rg.PUT("/:id", h.Update)
	rg.DELETE("/:id", h.Delete)
}

// Create handles POST /purchase-returns.
func (h *PurchaseReturnHandler) Create(c *gin.Context) {
	ctx := c.Request.Context()

	var req dto.CreatePurchaseReturnRequest
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

	c.JSON(http.StatusCreated, dto.FromPurchaseReturn(doc))
}

// Get handles GET /purchase-returns/:id.
func (h *PurchaseReturnHandler) Get(c *gin.Context) {
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

	c.JSON(http.StatusOK, dto.FromPurchaseReturn(doc))
}

// Update handles PUT /purchase-returns/:id.
func (h *PurchaseReturnHandler) Update(c *gin.Context) {
	ctx := c.Request.Context()

	docID, err := id.Parse(c.Param("id"))
	if err != nil {
		h.Error(c, apperror.NewValidation("invalid id format"))
		return
	}

	var req dto.UpdatePurchaseReturnRequest
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

	c.JSON(http.StatusOK, dto.FromPurchaseReturn(doc))
}

// Delete handles DELETE /purchase-returns/:id.
func (h *PurchaseReturnHandler) Delete(c *gin.Context) {
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

// List handles GET /purchase-returns.
func (h *PurchaseReturnHandler) List(c *gin.Context) {
	ctx := c.Request.Context()

	filter := purchase_return.ListFilter{ListFilter: domain.DefaultListFilter()}
	filter.Search = c.Query("search")
	filter.Limit = h.ParseIntQuery(c, "limit", 50)
	filter.Offset = h.ParseIntQuery(c, "offset", 0)
	filter.OrderBy = c.DefaultQuery("orderBy", "date DESC")
	filter.IncludeDeleted = c.Query("includeDeleted") == "true"

	if supplierID := c.Query("supplierId"); supplierID != "" {
		if parsed, err := id.Parse(supplierID); err == nil {
			filter.SupplierID = &parsed
		}
	}

	if storeID := c.Query("storeId"); storeID != "" {
		if parsed, err := id.Parse(storeID); err == nil {
			filter.StoreID = &parsed
		}
	}

	if originalID := c.Query("originalPurchaseId"); originalID != "" {
		if parsed, err := id.Parse(originalID); err == nil {
			filter.OriginalPurchaseID = &parsed
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

	items := make([]*dto.PurchaseReturnResponse, len(result.Items))
	for i, doc := range result.Items {
		items[i] = dto.FromPurchaseReturn(doc)
	}

	c.JSON(http.StatusOK, dto.ListResponse{
		Items:      items,
		TotalCount: result.TotalCount,
		Limit:      result.Limit,
		Offset:     result.Offset,
	})
}
