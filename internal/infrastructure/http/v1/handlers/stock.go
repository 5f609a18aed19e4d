package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"stockledger/internal/core/apperror"
	"stockledger/internal/core/entity"
	"stockledger/internal/core/id"
	"stockledger/internal/domain/registers/stock"
	"stockledger/internal/infrastructure/http/v1/dto"
)

// StockHandler handles HTTP requests for stock balance queries.
type StockHandler struct {
	*BaseHandler
	service *stock.Service
}

// NewStockHandler creates a new stock handler.
func NewStockHandler(base *BaseHandler, service *stock.Service) *StockHandler {
	return &StockHandler{BaseHandler: base, service: service}
}

// RegisterRoutes registers stock routes.
func (h *StockHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("", h.Get)
	rg.GET("/availability/:productId", h.GetProductAvailability)
	rg.GET("/by-store/:storeId", h.GetStoreStock)
}

// Get handles GET /stock?productId=&storeId=&batchId=.
// Returns the balance at the exact key. Absent records read as zero.
func (h *StockHandler) Get(c *gin.Context) {
	productID, err := id.Parse(c.Query("productId"))
	if err != nil {
		h.Error(c, apperror.NewValidation("productId is required"))
		return
	}

	var storeID, batchID *id.ID
	if s := c.Query("storeId"); s != "" {
		parsed, err := id.Parse(s)
		if err != nil {
			h.Error(c, apperror.NewValidation("invalid storeId format"))
			return
		}
		storeID = &parsed
	}
	if b := c.Query("batchId"); b != "" {
		parsed, err := id.Parse(b)
		if err != nil {
			h.Error(c, apperror.NewValidation("invalid batchId format"))
			return
		}
		batchID = &parsed
	}

	key := entity.NewStockKey(productID, storeID, batchID)
	record, err := h.service.Get(c.Request.Context(), key)
	if err != nil {
		h.Error(c, err)
		return
	}
	if record == nil {
		empty := entity.NewStockRecord(key)
		c.JSON(http.StatusOK, dto.FromStockRecord(empty))
		return
	}

	c.JSON(http.StatusOK, dto.FromStockRecord(*record))
}

// GetProductAvailability handles GET /stock/availability/:productId.
func (h *StockHandler) GetProductAvailability(c *gin.Context) {
	productID, err := id.Parse(c.Param("productId"))
	if err != nil {
		h.Error(c, apperror.NewValidation("invalid productId format"))
		return
	}

	available, err := h.service.GetProductAvailability(c.Request.Context(), productID)
	if err != nil {
		h.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ProductAvailabilityResponse{
		ProductID: productID.String(),
		Available: available.Float64(),
	})
}

// GetStoreStock handles GET /stock/by-store/:storeId.
func (h *StockHandler) GetStoreStock(c *gin.Context) {
	storeID, err := id.Parse(c.Param("storeId"))
	if err != nil {
		h.Error(c, apperror.NewValidation("invalid storeId format"))
		return
	}

	records, err := h.service.GetStoreStock(c.Request.Context(), storeID)
	if err != nil {
		h.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.StockListResponse{
		Items: dto.FromStockRecords(records),
		Count: len(records),
	})
}
