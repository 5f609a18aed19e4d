package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"stockledger/internal/core/apperror"
	"stockledger/internal/domain/catalogs/product"
	"stockledger/internal/infrastructure/http/v1/dto"
)

// ProductHandler handles HTTP requests for the Product catalog.
type ProductHandler struct {
	*CatalogHandler[*product.Product, dto.CreateProductRequest, dto.UpdateProductRequest]
	service *product.Service
}

// NewProductHandler creates a new product handler.
func NewProductHandler(base *BaseHandler, service *product.Service) *ProductHandler {
	cfg := CatalogHandlerConfig[*product.Product, dto.CreateProductRequest, dto.UpdateProductRequest]{
		Service:    service.CatalogService,
		EntityName: "product",
		MapCreateDTO: func(req dto.CreateProductRequest) (*product.Product, error) {
			return req.ToEntity(), nil
		},
		MapUpdateDTO: func(req dto.UpdateProductRequest, existing *product.Product) *product.Product {
			req.ApplyTo(existing)
			return existing
		},
		MapToDTO: func(item *product.Product) any {
			return dto.FromProduct(item)
		},
	}

	return &ProductHandler{
		CatalogHandler: NewCatalogHandler(base, cfg),
		service:        service,
	}
}

// RegisterRoutes registers product routes.
func (h *ProductHandler) RegisterRoutes(rg *gin.RouterGroup) {
	h.CatalogHandler.RegisterRoutes(rg)
	rg.GET("/by-barcode/:barcode", h.GetByBarcode)
	rg.GET("/by-sku/:sku", h.GetBySKU)
}

// GetByBarcode handles GET /products/by-barcode/:barcode. POS lookup.
func (h *ProductHandler) GetByBarcode(c *gin.Context) {
	barcode := c.Param("barcode")
	if barcode == "" {
		h.Error(c, apperror.NewValidation("barcode is required"))
		return
	}

	item, err := h.service.GetByBarcode(c.Request.Context(), barcode)
	if err != nil {
		h.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.FromProduct(item))
}

// GetBySKU handles GET /products/by-sku/:sku.
func (h *ProductHandler) GetBySKU(c *gin.Context) {
	sku := c.Param("sku")
	if sku == "" {
		h.Error(c, apperror.NewValidation("sku is required"))
		return
	}

	item, err := h.service.GetBySKU(c.Request.Context(), sku)
	if err != nil {
		h.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.FromProduct(item))
}
