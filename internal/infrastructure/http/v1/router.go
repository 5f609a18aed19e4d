// Package v1 provides HTTP API version 1.
package v1

import (
	"github.com/gin-gonic/gin"

	"stockledger/internal/domain/catalogs/batch"
	"stockledger/internal/domain/catalogs/counterparty"
	"stockledger/internal/domain/catalogs/employee"
	"stockledger/internal/domain/catalogs/payment_method"
	"stockledger/internal/domain/catalogs/product"
	"stockledger/internal/domain/catalogs/store"
	"stockledger/internal/domain/documents/adjustment"
	"stockledger/internal/domain/documents/purchase"
	"stockledger/internal/domain/documents/purchase_return"
	"stockledger/internal/domain/documents/sale"
	"stockledger/internal/domain/documents/sale_return"
	"stockledger/internal/domain/documents/transfer"
	"stockledger/internal/domain/registers/stock"
	"stockledger/internal/infrastructure/http/v1/handlers"
	"stockledger/internal/infrastructure/http/v1/middleware"
	"stockledger/internal/infrastructure/storage/postgres"
	"stockledger/pkg/logger"
)

// RouterConfig holds everything the router needs to wire handlers.
type RouterConfig struct {
	Pool   *postgres.Pool
	Logger *logger.Logger

	// Document services
	Sales           *sale.Service
	Purchases       *purchase.Service
	SaleReturns     *sale_return.Service
	PurchaseReturns *purchase_return.Service
	Adjustments     *adjustment.Service
	Transfers       *transfer.Service

	// Registers
	Stock *stock.Service

	// Catalog services
	Products       *product.Service
	Stores         *store.Service
	Counterparties *counterparty.Service
	Batches        *batch.Service
	PaymentMethods *payment_method.Service
	Employees      *employee.Service
}

// NewRouter creates and configures the Gin router.
func NewRouter(cfg RouterConfig) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	router := gin.New()

	// Global middleware (order matters)
	router.Use(middleware.RequestID())
	router.Use(middleware.Recovery())
	router.Use(middleware.Logger(cfg.Logger))
	router.Use(middleware.ErrorHandler())

	base := handlers.NewBaseHandler()

	// Health endpoints
	health := router.Group("/health")
	handlers.NewHealthHandler(cfg.Pool).RegisterRoutes(health)

	// API v1
	api := router.Group("/api/v1")
	{
		// Catalogs
		handlers.NewProductHandler(base, cfg.Products).RegisterRoutes(api.Group("/products"))
		handlers.NewStoreHandler(base, cfg.Stores).RegisterRoutes(api.Group("/stores"))
		handlers.NewCounterpartyHandler(base, cfg.Counterparties).RegisterRoutes(api.Group("/counterparties"))
		handlers.NewBatchHandler(base, cfg.Batches).RegisterRoutes(api.Group("/batches"))
		handlers.NewPaymentMethodHandler(base, cfg.PaymentMethods).RegisterRoutes(api.Group("/payment-methods"))
		handlers.NewEmployeeHandler(base, cfg.Employees).RegisterRoutes(api.Group("/employees"))

		// Documents
		handlers.NewSaleHandler(base, cfg.Sales).RegisterRoutes(api.Group("/sales"))
		handlers.NewPurchaseHandler(base, cfg.Purchases).RegisterRoutes(api.Group("/purchases"))
		handlers.NewSaleReturnHandler(base, cfg.SaleReturns).RegisterRoutes(api.Group("/sale-returns"))
		handlers.NewPurchaseReturnHandler(base, cfg.PurchaseReturns).RegisterRoutes(api.Group("/purchase-returns"))
		handlers.NewAdjustmentHandler(base, cfg.Adjustments).RegisterRoutes(api.Group("/stock-adjustments"))
		handlers.NewTransferHandler(base, cfg.Transfers).RegisterRoutes(api.Group("/stock-transfers"))

		// Registers
		handlers.NewStockHandler(base, cfg.Stock).RegisterRoutes(api.Group("/stock"))
	}

	return router
}
