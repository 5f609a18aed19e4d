// Package main is the entry point for the stockledger API server.
package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"stockledger/internal/domain/catalogs/batch"
	"stockledger/internal/domain/catalogs/counterparty"
	"stockledger/internal/domain/catalogs/employee"
	"stockledger/internal/domain/catalogs/payment_method"
	"stockledger/internal/domain/catalogs/product"
	"stockledger/internal/domain/catalogs/store"
	"stockledger/internal/domain/documents"
	"stockledger/internal/domain/documents/adjustment"
	"stockledger/internal/domain/documents/purchase"
	"stockledger/internal/domain/documents/purchase_return"
	"stockledger/internal/domain/documents/sale"
	"stockledger/internal/domain/documents/sale_return"
	"stockledger/internal/domain/documents/transfer"
	"stockledger/internal/domain/ledger"
	"stockledger/internal/domain/registers/stock"
	v1 "stockledger/internal/infrastructure/http/v1"
	"stockledger/internal/infrastructure/storage/postgres"
	"stockledger/internal/infrastructure/storage/postgres/catalog_repo"
	"stockledger/internal/infrastructure/storage/postgres/document_repo"
	"stockledger/internal/infrastructure/storage/postgres/register_repo"
	"stockledger/pkg/logger"
	"stockledger/pkg/numerator"
)

func main() {
	log, err := logger.New(logger.Config{
		Level:       getEnv("LOG_LEVEL", "info"),
		Development: getEnv("APP_ENV", "development") == "development",
	})
	if err != nil {
		fmt.Printf("failed to initialize logger: %v\n", err)
		os.Exit(1)
	}

	ctx := context.Background()
	log.Info("starting stockledger server")

	// --- Database ---
	poolCfg := postgres.DefaultPoolConfig(mustEnv("DATABASE_URL"))
	if maxConns := getEnvInt("DB_MAX_CONNS", 0); maxConns > 0 {
		poolCfg.MaxConns = int32(maxConns)
	}

	pool, err := postgres.NewPool(ctx, poolCfg)
	if err != nil {
		log.Fatalw("failed to connect to database", "error", err)
	}
	defer pool.Close()
	log.Info("database connection established")

	txManager := postgres.NewTxManager(pool)

	// --- Numerator ---
	numeratorService := numerator.New(pool.Unwrap())

	// --- Outbox ---
	publisher := postgres.NewOutboxPublisher(txManager)

	// --- Registers ---
	stockRepo := register_repo.NewStockRepo(txManager)
	stockService := stock.NewService(stockRepo)

	// --- Ledger engine ---
	engine := ledger.NewEngine(txManager, stockService, publisher)

	// --- Catalog repos and services ---
	productRepo := catalog_repo.NewProductRepo(txManager)
	storeRepo := catalog_repo.NewStoreRepo(txManager)
	counterpartyRepo := catalog_repo.NewCounterpartyRepo(txManager)
	batchRepo := catalog_repo.NewBatchRepo(txManager)
	paymentMethodRepo := catalog_repo.NewPaymentMethodRepo(txManager)
	employeeRepo := catalog_repo.NewEmployeeRepo(txManager)

	productService := product.NewService(productRepo, txManager, numeratorService)
	storeService := store.NewService(storeRepo, txManager, numeratorService)
	counterpartyService := counterparty.NewService(counterpartyRepo, txManager, numeratorService)
	batchService := batch.NewService(batchRepo, txManager, numeratorService)
	paymentMethodService := payment_method.NewService(paymentMethodRepo, txManager, numeratorService)
	employeeService := employee.NewService(employeeRepo, txManager, numeratorService)

	// --- Line composer ---
	composer := documents.NewComposer(productRepo, stockService)

	// --- Document services ---
	saleRepo := document_repo.NewSaleRepo(txManager)
	purchaseRepo := document_repo.NewPurchaseRepo(txManager)
	saleReturnRepo := document_repo.NewSaleReturnRepo(txManager)
	purchaseReturnRepo := document_repo.NewPurchaseReturnRepo(txManager)
	adjustmentRepo := document_repo.NewAdjustmentRepo(txManager)
	transferRepo := document_repo.NewTransferRepo(txManager)

	saleService := sale.NewService(saleRepo, engine, composer, numeratorService)
	purchaseService := purchase.NewService(purchaseRepo, engine, composer, numeratorService)
	saleReturnService := sale_return.NewService(saleReturnRepo, saleService, engine, composer, numeratorService)
	purchaseReturnService := purchase_return.NewService(purchaseReturnRepo, purchaseService, engine, composer, numeratorService)
	adjustmentService := adjustment.NewService(adjustmentRepo, engine, numeratorService)
	transferService := transfer.NewService(transferRepo, engine, stockService, numeratorService)

	// --- Outbox relay ---
	relayCtx, stopRelay := context.WithCancel(ctx)
	defer stopRelay()

	relay := postgres.NewOutboxRelay(pool.Unwrap(), getEnvInt("OUTBOX_BATCH_SIZE", 100), &loggingOutboxHandler{log: log})
	go relay.Run(relayCtx, getEnvDuration("OUTBOX_POLL_INTERVAL", 5*time.Second))

	// --- Router ---
	router := v1.NewRouter(v1.RouterConfig{
		Pool:            pool,
		Logger:          log,
		Sales:           saleService,
		Purchases:       purchaseService,
		SaleReturns:     saleReturnService,
		PurchaseReturns: purchaseReturnService,
		Adjustments:     adjustmentService,
		Transfers:       transferService,
		Stock:           stockService,
		Products:        productService,
		Stores:          storeService,
		Counterparties:  counterpartyService,
		Batches:         batchService,
		PaymentMethods:  paymentMethodService,
		Employees:       employeeService,
	})

	// --- HTTP server ---
	port := getEnv("APP_PORT", "8080")
	server := &http.Server{
		Addr:         ":" + port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Infow("server starting", "port", port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalw("server failed", "error", err)
		}
	}()

	// --- Graceful shutdown ---
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down server...")
	stopRelay()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Fatalw("server forced to shutdown", "error", err)
	}

	log.Info("server stopped")
}

// loggingOutboxHandler logs published events. Replace with a broker
// handler when an external consumer shows up.
type loggingOutboxHandler struct {
	log *logger.Logger
}

func (h *loggingOutboxHandler) Handle(ctx context.Context, msg *postgres.OutboxMessage) error {
	h.log.Infow("outbox event",
		"event_type", msg.EventType,
		"aggregate_id", msg.AggregateID,
	)
	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func mustEnv(key string) string {
	value := os.Getenv(key)
	if value == "" {
		fmt.Printf("required environment variable %s not set\n", key)
		os.Exit(1)
	}
	return value
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		var result int
		if _, err := fmt.Sscanf(value, "%d", &result); err == nil {
			return result
		}
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}
