package product

import (
	"context"

	"stockledger/internal/domain"
)

// Repository defines the interface for Product persistence.
type Repository interface {
	domain.CatalogRepository[*Product]

	// GetBySKU retrieves a product by its article.
	GetBySKU(ctx context.Context, sku string) (*Product, error)

	// GetByBarcode retrieves a product by barcode.
	GetByBarcode(ctx context.Context, barcode string) (*Product, error)
}
