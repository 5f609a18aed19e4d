package batch

import (
	"context"

	"stockledger/internal/core/id"
	"stockledger/internal/domain"
)

// Repository defines the interface for Batch persistence.
type Repository interface {
	domain.CatalogRepository[*Batch]

	// ListByProduct lists batches of a product, soonest expiry first.
	ListByProduct(ctx context.Context, productID id.ID) ([]*Batch, error)
}
