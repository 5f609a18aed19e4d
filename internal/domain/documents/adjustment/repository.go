// Package adjustment provides the StockAdjustment repository contract.
package adjustment

import (
	"context"
	"time"

	"stockledger/internal/core/entity"
	"stockledger/internal/core/id"
	"stockledger/internal/domain"
)

// Repository defines operations for adjustment documents.
type Repository interface {
	Create(ctx context.Context, doc *StockAdjustment) error
	GetByID(ctx context.Context, docID id.ID) (*StockAdjustment, error)
	GetByNumber(ctx context.Context, number string) (*StockAdjustment, error)
	Update(ctx context.Context, doc *StockAdjustment) error
	Delete(ctx context.Context, docID id.ID) error

	List(ctx context.Context, filter ListFilter) (domain.ListResult[*StockAdjustment], error)

	GetForUpdate(ctx context.Context, docID id.ID) (*StockAdjustment, error)
}

// ListFilter for filtering adjustments.
type ListFilter struct {
	domain.ListFilter

	ProductID *id.ID
	StoreID   *id.ID
	Status    *entity.DocStatus
	DateFrom  *time.Time
	DateTo    *time.Time
}
