// Package transfer provides the StockTransfer repository contract.
package transfer

import (
	"context"
	"time"

	"stockledger/internal/core/entity"
	"stockledger/internal/core/id"
	"stockledger/internal/domain"
)

// Repository defines operations for transfer documents.
type Repository interface {
	Create(ctx context.Context, doc *StockTransfer) error
	GetByID(ctx context.Context, docID id.ID) (*StockTransfer, error)
	GetByNumber(ctx context.Context, number string) (*StockTransfer, error)
	Update(ctx context.Context, doc *StockTransfer) error
	Delete(ctx context.Context, docID id.ID) error

	List(ctx context.Context, filter ListFilter) (domain.ListResult[*StockTransfer], error)

	GetForUpdate(ctx context.Context, docID id.ID) (*StockTransfer, error)
}

// ListFilter for filtering transfers.
type ListFilter struct {
	domain.ListFilter

	ProductID     *id.ID
	SourceStoreID *id.ID
	DestStoreID   *id.ID
	Status        *entity.DocStatus
	DateFrom      *time.Time
	DateTo        *time.Time
}
