// Package sale_return provides the SaleReturn document repository contract.
package sale_return

import (
	"context"
	"time"

	"stockledger/internal/core/id"
	"stockledger/internal/core/types"
	"stockledger/internal/domain"
	"stockledger/internal/domain/documents"
)

// Repository defines operations for sale return documents.
type Repository interface {
	// CRUD operations
	Create(ctx context.Context, doc *SaleReturn) error
	GetByID(ctx context.Context, docID id.ID) (*SaleReturn, error)
	GetByNumber(ctx context.Context, number string) (*SaleReturn, error)
	Update(ctx context.Context, doc *SaleReturn) error
	Delete(ctx context.Context, docID id.ID) error

	// Line operations
	GetLines(ctx context.Context, docID id.ID) ([]documents.Line, error)
	SaveLines(ctx context.Context, docID id.ID, lines []documents.Line) error

	// SumReturnedQuantities returns, per product, the total quantity
	// already returned against an original sale by live applied returns.
	// excludeDocID skips one return document (the one being updated).
	SumReturnedQuantities(ctx context.Context, originalID id.ID, excludeDocID *id.ID) (map[id.ID]types.Quantity, error)

	// List operations
	List(ctx context.Context, filter ListFilter) (domain.ListResult[*SaleReturn], error)

	// Locking
	GetForUpdate(ctx context.Context, docID id.ID) (*SaleReturn, error)
}

// ListFilter for filtering sale returns.
type ListFilter struct {
	domain.ListFilter

	// Document-specific filters
	CustomerID     *id.ID
	StoreID        *id.ID
	OriginalSaleID *id.ID
	DateFrom       *time.Time
	DateTo         *time.Time
}
