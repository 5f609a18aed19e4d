// Package purchase_return provides the PurchaseReturn document repository contract.
package purchase_return

import (
	"context"
	"time"

	"stockledger/internal/core/id"
	"stockledger/internal/core/types"
	"stockledger/internal/domain"
	"stockledger/internal/domain/documents"
)

// Repository defines operations for purchase return documents.
type Repository interface {
	// CRUD operations
	Create(ctx context.Context, doc *PurchaseReturn) error
	GetByID(ctx context.Context, docID id.ID) (*PurchaseReturn, error)
	GetByNumber(ctx context.Context, number string) (*PurchaseReturn, error)
	Update(ctx context.Context, doc *PurchaseReturn) error
	Delete(ctx context.Context, docID id.ID) error

	// Line operations
	GetLines(ctx context.Context, docID id.ID) ([]documents.Line, error)
	SaveLines(ctx context.Context, docID id.ID, lines []documents.Line) error

	// SumReturnedQuantities returns, per product, the total quantity
	// already returned against an original purchase by live applied
	// returns. excludeDocID skips one return document.
	SumReturnedQuantities(ctx context.Context, originalID id.ID, excludeDocID *id.ID) (map[id.ID]types.Quantity, error)

	// List operations
	List(ctx context.Context, filter ListFilter) (domain.ListResult[*PurchaseReturn], error)

	// Locking
	GetForUpdate(ctx context.Context, docID id.ID) (*PurchaseReturn, error)
}

// ListFilter for filtering purchase returns.
type ListFilter struct {
	domain.ListFilter

	// Document-specific filters
	SupplierID         *id.ID
	StoreID            *id.ID
	OriginalPurchaseID *id.ID
	DateFrom           *time.Time
	DateTo             *time.Time
}
