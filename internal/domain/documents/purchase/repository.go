// Package purchase provides the Purchase document repository contract.
package purchase

import (
	"context"
	"time"

	"stockledger/internal/core/id"
	"stockledger/internal/domain"
	"stockledger/internal/domain/documents"
)

// Repository defines operations for purchase documents.
type Repository interface {
	// CRUD operations
	Create(ctx context.Context, doc *Purchase) error
	GetByID(ctx context.Context, docID id.ID) (*Purchase, error)
	GetByNumber(ctx context.Context, number string) (*Purchase, error)
	Update(ctx context.Context, doc *Purchase) error
	Delete(ctx context.Context, docID id.ID) error

	// Line operations
	GetLines(ctx context.Context, docID id.ID) ([]documents.Line, error)
	SaveLines(ctx context.Context, docID id.ID, lines []documents.Line) error

	// List operations
	List(ctx context.Context, filter ListFilter) (domain.ListResult[*Purchase], error)

	// Locking
	GetForUpdate(ctx context.Context, docID id.ID) (*Purchase, error)
}

// ListFilter for filtering purchases.
type ListFilter struct {
	domain.ListFilter

	// Document-specific filters
	SupplierID *id.ID
	StoreID    *id.ID
	Status     *documents.PaymentStatus
	DateFrom   *time.Time
	DateTo     *time.Time
}
