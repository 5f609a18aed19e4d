// Package sale provides the Sale document repository contract.
package sale

import (
	"context"
	"time"

	"stockledger/internal/core/id"
	"stockledger/internal/domain"
	"stockledger/internal/domain/documents"
)

// Repository defines operations for sale documents.
type Repository interface {
	// CRUD operations
	Create(ctx context.Context, doc *Sale) error
	GetByID(ctx context.Context, docID id.ID) (*Sale, error)
	GetByNumber(ctx context.Context, number string) (*Sale, error)
	Update(ctx context.Context, doc *Sale) error
	Delete(ctx context.Context, docID id.ID) error

	// Line operations
	GetLines(ctx context.Context, docID id.ID) ([]documents.Line, error)
	SaveLines(ctx context.Context, docID id.ID, lines []documents.Line) error

	// List operations
	List(ctx context.Context, filter ListFilter) (domain.ListResult[*Sale], error)

	// Locking
	GetForUpdate(ctx context.Context, docID id.ID) (*Sale, error)
}

// ListFilter for filtering sales.
type ListFilter struct {
	domain.ListFilter

	// Document-specific filters
	CustomerID *id.ID
	StoreID    *id.ID
	Status     *documents.PaymentStatus
	DateFrom   *time.Time
	DateTo     *time.Time
}
