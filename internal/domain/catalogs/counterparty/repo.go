package counterparty

import (
	"context"

	"stockledger/internal/domain"
)

// Repository defines the interface for Counterparty persistence.
type Repository interface {
	domain.CatalogRepository[*Counterparty]

	// ListByKind lists counterparties acting in the given role.
	// Counterparties with KindBoth match every role.
	ListByKind(ctx context.Context, kind Kind, filter domain.ListFilter) (domain.ListResult[*Counterparty], error)

	// GetByTaxNumber retrieves a counterparty by tax registration number.
	GetByTaxNumber(ctx context.Context, taxNumber string) (*Counterparty, error)
}
