package store

import (
	"stockledger/internal/domain"
)

// Repository defines the interface for Store persistence.
type Repository interface {
	domain.CatalogRepository[*Store]
}
