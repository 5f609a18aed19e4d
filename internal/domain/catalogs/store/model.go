// Package store provides the Store catalog.
package store

import (
	"context"

	"stockledger/internal/core/entity"
)

// Store represents a retail location or warehouse holding stock.
type Store struct {
	entity.Catalog

	Address *string `db:"address" json:"address,omitempty"`
	Phone   *string `db:"phone" json:"phone,omitempty"`

	// IsWarehouse marks back-office storage locations
	IsWarehouse bool `db:"is_warehouse" json:"isWarehouse"`
}

// New creates a store catalog entry.
func New(code, name string) *Store {
	return &Store{Catalog: entity.NewCatalog(code, name)}
}

// Validate implements entity.Validatable.
func (s *Store) Validate(ctx context.Context) error {
	return s.Catalog.Validate(ctx)
}
