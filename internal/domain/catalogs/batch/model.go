// Package batch provides the Batch catalog (product lots).
package batch

import (
	"context"
	"time"

	"stockledger/internal/core/apperror"
	"stockledger/internal/core/entity"
	"stockledger/internal/core/id"
)

// Batch represents a product lot with its own stock dimension.
type Batch struct {
	entity.Catalog

	ProductID id.ID `db:"product_id" json:"productId"`

	ExpiresAt    *time.Time `db:"expires_at" json:"expiresAt,omitempty"`
	Manufactured *time.Time `db:"manufactured" json:"manufactured,omitempty"`
}

// New creates a batch for a product.
func New(code, name string, productID id.ID) *Batch {
	return &Batch{
		Catalog:   entity.NewCatalog(code, name),
		ProductID: productID,
	}
}

// Validate implements entity.Validatable.
func (b *Batch) Validate(ctx context.Context) error {
	if err := b.Catalog.Validate(ctx); err != nil {
		return err
	}

	if id.IsNil(b.ProductID) {
		return apperror.NewValidation("product is required").
			WithDetail("field", "productId")
	}

	return nil
}

// IsExpired reports whether the batch is past its expiry date.
func (b *Batch) IsExpired(now time.Time) bool {
	return b.ExpiresAt != nil && b.ExpiresAt.Before(now)
}
