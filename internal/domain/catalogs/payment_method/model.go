// Package payment_method provides the PaymentMethod catalog.
package payment_method

import (
	"context"

	"stockledger/internal/core/apperror"
	"stockledger/internal/core/entity"
)

// Kind classifies how a payment is settled.
type Kind string

const (
	KindCash     Kind = "cash"
	KindCard     Kind = "card"
	KindTransfer Kind = "transfer"
	KindCredit   Kind = "credit"
)

// IsValid checks if the kind is one of the known values.
func (k Kind) IsValid() bool {
	switch k {
	case KindCash, KindCard, KindTransfer, KindCredit:
		return true
	}
	return false
}

// PaymentMethod represents a way customers and suppliers settle documents.
type PaymentMethod struct {
	entity.Catalog

	Kind Kind `db:"kind" json:"kind"`

	// RequiresReference marks methods that need an external reference
	// (card transaction ID, bank transfer number)
	RequiresReference bool `db:"requires_reference" json:"requiresReference"`
}

// New creates a payment method.
func New(code, name string, kind Kind) *PaymentMethod {
	return &PaymentMethod{
		Catalog: entity.NewCatalog(code, name),
		Kind:    kind,
	}
}

// Validate implements entity.Validatable.
func (p *PaymentMethod) Validate(ctx context.Context) error {
	if err := p.Catalog.Validate(ctx); err != nil {
		return err
	}

	if !p.Kind.IsValid() {
		return apperror.NewValidation("invalid payment method kind").
			WithDetail("kind", string(p.Kind))
	}

	return nil
}
