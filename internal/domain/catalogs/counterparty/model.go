// Package counterparty provides the Counterparty catalog for customers
// and suppliers.
package counterparty

import (
	"context"

	"stockledger/internal/core/apperror"
	"stockledger/internal/core/entity"
)

// Kind of counterparty.
type Kind string

const (
	KindCustomer Kind = "customer"
	KindSupplier Kind = "supplier"
	// KindBoth for counterparties acting as both
	KindBoth Kind = "both"
)

// Counterparty represents a customer or supplier.
type Counterparty struct {
	entity.Catalog

	Kind Kind `db:"kind" json:"kind"`

	Phone   *string `db:"phone" json:"phone,omitempty"`
	Email   *string `db:"email" json:"email,omitempty"`
	Address *string `db:"address" json:"address,omitempty"`

	// TaxNumber is the counterparty's tax registration number
	TaxNumber *string `db:"tax_number" json:"taxNumber,omitempty"`
}

// New creates a counterparty catalog entry.
func New(code, name string, kind Kind) *Counterparty {
	return &Counterparty{
		Catalog: entity.NewCatalog(code, name),
		Kind:    kind,
	}
}

// Validate implements entity.Validatable.
func (c *Counterparty) Validate(ctx context.Context) error {
	if err := c.Catalog.Validate(ctx); err != nil {
		return err
	}

	switch c.Kind {
	case KindCustomer, KindSupplier, KindBoth:
	default:
		return apperror.NewValidation("unknown counterparty kind").
			WithDetail("field", "kind").
			WithDetail("value", string(c.Kind))
	}

	return nil
}

// IsCustomer reports whether the counterparty can appear on sales.
func (c *Counterparty) IsCustomer() bool {
	return c.Kind == KindCustomer || c.Kind == KindBoth
}

// IsSupplier reports whether the counterparty can appear on purchases.
func (c *Counterparty) IsSupplier() bool {
	return c.Kind == KindSupplier || c.Kind == KindBoth
}
