// Package employee provides the Employee catalog.
package employee

import (
	"context"

	"stockledger/internal/core/entity"
)

// Employee represents a staff member referenced by trade documents.
type Employee struct {
	entity.Catalog

	Phone    *string `db:"phone" json:"phone,omitempty"`
	Email    *string `db:"email" json:"email,omitempty"`
	Position *string `db:"position" json:"position,omitempty"`
}

// New creates an employee.
func New(code, name string) *Employee {
	return &Employee{
		Catalog: entity.NewCatalog(code, name),
	}
}

// Validate implements entity.Validatable.
func (e *Employee) Validate(ctx context.Context) error {
	return e.Catalog.Validate(ctx)
}
