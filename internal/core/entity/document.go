package entity

import (
	"context"
	"time"

	"stockledger/internal/core/apperror"
	"stockledger/internal/core/id"
)

// DocStatus is the lifecycle state of a trade document.
type DocStatus string

const (
	// StatusPending - document saved but its stock effect is not recorded
	StatusPending DocStatus = "Pending"
	// StatusDone - finalized state for inventory-only documents (adjustment, transfer)
	StatusDone DocStatus = "Done"
	// StatusCompleted - finalized state for trade documents (sale, purchase, returns)
	StatusCompleted DocStatus = "Completed"
	// StatusCancelled - document voided, any recorded effect has been reversed
	StatusCancelled DocStatus = "Cancelled"
)

// IsFinal reports whether the status records the document effect in the ledger.
func (s DocStatus) IsFinal() bool {
	return s == StatusDone || s == StatusCompleted
}

// IsValid reports whether s is a known status value.
func (s DocStatus) IsValid() bool {
	switch s {
	case StatusPending, StatusDone, StatusCompleted, StatusCancelled:
		return true
	}
	return false
}

// Document is the base type for business transactions.
// Examples: Sale, Purchase, SaleReturn, StockAdjustment.
type Document struct {
	BaseDocument

	// Number is the document number (auto-generated, unique within type+period)
	Number string `db:"number" json:"number"`

	// Date is the business date of the document
	Date time.Time `db:"date" json:"date"`

	// Status is the lifecycle state
	Status DocStatus `db:"status" json:"status"`

	// Applied indicates whether the document effect is currently recorded
	// in the stock register. Guards against double application.
	Applied bool `db:"applied" json:"applied"`

	// AppliedVersion tracks apply iterations for reconciliation.
	// Incremented each time the document effect is (re)recorded.
	AppliedVersion int `db:"applied_version" json:"appliedVersion"`

	// Notes is an optional user comment
	Notes string `db:"notes" json:"notes,omitempty"`
}

// NewDocument creates a new Document in Pending status.
func NewDocument() Document {
	return Document{
		BaseDocument: NewBaseDocument(),
		Date:         time.Now().UTC(),
		Status:       StatusPending,
	}
}

// Validate implements Validatable interface.
func (d *Document) Validate(ctx context.Context) error {
	if d.Date.IsZero() {
		return apperror.NewValidation("date is required").
			WithDetail("field", "date")
	}

	if d.Status != "" && !d.Status.IsValid() {
		return apperror.NewValidation("unknown document status").
			WithDetail("field", "status").
			WithDetail("value", string(d.Status))
	}

	return nil
}

// CanTransition checks whether the status change is legal.
// Pending may move to any final status or Cancelled; final statuses
// may only move to Cancelled; Cancelled is terminal.
func (d *Document) CanTransition(to DocStatus) error {
	if !to.IsValid() {
		return apperror.NewValidation("unknown document status").
			WithDetail("value", string(to))
	}
	if to == d.Status {
		return apperror.NewStatusTransition(string(d.Status), string(to)).
			WithDetail("document_id", d.ID.String())
	}
	switch d.Status {
	case StatusPending:
		return nil
	case StatusDone, StatusCompleted:
		if to == StatusCancelled {
			return nil
		}
	case StatusCancelled:
		// terminal
	}
	return apperror.NewStatusTransition(string(d.Status), string(to)).
		WithDetail("document_id", d.ID.String())
}

// MarkApplied records that the document effect was written to the register.
// Row version and updated_at are managed by the repository on save.
func (d *Document) MarkApplied(status DocStatus) {
	d.Status = status
	d.Applied = true
	d.AppliedVersion++
}

// MarkReversed records that the document effect was removed from the register.
func (d *Document) MarkReversed(status DocStatus) {
	d.Status = status
	d.Applied = false
}

// IsBackdated checks if document date is in the past.
func (d *Document) IsBackdated() bool {
	return d.Date.Before(time.Now().UTC().Truncate(24 * time.Hour))
}

// --- Effector interface default implementations ---
// Document-specific types only need to implement DocumentType() and
// StockDirectives().

// GetID returns the document ID.
func (d *Document) GetID() id.ID {
	return d.ID
}

// GetAppliedVersion returns the current apply iteration.
func (d *Document) GetAppliedVersion() int {
	return d.AppliedVersion
}

// IsApplied returns true if the document effect is currently in the register.
func (d *Document) IsApplied() bool {
	return d.Applied
}

// GetStatus returns the current lifecycle status.
func (d *Document) GetStatus() DocStatus {
	return d.Status
}

// CanApply validates if the document effect can be recorded.
// Override in specific document types if additional validation is needed.
func (d *Document) CanApply(ctx context.Context) error {
	return d.Validate(ctx)
}
