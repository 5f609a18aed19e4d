// Package ledger provides the document transaction orchestrator: the
// single component allowed to drive stock record mutations, one atomic
// transaction per document operation.
package ledger

import (
	"context"

	"stockledger/internal/core/entity"
	"stockledger/internal/core/id"
)

// Effector is implemented by documents that produce stock effects.
// entity.Document provides the accessor defaults; concrete document
// types implement DocumentType and StockDirectives.
type Effector interface {
	// GetID returns the document identity.
	GetID() id.ID

	// DocumentType returns the document kind (e.g. "Sale", "StockTransfer").
	DocumentType() string

	// GetStatus returns the current lifecycle status.
	GetStatus() entity.DocStatus

	// IsApplied reports whether the document effect is currently
	// recorded in the stock register.
	IsApplied() bool

	// CanApply validates that the effect may be recorded.
	CanApply(ctx context.Context) error

	// CanTransition checks a status change.
	CanTransition(to entity.DocStatus) error

	// AppliedStatus returns the final status this document kind enters
	// when its effect is recorded (Done or Completed).
	AppliedStatus() entity.DocStatus

	// MarkApplied and MarkReversed flip the applied flag; called only by
	// the engine inside the operation transaction.
	MarkApplied(status entity.DocStatus)
	MarkReversed(status entity.DocStatus)

	// StockDirectives computes the forward stock effect of the
	// document's current state.
	StockDirectives(ctx context.Context) ([]entity.StockDirective, error)
}

// Invert negates a directive set. Inverted directives always clamp at
// zero so a reversal never fails on stock consumed in the meantime.
func Invert(directives []entity.StockDirective) []entity.StockDirective {
	inverted := make([]entity.StockDirective, len(directives))
	for i, d := range directives {
		inverted[i] = d.Inverted()
	}
	return inverted
}
