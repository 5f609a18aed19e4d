package ledger

import (
	"context"
	"fmt"

	"stockledger/internal/core/apperror"
	"stockledger/internal/core/entity"
	"stockledger/internal/core/id"
	"stockledger/internal/core/tx"
	"stockledger/internal/domain/registers/stock"
	"stockledger/pkg/logger"
)

// Event types fired by the engine.
const (
	EventCreated       = "Created"
	EventUpdated       = "Updated"
	EventDeleted       = "Deleted"
	EventStatusChanged = "StatusChanged"
)

// Event describes a committed document operation.
type Event struct {
	Type         string `json:"type"`
	DocumentType string `json:"documentType"`
	DocumentID   id.ID  `json:"documentId"`
}

// EventPublisher records events inside the document transaction
// (transactional outbox). Implementations live in infrastructure.
type EventPublisher interface {
	Publish(ctx context.Context, event Event) error
}

// AfterCommitHook runs after a successful commit. Best effort: failures
// are logged and never affect the committed operation.
type AfterCommitHook func(ctx context.Context, event Event) error

// Engine orchestrates document operations. Every operation runs as one
// atomic transaction covering the header, the lines and the stock
// effects: either all of it commits or none of it does.
//
// The engine is the sole driver of stock record mutations. Document
// services hand it an Effector plus a persistence callback and never
// touch the register themselves.
type Engine struct {
	txManager tx.Manager
	stock     *stock.Service
	events    EventPublisher
	hooks     []AfterCommitHook
}

// NewEngine creates a document transaction engine.
// events may be nil when no outbox is configured.
func NewEngine(txManager tx.Manager, stockSvc *stock.Service, events EventPublisher) *Engine {
	return &Engine{
		txManager: txManager,
		stock:     stockSvc,
		events:    events,
	}
}

// OnAfterCommit registers a hook fired after successful commits.
func (e *Engine) OnAfterCommit(hook AfterCommitHook) {
	e.hooks = append(e.hooks, hook)
}

// RunCreate persists a new document and applies its forward stock effect
// in one transaction. The document leaves in its applied status.
func (e *Engine) RunCreate(ctx context.Context, doc Effector, persist func(ctx context.Context) error) error {
	if err := doc.CanApply(ctx); err != nil {
		return err
	}
	if doc.IsApplied() {
		return apperror.NewStatusTransition(string(doc.GetStatus()), string(doc.AppliedStatus())).
			WithDetail("document_id", doc.GetID().String())
	}

	err := e.txManager.RunInTransaction(ctx, func(ctx context.Context) error {
		directives, err := doc.StockDirectives(ctx)
		if err != nil {
			return err
		}
		if err := e.stock.Apply(ctx, directives); err != nil {
			return err
		}
		doc.MarkApplied(doc.AppliedStatus())

		if err := persist(ctx); err != nil {
			return fmt.Errorf("persist %s: %w", doc.DocumentType(), err)
		}
		return e.publish(ctx, doc, EventCreated)
	})
	if err != nil {
		return err
	}

	e.fireHooks(ctx, doc, EventCreated)
	return nil
}

// RunUpdate replaces a document's state. The previous state's effect is
// reversed, compose runs, and the new state's effect is applied, all
// inside the same transaction, so repeated edits never compound: the
// net effect always equals the effect of the final live state.
//
// compose builds the new state's lines. It runs after the reversal so
// that availability checks see the register without the previous
// effect: shrinking a document that consumed the last stock must not
// fail for goods the document itself holds. compose may be nil when
// the new state is already fully built.
func (e *Engine) RunUpdate(ctx context.Context, prev, next Effector, compose, persist func(ctx context.Context) error) error {
	err := e.txManager.RunInTransaction(ctx, func(ctx context.Context) error {
		if prev.IsApplied() {
			prevDirectives, err := prev.StockDirectives(ctx)
			if err != nil {
				return fmt.Errorf("compute previous effect: %w", err)
			}
			if err := e.stock.Apply(ctx, Invert(prevDirectives)); err != nil {
				return fmt.Errorf("reverse previous effect: %w", err)
			}
		}

		if compose != nil {
			if err := compose(ctx); err != nil {
				return err
			}
		}
		if err := next.CanApply(ctx); err != nil {
			return err
		}

		if prev.IsApplied() {
			directives, err := next.StockDirectives(ctx)
			if err != nil {
				return err
			}
			if err := e.stock.Apply(ctx, directives); err != nil {
				return err
			}
			next.MarkApplied(next.AppliedStatus())
		}

		if err := persist(ctx); err != nil {
			return fmt.Errorf("persist %s: %w", next.DocumentType(), err)
		}
		return e.publish(ctx, next, EventUpdated)
	})
	if err != nil {
		return err
	}

	e.fireHooks(ctx, next, EventUpdated)
	return nil
}

// RunDelete reverses the document's effect (when applied) and runs the
// soft-delete persistence in the same transaction. After commit the net
// stock effect of the document is zero.
func (e *Engine) RunDelete(ctx context.Context, doc Effector, persist func(ctx context.Context) error) error {
	err := e.txManager.RunInTransaction(ctx, func(ctx context.Context) error {
		if doc.IsApplied() {
			directives, err := doc.StockDirectives(ctx)
			if err != nil {
				return fmt.Errorf("compute effect to reverse: %w", err)
			}
			if err := e.stock.Apply(ctx, Invert(directives)); err != nil {
				return fmt.Errorf("reverse effect: %w", err)
			}
		}
		doc.MarkReversed(entity.StatusCancelled)

		if err := persist(ctx); err != nil {
			return fmt.Errorf("persist %s: %w", doc.DocumentType(), err)
		}
		return e.publish(ctx, doc, EventDeleted)
	})
	if err != nil {
		return err
	}

	e.fireHooks(ctx, doc, EventDeleted)
	return nil
}

// RunStatus transitions a document's lifecycle status. Entering a final
// status applies the forward effect exactly once; re-entering a final
// status is rejected. Cancelling an applied document reverses its
// effect first.
func (e *Engine) RunStatus(ctx context.Context, doc Effector, to entity.DocStatus, persist func(ctx context.Context) error) error {
	if err := doc.CanTransition(to); err != nil {
		return err
	}

	err := e.txManager.RunInTransaction(ctx, func(ctx context.Context) error {
		switch {
		case to.IsFinal():
			if doc.IsApplied() {
				// Double application guard.
				return apperror.NewStatusTransition(string(doc.GetStatus()), string(to)).
					WithDetail("document_id", doc.GetID().String())
			}
			if err := doc.CanApply(ctx); err != nil {
				return err
			}
			directives, err := doc.StockDirectives(ctx)
			if err != nil {
				return err
			}
			if err := e.stock.Apply(ctx, directives); err != nil {
				return err
			}
			doc.MarkApplied(to)

		case to == entity.StatusCancelled:
			if doc.IsApplied() {
				directives, err := doc.StockDirectives(ctx)
				if err != nil {
					return fmt.Errorf("compute effect to reverse: %w", err)
				}
				if err := e.stock.Apply(ctx, Invert(directives)); err != nil {
					return fmt.Errorf("reverse effect: %w", err)
				}
			}
			doc.MarkReversed(entity.StatusCancelled)

		default:
			return apperror.NewStatusTransition(string(doc.GetStatus()), string(to))
		}

		if err := persist(ctx); err != nil {
			return fmt.Errorf("persist %s: %w", doc.DocumentType(), err)
		}
		return e.publish(ctx, doc, EventStatusChanged)
	})
	if err != nil {
		return err
	}

	e.fireHooks(ctx, doc, EventStatusChanged)
	return nil
}

// RunSave persists a document without touching the register. Used for
// creating and editing documents that are still Pending.
func (e *Engine) RunSave(ctx context.Context, doc Effector, eventType string, persist func(ctx context.Context) error) error {
	err := e.txManager.RunInTransaction(ctx, func(ctx context.Context) error {
		if err := persist(ctx); err != nil {
			return fmt.Errorf("persist %s: %w", doc.DocumentType(), err)
		}
		return e.publish(ctx, doc, eventType)
	})
	if err != nil {
		return err
	}

	e.fireHooks(ctx, doc, eventType)
	return nil
}

func (e *Engine) publish(ctx context.Context, doc Effector, eventType string) error {
	if e.events == nil {
		return nil
	}
	return e.events.Publish(ctx, Event{
		Type:         eventType,
		DocumentType: doc.DocumentType(),
		DocumentID:   doc.GetID(),
	})
}

func (e *Engine) fireHooks(ctx context.Context, doc Effector, eventType string) {
	event := Event{
		Type:         eventType,
		DocumentType: doc.DocumentType(),
		DocumentID:   doc.GetID(),
	}
	for _, hook := range e.hooks {
		if err := hook(ctx, event); err != nil {
			logger.Warn(ctx, "after-commit hook failed",
				"event", eventType,
				"document_type", event.DocumentType,
				"document_id", event.DocumentID,
				"error", err,
			)
		}
	}
}
