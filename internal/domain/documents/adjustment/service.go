// Package adjustment provides the StockAdjustment document service.
package adjustment

import (
	"context"
	"fmt"
	"time"

	"stockledger/internal/core/apperror"
	"stockledger/internal/core/entity"
	"stockledger/internal/core/id"
	"stockledger/internal/domain"
	"stockledger/internal/domain/ledger"
	"stockledger/pkg/logger"
	"stockledger/pkg/numerator"
)

// Service provides business operations for stock adjustments.
type Service struct {
	repo      Repository
	engine    *ledger.Engine
	numerator numerator.Generator
	hooks     *domain.HookRegistry[*StockAdjustment]
}

// NewService creates a new adjustment service.
func NewService(repo Repository, engine *ledger.Engine, gen numerator.Generator) *Service {
	return &Service{
		repo:      repo,
		engine:    engine,
		numerator: gen,
		hooks:     domain.NewHookRegistry[*StockAdjustment](),
	}
}

// Hooks returns the hook registry for registering callbacks.
func (s *Service) Hooks() *domain.HookRegistry[*StockAdjustment] {
	return s.hooks
}

// Create saves a new adjustment in Pending status. No stock is touched
// until the document transitions to Done.
func (s *Service) Create(ctx context.Context, doc *StockAdjustment) error {
	if err := s.hooks.Run(ctx, domain.BeforeCreate, doc); err != nil {
		return err
	}

	if err := doc.Validate(ctx); err != nil {
		return err
	}

	if doc.Number == "" {
		number, err := s.numerator.GetNextNumber(ctx, numerator.DefaultConfig(NumberPrefix),
			&numerator.Options{Strategy: NumeratorStrategy}, time.Now())
		if err != nil {
			return fmt.Errorf("generate number: %w", err)
		}
		doc.Number = number
	}

	err := s.engine.RunSave(ctx, doc, ledger.EventCreated, func(ctx context.Context) error {
		return s.repo.Create(ctx, doc)
	})
	if err != nil {
		return err
	}

	if err := s.hooks.Run(ctx, domain.AfterCreate, doc); err != nil {
		logger.Warn(ctx, "after-create hook failed", "error", err)
	}

	logger.Info(ctx, "adjustment created", "id", doc.ID, "number", doc.Number)
	return nil
}

// GetByID retrieves an adjustment.
func (s *Service) GetByID(ctx context.Context, docID id.ID) (*StockAdjustment, error) {
	return s.repo.GetByID(ctx, docID)
}

// Update modifies a Pending adjustment. Applied documents are immutable:
// correct them with a counter-adjustment or delete.
func (s *Service) Update(ctx context.Context, doc *StockAdjustment) error {
	if err := s.hooks.Run(ctx, domain.BeforeUpdate, doc); err != nil {
		return err
	}

	prev, err := s.repo.GetByID(ctx, doc.ID)
	if err != nil {
		return err
	}
	if prev.Status != entity.StatusPending {
		return apperror.NewBusinessRule(apperror.CodeBusinessRule,
			"Only pending adjustments can be modified").
			WithDetail("document_id", doc.ID.String()).
			WithDetail("status", string(prev.Status))
	}

	doc.Number = prev.Number
	doc.Version = prev.Version
	doc.CreatedAt = prev.CreatedAt
	doc.Status = prev.Status
	doc.Applied = prev.Applied
	doc.AppliedVersion = prev.AppliedVersion

	if err := doc.Validate(ctx); err != nil {
		return err
	}

	err = s.engine.RunSave(ctx, doc, ledger.EventUpdated, func(ctx context.Context) error {
		return s.repo.Update(ctx, doc)
	})
	if err != nil {
		return err
	}

	if err := s.hooks.Run(ctx, domain.AfterUpdate, doc); err != nil {
		logger.Warn(ctx, "after-update hook failed", "error", err)
	}

	return nil
}

// SetStatus drives the one-shot state machine. Pending -> Done applies
// the effect exactly once; Pending/Done -> Cancelled reverses any
// recorded effect. Repeating Done is rejected.
func (s *Service) SetStatus(ctx context.Context, docID id.ID, status entity.DocStatus) error {
	doc, err := s.repo.GetByID(ctx, docID)
	if err != nil {
		return err
	}

	err = s.engine.RunStatus(ctx, doc, status, func(ctx context.Context) error {
		return s.repo.Update(ctx, doc)
	})
	if err != nil {
		return err
	}

	logger.Info(ctx, "adjustment status changed",
		"id", docID,
		"status", string(status))
	return nil
}

// Delete reverses the effect of a Done adjustment and soft-deletes it.
func (s *Service) Delete(ctx context.Context, docID id.ID) error {
	doc, err := s.repo.GetByID(ctx, docID)
	if err != nil {
		return err
	}

	if err := s.hooks.Run(ctx, domain.BeforeDelete, doc); err != nil {
		return err
	}

	err = s.engine.RunDelete(ctx, doc, func(ctx context.Context) error {
		if err := s.repo.Update(ctx, doc); err != nil {
			return err
		}
		return s.repo.Delete(ctx, doc.ID)
	})
	if err != nil {
		return err
	}

	if err := s.hooks.Run(ctx, domain.AfterDelete, doc); err != nil {
		logger.Warn(ctx, "after-delete hook failed", "error", err)
	}

	logger.Info(ctx, "adjustment deleted", "id", docID)
	return nil
}

// List retrieves adjustments with filtering.
func (s *Service) List(ctx context.Context, filter ListFilter) (domain.ListResult[*StockAdjustment], error) {
	return s.repo.List(ctx, filter)
}
