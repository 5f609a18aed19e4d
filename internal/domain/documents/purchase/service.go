// Package purchase provides the Purchase document service.
package purchase

import (
	"context"
	"fmt"
	"time"

	"stockledger/internal/core/id"
	"stockledger/internal/domain"
	"stockledger/internal/domain/documents"
	"stockledger/internal/domain/ledger"
	"stockledger/pkg/logger"
	"stockledger/pkg/numerator"
)

// Service provides business operations for purchase documents.
type Service struct {
	repo      Repository
	engine    *ledger.Engine
	composer  *documents.Composer
	numerator numerator.Generator
	hooks     *domain.HookRegistry[*Purchase]
}

// NewService creates a new purchase service.
func NewService(repo Repository, engine *ledger.Engine, composer *documents.Composer, gen numerator.Generator) *Service {
	return &Service{
		repo:      repo,
		engine:    engine,
		composer:  composer,
		numerator: gen,
		hooks:     domain.NewHookRegistry[*Purchase](),
	}
}

// Hooks returns the hook registry for registering callbacks.
func (s *Service) Hooks() *domain.HookRegistry[*Purchase] {
	return s.hooks
}

// Create composes lines, computes totals, applies the stock effect and
// persists the document in one atomic transaction.
func (s *Service) Create(ctx context.Context, doc *Purchase, items []documents.RawItem) error {
	if err := s.hooks.Run(ctx, domain.BeforeCreate, doc); err != nil {
		return err
	}

	lines, err := s.composer.ComposePurchase(ctx, doc.StoreID, items)
	if err != nil {
		return err
	}
	doc.SetLines(lines)
	doc.RecomputeTotals()

	if doc.Number == "" {
		number, err := s.numerator.GetNextNumber(ctx, numerator.DefaultConfig(NumberPrefix),
			&numerator.Options{Strategy: NumeratorStrategy}, time.Now())
		if err != nil {
			return fmt.Errorf("generate number: %w", err)
		}
		doc.Number = number
	}

	err = s.engine.RunCreate(ctx, doc, func(ctx context.Context) error {
		if err := s.repo.Create(ctx, doc); err != nil {
			return err
		}
		return s.repo.SaveLines(ctx, doc.ID, doc.Lines)
	})
	if err != nil {
		return err
	}

	if err := s.hooks.Run(ctx, domain.AfterCreate, doc); err != nil {
		logger.Warn(ctx, "after-create hook failed", "error", err)
	}

	logger.Info(ctx, "purchase created",
		"id", doc.ID,
		"number", doc.Number,
		"total", doc.Total)

	return nil
}

// GetByID retrieves a purchase with lines.
func (s *Service) GetByID(ctx context.Context, docID id.ID) (*Purchase, error) {
	doc, err := s.repo.GetByID(ctx, docID)
	if err != nil {
		return nil, err
	}

	lines, err := s.repo.GetLines(ctx, docID)
	if err != nil {
		return nil, fmt.Errorf("get lines: %w", err)
	}
	doc.Lines = lines

	return doc, nil
}

// Update replaces the document's header values and its entire line set,
// reversing the previous stock effect first.
func (s *Service) Update(ctx context.Context, doc *Purchase, items []documents.RawItem) error {
	if err := s.hooks.Run(ctx, domain.BeforeUpdate, doc); err != nil {
		return err
	}

	prev, err := s.GetByID(ctx, doc.ID)
	if err != nil {
		return err
	}

	doc.Number = prev.Number
	doc.Version = prev.Version
	doc.CreatedAt = prev.CreatedAt
	doc.Status = prev.Status
	doc.Applied = prev.Applied
	doc.AppliedVersion = prev.AppliedVersion

	err = s.engine.RunUpdate(ctx, prev, doc, func(ctx context.Context) error {
		lines, err := s.composer.ComposePurchase(ctx, doc.StoreID, items)
		if err != nil {
			return err
		}
		doc.SetLines(lines)
		doc.RecomputeTotals()
		return nil
	}, func(ctx context.Context) error {
		if err := s.repo.Update(ctx, doc); err != nil {
			return err
		}
		return s.repo.SaveLines(ctx, doc.ID, doc.Lines)
	})
	if err != nil {
		return err
	}

	if err := s.hooks.Run(ctx, domain.AfterUpdate, doc); err != nil {
		logger.Warn(ctx, "after-update hook failed", "error", err)
	}

	return nil
}

// Delete reverses the stock effect (clamped at zero when the received
// goods were already consumed) and soft-deletes the document.
func (s *Service) Delete(ctx context.Context, docID id.ID) error {
	doc, err := s.GetByID(ctx, docID)
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

	logger.Info(ctx, "purchase deleted", "id", docID)
	return nil
}

// List retrieves purchases with filtering.
func (s *Service) List(ctx context.Context, filter ListFilter) (domain.ListResult[*Purchase], error) {
	return s.repo.List(ctx, filter)
}
