// Package sale_return provides the SaleReturn document service.
package sale_return

import (
	"context"
	"fmt"
	"time"

	"stockledger/internal/core/id"
	"stockledger/internal/domain"
	"stockledger/internal/domain/documents"
	"stockledger/internal/domain/documents/sale"
	"stockledger/internal/domain/ledger"
	"stockledger/pkg/logger"
	"stockledger/pkg/numerator"
)

// SaleProvider loads the original sale a return is issued against.
type SaleProvider interface {
	GetByID(ctx context.Context, docID id.ID) (*sale.Sale, error)
}

// Service provides business operations for sale return documents.
type Service struct {
	repo      Repository
	sales     SaleProvider
	engine    *ledger.Engine
	composer  *documents.Composer
	numerator numerator.Generator
	hooks     *domain.HookRegistry[*SaleReturn]
}

// NewService creates a new sale return service.
func NewService(repo Repository, sales SaleProvider, engine *ledger.Engine, composer *documents.Composer, gen numerator.Generator) *Service {
	return &Service{
		repo:      repo,
		sales:     sales,
		engine:    engine,
		composer:  composer,
		numerator: gen,
		hooks:     domain.NewHookRegistry[*SaleReturn](),
	}
}

// Hooks returns the hook registry for registering callbacks.
func (s *Service) Hooks() *domain.HookRegistry[*SaleReturn] {
	return s.hooks
}

// composeLines validates items against the original sale, including
// quantities already returned by other live returns.
func (s *Service) composeLines(ctx context.Context, doc *SaleReturn, items []documents.RawItem, excludeDocID *id.ID) ([]documents.Line, error) {
	original, err := s.sales.GetByID(ctx, doc.OriginalSaleID)
	if err != nil {
		return nil, err
	}

	alreadyReturned, err := s.repo.SumReturnedQuantities(ctx, doc.OriginalSaleID, excludeDocID)
	if err != nil {
		return nil, fmt.Errorf("sum returned quantities: %w", err)
	}

	return s.composer.ComposeReturn(ctx, &original.TradeDocument, alreadyReturned, doc.StoreID, items)
}

// Create composes lines against the original sale, applies the stock
// effect and persists the document in one atomic transaction.
func (s *Service) Create(ctx context.Context, doc *SaleReturn, items []documents.RawItem) error {
	if err := s.hooks.Run(ctx, domain.BeforeCreate, doc); err != nil {
		return err
	}

	lines, err := s.composeLines(ctx, doc, items, nil)
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

	logger.Info(ctx, "sale return created",
		"id", doc.ID,
		"number", doc.Number,
		"original_sale_id", doc.OriginalSaleID)

	return nil
}

// GetByID retrieves a sale return with lines.
func (s *Service) GetByID(ctx context.Context, docID id.ID) (*SaleReturn, error) {
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

// Update replaces the line set, revalidating cumulative quantities
// without counting this document's own previous lines.
func (s *Service) Update(ctx context.Context, doc *SaleReturn, items []documents.RawItem) error {
	if err := s.hooks.Run(ctx, domain.BeforeUpdate, doc); err != nil {
		return err
	}

	prev, err := s.GetByID(ctx, doc.ID)
	if err != nil {
		return err
	}
	doc.OriginalSaleID = prev.OriginalSaleID

	doc.Number = prev.Number
	doc.Version = prev.Version
	doc.CreatedAt = prev.CreatedAt
	doc.Status = prev.Status
	doc.Applied = prev.Applied
	doc.AppliedVersion = prev.AppliedVersion

	err = s.engine.RunUpdate(ctx, prev, doc, func(ctx context.Context) error {
		lines, err := s.composeLines(ctx, doc, items, &doc.ID)
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

// Delete reverses the stock effect (clamped at zero when the returned
// goods were already sold again) and soft-deletes the document.
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

	logger.Info(ctx, "sale return deleted", "id", docID)
	return nil
}

// List retrieves sale returns with filtering.
func (s *Service) List(ctx context.Context, filter ListFilter) (domain.ListResult[*SaleReturn], error) {
	return s.repo.List(ctx, filter)
}
