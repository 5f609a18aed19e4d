// Package transfer provides the StockTransfer document service.
package transfer

import (
	"context"
	"fmt"
	"time"

	"stockledger/internal/core/apperror"
	"stockledger/internal/core/entity"
	"stockledger/internal/core/id"
	"stockledger/internal/domain"
	"stockledger/internal/domain/ledger"
	"stockledger/internal/domain/registers/stock"
	"stockledger/pkg/logger"
	"stockledger/pkg/numerator"
)

// Service provides business operations for stock transfers.
type Service struct {
	repo      Repository
	engine    *ledger.Engine
	stock     *stock.Service
	numerator numerator.Generator
	hooks     *domain.HookRegistry[*StockTransfer]
}

// NewService creates a new transfer service.
func NewService(repo Repository, engine *ledger.Engine, stockSvc *stock.Service, gen numerator.Generator) *Service {
	return &Service{
		repo:      repo,
		engine:    engine,
		stock:     stockSvc,
		numerator: gen,
		hooks:     domain.NewHookRegistry[*StockTransfer](),
	}
}

// Hooks returns the hook registry for registering callbacks.
func (s *Service) Hooks() *domain.HookRegistry[*StockTransfer] {
	return s.hooks
}

// Create saves a new transfer in Pending status. Stock moves only when
// the document transitions to Completed.
func (s *Service) Create(ctx context.Context, doc *StockTransfer) error {
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

	logger.Info(ctx, "transfer created", "id", doc.ID, "number", doc.Number)
	return nil
}

// GetByID retrieves a transfer.
func (s *Service) GetByID(ctx context.Context, docID id.ID) (*StockTransfer, error) {
	return s.repo.GetByID(ctx, docID)
}

// Update modifies a Pending transfer.
func (s *Service) Update(ctx context.Context, doc *StockTransfer) error {
	if err := s.hooks.Run(ctx, domain.BeforeUpdate, doc); err != nil {
		return err
	}

	prev, err := s.repo.GetByID(ctx, doc.ID)
	if err != nil {
		return err
	}
	if prev.Status != entity.StatusPending {
		return apperror.NewBusinessRule(apperror.CodeBusinessRule,
			"Only pending transfers can be modified").
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

// SetStatus drives the one-shot state machine. Pending -> Completed
// moves the quantity between both stores atomically; repeating
// Completed is rejected. Pending/Completed -> Cancelled reverses any
// recorded movement.
func (s *Service) SetStatus(ctx context.Context, docID id.ID, status entity.DocStatus) error {
	doc, err := s.repo.GetByID(ctx, docID)
	if err != nil {
		return err
	}

	if status.IsFinal() {
		// Carry the source valuation over to the destination record.
		sourceStore := doc.SourceStoreID
		record, err := s.stock.Get(ctx, entity.NewStockKey(doc.ProductID, &sourceStore, doc.BatchID))
		if err != nil {
			return fmt.Errorf("get source stock record: %w", err)
		}
		if record != nil {
			doc.SourceUnitCost = record.UnitCost
		}
	}

	err = s.engine.RunStatus(ctx, doc, status, func(ctx context.Context) error {
		return s.repo.Update(ctx, doc)
	})
	if err != nil {
		return err
	}

	logger.Info(ctx, "transfer status changed",
		"id", docID,
		"status", string(status))
	return nil
}

// Delete reverses the effect of a Completed transfer and soft-deletes it.
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

	logger.Info(ctx, "transfer deleted", "id", docID)
	return nil
}

// List retrieves transfers with filtering.
func (s *Service) List(ctx context.Context, filter ListFilter) (domain.ListResult[*StockTransfer], error) {
	return s.repo.List(ctx, filter)
}
