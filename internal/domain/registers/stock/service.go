// Package stock provides the stock record register service.
package stock

import (
	"context"
	"fmt"

	"stockledger/internal/core/apperror"
	"stockledger/internal/core/entity"
	"stockledger/internal/core/id"
	"stockledger/internal/core/types"
	"stockledger/pkg/logger"
)

// Service provides business operations for the stock register.
// It is the ONLY component that writes stock record quantities.
// Transactions are managed by the caller (the ledger engine).
type Service struct {
	repo Repository
}

// NewService creates a new stock register service.
func NewService(repo Repository) *Service {
	return &Service{
		repo: repo,
	}
}

// Apply executes stock directives against the register.
// Must be called within an open transaction: each affected record is
// locked (SELECT FOR UPDATE) before mutation so concurrent documents
// touching the same key serialize at the storage layer.
//
// A record is created on first positive movement for a key. Quantities
// never go below zero: a shortfall fails with InsufficientStock unless
// the directive clamps at zero (reversals do).
func (s *Service) Apply(ctx context.Context, directives []entity.StockDirective) error {
	for i, d := range directives {
		if d.Delta.IsZero() {
			continue
		}
		if id.IsNil(d.Key.ProductID) {
			return apperror.NewValidation(fmt.Sprintf("directive %d: product_id is required", i))
		}

		record, err := s.lockRecord(ctx, d)
		if err != nil {
			return err
		}

		if record == nil {
			if err := s.applyToAbsent(ctx, d); err != nil {
				return err
			}
			continue
		}

		newQty := record.Quantity + d.Delta
		if newQty.IsNegative() {
			if !d.ClampAtZero {
				return apperror.NewInsufficientStock(
					d.Key.ProductID.String(),
					d.Delta.Neg().Float64(),
					record.Quantity.Float64(),
				)
			}
			newQty = 0
		}

		record.Quantity = newQty
		if d.Delta.IsPositive() && d.HasCost {
			// Last write wins: latest inbound cost overwrites the stored one.
			record.UnitCost = d.UnitCost
		}

		if err := s.repo.Update(ctx, record); err != nil {
			return fmt.Errorf("update stock record %s: %w", d.Key, err)
		}
	}

	if len(directives) > 0 {
		logger.Debug(ctx, "applied stock directives", "count", len(directives))
	}

	return nil
}

// lockRecord resolves the record a directive targets and takes the row
// lock. A directive pinned to a record ID locks that exact record; the
// key lookup only serves directives composed without one.
func (s *Service) lockRecord(ctx context.Context, d entity.StockDirective) (*entity.StockRecord, error) {
	if d.StockID != nil {
		record, err := s.repo.GetForUpdateByID(ctx, *d.StockID)
		if err != nil {
			return nil, fmt.Errorf("lock stock record %s: %w", *d.StockID, err)
		}
		if record == nil {
			return nil, apperror.NewNotFound("stock record", d.StockID.String())
		}
		return record, nil
	}

	record, err := s.repo.GetForUpdate(ctx, d.Key)
	if err != nil {
		return nil, fmt.Errorf("lock stock record %s: %w", d.Key, err)
	}
	return record, nil
}

// applyToAbsent handles a directive whose key has no record yet.
func (s *Service) applyToAbsent(ctx context.Context, d entity.StockDirective) error {
	if d.Delta.IsNegative() {
		if d.ClampAtZero {
			// Reversing an inflow that was never recorded: nothing to do.
			return nil
		}
		return apperror.NewInsufficientStock(d.Key.ProductID.String(), d.Delta.Neg().Float64(), 0)
	}

	record := entity.NewStockRecord(d.Key)
	record.Quantity = d.Delta
	if d.HasCost {
		record.UnitCost = d.UnitCost
	}

	if err := s.repo.Insert(ctx, &record); err != nil {
		return fmt.Errorf("insert stock record %s: %w", d.Key, err)
	}
	return nil
}

// CheckAvailability validates that the key holds at least the required
// quantity, locking the row. Call within a transaction before composing
// outbound lines.
func (s *Service) CheckAvailability(ctx context.Context, key entity.StockKey, required types.Quantity) error {
	record, err := s.repo.GetForUpdate(ctx, key)
	if err != nil {
		return fmt.Errorf("get stock record %s: %w", key, err)
	}

	available := types.Quantity(0)
	if record != nil {
		available = record.Quantity
	}
	if available < required {
		return apperror.NewInsufficientStock(key.ProductID.String(), required.Float64(), available.Float64())
	}
	return nil
}

// Get returns the current record for a key, or nil if none exists.
func (s *Service) Get(ctx context.Context, key entity.StockKey) (*entity.StockRecord, error) {
	return s.repo.Get(ctx, key)
}

// GetByID returns a record by identity.
func (s *Service) GetByID(ctx context.Context, recordID id.ID) (*entity.StockRecord, error) {
	record, err := s.repo.GetByID(ctx, recordID)
	if err != nil {
		return nil, err
	}
	if record == nil {
		return nil, apperror.NewNotFound("stock record", recordID.String())
	}
	return record, nil
}

// GetProductAvailability returns available quantity across stores.
func (s *Service) GetProductAvailability(ctx context.Context, productID id.ID) (types.Quantity, error) {
	records, err := s.repo.ListByProduct(ctx, productID)
	if err != nil {
		return 0, fmt.Errorf("list stock records: %w", err)
	}

	var total types.Quantity
	for _, r := range records {
		total += r.Quantity
	}

	return total, nil
}

// GetStoreStock returns all products with stock in a store.
func (s *Service) GetStoreStock(ctx context.Context, storeID id.ID) ([]entity.StockRecord, error) {
	return s.repo.ListByStore(ctx, storeID, RecordFilter{
		ExcludeZero: true,
	})
}
