package counterparty

import (
	"context"
	"fmt"
	"time"

	"stockledger/internal/core/apperror"
	"stockledger/internal/core/tx"
	"stockledger/internal/domain"
	"stockledger/pkg/numerator"
)

// Service provides business logic for the Counterparty catalog.
type Service struct {
	*domain.CatalogService[*Counterparty]
	repo      Repository
	numerator numerator.Generator
}

// NewService creates a new Counterparty service.
func NewService(repo Repository, txManager tx.Manager, gen numerator.Generator) *Service {
	base := domain.NewCatalogService(domain.CatalogServiceConfig[*Counterparty]{
		Repo:       repo,
		TxManager:  txManager,
		Numerator:  gen,
		EntityName: "counterparty",
	})

	svc := &Service{
		CatalogService: base,
		repo:           repo,
		numerator:      gen,
	}

	base.Hooks().OnBeforeCreate(svc.prepareForCreate)
	base.Hooks().OnBeforeUpdate(svc.checkTaxNumber)

	return svc
}

func (s *Service) prepareForCreate(ctx context.Context, item *Counterparty) error {
	if item.Code == "" {
		code, err := s.numerator.GetNextNumber(ctx, numerator.DefaultConfig("CP"), nil, time.Now())
		if err != nil {
			return fmt.Errorf("generate code: %w", err)
		}
		item.Code = code
	}
	return s.checkTaxNumber(ctx, item)
}

func (s *Service) checkTaxNumber(ctx context.Context, item *Counterparty) error {
	if item.TaxNumber == nil || *item.TaxNumber == "" {
		return nil
	}
	if other, err := s.repo.GetByTaxNumber(ctx, *item.TaxNumber); err == nil && other.ID != item.ID {
		return apperror.NewConflict("counterparty with this tax number already exists").
			WithDetail("tax_number", *item.TaxNumber)
	}
	return nil
}

// --- Entity-specific methods ---

// ListCustomers lists counterparties that can act as customers.
func (s *Service) ListCustomers(ctx context.Context, filter domain.ListFilter) (domain.ListResult[*Counterparty], error) {
	return s.repo.ListByKind(ctx, KindCustomer, filter)
}

// ListSuppliers lists counterparties that can act as suppliers.
func (s *Service) ListSuppliers(ctx context.Context, filter domain.ListFilter) (domain.ListResult[*Counterparty], error) {
	return s.repo.ListByKind(ctx, KindSupplier, filter)
}
