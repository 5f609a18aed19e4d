package batch

import (
	"context"
	"fmt"
	"time"

	"stockledger/internal/core/id"
	"stockledger/internal/core/tx"
	"stockledger/internal/domain"
	"stockledger/pkg/numerator"
)

// Service provides business logic for the Batch catalog.
type Service struct {
	*domain.CatalogService[*Batch]
	repo      Repository
	numerator numerator.Generator
}

// NewService creates a new Batch service.
func NewService(repo Repository, txManager tx.Manager, gen numerator.Generator) *Service {
	base := domain.NewCatalogService(domain.CatalogServiceConfig[*Batch]{
		Repo:       repo,
		TxManager:  txManager,
		Numerator:  gen,
		EntityName: "batch",
	})

	svc := &Service{
		CatalogService: base,
		repo:           repo,
		numerator:      gen,
	}

	base.Hooks().OnBeforeCreate(svc.prepareForCreate)

	return svc
}

func (s *Service) prepareForCreate(ctx context.Context, item *Batch) error {
	if item.Code == "" {
		code, err := s.numerator.GetNextNumber(ctx, numerator.DefaultConfig("BT"), nil, time.Now())
		if err != nil {
			return fmt.Errorf("generate code: %w", err)
		}
		item.Code = code
	}
	return nil
}

// ListByProduct lists batches of a product, soonest expiry first.
func (s *Service) ListByProduct(ctx context.Context, productID id.ID) ([]*Batch, error) {
	return s.repo.ListByProduct(ctx, productID)
}
