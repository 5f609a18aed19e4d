package payment_method

import (
	"context"
	"fmt"
	"time"

	"stockledger/internal/core/tx"
	"stockledger/internal/domain"
	"stockledger/pkg/numerator"
)

// Service provides business logic for the PaymentMethod catalog.
type Service struct {
	*domain.CatalogService[*PaymentMethod]
	repo      Repository
	numerator numerator.Generator
}

// NewService creates a new PaymentMethod service.
func NewService(repo Repository, txManager tx.Manager, gen numerator.Generator) *Service {
	base := domain.NewCatalogService(domain.CatalogServiceConfig[*PaymentMethod]{
		Repo:       repo,
		TxManager:  txManager,
		Numerator:  gen,
		EntityName: "payment-method",
	})

	svc := &Service{
		CatalogService: base,
		repo:           repo,
		numerator:      gen,
	}

	base.Hooks().OnBeforeCreate(svc.prepareForCreate)

	return svc
}

func (s *Service) prepareForCreate(ctx context.Context, item *PaymentMethod) error {
	if item.Code == "" {
		code, err := s.numerator.GetNextNumber(ctx, numerator.DefaultConfig("PM"), nil, time.Now())
		if err != nil {
			return fmt.Errorf("generate code: %w", err)
		}
		item.Code = code
	}
	return nil
}
