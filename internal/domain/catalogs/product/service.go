package product

import (
	"context"
	"fmt"
	"time"

	"stockledger/internal/core/apperror"
	"stockledger/internal/core/id"
	"stockledger/internal/core/tx"
	"stockledger/internal/domain"
	"stockledger/pkg/numerator"
)

// Service provides business logic for the Product catalog.
// Uses composition with domain.CatalogService for common CRUD operations.
type Service struct {
	*domain.CatalogService[*Product]
	repo      Repository
	numerator numerator.Generator
}

// NewService creates a new Product service.
func NewService(repo Repository, txManager tx.Manager, gen numerator.Generator) *Service {
	base := domain.NewCatalogService(domain.CatalogServiceConfig[*Product]{
		Repo:       repo,
		TxManager:  txManager,
		Numerator:  gen,
		EntityName: "product",
	})

	svc := &Service{
		CatalogService: base,
		repo:           repo,
		numerator:      gen,
	}

	base.Hooks().OnBeforeCreate(svc.prepareForCreate)
	base.Hooks().OnBeforeUpdate(svc.checkUniqueness)

	return svc
}

// prepareForCreate handles code generation and uniqueness checks.
func (s *Service) prepareForCreate(ctx context.Context, item *Product) error {
	if item.Code == "" {
		code, err := s.numerator.GetNextNumber(ctx, numerator.DefaultConfig("PR"), nil, time.Now())
		if err != nil {
			return fmt.Errorf("generate code: %w", err)
		}
		item.Code = code
	}

	return s.checkUniqueness(ctx, item)
}

func (s *Service) checkUniqueness(ctx context.Context, item *Product) error {
	if item.SKU != nil && *item.SKU != "" {
		if other, err := s.repo.GetBySKU(ctx, *item.SKU); err == nil && other.ID != item.ID {
			return apperror.NewConflict("product with this SKU already exists").
				WithDetail("sku", *item.SKU)
		}
	}

	if item.Barcode != nil && *item.Barcode != "" {
		if other, err := s.repo.GetByBarcode(ctx, *item.Barcode); err == nil && other.ID != item.ID {
			return apperror.NewConflict("product with this barcode already exists").
				WithDetail("barcode", *item.Barcode)
		}
	}

	return nil
}

// --- Entity-specific methods ---

// GetBySKU retrieves a product by article.
func (s *Service) GetBySKU(ctx context.Context, sku string) (*Product, error) {
	item, err := s.repo.GetBySKU(ctx, sku)
	if err != nil {
		if apperror.IsNotFound(err) {
			return nil, apperror.NewNotFound("product", sku)
		}
		return nil, err
	}
	return item, nil
}

// GetByBarcode retrieves a product by barcode. Used by POS lookups.
func (s *Service) GetByBarcode(ctx context.Context, barcode string) (*Product, error) {
	item, err := s.repo.GetByBarcode(ctx, barcode)
	if err != nil {
		if apperror.IsNotFound(err) {
			return nil, apperror.NewNotFound("product", barcode)
		}
		return nil, err
	}
	return item, nil
}

// Resolve returns the product if it exists and is not marked deleted.
// Documents call this when composing lines.
func (s *Service) Resolve(ctx context.Context, productID id.ID) (*Product, error) {
	item, err := s.GetByID(ctx, productID)
	if err != nil {
		return nil, err
	}
	if item.DeletionMark {
		return nil, apperror.NewValidation("product is marked for deletion").
			WithDetail("product_id", productID.String())
	}
	return item, nil
}
