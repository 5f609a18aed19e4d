// Package product provides the Product catalog.
package product

import (
	"context"

	"github.com/shopspring/decimal"

	"stockledger/internal/core/apperror"
	"stockledger/internal/core/entity"
)

// ProductType defines the type of item.
type ProductType string

const (
	TypeGoods   ProductType = "goods"
	TypeService ProductType = "service"
)

// Product represents an item that can be purchased, stocked and sold.
type Product struct {
	entity.Catalog

	// Type defines item category. Services never touch the stock ledger.
	Type ProductType `db:"type" json:"type"`

	// SKU is the item article
	SKU *string `db:"sku" json:"sku,omitempty"`

	// Barcode is the item barcode (EAN-13, etc.)
	Barcode *string `db:"barcode" json:"barcode,omitempty"`

	// Unit is the unit of measure (e.g. "pcs", "kg")
	Unit string `db:"unit" json:"unit"`

	// SalePrice is the default selling price
	SalePrice decimal.Decimal `db:"sale_price" json:"salePrice"`

	// PurchasePrice is the default acquisition cost
	PurchasePrice decimal.Decimal `db:"purchase_price" json:"purchasePrice"`

	// TrackBatch indicates if item is tracked by batch/lot numbers
	TrackBatch bool `db:"track_batch" json:"trackBatch"`

	// Description is a detailed description
	Description *string `db:"description" json:"description,omitempty"`
}

// New creates a product catalog entry.
func New(code, name string) *Product {
	return &Product{
		Catalog: entity.NewCatalog(code, name),
		Type:    TypeGoods,
		Unit:    "pcs",
	}
}

// Validate implements entity.Validatable.
func (p *Product) Validate(ctx context.Context) error {
	if err := p.Catalog.Validate(ctx); err != nil {
		return err
	}

	if p.Type != TypeGoods && p.Type != TypeService {
		return apperror.NewValidation("unknown product type").
			WithDetail("field", "type").
			WithDetail("value", string(p.Type))
	}
	if p.SalePrice.IsNegative() || p.PurchasePrice.IsNegative() {
		return apperror.NewValidation("prices cannot be negative")
	}

	return nil
}

// IsStocked reports whether the item participates in the stock ledger.
func (p *Product) IsStocked() bool {
	return p.Type == TypeGoods
}
