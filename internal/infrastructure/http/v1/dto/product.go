package dto

import (
	"github.com/shopspring/decimal"

	"stockledger/internal/domain/catalogs/product"
)

// CreateProductRequest represents a request to create a product.
type CreateProductRequest struct {
	Code          string          `json:"code,omitempty"`
	Name          string          `json:"name" binding:"required"`
	Type          string          `json:"type,omitempty"`
	SKU           *string         `json:"sku,omitempty"`
	Barcode       *string         `json:"barcode,omitempty"`
	Unit          string          `json:"unit,omitempty"`
	SalePrice     decimal.Decimal `json:"salePrice"`
	PurchasePrice decimal.Decimal `json:"purchasePrice"`
	TrackBatch    bool            `json:"trackBatch"`
	Description   *string         `json:"description,omitempty"`
}

// ToEntity converts request to domain entity.
func (r *CreateProductRequest) ToEntity() *product.Product {
	item := product.New(r.Code, r.Name)
	if r.Type != "" {
		item.Type = product.ProductType(r.Type)
	}
	if r.Unit != "" {
		item.Unit = r.Unit
	}
	item.SKU = r.SKU
	item.Barcode = r.Barcode
	item.SalePrice = r.SalePrice
	item.PurchasePrice = r.PurchasePrice
	item.TrackBatch = r.TrackBatch
	item.Description = r.Description
	return item
}

// UpdateProductRequest represents a request to update a product.
type UpdateProductRequest struct {
	Name          *string          `json:"name,omitempty"`
	Type          *string          `json:"type,omitempty"`
	SKU           *string          `json:"sku,omitempty"`
	Barcode       *string          `json:"barcode,omitempty"`
	Unit          *string          `json:"unit,omitempty"`
	SalePrice     *decimal.Decimal `json:"salePrice,omitempty"`
	PurchasePrice *decimal.Decimal `json:"purchasePrice,omitempty"`
	TrackBatch    *bool            `json:"trackBatch,omitempty"`
	Description   *string          `json:"description,omitempty"`
}

// ApplyTo applies updates to an existing entity.
func (r *UpdateProductRequest) ApplyTo(item *product.Product) {
	if r.Name != nil {
		item.Name = *r.Name
	}
	if r.Type != nil {
		item.Type = product.ProductType(*r.Type)
	}
	if r.SKU != nil {
		item.SKU = r.SKU
	}
	if r.Barcode != nil {
		item.Barcode = r.Barcode
	}
	if r.Unit != nil {
		item.Unit = *r.Unit
	}
	if r.SalePrice != nil {
		item.SalePrice = *r.SalePrice
	}
	if r.PurchasePrice != nil {
		item.PurchasePrice = *r.PurchasePrice
	}
	if r.TrackBatch != nil {
		item.TrackBatch = *r.TrackBatch
	}
	if r.Description != nil {
		item.Description = r.Description
	}
}

// ProductResponse represents a product in API responses.
type ProductResponse struct {
	CatalogResponse
	Type          string          `json:"type"`
	SKU           *string         `json:"sku,omitempty"`
	Barcode       *string         `json:"barcode,omitempty"`
	Unit          string          `json:"unit"`
	SalePrice     decimal.Decimal `json:"salePrice"`
	PurchasePrice decimal.Decimal `json:"purchasePrice"`
	TrackBatch    bool            `json:"trackBatch"`
	Description   *string         `json:"description,omitempty"`
}

// FromProduct converts a domain product.
func FromProduct(item *product.Product) *ProductResponse {
	return &ProductResponse{
		CatalogResponse: FromCatalog(item.Catalog),
		Type:            string(item.Type),
		SKU:             item.SKU,
		Barcode:         item.Barcode,
		Unit:            item.Unit,
		SalePrice:       item.SalePrice,
		PurchasePrice:   item.PurchasePrice,
		TrackBatch:      item.TrackBatch,
		Description:     item.Description,
	}
}
