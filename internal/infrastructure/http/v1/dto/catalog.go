package dto

import (
	"time"

	"stockledger/internal/core/id"
	"stockledger/internal/domain/catalogs/batch"
	"stockledger/internal/domain/catalogs/employee"
	"stockledger/internal/domain/catalogs/payment_method"
	"stockledger/internal/domain/catalogs/store"
)

// --- Store ---

// CreateStoreRequest represents a request to create a store.
type CreateStoreRequest struct {
	Code        string  `json:"code,omitempty"`
	Name        string  `json:"name" binding:"required"`
	Address     *string `json:"address,omitempty"`
	Phone       *string `json:"phone,omitempty"`
	IsWarehouse bool    `json:"isWarehouse"`
}

// ToEntity converts request to domain entity.
func (r *CreateStoreRequest) ToEntity() *store.Store {
	item := store.New(r.Code, r.Name)
	item.Address = r.Address
	item.Phone = r.Phone
	item.IsWarehouse = r.IsWarehouse
	return item
}

// UpdateStoreRequest represents a request to update a store.
type UpdateStoreRequest struct {
	Name        *string `json:"name,omitempty"`
	Address     *string `json:"address,omitempty"`
	Phone       *string `json:"phone,omitempty"`
	IsWarehouse *bool   `json:"isWarehouse,omitempty"`
}

// ApplyTo applies updates to an existing entity.
func (r *UpdateStoreRequest) ApplyTo(item *store.Store) {
	if r.Name != nil {
		item.Name = *r.Name
	}
	if r.Address != nil {
		item.Address = r.Address
	}
	if r.Phone != nil {
		item.Phone = r.Phone
	}
	if r.IsWarehouse != nil {
		item.IsWarehouse = *r.IsWarehouse
	}
}

// StoreResponse represents a store in API responses.
type StoreResponse struct {
	CatalogResponse
	Address     *string `json:"address,omitempty"`
	Phone       *string `json:"phone,omitempty"`
	IsWarehouse bool    `json:"isWarehouse"`
}

// FromStore converts a domain store.
func FromStore(item *store.Store) *StoreResponse {
	return &StoreResponse{
		CatalogResponse: FromCatalog(item.Catalog),
		Address:         item.Address,
		Phone:           item.Phone,
		IsWarehouse:     item.IsWarehouse,
	}
}

// --- Batch ---

// CreateBatchRequest represents a request to create a batch.
type CreateBatchRequest struct {
	Code         string     `json:"code,omitempty"`
	Name         string     `json:"name" binding:"required"`
	ProductID    string     `json:"productId" binding:"required"`
	ExpiresAt    *time.Time `json:"expiresAt,omitempty"`
	Manufactured *time.Time `json:"manufactured,omitempty"`
}

// ToEntity converts request to domain entity.
func (r *CreateBatchRequest) ToEntity() (*batch.Batch, error) {
	productID, err := id.Parse(r.ProductID)
	if err != nil {
		return nil, err
	}
	item := batch.New(r.Code, r.Name, productID)
	item.ExpiresAt = r.ExpiresAt
	item.Manufactured = r.Manufactured
	return item, nil
}

// UpdateBatchRequest represents a request to update a batch.
type UpdateBatchRequest struct {
	Name         *string    `json:"name,omitempty"`
	ExpiresAt    *time.Time `json:"expiresAt,omitempty"`
	Manufactured *time.Time `json:"manufactured,omitempty"`
}

// ApplyTo applies updates to an existing entity.
func (r *UpdateBatchRequest) ApplyTo(item *batch.Batch) {
	if r.Name != nil {
		item.Name = *r.Name
	}
	if r.ExpiresAt != nil {
		item.ExpiresAt = r.ExpiresAt
	}
	if r.Manufactured != nil {
		item.Manufactured = r.Manufactured
	}
}

// BatchResponse represents a batch in API responses.
type BatchResponse struct {
	CatalogResponse
	ProductID    string     `json:"productId"`
	ExpiresAt    *time.Time `json:"expiresAt,omitempty"`
	Manufactured *time.Time `json:"manufactured,omitempty"`
}

// FromBatch converts a domain batch.
func FromBatch(item *batch.Batch) *BatchResponse {
	return &BatchResponse{
		CatalogResponse: FromCatalog(item.Catalog),
		ProductID:       item.ProductID.String(),
		ExpiresAt:       item.ExpiresAt,
		Manufactured:    item.Manufactured,
	}
}

// --- Payment Method ---

// CreatePaymentMethodRequest represents a request to create a payment method.
type CreatePaymentMethodRequest struct {
	Code              string `json:"code,omitempty"`
	Name              string `json:"name" binding:"required"`
	Kind              string `json:"kind" binding:"required"`
	RequiresReference bool   `json:"requiresReference"`
}

// ToEntity converts request to domain entity.
func (r *CreatePaymentMethodRequest) ToEntity() *payment_method.PaymentMethod {
	item := payment_method.New(r.Code, r.Name, payment_method.Kind(r.Kind))
	item.RequiresReference = r.RequiresReference
	return item
}

// UpdatePaymentMethodRequest represents a request to update a payment method.
type UpdatePaymentMethodRequest struct {
	Name              *string `json:"name,omitempty"`
	Kind              *string `json:"kind,omitempty"`
	RequiresReference *bool   `json:"requiresReference,omitempty"`
}

// ApplyTo applies updates to an existing entity.
func (r *UpdatePaymentMethodRequest) ApplyTo(item *payment_method.PaymentMethod) {
	if r.Name != nil {
		item.Name = *r.Name
	}
	if r.Kind != nil {
		item.Kind = payment_method.Kind(*r.Kind)
	}
	if r.RequiresReference != nil {
		item.RequiresReference = *r.RequiresReference
	}
}

// PaymentMethodResponse represents a payment method in API responses.
type PaymentMethodResponse struct {
	CatalogResponse
	Kind              string `json:"kind"`
	RequiresReference bool   `json:"requiresReference"`
}

// FromPaymentMethod converts a domain payment method.
func FromPaymentMethod(item *payment_method.PaymentMethod) *PaymentMethodResponse {
	return &PaymentMethodResponse{
		CatalogResponse:   FromCatalog(item.Catalog),
		Kind:              string(item.Kind),
		RequiresReference: item.RequiresReference,
	}
}

// --- Employee ---

// CreateEmployeeRequest represents a request to create an employee.
type CreateEmployeeRequest struct {
	Code     string  `json:"code,omitempty"`
	Name     string  `json:"name" binding:"required"`
	Phone    *string `json:"phone,omitempty"`
	Email    *string `json:"email,omitempty"`
	Position *string `json:"position,omitempty"`
}

// ToEntity converts request to domain entity.
func (r *CreateEmployeeRequest) ToEntity() *employee.Employee {
	item := employee.New(r.Code, r.Name)
	item.Phone = r.Phone
	item.Email = r.Email
	item.Position = r.Position
	return item
}

// UpdateEmployeeRequest represents a request to update an employee.
type UpdateEmployeeRequest struct {
	Name     *string `json:"name,omitempty"`
	Phone    *string `json:"phone,omitempty"`
	Email    *string `json:"email,omitempty"`
	Position *string `json:"position,omitempty"`
}

// ApplyTo applies updates to an existing entity.
func (r *UpdateEmployeeRequest) ApplyTo(item *employee.Employee) {
	if r.Name != nil {
		item.Name = *r.Name
	}
	if r.Phone != nil {
		item.Phone = r.Phone
	}
	if r.Email != nil {
		item.Email = r.Email
	}
	if r.Position != nil {
		item.Position = r.Position
	}
}

// EmployeeResponse represents an employee in API responses.
type EmployeeResponse struct {
	CatalogResponse
	Phone    *string `json:"phone,omitempty"`
	Email    *string `json:"email,omitempty"`
	Position *string `json:"position,omitempty"`
}

// FromEmployee converts a domain employee.
func FromEmployee(item *employee.Employee) *EmployeeResponse {
	return &EmployeeResponse{
		CatalogResponse: FromCatalog(item.Catalog),
		Phone:           item.Phone,
		Email:           item.Email,
		Position:        item.Position,
	}
}
