package dto

import (
	"stockledger/internal/domain/catalogs/counterparty"
)

// CreateCounterpartyRequest represents a request to create a counterparty.
type CreateCounterpartyRequest struct {
	Code      string  `json:"code,omitempty"`
	Name      string  `json:"name" binding:"required"`
	Kind      string  `json:"kind" binding:"required"`
	Phone     *string `json:"phone,omitempty"`
	Email     *string `json:"email,omitempty"`
	Address   *string `json:"address,omitempty"`
	TaxNumber *string `json:"taxNumber,omitempty"`
}

// ToEntity converts request to domain entity.
func (r *CreateCounterpartyRequest) ToEntity() *counterparty.Counterparty {
	item := counterparty.New(r.Code, r.Name, counterparty.Kind(r.Kind))
	item.Phone = r.Phone
	item.Email = r.Email
	item.Address = r.Address
	item.TaxNumber = r.TaxNumber
	return item
}

// UpdateCounterpartyRequest represents a request to update a counterparty.
type UpdateCounterpartyRequest struct {
	Name      *string `json:"name,omitempty"`
	Kind      *string `json:"kind,omitempty"`
	Phone     *string `json:"phone,omitempty"`
	Email     *string `json:"email,omitempty"`
	Address   *string `json:"address,omitempty"`
	TaxNumber *string `json:"taxNumber,omitempty"`
}

// ApplyTo applies updates to an existing entity.
func (r *UpdateCounterpartyRequest) ApplyTo(item *counterparty.Counterparty) {
	if r.Name != nil {
		item.Name = *r.Name
	}
	if r.Kind != nil {
		item.Kind = counterparty.Kind(*r.Kind)
	}
	if r.Phone != nil {
		item.Phone = r.Phone
	}
	if r.Email != nil {
		item.Email = r.Email
	}
	if r.Address != nil {
		item.Address = r.Address
	}
	if r.TaxNumber != nil {
		item.TaxNumber = r.TaxNumber
	}
}

// CounterpartyResponse represents a counterparty in API responses.
type CounterpartyResponse struct {
	CatalogResponse
	Kind      string  `json:"kind"`
	Phone     *string `json:"phone,omitempty"`
	Email     *string `json:"email,omitempty"`
	Address   *string `json:"address,omitempty"`
	TaxNumber *string `json:"taxNumber,omitempty"`
}

// FromCounterparty converts a domain counterparty.
func FromCounterparty(item *counterparty.Counterparty) *CounterpartyResponse {
	return &CounterpartyResponse{
		CatalogResponse: FromCatalog(item.Catalog),
		Kind:            string(item.Kind),
		Phone:           item.Phone,
		Email:           item.Email,
		Address:         item.Address,
		TaxNumber:       item.TaxNumber,
	}
}
