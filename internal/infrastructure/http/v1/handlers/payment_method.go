package handlers

import (
	"stockledger/internal/domain/catalogs/payment_method"
	"stockledger/internal/infrastructure/http/v1/dto"
)

// PaymentMethodHandler handles HTTP requests for the PaymentMethod catalog.
type PaymentMethodHandler struct {
	*CatalogHandler[*payment_method.PaymentMethod, dto.CreatePaymentMethodRequest, dto.UpdatePaymentMethodRequest]
}

// NewPaymentMethodHandler creates a new payment method handler.
func NewPaymentMethodHandler(base *BaseHandler, service *payment_method.Service) *PaymentMethodHandler {
	cfg := CatalogHandlerConfig[*payment_method.PaymentMethod, dto.CreatePaymentMethodRequest, dto.UpdatePaymentMethodRequest]{
		Service:    service.CatalogService,
		EntityName: "payment-method",
		MapCreateDTO: func(req dto.CreatePaymentMethodRequest) (*payment_method.PaymentMethod, error) {
			return req.ToEntity(), nil
		},
		MapUpdateDTO: func(req dto.UpdatePaymentMethodRequest, existing *payment_method.PaymentMethod) *payment_method.PaymentMethod {
			req.ApplyTo(existing)
			return existing
		},
		MapToDTO: func(item *payment_method.PaymentMethod) any {
			return dto.FromPaymentMethod(item)
		},
	}

	return &PaymentMethodHandler{CatalogHandler: NewCatalogHandler(base, cfg)}
}
