package catalog_repo

import (
	"stockledger/internal/domain/catalogs/payment_method"
	"stockledger/internal/infrastructure/storage/postgres"
)

const paymentMethodsTable = "cat_payment_methods"

var _ payment_method.Repository = (*PaymentMethodRepo)(nil)

// PaymentMethodRepo implements the payment method repository.
type PaymentMethodRepo struct {
	*BaseCatalogRepo[*payment_method.PaymentMethod]
}

// NewPaymentMethodRepo creates a new payment method repository.
func NewPaymentMethodRepo(txManager *postgres.TxManager) *PaymentMethodRepo {
	return &PaymentMethodRepo{
		BaseCatalogRepo: NewBaseCatalogRepo(
			txManager,
			paymentMethodsTable,
			postgres.ExtractDBColumns[payment_method.PaymentMethod](),
			func() *payment_method.PaymentMethod { return &payment_method.PaymentMethod{} },
		),
	}
}
