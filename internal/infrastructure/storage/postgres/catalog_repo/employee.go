package catalog_repo

import (
	"stockledger/internal/domain/catalogs/employee"
	"stockledger/internal/infrastructure/storage/postgres"
)

const employeesTable = "cat_employees"

var _ employee.Repository = (*EmployeeRepo)(nil)

// EmployeeRepo implements the employee repository.
type EmployeeRepo struct {
	*BaseCatalogRepo[*employee.Employee]
}

// NewEmployeeRepo creates a new employee repository.
func NewEmployeeRepo(txManager *postgres.TxManager) *EmployeeRepo {
	return &EmployeeRepo{
		BaseCatalogRepo: NewBaseCatalogRepo(
			txManager,
			employeesTable,
			postgres.ExtractDBColumns[employee.Employee](),
			func() *employee.Employee { return &employee.Employee{} },
		),
	}
}
