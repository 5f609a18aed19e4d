package handlers

import (
	"stockledger/internal/domain/catalogs/employee"
	"stockledger/internal/infrastructure/http/v1/dto"
)

// EmployeeHandler handles HTTP requests for the Employee catalog.
type EmployeeHandler struct {
	*CatalogHandler[*employee.Employee, dto.CreateEmployeeRequest, dto.UpdateEmployeeRequest]
}

// NewEmployeeHandler creates a new employee handler.
func NewEmployeeHandler(base *BaseHandler, service *employee.Service) *EmployeeHandler {
	cfg := CatalogHandlerConfig[*employee.Employee, dto.CreateEmployeeRequest, dto.UpdateEmployeeRequest]{
		Service:    service.CatalogService,
		EntityName: "employee",
		MapCreateDTO: func(req dto.CreateEmployeeRequest) (*employee.Employee, error) {
			return req.ToEntity(), nil
		},
		MapUpdateDTO: func(req dto.UpdateEmployeeRequest, existing *employee.Employee) *employee.Employee {
			req.ApplyTo(existing)
			return existing
		},
		MapToDTO: func(item *employee.Employee) any {
			return dto.FromEmployee(item)
		},
	}

	return &EmployeeHandler{CatalogHandler: NewCatalogHandler(base, cfg)}
}
