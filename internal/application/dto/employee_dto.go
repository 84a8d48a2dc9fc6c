package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateEmployeeRequest alta/edición de colaborador. HireDate en formato 2006-01-02.
type CreateEmployeeRequest struct {
	Name         string          `json:"name"`
	Position     string          `json:"position"`
	Salary       decimal.Decimal `json:"salary"`
	HireDate     string          `json:"hire_date"`
	DepartmentID string          `json:"department_id"`
}

// EmployeeResponse representación HTTP de un colaborador.
type EmployeeResponse struct {
	ID           string          `json:"id"`
	Name         string          `json:"name"`
	Position     string          `json:"position"`
	Salary       decimal.Decimal `json:"salary"`
	HireDate     string          `json:"hire_date"`
	DepartmentID string          `json:"department_id"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
}

// EmployeeListResponse listado paginado de colaboradores.
type EmployeeListResponse struct {
	Items []EmployeeResponse `json:"items"`
	Page  PageResponse       `json:"page"`
}
