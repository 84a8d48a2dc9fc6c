package dto

import "time"

// CreateDepartmentRequest alta/edición de departamento.
type CreateDepartmentRequest struct {
	Name      string `json:"name"`
	CompanyID string `json:"company_id"`
}

// DepartmentResponse representación HTTP de un departamento.
type DepartmentResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	CompanyID string    `json:"company_id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// DepartmentListResponse listado paginado de departamentos.
type DepartmentListResponse struct {
	Items []DepartmentResponse `json:"items"`
	Page  PageResponse         `json:"page"`
}
