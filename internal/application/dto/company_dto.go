package dto

import "time"

// CreateCompanyRequest alta/edición de empresa.
type CreateCompanyRequest struct {
	Name         string `json:"name"`
	CNPJ         string `json:"cnpj"`
	BusinessArea string `json:"business_area"`
}

// CompanyResponse representación HTTP de una empresa.
type CompanyResponse struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	CNPJ         string    `json:"cnpj"`
	BusinessArea string    `json:"business_area"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// CompanyListResponse listado paginado de empresas.
type CompanyListResponse struct {
	Items []CompanyResponse `json:"items"`
	Page  PageResponse      `json:"page"`
}
