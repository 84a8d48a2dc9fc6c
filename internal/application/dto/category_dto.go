package dto

import "time"

// CreateCategoryRequest alta/edición de categoría. ParentID nulo = raíz.
type CreateCategoryRequest struct {
	Name        string  `json:"name"`
	Description string  `json:"description"`
	ParentID    *string `json:"parent_id"`
}

// CategoryResponse representación HTTP de una categoría.
type CategoryResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	ParentID    *string   `json:"parent_id,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// CategoryListResponse listado de categorías (la jerarquía completa es
// pequeña; no se pagina).
type CategoryListResponse struct {
	Items []CategoryResponse `json:"items"`
}
