package entity

import "time"

// Category representa una categoría de productos. ParentID nulo indica
// categoría raíz; la jerarquía no admite ciclos.
type Category struct {
	ID          string
	Name        string
	Description string
	ParentID    *string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
