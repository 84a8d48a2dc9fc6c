package entity

import "time"

// Department representa un departamento dentro de una empresa.
type Department struct {
	ID        string
	Name      string
	CompanyID string
	CreatedAt time.Time
	UpdatedAt time.Time
}
