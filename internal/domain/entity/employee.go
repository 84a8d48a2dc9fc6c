package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Employee representa un colaborador asignado a un departamento.
type Employee struct {
	ID           string
	Name         string
	Position     string
	Salary       decimal.Decimal
	HireDate     time.Time
	DepartmentID string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
