package entity

import "time"

// Company representa una empresa del módulo administrativo.
type Company struct {
	ID           string
	Name         string
	CNPJ         string // identificación fiscal, única
	BusinessArea string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
