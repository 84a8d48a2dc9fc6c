package entity

import "time"

// Supplier representa un proveedor de productos.
type Supplier struct {
	ID        string
	Name      string
	CNPJ      string // identificación fiscal, única
	Email     string
	Phone     string
	Address   string
	City      string
	State     string
	ZipCode   string
	Contact   string
	CreatedAt time.Time
	UpdatedAt time.Time
}
