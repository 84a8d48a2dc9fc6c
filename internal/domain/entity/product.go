package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa un producto o SKU del catálogo.
// QuantityOnHand es la cuenta de stock: solo la mutan el registrador de
// movimientos y el finalizador de inventarios, nunca el update genérico.
// SearchName guarda el nombre normalizado (minúsculas, sin acentos) para
// búsquedas insensibles a acentos.
type Product struct {
	ID             string
	Name           string
	Description    string
	SKU            string // único global
	CategoryID     string
	SupplierID     string
	UnitMeasure    string
	MinQuantity    decimal.Decimal
	MaxQuantity    decimal.Decimal
	QuantityOnHand decimal.Decimal
	Cost           decimal.Decimal
	SalePrice      decimal.Decimal
	SearchName     string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
