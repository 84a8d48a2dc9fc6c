package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de movimiento de stock.
const (
	MovementTypeEntry      = "ENTRY"
	MovementTypeExitSale   = "EXIT_SALE"
	MovementTypeExitLoss   = "EXIT_LOSS"
	MovementTypeAdjustment = "ADJUSTMENT"
)

// StockMovement es una entrada del libro mayor de stock. Append-only:
// nunca se actualiza ni se borra. Quantity es siempre una magnitud >= 0;
// la dirección se recupera de QuantityBefore/QuantityAfter.
type StockMovement struct {
	ID             string
	ProductID      string
	Type           string
	Quantity       decimal.Decimal
	QuantityBefore decimal.Decimal
	QuantityAfter  decimal.Decimal
	Note           string
	CreatedAt      time.Time
}
