package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de un inventario físico. DONE y CANCELLED son terminales;
// las transiciones solo avanzan, nunca se reabre una sesión.
const (
	InventoryStatusInProgress = "IN_PROGRESS"
	InventoryStatusDone       = "DONE"
	InventoryStatusCancelled  = "CANCELLED"
)

// Inventory es una sesión de conteo físico.
type Inventory struct {
	ID        string
	Date      time.Time
	Note      string
	Status    string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Active indica si la sesión admite mutaciones.
func (i *Inventory) Active() bool {
	return i.Status == InventoryStatusInProgress
}

// InventoryItem es el conteo de un producto dentro de una sesión.
// QuantitySystem es el snapshot del stock al momento de agregar el ítem;
// Difference se calcula siempre contra ese snapshot, no contra el stock vivo.
// Un producto solo puede aparecer una vez por sesión.
type InventoryItem struct {
	ID              string
	InventoryID     string
	ProductID       string
	QuantitySystem  decimal.Decimal
	QuantityCounted decimal.Decimal
	Difference      decimal.Decimal
	Note            string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}
