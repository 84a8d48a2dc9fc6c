package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateInventoryRequest abre una sesión de conteo. Date en formato 2006-01-02.
type CreateInventoryRequest struct {
	Date string `json:"date"`
	Note string `json:"note"`
}

// AddInventoryItemRequest agrega el conteo de un producto a la sesión.
// QuantityCounted es puntero: cero contado es un valor válido.
type AddInventoryItemRequest struct {
	ProductID       string           `json:"product_id"`
	QuantityCounted *decimal.Decimal `json:"quantity_counted"`
	Note            string           `json:"note"`
}

// UpdateInventoryItemRequest corrige el conteo de un ítem.
type UpdateInventoryItemRequest struct {
	QuantityCounted *decimal.Decimal `json:"quantity_counted"`
	Note            string           `json:"note"`
}

// FinalizeInventoryRequest cierra la sesión; ApplyAdjustments indica si las
// diferencias se vuelcan al stock como ajustes.
type FinalizeInventoryRequest struct {
	ApplyAdjustments bool `json:"apply_adjustments"`
}

// InventoryItemResponse conteo de un producto dentro de la sesión.
type InventoryItemResponse struct {
	ID              string          `json:"id"`
	InventoryID     string          `json:"inventory_id"`
	ProductID       string          `json:"product_id"`
	QuantitySystem  decimal.Decimal `json:"quantity_system"`
	QuantityCounted decimal.Decimal `json:"quantity_counted"`
	Difference      decimal.Decimal `json:"difference"`
	Note            string          `json:"note,omitempty"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
}

// InventoryResponse sesión de conteo; Items solo se incluye en el detalle.
type InventoryResponse struct {
	ID        string                  `json:"id"`
	Date      string                  `json:"date"`
	Note      string                  `json:"note,omitempty"`
	Status    string                  `json:"status"`
	Items     []InventoryItemResponse `json:"items,omitempty"`
	CreatedAt time.Time               `json:"created_at"`
	UpdatedAt time.Time               `json:"updated_at"`
}

// InventoryListResponse listado paginado de sesiones.
type InventoryListResponse struct {
	Items []InventoryResponse `json:"items"`
	Page  PageResponse        `json:"page"`
}
