package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// RegisterMovementRequest registra un movimiento de stock. Quantity es
// puntero para distinguir "ausente" de cero: el ajuste acepta cero como
// cantidad objetivo, los demás tipos exigen un valor positivo.
type RegisterMovementRequest struct {
	ProductID string           `json:"product_id"`
	Quantity  *decimal.Decimal `json:"quantity"`
	Note      string           `json:"note"`
}

// StockMovementResponse una entrada del libro mayor.
type StockMovementResponse struct {
	ID             string          `json:"id"`
	ProductID      string          `json:"product_id"`
	Type           string          `json:"type"`
	Quantity       decimal.Decimal `json:"quantity"`
	QuantityBefore decimal.Decimal `json:"quantity_before"`
	QuantityAfter  decimal.Decimal `json:"quantity_after"`
	Note           string          `json:"note,omitempty"`
	CreatedAt      time.Time       `json:"created_at"`
}

// StockMovementListResponse listado paginado del libro mayor.
type StockMovementListResponse struct {
	Items []StockMovementResponse `json:"items"`
	Page  PageResponse            `json:"page"`
}
