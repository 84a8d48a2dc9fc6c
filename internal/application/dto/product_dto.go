package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateProductRequest alta de producto. QuantityOnHand solo se acepta en
// la creación (stock inicial); después solo lo mueven los movimientos.
type CreateProductRequest struct {
	Name           string          `json:"name"`
	Description    string          `json:"description"`
	SKU            string          `json:"sku"`
	CategoryID     string          `json:"category_id"`
	SupplierID     string          `json:"supplier_id"`
	UnitMeasure    string          `json:"unit_measure"`
	MinQuantity    decimal.Decimal `json:"min_quantity"`
	MaxQuantity    decimal.Decimal `json:"max_quantity"`
	QuantityOnHand decimal.Decimal `json:"quantity_on_hand"`
	Cost           decimal.Decimal `json:"cost"`
	SalePrice      decimal.Decimal `json:"sale_price"`
}

// UpdateProductRequest edición de producto. No incluye quantity_on_hand.
type UpdateProductRequest struct {
	Name        string          `json:"name"`
	Description string          `json:"description"`
	SKU         string          `json:"sku"`
	CategoryID  string          `json:"category_id"`
	SupplierID  string          `json:"supplier_id"`
	UnitMeasure string          `json:"unit_measure"`
	MinQuantity decimal.Decimal `json:"min_quantity"`
	MaxQuantity decimal.Decimal `json:"max_quantity"`
	Cost        decimal.Decimal `json:"cost"`
	SalePrice   decimal.Decimal `json:"sale_price"`
}

// ProductResponse representación HTTP de un producto.
type ProductResponse struct {
	ID             string          `json:"id"`
	Name           string          `json:"name"`
	Description    string          `json:"description"`
	SKU            string          `json:"sku"`
	CategoryID     string          `json:"category_id"`
	SupplierID     string          `json:"supplier_id"`
	UnitMeasure    string          `json:"unit_measure"`
	MinQuantity    decimal.Decimal `json:"min_quantity"`
	MaxQuantity    decimal.Decimal `json:"max_quantity"`
	QuantityOnHand decimal.Decimal `json:"quantity_on_hand"`
	Cost           decimal.Decimal `json:"cost"`
	SalePrice      decimal.Decimal `json:"sale_price"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`
}

// ProductListResponse listado paginado de productos.
type ProductListResponse struct {
	Items []ProductResponse `json:"items"`
	Page  PageResponse      `json:"page"`
}
