package repository

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/gestion-erp/internal/domain/entity"
)

// ProductFilter filtros opcionales para listar productos.
type ProductFilter struct {
	CategoryID string
	SupplierID string
	Search     string // término ya normalizado (ver pkg/textutil)
	Limit      int
	Offset     int
}

// ProductRepository define el puerto de persistencia para Product (DIP).
// GetForUpdate bloquea la fila (SELECT FOR UPDATE); solo tiene sentido
// dentro de una transacción. Update no toca quantity_on_hand: esa columna
// se muta únicamente vía UpdateQuantity desde el motor de stock.
type ProductRepository interface {
	Create(product *entity.Product) error
	GetByID(id string) (*entity.Product, error)
	GetBySKU(sku string) (*entity.Product, error)
	GetForUpdate(id string) (*entity.Product, error)
	Update(product *entity.Product) error
	UpdateQuantity(productID string, quantity decimal.Decimal) error
	List(filter ProductFilter) ([]*entity.Product, error)
	ListBelowMinimum() ([]*entity.Product, error)
	Delete(id string) error
}
