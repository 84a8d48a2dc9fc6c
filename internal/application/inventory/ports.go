package inventory

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/gestion-erp/internal/domain/entity"
	"github.com/jhoicas/gestion-erp/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando
// repositorios atados a esa tx. Garantiza atomicidad para el motor de stock:
// si fn devuelve error se hace Rollback de todo lo escrito dentro.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		productRepo repository.ProductRepository,
		movementRepo repository.StockMovementRepository,
		inventoryRepo repository.InventoryRepository,
	) error) error
}

// ReportItem línea del reporte PDF de un inventario finalizado.
type ReportItem struct {
	ProductName     string
	SKU             string
	UnitMeasure     string
	QuantitySystem  decimal.Decimal
	QuantityCounted decimal.Decimal
	Difference      decimal.Decimal
	Note            string
}

// ReportGenerator genera el documento PDF de una sesión de conteo concluida.
type ReportGenerator interface {
	GenerateInventoryReport(inv *entity.Inventory, items []ReportItem) ([]byte, error)
}
