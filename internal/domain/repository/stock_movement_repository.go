package repository

import "github.com/jhoicas/gestion-erp/internal/domain/entity"

// StockMovementRepository define el puerto de persistencia del libro mayor
// de stock. Solo inserta y lee: las entradas son inmutables.
type StockMovementRepository interface {
	Create(movement *entity.StockMovement) error
	List(productID string, limit, offset int) ([]*entity.StockMovement, error)
}
