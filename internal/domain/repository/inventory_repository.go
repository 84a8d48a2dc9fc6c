package repository

import "github.com/jhoicas/gestion-erp/internal/domain/entity"

// InventoryRepository define el puerto de persistencia para sesiones de
// inventario físico y sus ítems. GetForUpdate bloquea la fila de la sesión
// para serializar finalize/cancel contra mutaciones concurrentes.
type InventoryRepository interface {
	Create(inventory *entity.Inventory) error
	GetByID(id string) (*entity.Inventory, error)
	GetForUpdate(id string) (*entity.Inventory, error)
	List(limit, offset int) ([]*entity.Inventory, error)
	UpdateStatus(id, status string) error

	AddItem(item *entity.InventoryItem) error
	GetItem(inventoryID, itemID string) (*entity.InventoryItem, error)
	GetItemByProduct(inventoryID, productID string) (*entity.InventoryItem, error)
	ListItems(inventoryID string) ([]*entity.InventoryItem, error)
	UpdateItem(item *entity.InventoryItem) error
}
