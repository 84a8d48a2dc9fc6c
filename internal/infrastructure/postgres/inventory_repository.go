package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/gestion-erp/internal/domain"
	"github.com/jhoicas/gestion-erp/internal/domain/entity"
	"github.com/jhoicas/gestion-erp/internal/domain/repository"
)

var _ repository.InventoryRepository = (*InventoryRepo)(nil)

// InventoryRepo implementación de InventoryRepository sobre PostgreSQL
// (sesiones de conteo físico y sus ítems, usable con pool o tx).
type InventoryRepo struct {
	q Querier
}

// NewInventoryRepository construye el adaptador. Pasar pool o tx (Querier).
func NewInventoryRepository(q Querier) *InventoryRepo {
	return &InventoryRepo{q: q}
}

// Create persiste una nueva sesión de inventario.
func (r *InventoryRepo) Create(inventory *entity.Inventory) error {
	query := `
		INSERT INTO inventories (id, date, note, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.q.Exec(context.Background(), query,
		inventory.ID, inventory.Date, inventory.Note, inventory.Status,
		inventory.CreatedAt, inventory.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert inventory: %w", err)
	}
	return nil
}

// GetByID obtiene una sesión por ID.
func (r *InventoryRepo) GetByID(id string) (*entity.Inventory, error) {
	query := `
		SELECT id, date, note, status, created_at, updated_at
		FROM inventories WHERE id = $1`
	return r.queryOne(query, id)
}

// GetForUpdate obtiene la sesión y bloquea la fila (SELECT FOR UPDATE)
// para serializar finalize/cancel contra mutaciones concurrentes.
func (r *InventoryRepo) GetForUpdate(id string) (*entity.Inventory, error) {
	query := `
		SELECT id, date, note, status, created_at, updated_at
		FROM inventories WHERE id = $1
		FOR UPDATE`
	return r.queryOne(query, id)
}

// List lista sesiones con paginación, de la más reciente a la más antigua.
func (r *InventoryRepo) List(limit, offset int) ([]*entity.Inventory, error) {
	query := `
		SELECT id, date, note, status, created_at, updated_at
		FROM inventories ORDER BY date DESC, created_at DESC LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list inventories: %w", err)
	}
	defer rows.Close()
	var list []*entity.Inventory
	for rows.Next() {
		var inv entity.Inventory
		if err := rows.Scan(&inv.ID, &inv.Date, &inv.Note, &inv.Status, &inv.CreatedAt, &inv.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan inventory: %w", err)
		}
		list = append(list, &inv)
	}
	return list, rows.Err()
}

// UpdateStatus cambia el estado de la sesión.
func (r *InventoryRepo) UpdateStatus(id, status string) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE inventories SET status = $2, updated_at = now() WHERE id = $1`,
		id, status,
	)
	if err != nil {
		return fmt.Errorf("update inventory status: %w", err)
	}
	return nil
}

// AddItem inserta un conteo. El constraint único (inventory_id, product_id)
// garantiza un ítem por producto por sesión.
func (r *InventoryRepo) AddItem(item *entity.InventoryItem) error {
	query := `
		INSERT INTO inventory_items (id, inventory_id, product_id, quantity_system, quantity_counted, difference, note, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(context.Background(), query,
		item.ID, item.InventoryID, item.ProductID, item.QuantitySystem,
		item.QuantityCounted, item.Difference, item.Note, item.CreatedAt, item.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert inventory item: %w", err)
	}
	return nil
}

// GetItem obtiene un ítem por sesión e ID.
func (r *InventoryRepo) GetItem(inventoryID, itemID string) (*entity.InventoryItem, error) {
	query := `
		SELECT id, inventory_id, product_id, quantity_system, quantity_counted, difference, note, created_at, updated_at
		FROM inventory_items WHERE inventory_id = $1 AND id = $2`
	return r.queryOneItem(query, inventoryID, itemID)
}

// GetItemByProduct obtiene el ítem de un producto dentro de una sesión.
func (r *InventoryRepo) GetItemByProduct(inventoryID, productID string) (*entity.InventoryItem, error) {
	query := `
		SELECT id, inventory_id, product_id, quantity_system, quantity_counted, difference, note, created_at, updated_at
		FROM inventory_items WHERE inventory_id = $1 AND product_id = $2`
	return r.queryOneItem(query, inventoryID, productID)
}

// ListItems lista los ítems de una sesión en orden de inserción.
func (r *InventoryRepo) ListItems(inventoryID string) ([]*entity.InventoryItem, error) {
	query := `
		SELECT id, inventory_id, product_id, quantity_system, quantity_counted, difference, note, created_at, updated_at
		FROM inventory_items WHERE inventory_id = $1 ORDER BY created_at`
	rows, err := r.q.Query(context.Background(), query, inventoryID)
	if err != nil {
		return nil, fmt.Errorf("list inventory items: %w", err)
	}
	defer rows.Close()
	var list []*entity.InventoryItem
	for rows.Next() {
		var it entity.InventoryItem
		if err := rows.Scan(&it.ID, &it.InventoryID, &it.ProductID, &it.QuantitySystem,
			&it.QuantityCounted, &it.Difference, &it.Note, &it.CreatedAt, &it.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan inventory item: %w", err)
		}
		list = append(list, &it)
	}
	return list, rows.Err()
}

// UpdateItem actualiza el conteo de un ítem. quantity_system no cambia:
// es el snapshot tomado al agregar el ítem.
func (r *InventoryRepo) UpdateItem(item *entity.InventoryItem) error {
	query := `
		UPDATE inventory_items SET quantity_counted = $2, difference = $3, note = $4, updated_at = $5
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		item.ID, item.QuantityCounted, item.Difference, item.Note, item.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update inventory item: %w", err)
	}
	return nil
}

func (r *InventoryRepo) queryOne(query string, args ...any) (*entity.Inventory, error) {
	var inv entity.Inventory
	err := r.q.QueryRow(context.Background(), query, args...).Scan(
		&inv.ID, &inv.Date, &inv.Note, &inv.Status, &inv.CreatedAt, &inv.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get inventory: %w", err)
	}
	return &inv, nil
}

func (r *InventoryRepo) queryOneItem(query string, args ...any) (*entity.InventoryItem, error) {
	var it entity.InventoryItem
	err := r.q.QueryRow(context.Background(), query, args...).Scan(
		&it.ID, &it.InventoryID, &it.ProductID, &it.QuantitySystem,
		&it.QuantityCounted, &it.Difference, &it.Note, &it.CreatedAt, &it.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get inventory item: %w", err)
	}
	return &it, nil
}
