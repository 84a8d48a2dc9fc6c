package inventory

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/gestion-erp/internal/domain/entity"
	"github.com/jhoicas/gestion-erp/internal/domain/repository"
)

// memStore estado compartido de los repos fake. Las entidades se guardan
// por copia para que las fallas de transacción puedan restaurar el estado.
type memStore struct {
	products    map[string]entity.Product
	movements   []entity.StockMovement
	inventories map[string]entity.Inventory
	items       map[string]entity.InventoryItem
}

func newMemStore() *memStore {
	return &memStore{
		products:    map[string]entity.Product{},
		inventories: map[string]entity.Inventory{},
		items:       map[string]entity.InventoryItem{},
	}
}

func (s *memStore) clone() *memStore {
	c := newMemStore()
	for k, v := range s.products {
		c.products[k] = v
	}
	c.movements = append([]entity.StockMovement(nil), s.movements...)
	for k, v := range s.inventories {
		c.inventories[k] = v
	}
	for k, v := range s.items {
		c.items[k] = v
	}
	return c
}

// fakeTxRunner ejecuta fn sobre el store y restaura el snapshot si falla,
// imitando el Rollback de una transacción real.
type fakeTxRunner struct {
	store *memStore
}

func (r *fakeTxRunner) Run(_ context.Context, fn func(
	productRepo repository.ProductRepository,
	movementRepo repository.StockMovementRepository,
	inventoryRepo repository.InventoryRepository,
) error) error {
	snapshot := r.store.clone()
	err := fn(&fakeProductRepo{store: r.store}, &fakeMovementRepo{store: r.store}, &fakeInventoryRepo{store: r.store})
	if err != nil {
		*r.store = *snapshot
	}
	return err
}

// ── fakeProductRepo ──────────────────────────────────────────────────────────

type fakeProductRepo struct {
	store *memStore
}

var _ repository.ProductRepository = (*fakeProductRepo)(nil)

func (r *fakeProductRepo) Create(p *entity.Product) error {
	r.store.products[p.ID] = *p
	return nil
}

func (r *fakeProductRepo) GetByID(id string) (*entity.Product, error) {
	if p, ok := r.store.products[id]; ok {
		cp := p
		return &cp, nil
	}
	return nil, nil
}

func (r *fakeProductRepo) GetBySKU(sku string) (*entity.Product, error) {
	for _, p := range r.store.products {
		if p.SKU == sku {
			cp := p
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeProductRepo) GetForUpdate(id string) (*entity.Product, error) {
	return r.GetByID(id)
}

func (r *fakeProductRepo) Update(p *entity.Product) error {
	if existing, ok := r.store.products[p.ID]; ok {
		quantity := existing.QuantityOnHand
		cp := *p
		cp.QuantityOnHand = quantity
		r.store.products[p.ID] = cp
	}
	return nil
}

func (r *fakeProductRepo) UpdateQuantity(productID string, quantity decimal.Decimal) error {
	if p, ok := r.store.products[productID]; ok {
		p.QuantityOnHand = quantity
		r.store.products[productID] = p
	}
	return nil
}

func (r *fakeProductRepo) List(_ repository.ProductFilter) ([]*entity.Product, error) {
	var list []*entity.Product
	for _, p := range r.store.products {
		cp := p
		list = append(list, &cp)
	}
	return list, nil
}

func (r *fakeProductRepo) ListBelowMinimum() ([]*entity.Product, error) {
	var list []*entity.Product
	for _, p := range r.store.products {
		if p.QuantityOnHand.LessThan(p.MinQuantity) {
			cp := p
			list = append(list, &cp)
		}
	}
	return list, nil
}

func (r *fakeProductRepo) Delete(id string) error {
	delete(r.store.products, id)
	return nil
}

// ── fakeMovementRepo ─────────────────────────────────────────────────────────

type fakeMovementRepo struct {
	store *memStore
}

var _ repository.StockMovementRepository = (*fakeMovementRepo)(nil)

func (r *fakeMovementRepo) Create(m *entity.StockMovement) error {
	r.store.movements = append(r.store.movements, *m)
	return nil
}

func (r *fakeMovementRepo) List(productID string, limit, offset int) ([]*entity.StockMovement, error) {
	var list []*entity.StockMovement
	for i := len(r.store.movements) - 1; i >= 0; i-- {
		m := r.store.movements[i]
		if productID != "" && m.ProductID != productID {
			continue
		}
		cp := m
		list = append(list, &cp)
	}
	if offset > len(list) {
		offset = len(list)
	}
	list = list[offset:]
	if limit > 0 && limit < len(list) {
		list = list[:limit]
	}
	return list, nil
}

// ── fakeInventoryRepo ────────────────────────────────────────────────────────

type fakeInventoryRepo struct {
	store *memStore
}

var _ repository.InventoryRepository = (*fakeInventoryRepo)(nil)

func (r *fakeInventoryRepo) Create(inv *entity.Inventory) error {
	r.store.inventories[inv.ID] = *inv
	return nil
}

func (r *fakeInventoryRepo) GetByID(id string) (*entity.Inventory, error) {
	if inv, ok := r.store.inventories[id]; ok {
		cp := inv
		return &cp, nil
	}
	return nil, nil
}

func (r *fakeInventoryRepo) GetForUpdate(id string) (*entity.Inventory, error) {
	return r.GetByID(id)
}

func (r *fakeInventoryRepo) List(limit, offset int) ([]*entity.Inventory, error) {
	var list []*entity.Inventory
	for _, inv := range r.store.inventories {
		cp := inv
		list = append(list, &cp)
	}
	return list, nil
}

func (r *fakeInventoryRepo) UpdateStatus(id, status string) error {
	if inv, ok := r.store.inventories[id]; ok {
		inv.Status = status
		r.store.inventories[id] = inv
	}
	return nil
}

func (r *fakeInventoryRepo) AddItem(item *entity.InventoryItem) error {
	r.store.items[item.ID] = *item
	return nil
}

func (r *fakeInventoryRepo) GetItem(inventoryID, itemID string) (*entity.InventoryItem, error) {
	if it, ok := r.store.items[itemID]; ok && it.InventoryID == inventoryID {
		cp := it
		return &cp, nil
	}
	return nil, nil
}

func (r *fakeInventoryRepo) GetItemByProduct(inventoryID, productID string) (*entity.InventoryItem, error) {
	for _, it := range r.store.items {
		if it.InventoryID == inventoryID && it.ProductID == productID {
			cp := it
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeInventoryRepo) ListItems(inventoryID string) ([]*entity.InventoryItem, error) {
	var list []*entity.InventoryItem
	for _, it := range r.store.items {
		if it.InventoryID == inventoryID {
			cp := it
			list = append(list, &cp)
		}
	}
	return list, nil
}

func (r *fakeInventoryRepo) UpdateItem(item *entity.InventoryItem) error {
	r.store.items[item.ID] = *item
	return nil
}
