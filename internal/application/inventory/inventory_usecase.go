package inventory

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/gestion-erp/internal/application/dto"
	"github.com/jhoicas/gestion-erp/internal/domain"
	"github.com/jhoicas/gestion-erp/internal/domain/entity"
	"github.com/jhoicas/gestion-erp/internal/domain/repository"
)

const dateLayout = "2006-01-02"

// InventoryUseCase maneja las sesiones de conteo físico: alta, carga y
// corrección de ítems, cancelación y cierre. El cierre (Finalize) es la
// única operación que toca stock y corre completa dentro de una transacción.
type InventoryUseCase struct {
	txRunner      TxRunner
	inventoryRepo repository.InventoryRepository
	productRepo   repository.ProductRepository
	reportGen     ReportGenerator
}

// NewInventoryUseCase construye el caso de uso. reportGen puede ser nil si
// el reporte PDF no está habilitado.
func NewInventoryUseCase(
	txRunner TxRunner,
	inventoryRepo repository.InventoryRepository,
	productRepo repository.ProductRepository,
	reportGen ReportGenerator,
) *InventoryUseCase {
	return &InventoryUseCase{
		txRunner:      txRunner,
		inventoryRepo: inventoryRepo,
		productRepo:   productRepo,
		reportGen:     reportGen,
	}
}

// Create abre una sesión en IN_PROGRESS. La fecha es obligatoria.
func (uc *InventoryUseCase) Create(in dto.CreateInventoryRequest) (*dto.InventoryResponse, error) {
	if in.Date == "" {
		return nil, domain.ErrInvalidInput
	}
	date, err := time.Parse(dateLayout, in.Date)
	if err != nil {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	inv := &entity.Inventory{
		ID:        uuid.New().String(),
		Date:      date,
		Note:      in.Note,
		Status:    entity.InventoryStatusInProgress,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.inventoryRepo.Create(inv); err != nil {
		return nil, err
	}
	return inventoryToResponse(inv, nil), nil
}

// List lista sesiones con paginación.
func (uc *InventoryUseCase) List(limit, offset int) (*dto.InventoryListResponse, error) {
	list, err := uc.inventoryRepo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.InventoryResponse, 0, len(list))
	for _, inv := range list {
		items = append(items, *inventoryToResponse(inv, nil))
	}
	return &dto.InventoryListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// GetByID devuelve la sesión con sus ítems.
func (uc *InventoryUseCase) GetByID(id string) (*dto.InventoryResponse, error) {
	inv, err := uc.inventoryRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if inv == nil {
		return nil, domain.ErrNotFound
	}
	items, err := uc.inventoryRepo.ListItems(id)
	if err != nil {
		return nil, err
	}
	return inventoryToResponse(inv, items), nil
}

// AddItem agrega el conteo de un producto a una sesión activa. El snapshot
// quantity_system se toma del stock del producto en ESTE momento y no se
// vuelve a leer: la diferencia siempre se calcula contra él.
func (uc *InventoryUseCase) AddItem(inventoryID string, in dto.AddInventoryItemRequest) (*dto.InventoryItemResponse, error) {
	if in.ProductID == "" || in.QuantityCounted == nil {
		return nil, domain.ErrInvalidInput
	}

	inv, err := uc.inventoryRepo.GetByID(inventoryID)
	if err != nil {
		return nil, err
	}
	if inv == nil {
		return nil, domain.ErrNotFound
	}
	if !inv.Active() {
		return nil, domain.ErrInventoryNotActive
	}

	product, err := uc.productRepo.GetByID(in.ProductID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}

	existing, err := uc.inventoryRepo.GetItemByProduct(inventoryID, in.ProductID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDuplicate
	}

	now := time.Now()
	item := &entity.InventoryItem{
		ID:              uuid.New().String(),
		InventoryID:     inventoryID,
		ProductID:       in.ProductID,
		QuantitySystem:  product.QuantityOnHand,
		QuantityCounted: *in.QuantityCounted,
		Difference:      in.QuantityCounted.Sub(product.QuantityOnHand),
		Note:            in.Note,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	if err := uc.inventoryRepo.AddItem(item); err != nil {
		return nil, err
	}
	return itemToResponse(item), nil
}

// UpdateItem corrige el conteo de un ítem mientras la sesión siga activa.
// La diferencia se recalcula contra el snapshot guardado, no contra el
// stock vivo del producto.
func (uc *InventoryUseCase) UpdateItem(inventoryID, itemID string, in dto.UpdateInventoryItemRequest) (*dto.InventoryItemResponse, error) {
	if in.QuantityCounted == nil {
		return nil, domain.ErrInvalidInput
	}

	inv, err := uc.inventoryRepo.GetByID(inventoryID)
	if err != nil {
		return nil, err
	}
	if inv == nil {
		return nil, domain.ErrNotFound
	}
	if !inv.Active() {
		return nil, domain.ErrInventoryNotActive
	}

	item, err := uc.inventoryRepo.GetItem(inventoryID, itemID)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, domain.ErrNotFound
	}

	item.QuantityCounted = *in.QuantityCounted
	item.Difference = in.QuantityCounted.Sub(item.QuantitySystem)
	item.Note = in.Note
	item.UpdatedAt = time.Now()
	if err := uc.inventoryRepo.UpdateItem(item); err != nil {
		return nil, err
	}
	return itemToResponse(item), nil
}

// Cancel pasa la sesión a CANCELLED sin tocar stock.
func (uc *InventoryUseCase) Cancel(id string) (*dto.InventoryResponse, error) {
	inv, err := uc.inventoryRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if inv == nil {
		return nil, domain.ErrNotFound
	}
	if !inv.Active() {
		return nil, domain.ErrInventoryNotActive
	}
	if err := uc.inventoryRepo.UpdateStatus(id, entity.InventoryStatusCancelled); err != nil {
		return nil, err
	}
	inv.Status = entity.InventoryStatusCancelled
	return inventoryToResponse(inv, nil), nil
}

// Finalize cierra la sesión. Con applyAdjustments, cada ítem con diferencia
// distinta de cero fija el stock del producto en la cantidad contada y deja
// un AJUSTE en el libro mayor. Todos los ajustes más la transición a DONE
// ocurren en una sola transacción: cualquier falla revierte todo. Los ítems
// sin diferencia se saltan.
func (uc *InventoryUseCase) Finalize(ctx context.Context, id string, applyAdjustments bool) (*dto.InventoryResponse, error) {
	var (
		result *entity.Inventory
		items  []*entity.InventoryItem
	)

	err := uc.txRunner.Run(ctx, func(
		productRepo repository.ProductRepository,
		movementRepo repository.StockMovementRepository,
		inventoryRepo repository.InventoryRepository,
	) error {
		inv, err := inventoryRepo.GetForUpdate(id)
		if err != nil {
			return err
		}
		if inv == nil {
			return domain.ErrNotFound
		}
		if !inv.Active() {
			return domain.ErrInventoryNotActive
		}

		items, err = inventoryRepo.ListItems(id)
		if err != nil {
			return err
		}

		if applyAdjustments {
			for _, item := range items {
				if item.Difference.IsZero() {
					continue
				}
				// Re-bloquea la fila del producto dentro de la misma tx
				// antes de escribir.
				product, err := productRepo.GetForUpdate(item.ProductID)
				if err != nil {
					return err
				}
				if product == nil {
					return domain.ErrNotFound
				}
				if err := productRepo.UpdateQuantity(item.ProductID, item.QuantityCounted); err != nil {
					return err
				}
				mov := &entity.StockMovement{
					ID:             uuid.New().String(),
					ProductID:      item.ProductID,
					Type:           entity.MovementTypeAdjustment,
					Quantity:       item.Difference.Abs(),
					QuantityBefore: item.QuantitySystem,
					QuantityAfter:  item.QuantityCounted,
					Note:           fmt.Sprintf("Automatic adjustment from inventory #%s", inv.ID),
					CreatedAt:      time.Now(),
				}
				if err := movementRepo.Create(mov); err != nil {
					return err
				}
			}
		}

		if err := inventoryRepo.UpdateStatus(id, entity.InventoryStatusDone); err != nil {
			return err
		}
		inv.Status = entity.InventoryStatusDone
		result = inv
		return nil
	})
	if err != nil {
		return nil, err
	}
	return inventoryToResponse(result, items), nil
}

// Report genera el PDF de una sesión concluida (DONE).
func (uc *InventoryUseCase) Report(id string) ([]byte, error) {
	if uc.reportGen == nil {
		return nil, domain.ErrConflict
	}
	inv, err := uc.inventoryRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if inv == nil {
		return nil, domain.ErrNotFound
	}
	if inv.Status != entity.InventoryStatusDone {
		return nil, domain.ErrConflict
	}
	items, err := uc.inventoryRepo.ListItems(id)
	if err != nil {
		return nil, err
	}

	lines := make([]ReportItem, 0, len(items))
	for _, item := range items {
		line := ReportItem{
			QuantitySystem:  item.QuantitySystem,
			QuantityCounted: item.QuantityCounted,
			Difference:      item.Difference,
			Note:            item.Note,
		}
		if product, err := uc.productRepo.GetByID(item.ProductID); err == nil && product != nil {
			line.ProductName = product.Name
			line.SKU = product.SKU
			line.UnitMeasure = product.UnitMeasure
		}
		lines = append(lines, line)
	}
	return uc.reportGen.GenerateInventoryReport(inv, lines)
}

func inventoryToResponse(inv *entity.Inventory, items []*entity.InventoryItem) *dto.InventoryResponse {
	if inv == nil {
		return nil
	}
	resp := &dto.InventoryResponse{
		ID:        inv.ID,
		Date:      inv.Date.Format(dateLayout),
		Note:      inv.Note,
		Status:    inv.Status,
		CreatedAt: inv.CreatedAt,
		UpdatedAt: inv.UpdatedAt,
	}
	for _, item := range items {
		resp.Items = append(resp.Items, *itemToResponse(item))
	}
	return resp
}

func itemToResponse(item *entity.InventoryItem) *dto.InventoryItemResponse {
	if item == nil {
		return nil
	}
	return &dto.InventoryItemResponse{
		ID:              item.ID,
		InventoryID:     item.InventoryID,
		ProductID:       item.ProductID,
		QuantitySystem:  item.QuantitySystem,
		QuantityCounted: item.QuantityCounted,
		Difference:      item.Difference,
		Note:            item.Note,
		CreatedAt:       item.CreatedAt,
		UpdatedAt:       item.UpdatedAt,
	}
}
