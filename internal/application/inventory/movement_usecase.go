package inventory

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/gestion-erp/internal/application/dto"
	"github.com/jhoicas/gestion-erp/internal/domain"
	"github.com/jhoicas/gestion-erp/internal/domain/entity"
	"github.com/jhoicas/gestion-erp/internal/domain/repository"
)

// MovementUseCase registra movimientos de stock de forma transaccional
// (ENTRY, EXIT_SALE, EXIT_LOSS, ADJUSTMENT) con bloqueo de fila
// (SELECT FOR UPDATE) y Commit/Rollback. Cada registro muta
// products.quantity_on_hand y apendiza una entrada al libro mayor en la
// misma transacción: ambos o ninguno.
type MovementUseCase struct {
	txRunner     TxRunner
	movementRepo repository.StockMovementRepository
}

// NewMovementUseCase construye el caso de uso.
func NewMovementUseCase(txRunner TxRunner, movementRepo repository.StockMovementRepository) *MovementUseCase {
	return &MovementUseCase{txRunner: txRunner, movementRepo: movementRepo}
}

// RegisterEntry suma stock. Quantity obligatoria y > 0.
func (uc *MovementUseCase) RegisterEntry(ctx context.Context, in dto.RegisterMovementRequest) (*dto.StockMovementResponse, error) {
	if err := validatePositive(in); err != nil {
		return nil, err
	}
	return uc.register(ctx, in.ProductID, in.Note, func(before decimal.Decimal) (decimal.Decimal, decimal.Decimal, string, error) {
		return before.Add(*in.Quantity), *in.Quantity, entity.MovementTypeEntry, nil
	})
}

// RegisterSaleExit descuenta stock por venta. Falla con ErrInsufficientStock
// si el stock actual no alcanza.
func (uc *MovementUseCase) RegisterSaleExit(ctx context.Context, in dto.RegisterMovementRequest) (*dto.StockMovementResponse, error) {
	return uc.registerExit(ctx, in, entity.MovementTypeExitSale)
}

// RegisterLossExit descuenta stock por pérdida/merma. Mismas reglas que la
// salida por venta.
func (uc *MovementUseCase) RegisterLossExit(ctx context.Context, in dto.RegisterMovementRequest) (*dto.StockMovementResponse, error) {
	return uc.registerExit(ctx, in, entity.MovementTypeExitLoss)
}

// RegisterAdjustment fija el stock en la cantidad objetivo recibida.
// El libro mayor guarda |objetivo - anterior| como magnitud; la dirección
// queda solo en quantity_before/quantity_after.
func (uc *MovementUseCase) RegisterAdjustment(ctx context.Context, in dto.RegisterMovementRequest) (*dto.StockMovementResponse, error) {
	if in.ProductID == "" || in.Quantity == nil || in.Quantity.IsNegative() {
		return nil, domain.ErrInvalidInput
	}
	target := *in.Quantity
	return uc.register(ctx, in.ProductID, in.Note, func(before decimal.Decimal) (decimal.Decimal, decimal.Decimal, string, error) {
		return target, target.Sub(before).Abs(), entity.MovementTypeAdjustment, nil
	})
}

// List devuelve el libro mayor, opcionalmente filtrado por producto.
func (uc *MovementUseCase) List(productID string, limit, offset int) (*dto.StockMovementListResponse, error) {
	list, err := uc.movementRepo.List(productID, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.StockMovementResponse, 0, len(list))
	for _, m := range list {
		items = append(items, *movementToResponse(m))
	}
	return &dto.StockMovementListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

func (uc *MovementUseCase) registerExit(ctx context.Context, in dto.RegisterMovementRequest, movementType string) (*dto.StockMovementResponse, error) {
	if err := validatePositive(in); err != nil {
		return nil, err
	}
	return uc.register(ctx, in.ProductID, in.Note, func(before decimal.Decimal) (decimal.Decimal, decimal.Decimal, string, error) {
		if before.LessThan(*in.Quantity) {
			return decimal.Zero, decimal.Zero, "", domain.ErrInsufficientStock
		}
		return before.Sub(*in.Quantity), *in.Quantity, movementType, nil
	})
}

// register abre la transacción, bloquea la fila del producto, aplica la regla
// del tipo y persiste stock + entrada del libro mayor. Cualquier error dentro
// de fn revierte ambas escrituras.
func (uc *MovementUseCase) register(
	ctx context.Context,
	productID, note string,
	rule func(before decimal.Decimal) (after, magnitude decimal.Decimal, movementType string, err error),
) (*dto.StockMovementResponse, error) {
	var created *entity.StockMovement

	err := uc.txRunner.Run(ctx, func(
		productRepo repository.ProductRepository,
		movementRepo repository.StockMovementRepository,
		_ repository.InventoryRepository,
	) error {
		product, err := productRepo.GetForUpdate(productID)
		if err != nil {
			return err
		}
		if product == nil {
			return domain.ErrNotFound
		}

		before := product.QuantityOnHand
		after, magnitude, movementType, err := rule(before)
		if err != nil {
			return err
		}

		if err := productRepo.UpdateQuantity(productID, after); err != nil {
			return err
		}

		mov := &entity.StockMovement{
			ID:             uuid.New().String(),
			ProductID:      productID,
			Type:           movementType,
			Quantity:       magnitude,
			QuantityBefore: before,
			QuantityAfter:  after,
			Note:           note,
			CreatedAt:      time.Now(),
		}
		if err := movementRepo.Create(mov); err != nil {
			return err
		}
		created = mov
		return nil
	})
	if err != nil {
		return nil, err
	}
	return movementToResponse(created), nil
}

func validatePositive(in dto.RegisterMovementRequest) error {
	if in.ProductID == "" || in.Quantity == nil || !in.Quantity.IsPositive() {
		return domain.ErrInvalidInput
	}
	return nil
}

func movementToResponse(m *entity.StockMovement) *dto.StockMovementResponse {
	if m == nil {
		return nil
	}
	return &dto.StockMovementResponse{
		ID:             m.ID,
		ProductID:      m.ProductID,
		Type:           m.Type,
		Quantity:       m.Quantity,
		QuantityBefore: m.QuantityBefore,
		QuantityAfter:  m.QuantityAfter,
		Note:           m.Note,
		CreatedAt:      m.CreatedAt,
	}
}
