package inventory

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/gestion-erp/internal/application/dto"
	"github.com/jhoicas/gestion-erp/internal/domain"
	"github.com/jhoicas/gestion-erp/internal/domain/entity"
)

func newMovementFixture(initialStock int64) (*MovementUseCase, *memStore) {
	store := newMemStore()
	store.products["p1"] = entity.Product{
		ID:             "p1",
		Name:           "Arroz 5kg",
		SKU:            "ARZ-5",
		QuantityOnHand: decimal.NewFromInt(initialStock),
		CreatedAt:      time.Now(),
		UpdatedAt:      time.Now(),
	}
	uc := NewMovementUseCase(&fakeTxRunner{store: store}, &fakeMovementRepo{store: store})
	return uc, store
}

func qty(n int64) *decimal.Decimal {
	d := decimal.NewFromInt(n)
	return &d
}

func TestRegisterEntry_SumaStockYApendizaLedger(t *testing.T) {
	uc, store := newMovementFixture(100)

	out, err := uc.RegisterEntry(context.Background(), dto.RegisterMovementRequest{
		ProductID: "p1", Quantity: qty(20), Note: "compra proveedor",
	})
	require.NoError(t, err)

	assert.Equal(t, entity.MovementTypeEntry, out.Type)
	assert.True(t, out.Quantity.Equal(decimal.NewFromInt(20)))
	assert.True(t, out.QuantityBefore.Equal(decimal.NewFromInt(100)))
	assert.True(t, out.QuantityAfter.Equal(decimal.NewFromInt(120)))
	assert.True(t, store.products["p1"].QuantityOnHand.Equal(decimal.NewFromInt(120)))
	assert.Len(t, store.movements, 1)
}

func TestRegisterSaleExit_DescuentaStock(t *testing.T) {
	uc, store := newMovementFixture(120)

	out, err := uc.RegisterSaleExit(context.Background(), dto.RegisterMovementRequest{
		ProductID: "p1", Quantity: qty(50),
	})
	require.NoError(t, err)

	assert.Equal(t, entity.MovementTypeExitSale, out.Type)
	assert.True(t, out.QuantityAfter.Equal(decimal.NewFromInt(70)))
	assert.True(t, store.products["p1"].QuantityOnHand.Equal(decimal.NewFromInt(70)))
}

func TestRegisterSaleExit_StockInsuficienteNoCambiaNada(t *testing.T) {
	uc, store := newMovementFixture(70)

	_, err := uc.RegisterSaleExit(context.Background(), dto.RegisterMovementRequest{
		ProductID: "p1", Quantity: qty(80),
	})
	require.ErrorIs(t, err, domain.ErrInsufficientStock)

	// El rollback deja stock y libro mayor intactos.
	assert.True(t, store.products["p1"].QuantityOnHand.Equal(decimal.NewFromInt(70)))
	assert.Empty(t, store.movements)
}

func TestRegisterLossExit_MismasReglasQueVenta(t *testing.T) {
	uc, store := newMovementFixture(10)

	out, err := uc.RegisterLossExit(context.Background(), dto.RegisterMovementRequest{
		ProductID: "p1", Quantity: qty(3), Note: "merma",
	})
	require.NoError(t, err)
	assert.Equal(t, entity.MovementTypeExitLoss, out.Type)
	assert.True(t, store.products["p1"].QuantityOnHand.Equal(decimal.NewFromInt(7)))

	_, err = uc.RegisterLossExit(context.Background(), dto.RegisterMovementRequest{
		ProductID: "p1", Quantity: qty(8),
	})
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)
}

func TestRegisterAdjustment_FijaCantidadObjetivo(t *testing.T) {
	uc, store := newMovementFixture(70)

	out, err := uc.RegisterAdjustment(context.Background(), dto.RegisterMovementRequest{
		ProductID: "p1", Quantity: qty(65), Note: "conteo parcial",
	})
	require.NoError(t, err)

	assert.Equal(t, entity.MovementTypeAdjustment, out.Type)
	// La magnitud es |objetivo - anterior|, la dirección queda en before/after.
	assert.True(t, out.Quantity.Equal(decimal.NewFromInt(5)))
	assert.True(t, out.QuantityBefore.Equal(decimal.NewFromInt(70)))
	assert.True(t, out.QuantityAfter.Equal(decimal.NewFromInt(65)))
	assert.True(t, store.products["p1"].QuantityOnHand.Equal(decimal.NewFromInt(65)))
}

func TestRegisterAdjustment_ObjetivoPuedeSerCero(t *testing.T) {
	uc, store := newMovementFixture(12)

	out, err := uc.RegisterAdjustment(context.Background(), dto.RegisterMovementRequest{
		ProductID: "p1", Quantity: qty(0),
	})
	require.NoError(t, err)
	assert.True(t, out.QuantityAfter.IsZero())
	assert.True(t, out.Quantity.Equal(decimal.NewFromInt(12)))
	assert.True(t, store.products["p1"].QuantityOnHand.IsZero())
}

func TestRegisterAdjustment_ObjetivoNegativoRechazado(t *testing.T) {
	uc, _ := newMovementFixture(12)

	_, err := uc.RegisterAdjustment(context.Background(), dto.RegisterMovementRequest{
		ProductID: "p1", Quantity: qty(-1),
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestRegister_CantidadInvalida(t *testing.T) {
	uc, _ := newMovementFixture(100)

	cases := []dto.RegisterMovementRequest{
		{ProductID: "p1"},                     // sin cantidad
		{ProductID: "p1", Quantity: qty(0)},   // cero
		{ProductID: "p1", Quantity: qty(-5)},  // negativa
		{ProductID: "", Quantity: qty(10)},    // sin producto
	}
	for _, in := range cases {
		_, err := uc.RegisterEntry(context.Background(), in)
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	}
}

func TestRegister_ProductoInexistente(t *testing.T) {
	uc, _ := newMovementFixture(100)

	_, err := uc.RegisterEntry(context.Background(), dto.RegisterMovementRequest{
		ProductID: "no-existe", Quantity: qty(10),
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// Secuencia completa: 100 → +20 → −50 → (falla −80) → ajuste a 65.
// El libro mayor encadena: quantity_after de cada entrada es el
// quantity_before de la siguiente, y la salida fallida no deja rastro.
func TestRegister_SecuenciaEncadenaLedger(t *testing.T) {
	uc, store := newMovementFixture(100)
	ctx := context.Background()

	_, err := uc.RegisterEntry(ctx, dto.RegisterMovementRequest{ProductID: "p1", Quantity: qty(20)})
	require.NoError(t, err)
	_, err = uc.RegisterSaleExit(ctx, dto.RegisterMovementRequest{ProductID: "p1", Quantity: qty(50)})
	require.NoError(t, err)
	_, err = uc.RegisterSaleExit(ctx, dto.RegisterMovementRequest{ProductID: "p1", Quantity: qty(80)})
	require.ErrorIs(t, err, domain.ErrInsufficientStock)
	_, err = uc.RegisterAdjustment(ctx, dto.RegisterMovementRequest{ProductID: "p1", Quantity: qty(65)})
	require.NoError(t, err)

	require.Len(t, store.movements, 3)
	for i := 1; i < len(store.movements); i++ {
		assert.True(t, store.movements[i].QuantityBefore.Equal(store.movements[i-1].QuantityAfter),
			"movimiento %d no encadena con el anterior", i)
	}
	assert.True(t, store.products["p1"].QuantityOnHand.Equal(decimal.NewFromInt(65)))
}

func TestList_FiltraPorProducto(t *testing.T) {
	uc, store := newMovementFixture(100)
	store.products["p2"] = entity.Product{ID: "p2", SKU: "B", QuantityOnHand: decimal.NewFromInt(5)}
	ctx := context.Background()

	_, err := uc.RegisterEntry(ctx, dto.RegisterMovementRequest{ProductID: "p1", Quantity: qty(1)})
	require.NoError(t, err)
	_, err = uc.RegisterEntry(ctx, dto.RegisterMovementRequest{ProductID: "p2", Quantity: qty(2)})
	require.NoError(t, err)

	out, err := uc.List("p2", 20, 0)
	require.NoError(t, err)
	require.Len(t, out.Items, 1)
	assert.Equal(t, "p2", out.Items[0].ProductID)
}
