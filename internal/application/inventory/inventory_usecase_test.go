package inventory

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/gestion-erp/internal/application/dto"
	"github.com/jhoicas/gestion-erp/internal/domain"
	"github.com/jhoicas/gestion-erp/internal/domain/entity"
)

func newInventoryFixture() (*InventoryUseCase, *memStore) {
	store := newMemStore()
	store.products["p1"] = entity.Product{
		ID:             "p1",
		Name:           "Açúcar 1kg",
		SKU:            "ACU-1",
		UnitMeasure:    "UN",
		QuantityOnHand: decimal.NewFromInt(65),
		CreatedAt:      time.Now(),
		UpdatedAt:      time.Now(),
	}
	uc := NewInventoryUseCase(
		&fakeTxRunner{store: store},
		&fakeInventoryRepo{store: store},
		&fakeProductRepo{store: store},
		nil,
	)
	return uc, store
}

func openSession(t *testing.T, uc *InventoryUseCase) string {
	t.Helper()
	out, err := uc.Create(dto.CreateInventoryRequest{Date: "2026-08-28", Note: "conteo mensual"})
	require.NoError(t, err)
	require.Equal(t, entity.InventoryStatusInProgress, out.Status)
	return out.ID
}

func TestCreate_FechaObligatoria(t *testing.T) {
	uc, _ := newInventoryFixture()

	_, err := uc.Create(dto.CreateInventoryRequest{})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.Create(dto.CreateInventoryRequest{Date: "28/08/2026"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestAddItem_TomaSnapshotYCalculaDiferencia(t *testing.T) {
	uc, _ := newInventoryFixture()
	id := openSession(t, uc)

	out, err := uc.AddItem(id, dto.AddInventoryItemRequest{
		ProductID: "p1", QuantityCounted: qty(60),
	})
	require.NoError(t, err)

	assert.True(t, out.QuantitySystem.Equal(decimal.NewFromInt(65)))
	assert.True(t, out.QuantityCounted.Equal(decimal.NewFromInt(60)))
	assert.True(t, out.Difference.Equal(decimal.NewFromInt(-5)))
}

func TestAddItem_ProductoRepetidoRechazado(t *testing.T) {
	uc, _ := newInventoryFixture()
	id := openSession(t, uc)

	_, err := uc.AddItem(id, dto.AddInventoryItemRequest{ProductID: "p1", QuantityCounted: qty(60)})
	require.NoError(t, err)

	_, err = uc.AddItem(id, dto.AddInventoryItemRequest{ProductID: "p1", QuantityCounted: qty(61)})
	assert.ErrorIs(t, err, domain.ErrDuplicate)
}

func TestAddItem_SesionNoActiva(t *testing.T) {
	uc, _ := newInventoryFixture()
	id := openSession(t, uc)

	_, err := uc.Cancel(id)
	require.NoError(t, err)

	_, err = uc.AddItem(id, dto.AddInventoryItemRequest{ProductID: "p1", QuantityCounted: qty(60)})
	assert.ErrorIs(t, err, domain.ErrInventoryNotActive)
}

func TestUpdateItem_RecalculaContraSnapshotGuardado(t *testing.T) {
	uc, store := newInventoryFixture()
	id := openSession(t, uc)

	item, err := uc.AddItem(id, dto.AddInventoryItemRequest{ProductID: "p1", QuantityCounted: qty(60)})
	require.NoError(t, err)

	// El stock vivo cambia después del snapshot; la diferencia sigue
	// calculándose contra las 65 unidades capturadas al agregar el ítem.
	p := store.products["p1"]
	p.QuantityOnHand = decimal.NewFromInt(100)
	store.products["p1"] = p

	out, err := uc.UpdateItem(id, item.ID, dto.UpdateInventoryItemRequest{QuantityCounted: qty(63)})
	require.NoError(t, err)
	assert.True(t, out.QuantitySystem.Equal(decimal.NewFromInt(65)))
	assert.True(t, out.Difference.Equal(decimal.NewFromInt(-2)))
}

func TestCancel_NoTocaStock(t *testing.T) {
	uc, store := newInventoryFixture()
	id := openSession(t, uc)

	_, err := uc.AddItem(id, dto.AddInventoryItemRequest{ProductID: "p1", QuantityCounted: qty(10)})
	require.NoError(t, err)

	out, err := uc.Cancel(id)
	require.NoError(t, err)
	assert.Equal(t, entity.InventoryStatusCancelled, out.Status)
	assert.True(t, store.products["p1"].QuantityOnHand.Equal(decimal.NewFromInt(65)))
	assert.Empty(t, store.movements)
}

func TestCancel_TerminalNoSeReabre(t *testing.T) {
	uc, _ := newInventoryFixture()
	id := openSession(t, uc)

	_, err := uc.Cancel(id)
	require.NoError(t, err)

	_, err = uc.Cancel(id)
	assert.ErrorIs(t, err, domain.ErrInventoryNotActive)
}

func TestFinalize_AplicaAjustesYDejaLedger(t *testing.T) {
	uc, store := newInventoryFixture()
	id := openSession(t, uc)

	_, err := uc.AddItem(id, dto.AddInventoryItemRequest{ProductID: "p1", QuantityCounted: qty(60)})
	require.NoError(t, err)

	out, err := uc.Finalize(context.Background(), id, true)
	require.NoError(t, err)
	assert.Equal(t, entity.InventoryStatusDone, out.Status)

	// Stock fijado en lo contado, con su AJUSTE en el libro mayor.
	assert.True(t, store.products["p1"].QuantityOnHand.Equal(decimal.NewFromInt(60)))
	require.Len(t, store.movements, 1)
	mov := store.movements[0]
	assert.Equal(t, entity.MovementTypeAdjustment, mov.Type)
	assert.True(t, mov.Quantity.Equal(decimal.NewFromInt(5)))
	assert.True(t, mov.QuantityBefore.Equal(decimal.NewFromInt(65)))
	assert.True(t, mov.QuantityAfter.Equal(decimal.NewFromInt(60)))
	assert.Equal(t, fmt.Sprintf("Automatic adjustment from inventory #%s", id), mov.Note)
}

func TestFinalize_SinAplicarAjustes(t *testing.T) {
	uc, store := newInventoryFixture()
	id := openSession(t, uc)

	_, err := uc.AddItem(id, dto.AddInventoryItemRequest{ProductID: "p1", QuantityCounted: qty(60)})
	require.NoError(t, err)

	out, err := uc.Finalize(context.Background(), id, false)
	require.NoError(t, err)
	assert.Equal(t, entity.InventoryStatusDone, out.Status)
	assert.True(t, store.products["p1"].QuantityOnHand.Equal(decimal.NewFromInt(65)))
	assert.Empty(t, store.movements)
}

func TestFinalize_SaltaItemsSinDiferencia(t *testing.T) {
	uc, store := newInventoryFixture()
	id := openSession(t, uc)

	_, err := uc.AddItem(id, dto.AddInventoryItemRequest{ProductID: "p1", QuantityCounted: qty(65)})
	require.NoError(t, err)

	_, err = uc.Finalize(context.Background(), id, true)
	require.NoError(t, err)
	assert.Empty(t, store.movements)
}

func TestFinalize_SesionYaCerrada(t *testing.T) {
	uc, _ := newInventoryFixture()
	id := openSession(t, uc)

	_, err := uc.Finalize(context.Background(), id, false)
	require.NoError(t, err)

	_, err = uc.Finalize(context.Background(), id, true)
	assert.ErrorIs(t, err, domain.ErrInventoryNotActive)
}

func TestFinalize_Inexistente(t *testing.T) {
	uc, _ := newInventoryFixture()

	_, err := uc.Finalize(context.Background(), "no-existe", true)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestReport_SoloSesionesConcluidas(t *testing.T) {
	store := newMemStore()
	store.products["p1"] = entity.Product{ID: "p1", Name: "Café", SKU: "CAF-1", QuantityOnHand: decimal.NewFromInt(8)}
	uc := NewInventoryUseCase(
		&fakeTxRunner{store: store},
		&fakeInventoryRepo{store: store},
		&fakeProductRepo{store: store},
		fakeReportGen{},
	)

	id := openSession(t, uc)
	_, err := uc.Report(id)
	assert.ErrorIs(t, err, domain.ErrConflict)

	_, err = uc.Finalize(context.Background(), id, false)
	require.NoError(t, err)

	out, err := uc.Report(id)
	require.NoError(t, err)
	assert.Equal(t, []byte("pdf"), out)
}

type fakeReportGen struct{}

func (fakeReportGen) GenerateInventoryReport(_ *entity.Inventory, _ []ReportItem) ([]byte, error) {
	return []byte("pdf"), nil
}

func TestGetByID_IncluyeItems(t *testing.T) {
	uc, _ := newInventoryFixture()
	id := openSession(t, uc)

	_, err := uc.AddItem(id, dto.AddInventoryItemRequest{ProductID: "p1", QuantityCounted: qty(60)})
	require.NoError(t, err)

	out, err := uc.GetByID(id)
	require.NoError(t, err)
	require.Len(t, out.Items, 1)
	assert.Equal(t, "p1", out.Items[0].ProductID)
}
