package inventory_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/lager-api/internal/application/dto"
	"github.com/jhoicas/lager-api/internal/application/inventory"
	"github.com/jhoicas/lager-api/internal/application/usecase"
	"github.com/jhoicas/lager-api/internal/domain"
	"github.com/jhoicas/lager-api/internal/infrastructure/kvstore"
	"github.com/jhoicas/lager-api/internal/infrastructure/memory"
)

func ptr[T any](v T) *T { return &v }

var fixedNow = time.Date(2026, 10, 18, 12, 0, 0, 0, time.UTC)

func newInventory(t *testing.T, withCategories bool) *inventory.InventoryUseCase {
	t.Helper()
	kv := memory.NewKVStore()
	cats := kvstore.NewCategoryRepository(kv)
	if withCategories {
		require.NoError(t, cats.Save(context.Background(), usecase.SampleCategories()))
	}
	return inventory.NewInventoryUseCase(kvstore.NewInventoryRepository(kv), cats).
		WithClock(func() time.Time { return fixedNow })
}

func TestInventoryAdd_ValoresPorDefecto(t *testing.T) {
	uc := newInventory(t, true)

	res, err := uc.Add(context.Background(), dto.CreateInventoryItemRequest{Name: "Ketchup"})
	require.NoError(t, err)
	assert.NotEmpty(t, res.ID)
	assert.Equal(t, "1", res.Category, "primera categoría")
	assert.Equal(t, "pieces", res.Unit)
	assert.Equal(t, "2026-10-18", res.PurchaseDate)
	assert.Zero(t, res.WarehouseQty)
	assert.Zero(t, res.RestaurantQty)
	assert.Zero(t, res.ReorderLevel)
	assert.Nil(t, res.Cost)
	assert.True(t, res.LastEdited.Equal(fixedNow))
	assert.True(t, res.LowStock, "0 <= 0")
}

func TestInventoryAdd_SinCategoriasQuedaVacia(t *testing.T) {
	uc := newInventory(t, false)
	res, err := uc.Add(context.Background(), dto.CreateInventoryItemRequest{Name: "Ketchup"})
	require.NoError(t, err)
	assert.Equal(t, "", res.Category)
}

func TestInventoryAdd_Rechazos(t *testing.T) {
	uc := newInventory(t, true)
	ctx := context.Background()

	cases := []dto.CreateInventoryItemRequest{
		{Name: ""},
		{Name: "   "},
		{Name: "X", WarehouseQty: ptr(-1)},
		{Name: "X", Cost: ptr(decimal.NewFromInt(-2))},
		{Name: "X", ExpiryDate: "18.10.2026"},
	}
	for _, in := range cases {
		_, err := uc.Add(ctx, in)
		assert.ErrorIs(t, err, domain.ErrValidation, "%+v", in)
	}
	list, err := uc.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestInventoryUpdate_FusionYLastEditedCreciente(t *testing.T) {
	uc := newInventory(t, true)
	ctx := context.Background()

	added, err := uc.Add(ctx, dto.CreateInventoryItemRequest{
		Name: "Beef Patties", WarehouseQty: ptr(500), RestaurantQty: ptr(50), ReorderLevel: ptr(100),
		Cost: ptr(decimal.RequireFromString("2.5")),
	})
	require.NoError(t, err)

	updated, err := uc.Update(ctx, added.ID, dto.UpdateInventoryItemRequest{RestaurantQty: ptr(20)})
	require.NoError(t, err)
	require.NotNil(t, updated)
	assert.Equal(t, "Beef Patties", updated.Name)
	assert.Equal(t, 500, updated.WarehouseQty)
	assert.Equal(t, 20, updated.RestaurantQty)
	assert.Equal(t, 520, updated.Total)
	assert.True(t, updated.LastEdited.After(added.LastEdited), "el reloj fijo no impide que avance")

	again, err := uc.Update(ctx, added.ID, dto.UpdateInventoryItemRequest{WarehouseQty: ptr(10)})
	require.NoError(t, err)
	assert.True(t, again.LastEdited.After(updated.LastEdited))
	assert.True(t, again.LowStock, "30 <= 100")
}

func TestInventoryUpdate_NombreVacioNoCambiaNada(t *testing.T) {
	uc := newInventory(t, true)
	ctx := context.Background()
	added, err := uc.Add(ctx, dto.CreateInventoryItemRequest{Name: "Buns"})
	require.NoError(t, err)

	_, err = uc.Update(ctx, added.ID, dto.UpdateInventoryItemRequest{Name: ptr(""), WarehouseQty: ptr(9)})
	assert.ErrorIs(t, err, domain.ErrValidation)

	list, _ := uc.List(ctx)
	require.Len(t, list, 1)
	assert.Equal(t, "Buns", list[0].Name)
	assert.Equal(t, 0, list[0].WarehouseQty)
}

func TestInventoryUpdate_IdInexistente(t *testing.T) {
	uc := newInventory(t, true)
	res, err := uc.Update(context.Background(), "nope", dto.UpdateInventoryItemRequest{Name: ptr("X")})
	require.NoError(t, err)
	assert.Nil(t, res)
}

func TestInventoryRemove_RequiereConfirmacion(t *testing.T) {
	uc := newInventory(t, true)
	ctx := context.Background()
	a, _ := uc.Add(ctx, dto.CreateInventoryItemRequest{Name: "A"})
	b, _ := uc.Add(ctx, dto.CreateInventoryItemRequest{Name: "B"})

	assert.ErrorIs(t, uc.Remove(ctx, a.ID, false), domain.ErrConfirmationRequired)
	list, _ := uc.List(ctx)
	assert.Len(t, list, 2)

	require.NoError(t, uc.Remove(ctx, a.ID, true))
	list, _ = uc.List(ctx)
	require.Len(t, list, 1)
	assert.Equal(t, b.ID, list[0].ID)
}

func TestInventoryByCategory_Y_Summary(t *testing.T) {
	uc := newInventory(t, true)
	ctx := context.Background()
	seeded, err := uc.InitializeSamples(ctx)
	require.NoError(t, err)
	require.True(t, seeded)
	_, err = uc.Add(ctx, dto.CreateInventoryItemRequest{Name: "Cola", Category: "3", WarehouseQty: ptr(5), ReorderLevel: ptr(24)})
	require.NoError(t, err)
	_, err = uc.Add(ctx, dto.CreateInventoryItemRequest{Name: "Huérfano", Category: "borrada"})
	require.NoError(t, err)

	groups, err := uc.ByCategory(ctx)
	require.NoError(t, err)
	require.Len(t, groups, 4)
	assert.Equal(t, "Burger", groups[0].Category.Name)
	assert.Equal(t, 2, groups[0].Count)
	assert.Equal(t, "Beef Patties", groups[0].Items[0].Name)
	assert.Equal(t, 0, groups[1].Count)
	assert.Equal(t, 1, groups[2].Count)

	sum, err := uc.Summary(ctx)
	require.NoError(t, err)
	assert.Equal(t, 4, sum.TotalItems)
	assert.Equal(t, 2, sum.LowStockCount)
	require.Len(t, sum.LowStockAlerts, 2)
	assert.Equal(t, dto.LowStockAlert{ID: sum.LowStockAlerts[0].ID, Name: "Cola", Total: 5, Unit: "pieces"}, sum.LowStockAlerts[0])

	low, err := uc.LowStock(ctx)
	require.NoError(t, err)
	assert.Len(t, low, 2)
}

func TestInventoryInitializeSamples(t *testing.T) {
	uc := newInventory(t, true)
	ctx := context.Background()

	seeded, err := uc.InitializeSamples(ctx)
	require.NoError(t, err)
	assert.True(t, seeded)

	list, err := uc.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "Beef Patties", list[0].Name)
	assert.Equal(t, "2026-11-17", list[0].ExpiryDate)
	assert.Equal(t, "Burger Buns", list[1].Name)
	assert.Equal(t, "2026-11-01", list[1].ExpiryDate)

	seeded, err = uc.InitializeSamples(ctx)
	require.NoError(t, err)
	assert.False(t, seeded)
}
