package inventory_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/lager-api/internal/domain/entity"
	"github.com/jhoicas/lager-api/internal/domain/inventory"
)

func ptr[T any](v T) *T { return &v }

func TestComputeLowStock_EjemplosDeReferencia(t *testing.T) {
	patties := entity.InventoryItem{ID: "1", Name: "Beef Patties", WarehouseQty: 500, RestaurantQty: 50, ReorderLevel: 100}
	limite := entity.InventoryItem{ID: "2", Name: "Ketchup", WarehouseQty: 30, RestaurantQty: 20, ReorderLevel: 50}

	low := inventory.ComputeLowStock([]entity.InventoryItem{patties, limite})

	require.Len(t, low, 1, "550 > 100 no es stock bajo; 50 <= 50 sí")
	assert.Equal(t, "2", low[0].ID)
}

func TestComputeLowStock_PreservaOrdenYEsIdempotente(t *testing.T) {
	items := []entity.InventoryItem{
		{ID: "a", WarehouseQty: 0, RestaurantQty: 0, ReorderLevel: 0},
		{ID: "b", WarehouseQty: 10, RestaurantQty: 0, ReorderLevel: 5},
		{ID: "c", WarehouseQty: 1, RestaurantQty: 2, ReorderLevel: 3},
		{ID: "d", WarehouseQty: 4, RestaurantQty: 0, ReorderLevel: 9},
	}

	low := inventory.ComputeLowStock(items)
	ids := make([]string, 0, len(low))
	for _, it := range low {
		ids = append(ids, it.ID)
	}
	assert.Equal(t, []string{"a", "c", "d"}, ids)
	assert.Equal(t, low, inventory.ComputeLowStock(low), "filtrar de nuevo no cambia el resultado")
}

func TestComputeLowStock_ListaVacia(t *testing.T) {
	low := inventory.ComputeLowStock(nil)
	assert.NotNil(t, low)
	assert.Empty(t, low)
}

func TestGroupByCategory_ParticionDeterminista(t *testing.T) {
	cats := []entity.Category{{ID: "2", Name: "Beilagen"}, {ID: "1", Name: "Burger"}, {ID: "3", Name: "Sauces"}}
	items := []entity.InventoryItem{
		{ID: "i1", Category: "1"},
		{ID: "i2", Category: "2"},
		{ID: "i3", Category: "1"},
		{ID: "i4", Category: "borrada"},
	}

	groups := inventory.GroupByCategory(items, cats)

	require.Len(t, groups, 3)
	assert.Equal(t, "2", groups[0].Category.ID, "el orden sigue la lista de categorías")
	assert.Equal(t, "1", groups[1].Category.ID)
	assert.Len(t, groups[0].Items, 1)
	require.Len(t, groups[1].Items, 2)
	assert.Equal(t, "i1", groups[1].Items[0].ID)
	assert.Equal(t, "i3", groups[1].Items[1].ID)
	assert.Empty(t, groups[2].Items)

	seen := 0
	for _, g := range groups {
		for _, it := range g.Items {
			assert.NotEqual(t, "i4", it.ID, "un artículo huérfano no aparece en ningún grupo")
			seen++
		}
	}
	assert.Equal(t, 3, seen, "cada artículo con categoría válida aparece exactamente una vez")
}

func TestMerge_SoloSobrescribeCamposPresentes(t *testing.T) {
	cost := decimal.RequireFromString("2.50")
	prev := entity.InventoryItem{
		ID: "1", Name: "Beef Patties", Category: "1", WarehouseQty: 500, RestaurantQty: 50,
		Unit: "pieces", ReorderLevel: 100, Cost: &cost, ExpiryDate: "2026-11-17",
	}

	merged := inventory.Merge(prev, entity.InventoryItemPatch{
		RestaurantQty: ptr(20),
		ExpiryDate:    ptr(""),
	})

	assert.Equal(t, "Beef Patties", merged.Name)
	assert.Equal(t, 500, merged.WarehouseQty)
	assert.Equal(t, 20, merged.RestaurantQty)
	assert.Equal(t, "", merged.ExpiryDate, "un valor vacío explícito también gana")
	require.NotNil(t, merged.Cost)
	assert.True(t, merged.Cost.Equal(cost))
	assert.Equal(t, 50, prev.RestaurantQty, "el registro previo no se modifica")
}

func TestMerge_CostoNoComparteMemoriaConElPatch(t *testing.T) {
	c := decimal.NewFromFloat(1.25)
	merged := inventory.Merge(entity.InventoryItem{}, entity.InventoryItemPatch{Cost: &c})
	require.NotNil(t, merged.Cost)
	assert.NotSame(t, &c, merged.Cost)
}

func TestTotalValue_IgnoraArticulosSinCosto(t *testing.T) {
	items := []entity.InventoryItem{
		{WarehouseQty: 500, RestaurantQty: 50, Cost: ptr(decimal.RequireFromString("2.5"))},
		{WarehouseQty: 1000, RestaurantQty: 100, Cost: ptr(decimal.RequireFromString("0.5"))},
		{WarehouseQty: 10},
	}
	assert.Equal(t, "1925.00", inventory.TotalValue(items).StringFixed(2))
}
