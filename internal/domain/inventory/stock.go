// Package inventory contiene la lógica de dominio pura sobre el stock: nivel bajo, agrupación
// por categoría, fusión de cambios parciales y valorización.
package inventory

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/lager-api/internal/domain/entity"
)

// ComputeLowStock devuelve los artículos con total <= nivel de reorden, en el orden original.
func ComputeLowStock(items []entity.InventoryItem) []entity.InventoryItem {
	low := make([]entity.InventoryItem, 0)
	for _, it := range items {
		if it.IsLowStock() {
			low = append(low, it)
		}
	}
	return low
}

// CategoryGroup artículos de una categoría.
type CategoryGroup struct {
	Category entity.Category
	Items    []entity.InventoryItem
}

// GroupByCategory arma un grupo por categoría en el orden de la lista de categorías.
// Los artículos con una categoría inexistente no aparecen en ningún grupo.
func GroupByCategory(items []entity.InventoryItem, categories []entity.Category) []CategoryGroup {
	groups := make([]CategoryGroup, 0, len(categories))
	for _, cat := range categories {
		g := CategoryGroup{Category: cat, Items: make([]entity.InventoryItem, 0)}
		for _, it := range items {
			if it.Category == cat.ID {
				g.Items = append(g.Items, it)
			}
		}
		groups = append(groups, g)
	}
	return groups
}

// Merge aplica el patch sobre item: cada campo no nil del patch reemplaza al previo.
// No toca ID ni LastEdited.
func Merge(item entity.InventoryItem, patch entity.InventoryItemPatch) entity.InventoryItem {
	if patch.Name != nil {
		item.Name = *patch.Name
	}
	if patch.Category != nil {
		item.Category = *patch.Category
	}
	if patch.WarehouseQty != nil {
		item.WarehouseQty = *patch.WarehouseQty
	}
	if patch.RestaurantQty != nil {
		item.RestaurantQty = *patch.RestaurantQty
	}
	if patch.Unit != nil {
		item.Unit = *patch.Unit
	}
	if patch.ReorderLevel != nil {
		item.ReorderLevel = *patch.ReorderLevel
	}
	if patch.Cost != nil {
		c := *patch.Cost
		item.Cost = &c
	}
	if patch.PurchaseDate != nil {
		item.PurchaseDate = *patch.PurchaseDate
	}
	if patch.ExpiryDate != nil {
		item.ExpiryDate = *patch.ExpiryDate
	}
	return item
}

// TotalValue Σ (bodega + restaurante) × costo. Los artículos sin costo suman cero.
func TotalValue(items []entity.InventoryItem) decimal.Decimal {
	sum := decimal.Zero
	for _, it := range items {
		if it.Cost == nil {
			continue
		}
		sum = sum.Add(decimal.NewFromInt(int64(it.Total())).Mul(*it.Cost))
	}
	return sum
}
