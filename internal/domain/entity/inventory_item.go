package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Unidad por defecto al crear un artículo sin unidad.
const DefaultUnit = "pieces"

// DateLayout formato de PurchaseDate y ExpiryDate (fecha calendario sin hora).
const DateLayout = "2006-01-02"

// InventoryItem representa un artículo con stock en dos ubicaciones (bodega y restaurante).
// Category es una referencia débil a Category.ID: puede apuntar a una categoría borrada.
type InventoryItem struct {
	ID            string           `json:"id"`
	Name          string           `json:"name"`
	Category      string           `json:"category"`
	WarehouseQty  int              `json:"warehouseQty"`
	RestaurantQty int              `json:"restaurantQty"`
	Unit          string           `json:"unit"`
	ReorderLevel  int              `json:"reorderLevel"`
	Cost          *decimal.Decimal `json:"cost,omitempty"` // nil = sin costo registrado
	PurchaseDate  string           `json:"purchaseDate,omitempty"`
	ExpiryDate    string           `json:"expiryDate,omitempty"`
	LastEdited    time.Time        `json:"lastEdited"`
}

// Total cantidad sumada de ambas ubicaciones.
func (i InventoryItem) Total() int {
	return i.WarehouseQty + i.RestaurantQty
}

// IsLowStock true si el total está en o por debajo del nivel de reorden.
func (i InventoryItem) IsLowStock() bool {
	return i.Total() <= i.ReorderLevel
}

// InventoryItemPatch cambios parciales sobre un artículo. Los campos nil conservan el valor previo.
type InventoryItemPatch struct {
	Name          *string
	Category      *string
	WarehouseQty  *int
	RestaurantQty *int
	Unit          *string
	ReorderLevel  *int
	Cost          *decimal.Decimal
	PurchaseDate  *string
	ExpiryDate    *string
}
