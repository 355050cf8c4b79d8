package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateInventoryItemRequest alta de artículo. Las cantidades nil se guardan como 0.
type CreateInventoryItemRequest struct {
	Name          string           `json:"name"`
	Category      string           `json:"category"`
	WarehouseQty  *int             `json:"warehouseQty"`
	RestaurantQty *int             `json:"restaurantQty"`
	Unit          string           `json:"unit"`
	ReorderLevel  *int             `json:"reorderLevel"`
	Cost          *decimal.Decimal `json:"cost"`
	PurchaseDate  string           `json:"purchaseDate"`
	ExpiryDate    string           `json:"expiryDate"`
}

// UpdateInventoryItemRequest cambios parciales: solo los campos presentes (no nil) se aplican.
type UpdateInventoryItemRequest struct {
	Name          *string          `json:"name"`
	Category      *string          `json:"category"`
	WarehouseQty  *int             `json:"warehouseQty"`
	RestaurantQty *int             `json:"restaurantQty"`
	Unit          *string          `json:"unit"`
	ReorderLevel  *int             `json:"reorderLevel"`
	Cost          *decimal.Decimal `json:"cost"`
	PurchaseDate  *string          `json:"purchaseDate"`
	ExpiryDate    *string          `json:"expiryDate"`
}

// InventoryItemResponse salida de un artículo con los derivados de stock.
type InventoryItemResponse struct {
	ID            string           `json:"id"`
	Name          string           `json:"name"`
	Category      string           `json:"category"`
	WarehouseQty  int              `json:"warehouseQty"`
	RestaurantQty int              `json:"restaurantQty"`
	Total         int              `json:"total"`
	Unit          string           `json:"unit"`
	ReorderLevel  int              `json:"reorderLevel"`
	LowStock      bool             `json:"lowStock"`
	Cost          *decimal.Decimal `json:"cost,omitempty"`
	PurchaseDate  string           `json:"purchaseDate,omitempty"`
	ExpiryDate    string           `json:"expiryDate,omitempty"`
	LastEdited    time.Time        `json:"lastEdited"`
}

// CategoryGroupResponse artículos de una categoría, en el orden de la lista de categorías.
type CategoryGroupResponse struct {
	Category CategoryResponse        `json:"category"`
	Count    int                     `json:"count"`
	Items    []InventoryItemResponse `json:"items"`
}

// LowStockAlert línea del aviso de stock bajo.
type LowStockAlert struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Total int    `json:"total"`
	Unit  string `json:"unit"`
}

// InventorySummaryResponse tarjetas del panel: total de artículos y avisos de stock bajo.
type InventorySummaryResponse struct {
	TotalItems     int             `json:"totalItems"`
	LowStockCount  int             `json:"lowStockCount"`
	LowStockAlerts []LowStockAlert `json:"lowStockAlerts"`
}
