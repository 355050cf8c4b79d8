package inventory

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/lager-api/internal/application/dto"
	"github.com/jhoicas/lager-api/internal/domain"
	"github.com/jhoicas/lager-api/internal/domain/entity"
	"github.com/jhoicas/lager-api/internal/domain/inventory"
	"github.com/jhoicas/lager-api/internal/domain/repository"
)

// SampleItems artículos de ejemplo del panel de administración, fechados respecto de now (UTC).
func SampleItems(now time.Time) []entity.InventoryItem {
	now = now.UTC()
	today := now.Format(entity.DateLayout)
	patties := decimal.RequireFromString("2.5")
	buns := decimal.RequireFromString("0.5")
	return []entity.InventoryItem{
		{
			ID: "1", Name: "Beef Patties", Category: "1",
			WarehouseQty: 500, RestaurantQty: 50, Unit: entity.DefaultUnit, ReorderLevel: 100,
			Cost: &patties, PurchaseDate: today,
			ExpiryDate: now.AddDate(0, 0, 30).Format(entity.DateLayout), LastEdited: now,
		},
		{
			ID: "2", Name: "Burger Buns", Category: "1",
			WarehouseQty: 1000, RestaurantQty: 100, Unit: entity.DefaultUnit, ReorderLevel: 200,
			Cost: &buns, PurchaseDate: today,
			ExpiryDate: now.AddDate(0, 0, 14).Format(entity.DateLayout), LastEdited: now,
		},
	}
}

// InventoryUseCase casos de uso del inventario de dos ubicaciones.
// Cada mutación lee la lista completa, la transforma y la vuelve a escribir bajo mu.
type InventoryUseCase struct {
	repo       repository.InventoryRepository
	categories repository.CategoryRepository
	now        func() time.Time
	mu         sync.Mutex
}

// NewInventoryUseCase construye el caso de uso.
func NewInventoryUseCase(repo repository.InventoryRepository, categories repository.CategoryRepository) *InventoryUseCase {
	return &InventoryUseCase{repo: repo, categories: categories, now: time.Now}
}

// WithClock reemplaza el reloj (tests).
func (uc *InventoryUseCase) WithClock(now func() time.Time) *InventoryUseCase {
	uc.now = now
	return uc
}

// List devuelve todos los artículos en el orden persistido.
func (uc *InventoryUseCase) List(ctx context.Context) ([]dto.InventoryItemResponse, error) {
	items, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	return toItemResponses(items), nil
}

// Add crea un artículo. Cantidades nil quedan en 0, la unidad por defecto es "pieces",
// la fecha de compra por defecto es hoy y la categoría por defecto es la primera existente.
func (uc *InventoryUseCase) Add(ctx context.Context, in dto.CreateInventoryItemRequest) (*dto.InventoryItemResponse, error) {
	now := uc.now()
	item := entity.InventoryItem{
		Name:          in.Name,
		Category:      in.Category,
		WarehouseQty:  intOrZero(in.WarehouseQty),
		RestaurantQty: intOrZero(in.RestaurantQty),
		Unit:          in.Unit,
		ReorderLevel:  intOrZero(in.ReorderLevel),
		PurchaseDate:  in.PurchaseDate,
		ExpiryDate:    in.ExpiryDate,
		LastEdited:    now,
	}
	if in.Cost != nil {
		c := *in.Cost
		item.Cost = &c
	}
	if item.Unit == "" {
		item.Unit = entity.DefaultUnit
	}
	if item.PurchaseDate == "" {
		item.PurchaseDate = now.UTC().Format(entity.DateLayout)
	}
	if err := validateItem(item); err != nil {
		return nil, err
	}

	uc.mu.Lock()
	defer uc.mu.Unlock()

	if item.Category == "" {
		cats, err := uc.categories.List(ctx)
		if err != nil {
			return nil, err
		}
		if len(cats) > 0 {
			item.Category = cats[0].ID
		}
	}
	id, err := uuid.NewV7()
	if err != nil {
		return nil, fmt.Errorf("generar id: %w", err)
	}
	item.ID = id.String()

	items, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	if err := uc.repo.Save(ctx, append(items, item)); err != nil {
		return nil, err
	}
	res := toItemResponse(item)
	return &res, nil
}

// Update fusiona los campos presentes sobre el artículo y sella LastEdited.
// Devuelve nil, nil si el id no existe (sin cambios).
func (uc *InventoryUseCase) Update(ctx context.Context, id string, in dto.UpdateInventoryItemRequest) (*dto.InventoryItemResponse, error) {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	items, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	idx := -1
	for i := range items {
		if items[i].ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return nil, nil
	}

	prev := items[idx]
	merged := inventory.Merge(prev, entity.InventoryItemPatch{
		Name:          in.Name,
		Category:      in.Category,
		WarehouseQty:  in.WarehouseQty,
		RestaurantQty: in.RestaurantQty,
		Unit:          in.Unit,
		ReorderLevel:  in.ReorderLevel,
		Cost:          in.Cost,
		PurchaseDate:  in.PurchaseDate,
		ExpiryDate:    in.ExpiryDate,
	})
	if err := validateItem(merged); err != nil {
		return nil, err
	}
	merged.LastEdited = nextEdit(prev.LastEdited, uc.now())

	items[idx] = merged
	if err := uc.repo.Save(ctx, items); err != nil {
		return nil, err
	}
	res := toItemResponse(merged)
	return &res, nil
}

// Remove quita el artículo. Sin confirmación devuelve ErrConfirmationRequired.
func (uc *InventoryUseCase) Remove(ctx context.Context, id string, confirmed bool) error {
	if !confirmed {
		return domain.ErrConfirmationRequired
	}

	uc.mu.Lock()
	defer uc.mu.Unlock()

	items, err := uc.repo.List(ctx)
	if err != nil {
		return err
	}
	kept := make([]entity.InventoryItem, 0, len(items))
	for _, it := range items {
		if it.ID != id {
			kept = append(kept, it)
		}
	}
	if len(kept) == len(items) {
		return nil
	}
	return uc.repo.Save(ctx, kept)
}

// LowStock artículos con total <= nivel de reorden.
func (uc *InventoryUseCase) LowStock(ctx context.Context) ([]dto.InventoryItemResponse, error) {
	items, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	return toItemResponses(inventory.ComputeLowStock(items)), nil
}

// ByCategory agrupa los artículos por categoría en el orden de la lista de categorías.
func (uc *InventoryUseCase) ByCategory(ctx context.Context) ([]dto.CategoryGroupResponse, error) {
	items, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	cats, err := uc.categories.List(ctx)
	if err != nil {
		return nil, err
	}
	groups := inventory.GroupByCategory(items, cats)
	out := make([]dto.CategoryGroupResponse, 0, len(groups))
	for _, g := range groups {
		out = append(out, dto.CategoryGroupResponse{
			Category: dto.CategoryResponse{ID: g.Category.ID, Name: g.Category.Name},
			Count:    len(g.Items),
			Items:    toItemResponses(g.Items),
		})
	}
	return out, nil
}

// Summary datos del panel: total de artículos y avisos de stock bajo.
func (uc *InventoryUseCase) Summary(ctx context.Context) (*dto.InventorySummaryResponse, error) {
	items, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	low := inventory.ComputeLowStock(items)
	alerts := make([]dto.LowStockAlert, 0, len(low))
	for _, it := range low {
		alerts = append(alerts, dto.LowStockAlert{ID: it.ID, Name: it.Name, Total: it.Total(), Unit: it.Unit})
	}
	return &dto.InventorySummaryResponse{
		TotalItems:     len(items),
		LowStockCount:  len(low),
		LowStockAlerts: alerts,
	}, nil
}

// InitializeSamples siembra los artículos de ejemplo si el registro no existe.
func (uc *InventoryUseCase) InitializeSamples(ctx context.Context) (bool, error) {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	exists, err := uc.repo.Exists(ctx)
	if err != nil || exists {
		return false, err
	}
	if err := uc.repo.Save(ctx, SampleItems(uc.now())); err != nil {
		return false, err
	}
	return true, nil
}

// nextEdit devuelve now, o prev + 1ns si el reloj no avanzó, para que LastEdited sea estrictamente creciente.
func nextEdit(prev, now time.Time) time.Time {
	if !now.After(prev) {
		return prev.Add(time.Nanosecond)
	}
	return now
}

func validateItem(it entity.InventoryItem) error {
	if strings.TrimSpace(it.Name) == "" {
		return fmt.Errorf("%w: el nombre del artículo es obligatorio", domain.ErrValidation)
	}
	if it.WarehouseQty < 0 || it.RestaurantQty < 0 || it.ReorderLevel < 0 {
		return fmt.Errorf("%w: las cantidades no pueden ser negativas", domain.ErrValidation)
	}
	if it.Cost != nil && it.Cost.IsNegative() {
		return fmt.Errorf("%w: el costo no puede ser negativo", domain.ErrValidation)
	}
	for _, d := range []string{it.PurchaseDate, it.ExpiryDate} {
		if d == "" {
			continue
		}
		if _, err := time.Parse(entity.DateLayout, d); err != nil {
			return fmt.Errorf("%w: fecha %q (formato AAAA-MM-DD)", domain.ErrValidation, d)
		}
	}
	return nil
}

func intOrZero(p *int) int {
	if p == nil {
		return 0
	}
	return *p
}

func toItemResponses(items []entity.InventoryItem) []dto.InventoryItemResponse {
	out := make([]dto.InventoryItemResponse, 0, len(items))
	for _, it := range items {
		out = append(out, toItemResponse(it))
	}
	return out
}

func toItemResponse(it entity.InventoryItem) dto.InventoryItemResponse {
	return dto.InventoryItemResponse{
		ID:            it.ID,
		Name:          it.Name,
		Category:      it.Category,
		WarehouseQty:  it.WarehouseQty,
		RestaurantQty: it.RestaurantQty,
		Total:         it.Total(),
		Unit:          it.Unit,
		ReorderLevel:  it.ReorderLevel,
		LowStock:      it.IsLowStock(),
		Cost:          it.Cost,
		PurchaseDate:  it.PurchaseDate,
		ExpiryDate:    it.ExpiryDate,
		LastEdited:    it.LastEdited,
	}
}
