package repository

import (
	"context"

	"github.com/jhoicas/lager-api/internal/domain/entity"
)

// InventoryRepository define el puerto de persistencia para la lista completa de artículos (DIP).
// No hay escrituras parciales: cada mutación reemplaza la lista entera.
type InventoryRepository interface {
	List(ctx context.Context) ([]entity.InventoryItem, error)
	Save(ctx context.Context, items []entity.InventoryItem) error
	Exists(ctx context.Context) (bool, error)
}
