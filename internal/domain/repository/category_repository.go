package repository

import (
	"context"

	"github.com/jhoicas/lager-api/internal/domain/entity"
)

// CategoryRepository define el puerto de persistencia para la lista completa de categorías (DIP).
type CategoryRepository interface {
	List(ctx context.Context) ([]entity.Category, error)
	Save(ctx context.Context, categories []entity.Category) error
	Exists(ctx context.Context) (bool, error)
}
