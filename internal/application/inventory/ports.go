package inventory

import (
	"context"

	"github.com/jhoicas/lager-api/internal/domain/repository"
)

// TxRunner ejecuta una función con repositorios atados a una misma unidad de trabajo.
// En PostgreSQL es una transacción; en memoria y MongoDB se ejecuta directo.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		items repository.InventoryRepository,
		categories repository.CategoryRepository,
		credentials repository.CredentialRepository,
	) error) error
}
