package kvstore

import (
	"context"

	"github.com/jhoicas/lager-api/internal/domain/repository"
)

// Runner ejecuta fn directamente sobre el store, sin transacción (memoria y MongoDB).
type Runner struct {
	kv repository.KeyValueStore
}

// NewRunner construye el runner sobre kv.
func NewRunner(kv repository.KeyValueStore) *Runner {
	return &Runner{kv: kv}
}

// Run llama fn con repositorios sobre el mismo store.
func (r *Runner) Run(ctx context.Context, fn func(
	items repository.InventoryRepository,
	categories repository.CategoryRepository,
	credentials repository.CredentialRepository,
) error) error {
	return fn(NewInventoryRepository(r.kv), NewCategoryRepository(r.kv), NewCredentialRepository(r.kv))
}
