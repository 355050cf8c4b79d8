package inventory

import (
	"context"
	"time"

	"github.com/jhoicas/lager-api/internal/application/auth"
	"github.com/jhoicas/lager-api/internal/application/usecase"
	"github.com/jhoicas/lager-api/internal/domain/repository"
)

// SeedResult qué registros sembró Seed (false = ya existían).
type SeedResult struct {
	Credentials bool `json:"credentials"`
	Categories  bool `json:"categories"`
	Inventory   bool `json:"inventory"`
}

// SeedUseCase siembra credenciales, categorías e inventario de ejemplo en una sola unidad de trabajo.
type SeedUseCase struct {
	txRunner TxRunner
	now      func() time.Time
}

// NewSeedUseCase construye el caso de uso.
func NewSeedUseCase(txRunner TxRunner) *SeedUseCase {
	return &SeedUseCase{txRunner: txRunner, now: time.Now}
}

// Seed escribe cada registro solo si no existe; los existentes no se tocan.
func (uc *SeedUseCase) Seed(ctx context.Context) (SeedResult, error) {
	var res SeedResult
	err := uc.txRunner.Run(ctx, func(
		items repository.InventoryRepository,
		categories repository.CategoryRepository,
		credentials repository.CredentialRepository,
	) error {
		var err error
		if res.Credentials, err = seedIfMissing(ctx, credentials.Exists, func() error {
			return credentials.Save(ctx, auth.DefaultCredentials())
		}); err != nil {
			return err
		}
		if res.Categories, err = seedIfMissing(ctx, categories.Exists, func() error {
			return categories.Save(ctx, usecase.SampleCategories())
		}); err != nil {
			return err
		}
		res.Inventory, err = seedIfMissing(ctx, items.Exists, func() error {
			return items.Save(ctx, SampleItems(uc.now()))
		})
		return err
	})
	if err != nil {
		return SeedResult{}, err
	}
	return res, nil
}

func seedIfMissing(ctx context.Context, exists func(context.Context) (bool, error), save func() error) (bool, error) {
	ok, err := exists(ctx)
	if err != nil || ok {
		return false, err
	}
	if err := save(); err != nil {
		return false, err
	}
	return true, nil
}
