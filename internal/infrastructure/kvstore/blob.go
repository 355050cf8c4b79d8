// Package kvstore implementa los repositorios de dominio como blobs JSON completos sobre
// cualquier repository.KeyValueStore (memoria, PostgreSQL o MongoDB).
package kvstore

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jhoicas/lager-api/internal/domain/repository"
)

// blob lee y escribe un valor JSON completo bajo una clave fija.
type blob[T any] struct {
	kv  repository.KeyValueStore
	key string
}

// load devuelve found=false (y el valor cero de T) si la clave no existe.
func (b blob[T]) load(ctx context.Context) (T, bool, error) {
	var out T
	raw, found, err := b.kv.Get(ctx, b.key)
	if err != nil {
		return out, false, fmt.Errorf("leer %s: %w", b.key, err)
	}
	if !found || len(raw) == 0 {
		return out, false, nil
	}
	if err := json.Unmarshal(raw, &out); err != nil {
		return out, false, fmt.Errorf("decodificar %s: %w", b.key, err)
	}
	return out, true, nil
}

func (b blob[T]) save(ctx context.Context, v T) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("codificar %s: %w", b.key, err)
	}
	if err := b.kv.Set(ctx, b.key, raw); err != nil {
		return fmt.Errorf("escribir %s: %w", b.key, err)
	}
	return nil
}

func (b blob[T]) exists(ctx context.Context) (bool, error) {
	_, found, err := b.kv.Get(ctx, b.key)
	if err != nil {
		return false, fmt.Errorf("leer %s: %w", b.key, err)
	}
	return found, nil
}

func (b blob[T]) clear(ctx context.Context) error {
	if err := b.kv.Delete(ctx, b.key); err != nil {
		return fmt.Errorf("borrar %s: %w", b.key, err)
	}
	return nil
}
