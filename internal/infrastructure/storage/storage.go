// Package storage abre el driver clave/valor configurado (memoria, PostgreSQL o MongoDB).
package storage

import (
	"context"
	"fmt"

	"github.com/jhoicas/lager-api/internal/application/inventory"
	"github.com/jhoicas/lager-api/internal/domain/repository"
	"github.com/jhoicas/lager-api/internal/infrastructure/kvstore"
	"github.com/jhoicas/lager-api/internal/infrastructure/memory"
	"github.com/jhoicas/lager-api/internal/infrastructure/mongodb"
	"github.com/jhoicas/lager-api/internal/infrastructure/postgres"
	"github.com/jhoicas/lager-api/pkg/config"
)

// Store store abierto, su runner de unidad de trabajo y el cierre de conexiones.
type Store struct {
	KV     repository.KeyValueStore
	Runner inventory.TxRunner
	Driver string
	close  func(ctx context.Context)
}

// Close libera las conexiones del driver.
func (s *Store) Close(ctx context.Context) {
	if s.close != nil {
		s.close(ctx)
	}
}

// Open conecta el driver indicado en cfg.Driver.
func Open(ctx context.Context, cfg config.StorageConfig) (*Store, error) {
	switch cfg.Driver {
	case config.StorageMemory, "":
		kv := memory.NewKVStore()
		return &Store{KV: kv, Runner: kvstore.NewRunner(kv), Driver: config.StorageMemory}, nil

	case config.StoragePostgres:
		pool, err := postgres.NewPool(ctx, cfg.DB)
		if err != nil {
			return nil, err
		}
		kv := postgres.NewKVStore(pool)
		if err := kv.EnsureSchema(ctx); err != nil {
			pool.Close()
			return nil, err
		}
		return &Store{
			KV:     kv,
			Runner: postgres.NewTxRunner(pool),
			Driver: cfg.Driver,
			close:  func(context.Context) { pool.Close() },
		}, nil

	case config.StorageMongoDB:
		kv, err := mongodb.NewKVStore(ctx, cfg.Mongo.URI, cfg.Mongo.DBName)
		if err != nil {
			return nil, err
		}
		return &Store{
			KV:     kv,
			Runner: kvstore.NewRunner(kv),
			Driver: cfg.Driver,
			close:  func(ctx context.Context) { _ = kv.Close(ctx) },
		}, nil

	default:
		return nil, fmt.Errorf("storage: driver desconocido %q", cfg.Driver)
	}
}
