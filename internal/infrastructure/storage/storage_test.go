package storage_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/lager-api/internal/infrastructure/storage"
	"github.com/jhoicas/lager-api/pkg/config"
)

func TestOpen_Memoria(t *testing.T) {
	ctx := context.Background()
	s, err := storage.Open(ctx, config.StorageConfig{Driver: config.StorageMemory})
	require.NoError(t, err)
	defer s.Close(ctx)

	assert.Equal(t, config.StorageMemory, s.Driver)
	require.NoError(t, s.KV.Set(ctx, "inventory", []byte(`[]`)))
	v, found, err := s.KV.Get(ctx, "inventory")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "[]", string(v))
}

func TestOpen_DriverDesconocido(t *testing.T) {
	_, err := storage.Open(context.Background(), config.StorageConfig{Driver: "redis"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "redis")
}
