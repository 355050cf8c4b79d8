package auth_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/lager-api/internal/application/auth"
	"github.com/jhoicas/lager-api/internal/application/dto"
	"github.com/jhoicas/lager-api/internal/domain"
	"github.com/jhoicas/lager-api/internal/infrastructure/kvstore"
	"github.com/jhoicas/lager-api/internal/infrastructure/memory"
)

func newCredentials(t *testing.T) *auth.CredentialUseCase {
	t.Helper()
	repo := kvstore.NewCredentialRepository(memory.NewKVStore())
	require.NoError(t, repo.Save(context.Background(), auth.DefaultCredentials()))
	return auth.NewCredentialUseCase(repo)
}

func TestCredentialList_OrdenadaPorContraseña(t *testing.T) {
	uc := newCredentials(t)
	ctx := context.Background()
	require.NoError(t, uc.Add(ctx, dto.CreateCredentialRequest{Password: "kitchen", Role: "user"}))

	list, err := uc.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, []dto.CredentialResponse{
		{Password: "admin123", Role: "admin"},
		{Password: "kitchen", Role: "user"},
		{Password: "user123", Role: "user"},
	}, list)
}

func TestCredentialAdd_Rechazos(t *testing.T) {
	uc := newCredentials(t)
	ctx := context.Background()

	err := uc.Add(ctx, dto.CreateCredentialRequest{Password: "   ", Role: "user"})
	assert.ErrorIs(t, err, domain.ErrValidation)

	err = uc.Add(ctx, dto.CreateCredentialRequest{Password: "nueva", Role: "owner"})
	assert.ErrorIs(t, err, domain.ErrValidation)

	err = uc.Add(ctx, dto.CreateCredentialRequest{Password: "admin123", Role: "user"})
	assert.ErrorIs(t, err, domain.ErrDuplicate)

	list, err := uc.List(ctx)
	require.NoError(t, err)
	assert.Len(t, list, 2, "ningún rechazo cambia el conteo")
	assert.Equal(t, "admin", list[0].Role, "el duplicado no cambia el rol existente")
}

func TestCredentialChangeRole(t *testing.T) {
	uc := newCredentials(t)
	ctx := context.Background()

	require.NoError(t, uc.ChangeRole(ctx, "user123", dto.ChangeRoleRequest{Role: "admin"}))
	list, err := uc.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, "admin", list[1].Role)

	err = uc.ChangeRole(ctx, "nadie", dto.ChangeRoleRequest{Role: "admin"})
	assert.ErrorIs(t, err, domain.ErrNotFound)

	err = uc.ChangeRole(ctx, "user123", dto.ChangeRoleRequest{Role: "root"})
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestCredentialRemove_RequiereConfirmacion(t *testing.T) {
	uc := newCredentials(t)
	ctx := context.Background()

	err := uc.Remove(ctx, "user123", false)
	assert.ErrorIs(t, err, domain.ErrConfirmationRequired)
	list, _ := uc.List(ctx)
	assert.Len(t, list, 2)

	require.NoError(t, uc.Remove(ctx, "user123", true))
	list, _ = uc.List(ctx)
	require.Len(t, list, 1)
	assert.Equal(t, "admin123", list[0].Password)
}
