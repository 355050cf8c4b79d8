package auth

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/jhoicas/lager-api/internal/application/dto"
	"github.com/jhoicas/lager-api/internal/domain"
	"github.com/jhoicas/lager-api/internal/domain/entity"
	"github.com/jhoicas/lager-api/internal/domain/repository"
)

// CredentialUseCase administración de contraseñas (solo admin).
type CredentialUseCase struct {
	repo repository.CredentialRepository
	mu   sync.Mutex
}

// NewCredentialUseCase construye el caso de uso.
func NewCredentialUseCase(repo repository.CredentialRepository) *CredentialUseCase {
	return &CredentialUseCase{repo: repo}
}

// List devuelve las credenciales ordenadas por contraseña.
func (uc *CredentialUseCase) List(ctx context.Context) ([]dto.CredentialResponse, error) {
	creds, err := uc.repo.Load(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.CredentialResponse, 0, len(creds))
	for pw, role := range creds {
		out = append(out, dto.CredentialResponse{Password: pw, Role: string(role)})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Password < out[j].Password })
	return out, nil
}

// Add registra una contraseña nueva. Una contraseña existente devuelve ErrDuplicate.
func (uc *CredentialUseCase) Add(ctx context.Context, in dto.CreateCredentialRequest) error {
	if strings.TrimSpace(in.Password) == "" {
		return fmt.Errorf("%w: la contraseña es obligatoria", domain.ErrValidation)
	}
	role, err := parseRole(in.Role)
	if err != nil {
		return err
	}

	uc.mu.Lock()
	defer uc.mu.Unlock()

	creds, err := uc.repo.Load(ctx)
	if err != nil {
		return err
	}
	if _, ok := creds[in.Password]; ok {
		return fmt.Errorf("%w: la contraseña ya existe", domain.ErrDuplicate)
	}
	creds[in.Password] = role
	return uc.repo.Save(ctx, creds)
}

// ChangeRole cambia el nivel de acceso de una contraseña existente.
func (uc *CredentialUseCase) ChangeRole(ctx context.Context, password string, in dto.ChangeRoleRequest) error {
	role, err := parseRole(in.Role)
	if err != nil {
		return err
	}

	uc.mu.Lock()
	defer uc.mu.Unlock()

	creds, err := uc.repo.Load(ctx)
	if err != nil {
		return err
	}
	if _, ok := creds[password]; !ok {
		return fmt.Errorf("%w: contraseña desconocida", domain.ErrNotFound)
	}
	creds[password] = role
	return uc.repo.Save(ctx, creds)
}

// Remove elimina una contraseña. Sin confirmación devuelve ErrConfirmationRequired.
func (uc *CredentialUseCase) Remove(ctx context.Context, password string, confirmed bool) error {
	if !confirmed {
		return domain.ErrConfirmationRequired
	}

	uc.mu.Lock()
	defer uc.mu.Unlock()

	creds, err := uc.repo.Load(ctx)
	if err != nil {
		return err
	}
	if _, ok := creds[password]; !ok {
		return nil
	}
	delete(creds, password)
	return uc.repo.Save(ctx, creds)
}

func parseRole(s string) (entity.Role, error) {
	role := entity.Role(s)
	if !role.Valid() {
		return "", fmt.Errorf("%w: rol %q (admin, user)", domain.ErrValidation, s)
	}
	return role, nil
}
