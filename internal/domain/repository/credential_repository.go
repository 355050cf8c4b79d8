package repository

import (
	"context"

	"github.com/jhoicas/lager-api/internal/domain/entity"
)

// CredentialRepository mapa contraseña → rol.
type CredentialRepository interface {
	Load(ctx context.Context) (map[string]entity.Role, error)
	Save(ctx context.Context, credentials map[string]entity.Role) error
	Exists(ctx context.Context) (bool, error)
}

// SessionRepository sesión activa única (nil si no hay sesión).
type SessionRepository interface {
	Get(ctx context.Context) (*entity.Session, error)
	Set(ctx context.Context, session entity.Session) error
	Clear(ctx context.Context) error
}
