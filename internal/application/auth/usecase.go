package auth

import (
	"context"
	"fmt"

	"github.com/jhoicas/lager-api/internal/application/dto"
	"github.com/jhoicas/lager-api/internal/domain"
	"github.com/jhoicas/lager-api/internal/domain/entity"
	"github.com/jhoicas/lager-api/internal/domain/repository"
	"github.com/jhoicas/lager-api/pkg/jwt"
)

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// DefaultCredentials contraseñas de demostración sembradas por InitializeDefaults.
func DefaultCredentials() map[string]entity.Role {
	return map[string]entity.Role{
		"admin123": entity.RoleAdmin,
		"user123":  entity.RoleUser,
	}
}

// AuthUseCase puerta de acceso: contraseña compartida → rol, sesión persistida y token.
type AuthUseCase struct {
	creds    repository.CredentialRepository
	sessions repository.SessionRepository
	jwtCfg   JWTConfig
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(creds repository.CredentialRepository, sessions repository.SessionRepository, jwtCfg JWTConfig) *AuthUseCase {
	return &AuthUseCase{creds: creds, sessions: sessions, jwtCfg: jwtCfg}
}

// Authenticate resuelve la contraseña a un rol y guarda la sesión {role, password}.
// Contraseña vacía, desconocida o con un rol inválido devuelve ErrInvalidCredential sin tocar la sesión.
func (uc *AuthUseCase) Authenticate(ctx context.Context, password string) (entity.Role, error) {
	if password == "" {
		return "", domain.ErrInvalidCredential
	}
	creds, err := uc.creds.Load(ctx)
	if err != nil {
		return "", err
	}
	role, ok := creds[password]
	if !ok || !role.Valid() {
		return "", domain.ErrInvalidCredential
	}
	if err := uc.sessions.Set(ctx, entity.Session{Role: role, Password: password}); err != nil {
		return "", err
	}
	return role, nil
}

// Login autentica y firma un JWT con el rol concedido.
func (uc *AuthUseCase) Login(ctx context.Context, in dto.LoginRequest) (*dto.LoginResponse, error) {
	role, err := uc.Authenticate(ctx, in.Password)
	if err != nil {
		return nil, err
	}
	token, err := jwt.Generate(uc.jwtCfg.Secret, string(role), uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, fmt.Errorf("firmar token: %w", err)
	}
	return &dto.LoginResponse{Token: token, Role: string(role)}, nil
}

// InitializeDefaults siembra las contraseñas de demostración si el registro no existe. Idempotente.
func (uc *AuthUseCase) InitializeDefaults(ctx context.Context) (bool, error) {
	exists, err := uc.creds.Exists(ctx)
	if err != nil {
		return false, err
	}
	if exists {
		return false, nil
	}
	if err := uc.creds.Save(ctx, DefaultCredentials()); err != nil {
		return false, err
	}
	return true, nil
}

// CurrentSession devuelve la sesión activa o nil si no hay.
func (uc *AuthUseCase) CurrentSession(ctx context.Context) (*entity.Session, error) {
	return uc.sessions.Get(ctx)
}

// Logout borra la sesión persistida.
func (uc *AuthUseCase) Logout(ctx context.Context) error {
	return uc.sessions.Clear(ctx)
}
