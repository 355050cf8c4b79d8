package http

import (
	"context"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/lager-api/internal/application/dto"
	"github.com/jhoicas/lager-api/internal/domain/entity"
)

// sessionChecker es el contrato mínimo que necesita el middleware para leer la sesión activa.
// Lo implementa *auth.AuthUseCase.
type sessionChecker interface {
	CurrentSession(ctx context.Context) (*entity.Session, error)
}

// RequireActiveSession verifica que exista una sesión persistida con el mismo rol del token.
// Debe usarse DESPUÉS de AuthMiddleware.
//
// Comportamiento:
//   - 401 SESSION_ENDED → no hay sesión (logout).
//   - 401 SESSION_REPLACED → otro login cambió el rol de la sesión.
//   - 503 Service Unavailable → fallo del almacenamiento al leer la sesión.
func RequireActiveSession(checker sessionChecker) fiber.Handler {
	return func(c *fiber.Ctx) error {
		session, err := checker.CurrentSession(c.UserContext())
		if err != nil {
			return c.Status(fiber.StatusServiceUnavailable).JSON(dto.ErrorResponse{
				Code:    "SESSION_CHECK_FAILED",
				Message: "no se pudo verificar la sesión, intente más tarde",
			})
		}
		if session == nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
				Code:    "SESSION_ENDED",
				Message: "la sesión fue cerrada, inicie sesión de nuevo",
			})
		}
		if string(session.Role) != GetRole(c) {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
				Code:    "SESSION_REPLACED",
				Message: "la sesión activa pertenece a otro inicio de sesión",
			})
		}
		return c.Next()
	}
}
