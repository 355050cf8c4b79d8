package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/lager-api/internal/application/auth"
	"github.com/jhoicas/lager-api/internal/application/dto"
)

// AuthHandler maneja login, sesión y logout.
type AuthHandler struct {
	uc *auth.AuthUseCase
}

// NewAuthHandler construye el handler.
func NewAuthHandler(uc *auth.AuthUseCase) *AuthHandler {
	return &AuthHandler{uc: uc}
}

// Login godoc
// @Summary      Iniciar sesión con la contraseña compartida
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.LoginRequest  true  "Contraseña"
// @Success      200   {object}  dto.LoginResponse
// @Failure      401   {object}  dto.ErrorResponse
// @Router       /api/auth/login [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var in dto.LoginRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.Login(c.UserContext(), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// InitDefaults godoc
// @Summary      Sembrar las contraseñas de demostración (idempotente)
// @Tags         auth
// @Produce      json
// @Success      200  {object}  dto.InitDefaultsResponse
// @Router       /api/auth/init-defaults [post]
func (h *AuthHandler) InitDefaults(c *fiber.Ctx) error {
	seeded, err := h.uc.InitializeDefaults(c.UserContext())
	if err != nil {
		return writeError(c, err)
	}
	msg := "las contraseñas ya estaban configuradas"
	if seeded {
		msg = "contraseñas por defecto creadas"
	}
	return c.JSON(dto.InitDefaultsResponse{Seeded: seeded, Message: msg})
}

// Session godoc
// @Summary      Sesión activa
// @Tags         auth
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.SessionResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Router       /api/auth/session [get]
func (h *AuthHandler) Session(c *fiber.Ctx) error {
	s, err := h.uc.CurrentSession(c.UserContext())
	if err != nil {
		return writeError(c, err)
	}
	if s == nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "SESSION_ENDED", Message: "no hay sesión activa"})
	}
	return c.JSON(dto.SessionResponse{Role: string(s.Role)})
}

// Logout godoc
// @Summary      Cerrar sesión
// @Tags         auth
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.MessageResponse
// @Router       /api/auth/logout [post]
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	if err := h.uc.Logout(c.UserContext()); err != nil {
		return writeError(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "sesión cerrada"})
}
