package http

import (
	"net/url"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/lager-api/internal/application/auth"
	"github.com/jhoicas/lager-api/internal/application/dto"
)

// CredentialHandler administración de contraseñas (solo admin).
type CredentialHandler struct {
	uc *auth.CredentialUseCase
}

// NewCredentialHandler construye el handler.
func NewCredentialHandler(uc *auth.CredentialUseCase) *CredentialHandler {
	return &CredentialHandler{uc: uc}
}

// List godoc
// @Summary      Listar contraseñas y roles
// @Tags         passwords
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.CredentialResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /api/passwords [get]
func (h *CredentialHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.UserContext())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Create godoc
// @Summary      Agregar contraseña
// @Tags         passwords
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateCredentialRequest  true  "Contraseña y rol"
// @Success      201   {object}  dto.MessageResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/passwords [post]
func (h *CredentialHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateCredentialRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	if err := h.uc.Add(c.UserContext(), in); err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.MessageResponse{Message: "contraseña agregada"})
}

// ChangeRole godoc
// @Summary      Cambiar el rol de una contraseña
// @Tags         passwords
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        password  path  string                 true  "Contraseña (URL-encoded)"
// @Param        body      body  dto.ChangeRoleRequest  true  "Rol nuevo"
// @Success      200  {object}  dto.MessageResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/passwords/{password} [put]
func (h *CredentialHandler) ChangeRole(c *fiber.Ctx) error {
	password, err := url.PathUnescape(c.Params("password"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_PATH", Message: "contraseña mal codificada"})
	}
	var in dto.ChangeRoleRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	if err := h.uc.ChangeRole(c.UserContext(), password, in); err != nil {
		return writeError(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "rol actualizado"})
}

// Delete godoc
// @Summary      Eliminar contraseña
// @Tags         passwords
// @Security     Bearer
// @Produce      json
// @Param        password  path   string  true  "Contraseña (URL-encoded)"
// @Param        confirm   query  bool    true  "Confirmación explícita"
// @Success      200  {object}  dto.MessageResponse
// @Failure      412  {object}  dto.ErrorResponse
// @Router       /api/passwords/{password} [delete]
func (h *CredentialHandler) Delete(c *fiber.Ctx) error {
	password, err := url.PathUnescape(c.Params("password"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_PATH", Message: "contraseña mal codificada"})
	}
	if err := h.uc.Remove(c.UserContext(), password, c.QueryBool("confirm")); err != nil {
		return writeError(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "contraseña eliminada"})
}
