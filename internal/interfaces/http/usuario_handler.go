package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/nexusgestion/admin-api/internal/application/dto"
	"github.com/nexusgestion/admin-api/internal/application/usecase"
	"github.com/nexusgestion/admin-api/internal/domain"
)

// UsuarioHandler maneja los usuarios. El ámbito lo fija el token: un super
// admin opera sobre cualquier cliente, un usuario operativo solo sobre el suyo.
type UsuarioHandler struct {
	uc *usecase.UsuarioUseCase
}

// NewUsuarioHandler construye el handler.
func NewUsuarioHandler(uc *usecase.UsuarioUseCase) *UsuarioHandler {
	return &UsuarioHandler{uc: uc}
}

// Create godoc
// @Summary      Crear usuario
// @Tags         usuarios
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.UsuarioCreateRequest  true  "Datos del usuario"
// @Success      201   {object}  dto.UsuarioResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/usuarios [post]
func (h *UsuarioHandler) Create(c *fiber.Ctx) error {
	var in dto.UsuarioCreateRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.NombreUsuario == "" || in.Contrasena == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "nombre_usuario y contrasena son requeridos"})
	}
	out, err := h.uc.Create(ClienteIDEfectivo(c), in)
	if err != nil {
		switch err {
		case domain.ErrUsuarioExiste:
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "USUARIO_EXISTE", Message: "el nombre de usuario ya está en uso"})
		case domain.ErrNoEncontrado:
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NO_ENCONTRADO", Message: "cliente no encontrado"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      Listar usuarios del ámbito del token
// @Tags         usuarios
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.UsuarioResponse
// @Router       /api/usuarios [get]
func (h *UsuarioHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(ClienteIDEfectivo(c))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Obtener usuario por ID
// @Tags         usuarios
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del usuario"
// @Success      200  {object}  dto.UsuarioResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/usuarios/{id} [get]
func (h *UsuarioHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(ClienteIDEfectivo(c), c.Params("id"))
	if err != nil {
		return usuarioError(c, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Actualizar usuario
// @Tags         usuarios
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del usuario"
// @Param        body  body  dto.UsuarioUpdateRequest  true  "Datos a actualizar"
// @Success      200   {object}  dto.UsuarioResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/usuarios/{id} [put]
func (h *UsuarioHandler) Update(c *fiber.Ctx) error {
	var in dto.UsuarioUpdateRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Update(ClienteIDEfectivo(c), c.Params("id"), in)
	if err != nil {
		return usuarioError(c, err)
	}
	return c.JSON(out)
}

// Desactivar godoc
// @Summary      Desactivar usuario (borrado lógico)
// @Tags         usuarios
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del usuario"
// @Success      200  {object}  dto.MensajeResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/usuarios/{id} [delete]
func (h *UsuarioHandler) Desactivar(c *fiber.Ctx) error {
	if err := h.uc.Desactivar(ClienteIDEfectivo(c), c.Params("id")); err != nil {
		return usuarioError(c, err)
	}
	return c.JSON(dto.MensajeResponse{Mensaje: "usuario desactivado"})
}

func usuarioError(c *fiber.Ctx, err error) error {
	switch err {
	case domain.ErrNoEncontrado:
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NO_ENCONTRADO", Message: "usuario no encontrado"})
	case domain.ErrProhibido:
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "PERMISO_DENEGADO", Message: "el usuario pertenece a otro cliente"})
	}
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
}
