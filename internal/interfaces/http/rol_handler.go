package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/nexusgestion/admin-api/internal/application/dto"
	"github.com/nexusgestion/admin-api/internal/application/usecase"
	"github.com/nexusgestion/admin-api/internal/domain"
)

// RolHandler maneja roles, el catálogo de permisos y las asignaciones.
type RolHandler struct {
	uc *usecase.RolUseCase
}

// NewRolHandler construye el handler.
func NewRolHandler(uc *usecase.RolUseCase) *RolHandler {
	return &RolHandler{uc: uc}
}

// ListPermisos godoc
// @Summary      Catálogo de permisos del sistema
// @Tags         roles
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.PermisoResponse
// @Router       /api/roles/permisos [get]
func (h *RolHandler) ListPermisos(c *fiber.Ctx) error {
	out, err := h.uc.ListPermisos()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// Create godoc
// @Summary      Crear rol con permisos
// @Tags         roles
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RolCreateRequest  true  "Datos del rol"
// @Success      201   {object}  dto.RolResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/roles [post]
func (h *RolHandler) Create(c *fiber.Ctx) error {
	var in dto.RolCreateRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.Nombre == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "nombre es requerido"})
	}
	out, err := h.uc.Create(ClienteIDEfectivo(c), in)
	if err != nil {
		return rolError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      Listar roles visibles para el ámbito del token
// @Tags         roles
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.RolResponse
// @Router       /api/roles [get]
func (h *RolHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(ClienteIDEfectivo(c))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Obtener rol por ID
// @Tags         roles
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del rol"
// @Success      200  {object}  dto.RolResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/roles/{id} [get]
func (h *RolHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(ClienteIDEfectivo(c), c.Params("id"))
	if err != nil {
		return rolError(c, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Actualizar rol (los roles de sistema son inmutables)
// @Tags         roles
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del rol"
// @Param        body  body  dto.RolUpdateRequest  true  "Datos a actualizar"
// @Success      200   {object}  dto.RolResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/roles/{id} [put]
func (h *RolHandler) Update(c *fiber.Ctx) error {
	var in dto.RolUpdateRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Update(ClienteIDEfectivo(c), c.Params("id"), in)
	if err != nil {
		return rolError(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar rol y sus asignaciones
// @Tags         roles
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del rol"
// @Success      200  {object}  dto.MensajeResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/roles/{id} [delete]
func (h *RolHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(ClienteIDEfectivo(c), c.Params("id")); err != nil {
		return rolError(c, err)
	}
	return c.JSON(dto.MensajeResponse{Mensaje: "rol eliminado"})
}

// AsignarRol godoc
// @Summary      Asignar un rol a un usuario
// @Tags         roles
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.AsignarRolRequest  true  "usuario_id y rol_id"
// @Success      200   {object}  dto.MensajeResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/roles/asignar [post]
func (h *RolHandler) AsignarRol(c *fiber.Ctx) error {
	var in dto.AsignarRolRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.UsuarioID == "" || in.RolID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "usuario_id y rol_id son requeridos"})
	}
	actor := GetActor(c)
	if err := h.uc.AsignarRol(ClienteIDEfectivo(c), actor.UserID, in); err != nil {
		if err == domain.ErrDuplicado {
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "YA_ASIGNADO", Message: "el usuario ya tiene ese rol"})
		}
		return rolError(c, err)
	}
	return c.JSON(dto.MensajeResponse{Mensaje: "rol asignado"})
}

// QuitarRol godoc
// @Summary      Quitar un rol a un usuario
// @Tags         roles
// @Security     Bearer
// @Produce      json
// @Param        usuarioId  path  string  true  "ID del usuario"
// @Param        rolId      path  string  true  "ID del rol"
// @Success      200  {object}  dto.MensajeResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/roles/asignar/{usuarioId}/{rolId} [delete]
func (h *RolHandler) QuitarRol(c *fiber.Ctx) error {
	if err := h.uc.QuitarRol(ClienteIDEfectivo(c), c.Params("usuarioId"), c.Params("rolId")); err != nil {
		return rolError(c, err)
	}
	return c.JSON(dto.MensajeResponse{Mensaje: "rol quitado"})
}

func rolError(c *fiber.Ctx, err error) error {
	switch err {
	case domain.ErrNoEncontrado:
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NO_ENCONTRADO", Message: "rol no encontrado"})
	case domain.ErrProhibido:
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "PERMISO_DENEGADO", Message: "el usuario pertenece a otro cliente"})
	case domain.ErrRolExiste:
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "ROL_EXISTE", Message: "ya existe un rol con ese nombre en el cliente"})
	case domain.ErrRolDeSistema:
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "ROL_SISTEMA", Message: "los roles de sistema no se pueden modificar ni eliminar"})
	case domain.ErrPermisoInvalido:
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "PERMISO_INVALIDO", Message: "uno o más permisos no existen en el catálogo"})
	}
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
}
