package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/nexusgestion/admin-api/internal/application/dto"
	"github.com/nexusgestion/admin-api/internal/application/usecase"
	"github.com/nexusgestion/admin-api/internal/domain"
)

// ClienteHandler maneja los tenants (solo super admin).
type ClienteHandler struct {
	uc *usecase.ClienteUseCase
}

// NewClienteHandler construye el handler.
func NewClienteHandler(uc *usecase.ClienteUseCase) *ClienteHandler {
	return &ClienteHandler{uc: uc}
}

// Create godoc
// @Summary      Crear cliente (tenant)
// @Tags         clientes
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ClienteCreateRequest  true  "Datos del cliente"
// @Success      201   {object}  dto.ClienteResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/clientes [post]
func (h *ClienteHandler) Create(c *fiber.Ctx) error {
	var in dto.ClienteCreateRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.Nombre == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "nombre es requerido"})
	}
	out, err := h.uc.Create(in)
	if err != nil {
		if err == domain.ErrSubdominioExiste {
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "SUBDOMINIO_EXISTE", Message: "el subdominio ya está en uso"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      Listar clientes
// @Tags         clientes
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.ClienteResponse
// @Router       /api/clientes [get]
func (h *ClienteHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Obtener cliente por ID
// @Tags         clientes
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del cliente"
// @Success      200  {object}  dto.ClienteResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/clientes/{id} [get]
func (h *ClienteHandler) GetByID(c *fiber.Ctx) error {
	id := c.Params("id")
	out, err := h.uc.GetByID(id)
	if err != nil {
		if err == domain.ErrNoEncontrado {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NO_ENCONTRADO", Message: "cliente no encontrado"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Actualizar cliente
// @Tags         clientes
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del cliente"
// @Param        body  body  dto.ClienteUpdateRequest  true  "Datos a actualizar"
// @Success      200   {object}  dto.ClienteResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/clientes/{id} [put]
func (h *ClienteHandler) Update(c *fiber.Ctx) error {
	id := c.Params("id")
	var in dto.ClienteUpdateRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Update(id, in)
	if err != nil {
		if err == domain.ErrNoEncontrado {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NO_ENCONTRADO", Message: "cliente no encontrado"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// Suspender godoc
// @Summary      Suspender cliente (borrado lógico)
// @Tags         clientes
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del cliente"
// @Success      200  {object}  dto.MensajeResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/clientes/{id} [delete]
func (h *ClienteHandler) Suspender(c *fiber.Ctx) error {
	id := c.Params("id")
	if err := h.uc.Suspender(id); err != nil {
		if err == domain.ErrNoEncontrado {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NO_ENCONTRADO", Message: "cliente no encontrado"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(dto.MensajeResponse{Mensaje: "cliente suspendido"})
}

// CrearContacto godoc
// @Summary      Agregar contacto a un cliente
// @Tags         clientes
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del cliente"
// @Param        body  body  dto.ContactoClienteCreateRequest  true  "Datos del contacto"
// @Success      201   {object}  dto.ContactoClienteResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/clientes/{id}/contactos [post]
func (h *ClienteHandler) CrearContacto(c *fiber.Ctx) error {
	id := c.Params("id")
	var in dto.ContactoClienteCreateRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.NombreContacto == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "nombre_contacto es requerido"})
	}
	out, err := h.uc.CrearContacto(id, in)
	if err != nil {
		if err == domain.ErrNoEncontrado {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NO_ENCONTRADO", Message: "cliente no encontrado"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// ListContactos godoc
// @Summary      Listar contactos de un cliente
// @Tags         clientes
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del cliente"
// @Success      200  {array}  dto.ContactoClienteResponse
// @Router       /api/clientes/{id}/contactos [get]
func (h *ClienteHandler) ListContactos(c *fiber.Ctx) error {
	id := c.Params("id")
	out, err := h.uc.ListContactos(id)
	if err != nil {
		if err == domain.ErrNoEncontrado {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NO_ENCONTRADO", Message: "cliente no encontrado"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}
