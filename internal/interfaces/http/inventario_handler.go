package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/nexusgestion/admin-api/internal/application/dto"
	"github.com/nexusgestion/admin-api/internal/application/usecase"
	"github.com/nexusgestion/admin-api/internal/domain"
	"github.com/nexusgestion/admin-api/internal/domain/repository"
)

// InventarioHandler maneja categorías, productos, ajustes y alertas de stock.
// Todas las rutas exigen un cliente concreto en el token.
type InventarioHandler struct {
	uc *usecase.InventarioUseCase
}

// NewInventarioHandler construye el handler.
func NewInventarioHandler(uc *usecase.InventarioUseCase) *InventarioHandler {
	return &InventarioHandler{uc: uc}
}

// CrearCategoria godoc
// @Summary      Crear categoría de productos
// @Tags         inventario
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CategoriaCreateRequest  true  "Datos de la categoría"
// @Success      201   {object}  dto.CategoriaResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/inventario/categorias [post]
func (h *InventarioHandler) CrearCategoria(c *fiber.Ctx) error {
	clienteID, ok := ClienteConcreto(c)
	if !ok {
		return sinCliente(c)
	}
	var in dto.CategoriaCreateRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.Nombre == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "nombre es requerido"})
	}
	out, err := h.uc.CrearCategoria(clienteID, in)
	if err != nil {
		if err == domain.ErrNoEncontrado {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NO_ENCONTRADO", Message: "categoría padre no encontrada"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// ListCategorias godoc
// @Summary      Listar categorías del cliente
// @Tags         inventario
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.CategoriaResponse
// @Router       /api/inventario/categorias [get]
func (h *InventarioHandler) ListCategorias(c *fiber.Ctx) error {
	clienteID, ok := ClienteConcreto(c)
	if !ok {
		return sinCliente(c)
	}
	out, err := h.uc.ListCategorias(clienteID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// CrearProducto godoc
// @Summary      Crear producto
// @Tags         inventario
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ProductoCreateRequest  true  "Datos del producto"
// @Success      201   {object}  dto.ProductoResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/inventario/productos [post]
func (h *InventarioHandler) CrearProducto(c *fiber.Ctx) error {
	clienteID, ok := ClienteConcreto(c)
	if !ok {
		return sinCliente(c)
	}
	var in dto.ProductoCreateRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.CodigoProducto == "" || in.Nombre == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "codigo_producto y nombre son requeridos"})
	}
	out, err := h.uc.CrearProducto(clienteID, in)
	if err != nil {
		switch err {
		case domain.ErrDuplicado:
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "DUPLICADO", Message: "codigo_producto ya existe en este cliente"})
		case domain.ErrNoEncontrado:
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NO_ENCONTRADO", Message: "categoría o proveedor no encontrado"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// ListProductos godoc
// @Summary      Listar productos del cliente
// @Tags         inventario
// @Security     Bearer
// @Produce      json
// @Param        categoria_id  query  string  false  "Filtrar por categoría"
// @Param        proveedor_id  query  string  false  "Filtrar por proveedor"
// @Param        estado        query  string  false  "Filtrar por estado"
// @Success      200  {array}  dto.ProductoResponse
// @Router       /api/inventario/productos [get]
func (h *InventarioHandler) ListProductos(c *fiber.Ctx) error {
	clienteID, ok := ClienteConcreto(c)
	if !ok {
		return sinCliente(c)
	}
	filtro := repository.FiltroProductos{Estado: c.Query("estado")}
	if v := c.Query("categoria_id"); v != "" {
		filtro.CategoriaID = &v
	}
	if v := c.Query("proveedor_id"); v != "" {
		filtro.ProveedorID = &v
	}
	out, err := h.uc.ListProductos(clienteID, filtro)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// GetProducto godoc
// @Summary      Obtener producto por ID
// @Tags         inventario
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del producto"
// @Success      200  {object}  dto.ProductoResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/inventario/productos/{id} [get]
func (h *InventarioHandler) GetProducto(c *fiber.Ctx) error {
	clienteID, ok := ClienteConcreto(c)
	if !ok {
		return sinCliente(c)
	}
	out, err := h.uc.GetProducto(clienteID, c.Params("id"))
	if err != nil {
		if err == domain.ErrNoEncontrado {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NO_ENCONTRADO", Message: "producto no encontrado"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// CrearAjuste godoc
// @Summary      Registrar ajuste manual de inventario
// @Tags         inventario
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.AjusteInventarioCreateRequest  true  "Datos del ajuste"
// @Success      201   {object}  dto.AjusteInventarioResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/inventario/ajustes [post]
func (h *InventarioHandler) CrearAjuste(c *fiber.Ctx) error {
	clienteID, ok := ClienteConcreto(c)
	if !ok {
		return sinCliente(c)
	}
	var in dto.AjusteInventarioCreateRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.NumeroAjuste == "" || in.TipoAjuste == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "numero_ajuste y tipo_ajuste son requeridos"})
	}
	actor := GetActor(c)
	out, err := h.uc.CrearAjuste(clienteID, actor.UserID, in)
	if err != nil {
		if err == domain.ErrDuplicado {
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "DUPLICADO", Message: "numero_ajuste ya existe en este cliente"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// ListAjustes godoc
// @Summary      Listar ajustes de inventario del cliente
// @Tags         inventario
// @Security     Bearer
// @Produce      json
// @Param        estado       query  string  false  "Filtrar por estado"
// @Param        tipo_ajuste  query  string  false  "Filtrar por tipo"
// @Success      200  {array}  dto.AjusteInventarioResponse
// @Router       /api/inventario/ajustes [get]
func (h *InventarioHandler) ListAjustes(c *fiber.Ctx) error {
	clienteID, ok := ClienteConcreto(c)
	if !ok {
		return sinCliente(c)
	}
	out, err := h.uc.ListAjustes(clienteID, c.Query("estado"), c.Query("tipo_ajuste"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// ListAlertas godoc
// @Summary      Listar alertas de stock del cliente
// @Tags         inventario
// @Security     Bearer
// @Produce      json
// @Param        leida        query  bool    false  "Filtrar por leída/no leída"
// @Param        tipo_alerta  query  string  false  "Filtrar por tipo"
// @Success      200  {array}  dto.AlertaStockResponse
// @Router       /api/inventario/alertas [get]
func (h *InventarioHandler) ListAlertas(c *fiber.Ctx) error {
	clienteID, ok := ClienteConcreto(c)
	if !ok {
		return sinCliente(c)
	}
	var leida *bool
	switch c.Query("leida") {
	case "true":
		v := true
		leida = &v
	case "false":
		v := false
		leida = &v
	}
	out, err := h.uc.ListAlertas(clienteID, leida, c.Query("tipo_alerta"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// MarcarAlertaLeida godoc
// @Summary      Marcar alerta de stock como leída
// @Tags         inventario
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID de la alerta"
// @Success      200  {object}  dto.AlertaStockResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/inventario/alertas/{id}/leida [put]
func (h *InventarioHandler) MarcarAlertaLeida(c *fiber.Ctx) error {
	clienteID, ok := ClienteConcreto(c)
	if !ok {
		return sinCliente(c)
	}
	out, err := h.uc.MarcarAlertaLeida(clienteID, c.Params("id"))
	if err != nil {
		if err == domain.ErrNoEncontrado {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NO_ENCONTRADO", Message: "alerta no encontrada"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}
