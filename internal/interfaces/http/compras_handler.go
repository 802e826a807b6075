package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/nexusgestion/admin-api/internal/application/dto"
	"github.com/nexusgestion/admin-api/internal/application/usecase"
	"github.com/nexusgestion/admin-api/internal/domain"
	"github.com/nexusgestion/admin-api/internal/domain/repository"
)

// ComprasHandler maneja proveedores, órdenes de compra y facturas de
// proveedor. Todas las rutas exigen un cliente concreto en el token.
type ComprasHandler struct {
	uc *usecase.ComprasUseCase
}

// NewComprasHandler construye el handler.
func NewComprasHandler(uc *usecase.ComprasUseCase) *ComprasHandler {
	return &ComprasHandler{uc: uc}
}

func sinCliente(c *fiber.Ctx) error {
	return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{
		Code:    "SIN_CLIENTE",
		Message: "esta operación requiere un cliente asignado en el token",
	})
}

// CrearProveedor godoc
// @Summary      Crear proveedor
// @Tags         compras
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ProveedorCreateRequest  true  "Datos del proveedor"
// @Success      201   {object}  dto.ProveedorResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/compras/proveedores [post]
func (h *ComprasHandler) CrearProveedor(c *fiber.Ctx) error {
	clienteID, ok := ClienteConcreto(c)
	if !ok {
		return sinCliente(c)
	}
	var in dto.ProveedorCreateRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.Nombre == "" || in.CodigoProveedor == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "nombre y codigo_proveedor son requeridos"})
	}
	out, err := h.uc.CrearProveedor(clienteID, in)
	if err != nil {
		if err == domain.ErrDuplicado {
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "DUPLICADO", Message: "codigo_proveedor ya existe en este cliente"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// ListProveedores godoc
// @Summary      Listar proveedores del cliente
// @Tags         compras
// @Security     Bearer
// @Produce      json
// @Param        estado  query  string  false  "Filtrar por estado"
// @Success      200  {array}  dto.ProveedorResponse
// @Router       /api/compras/proveedores [get]
func (h *ComprasHandler) ListProveedores(c *fiber.Ctx) error {
	clienteID, ok := ClienteConcreto(c)
	if !ok {
		return sinCliente(c)
	}
	out, err := h.uc.ListProveedores(clienteID, c.Query("estado"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// GetProveedor godoc
// @Summary      Obtener proveedor por ID
// @Tags         compras
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del proveedor"
// @Success      200  {object}  dto.ProveedorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/compras/proveedores/{id} [get]
func (h *ComprasHandler) GetProveedor(c *fiber.Ctx) error {
	clienteID, ok := ClienteConcreto(c)
	if !ok {
		return sinCliente(c)
	}
	out, err := h.uc.GetProveedor(clienteID, c.Params("id"))
	if err != nil {
		if err == domain.ErrNoEncontrado {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NO_ENCONTRADO", Message: "proveedor no encontrado"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// CrearOrden godoc
// @Summary      Crear orden de compra (sin items)
// @Tags         compras
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.OrdenCompraCreateRequest  true  "Datos de la orden"
// @Success      201   {object}  dto.OrdenCompraResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/compras/ordenes [post]
func (h *ComprasHandler) CrearOrden(c *fiber.Ctx) error {
	clienteID, ok := ClienteConcreto(c)
	if !ok {
		return sinCliente(c)
	}
	var in dto.OrdenCompraCreateRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.ProveedorID == "" || in.NumeroOrden == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "proveedor_id y numero_orden son requeridos"})
	}
	actor := GetActor(c)
	out, err := h.uc.CrearOrden(clienteID, actor.UserID, in)
	if err != nil {
		switch err {
		case domain.ErrNoEncontrado:
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NO_ENCONTRADO", Message: "proveedor no encontrado"})
		case domain.ErrDuplicado:
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "DUPLICADO", Message: "numero_orden ya existe en este cliente"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// ListOrdenes godoc
// @Summary      Listar órdenes de compra del cliente
// @Tags         compras
// @Security     Bearer
// @Produce      json
// @Param        estado        query  string  false  "Filtrar por estado"
// @Param        proveedor_id  query  string  false  "Filtrar por proveedor"
// @Success      200  {array}  dto.OrdenCompraResponse
// @Router       /api/compras/ordenes [get]
func (h *ComprasHandler) ListOrdenes(c *fiber.Ctx) error {
	clienteID, ok := ClienteConcreto(c)
	if !ok {
		return sinCliente(c)
	}
	filtro := repository.FiltroOrdenes{Estado: c.Query("estado")}
	if p := c.Query("proveedor_id"); p != "" {
		filtro.ProveedorID = &p
	}
	out, err := h.uc.ListOrdenes(clienteID, filtro)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// GetOrden godoc
// @Summary      Obtener orden de compra con sus items
// @Tags         compras
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID de la orden"
// @Success      200  {object}  dto.OrdenCompraDetalleResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/compras/ordenes/{id} [get]
func (h *ComprasHandler) GetOrden(c *fiber.Ctx) error {
	clienteID, ok := ClienteConcreto(c)
	if !ok {
		return sinCliente(c)
	}
	orden, items, err := h.uc.GetOrden(clienteID, c.Params("id"))
	if err != nil {
		if err == domain.ErrNoEncontrado {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NO_ENCONTRADO", Message: "orden no encontrada"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(dto.OrdenCompraDetalleResponse{OrdenCompraResponse: *orden, Items: items})
}

// AgregarItem godoc
// @Summary      Agregar item a una orden de compra
// @Tags         compras
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID de la orden"
// @Param        body  body  dto.OrdenCompraItemCreateRequest  true  "Línea de la orden"
// @Success      201   {object}  dto.OrdenCompraItemResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/compras/ordenes/{id}/items [post]
func (h *ComprasHandler) AgregarItem(c *fiber.Ctx) error {
	clienteID, ok := ClienteConcreto(c)
	if !ok {
		return sinCliente(c)
	}
	var in dto.OrdenCompraItemCreateRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.ProductoID == "" || in.CantidadSolicitada <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "producto_id y cantidad_solicitada > 0 son requeridos"})
	}
	out, err := h.uc.AgregarItem(clienteID, c.Params("id"), in)
	if err != nil {
		if err == domain.ErrNoEncontrado {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NO_ENCONTRADO", Message: "orden o producto no encontrado"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// DescargarOrdenPDF godoc
// @Summary      Descargar la orden de compra en PDF
// @Tags         compras
// @Security     Bearer
// @Produce      application/pdf
// @Param        id   path  string  true  "ID de la orden"
// @Success      200  {file}  binary
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/compras/ordenes/{id}/pdf [get]
func (h *ComprasHandler) DescargarOrdenPDF(c *fiber.Ctx) error {
	clienteID, ok := ClienteConcreto(c)
	if !ok {
		return sinCliente(c)
	}
	pdfBytes, filename, err := h.uc.DescargarOrdenPDF(c.Context(), clienteID, c.Params("id"))
	if err != nil {
		if err == domain.ErrNoEncontrado {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NO_ENCONTRADO", Message: "orden no encontrada"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Send(pdfBytes)
}

// CrearFactura godoc
// @Summary      Registrar factura de proveedor
// @Tags         compras
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.FacturaProveedorCreateRequest  true  "Datos de la factura"
// @Success      201   {object}  dto.FacturaProveedorResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/compras/facturas [post]
func (h *ComprasHandler) CrearFactura(c *fiber.Ctx) error {
	clienteID, ok := ClienteConcreto(c)
	if !ok {
		return sinCliente(c)
	}
	var in dto.FacturaProveedorCreateRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.ProveedorID == "" || in.NumeroFactura == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "proveedor_id y numero_factura son requeridos"})
	}
	out, err := h.uc.CrearFactura(clienteID, in)
	if err != nil {
		switch err {
		case domain.ErrNoEncontrado:
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NO_ENCONTRADO", Message: "proveedor u orden no encontrada"})
		case domain.ErrDuplicado:
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "DUPLICADO", Message: "numero_factura ya existe para este proveedor"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// ListFacturas godoc
// @Summary      Listar facturas de proveedor del cliente
// @Tags         compras
// @Security     Bearer
// @Produce      json
// @Param        estado        query  string  false  "Filtrar por estado"
// @Param        proveedor_id  query  string  false  "Filtrar por proveedor"
// @Success      200  {array}  dto.FacturaProveedorResponse
// @Router       /api/compras/facturas [get]
func (h *ComprasHandler) ListFacturas(c *fiber.Ctx) error {
	clienteID, ok := ClienteConcreto(c)
	if !ok {
		return sinCliente(c)
	}
	var proveedorID *string
	if p := c.Query("proveedor_id"); p != "" {
		proveedorID = &p
	}
	out, err := h.uc.ListFacturas(clienteID, c.Query("estado"), proveedorID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}
