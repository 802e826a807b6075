package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// ProveedorCreateRequest alta de proveedor.
type ProveedorCreateRequest struct {
	CodigoProveedor string `json:"codigo_proveedor"`
	Nombre          string `json:"nombre"`
	RazonSocial     string `json:"razon_social"`
	RUC             string `json:"ruc"`
	Telefono        string `json:"telefono"`
	Email           string `json:"email"`
	Direccion       string `json:"direccion"`
}

// ProveedorResponse proyección de un proveedor.
type ProveedorResponse struct {
	ID              string    `json:"id"`
	ClienteID       string    `json:"cliente_id"`
	CodigoProveedor string    `json:"codigo_proveedor"`
	Nombre          string    `json:"nombre"`
	RazonSocial     string    `json:"razon_social"`
	RUC             string    `json:"ruc"`
	Telefono        string    `json:"telefono"`
	Email           string    `json:"email"`
	Direccion       string    `json:"direccion"`
	Estado          string    `json:"estado"`
	FechaCreacion   time.Time `json:"fecha_creacion"`
}

// OrdenCompraCreateRequest alta de orden de compra (sin items; se agregan después).
type OrdenCompraCreateRequest struct {
	ProveedorID   string     `json:"proveedor_id"`
	NumeroOrden   string     `json:"numero_orden"`
	FechaEntrega  *time.Time `json:"fecha_entrega"`
	Observaciones string     `json:"observaciones"`
}

// OrdenCompraItemCreateRequest línea nueva para una orden existente.
type OrdenCompraItemCreateRequest struct {
	ProductoID         string          `json:"producto_id"`
	CantidadSolicitada int             `json:"cantidad_solicitada"`
	PrecioUnitario     decimal.Decimal `json:"precio_unitario"`
	Impuestos          decimal.Decimal `json:"impuestos"`
}

// OrdenCompraItemResponse línea de orden con sus montos calculados.
type OrdenCompraItemResponse struct {
	ID                 string          `json:"id"`
	OrdenCompraID      string          `json:"orden_compra_id"`
	ProductoID         string          `json:"producto_id"`
	CantidadSolicitada int             `json:"cantidad_solicitada"`
	CantidadRecibida   int             `json:"cantidad_recibida"`
	PrecioUnitario     decimal.Decimal `json:"precio_unitario"`
	Impuestos          decimal.Decimal `json:"impuestos"`
	Subtotal           decimal.Decimal `json:"subtotal"`
	Total              decimal.Decimal `json:"total"`
}

// OrdenCompraResponse orden con totales vigentes.
type OrdenCompraResponse struct {
	ID            string          `json:"id"`
	ClienteID     string          `json:"cliente_id"`
	ProveedorID   string          `json:"proveedor_id"`
	NumeroOrden   string          `json:"numero_orden"`
	Estado        string          `json:"estado"`
	Subtotal      decimal.Decimal `json:"subtotal"`
	Impuestos     decimal.Decimal `json:"impuestos"`
	Total         decimal.Decimal `json:"total"`
	FechaOrden    time.Time       `json:"fecha_orden"`
	FechaEntrega  *time.Time      `json:"fecha_entrega"`
	Observaciones string          `json:"observaciones"`
}

// OrdenCompraDetalleResponse orden con sus líneas.
type OrdenCompraDetalleResponse struct {
	OrdenCompraResponse
	Items []*OrdenCompraItemResponse `json:"items"`
}

// FacturaProveedorCreateRequest alta de factura de proveedor.
type FacturaProveedorCreateRequest struct {
	ProveedorID      string          `json:"proveedor_id"`
	OrdenCompraID    *string         `json:"orden_compra_id"`
	NumeroFactura    string          `json:"numero_factura"`
	Subtotal         decimal.Decimal `json:"subtotal"`
	Impuestos        decimal.Decimal `json:"impuestos"`
	Total            decimal.Decimal `json:"total"`
	FechaEmision     time.Time       `json:"fecha_emision"`
	FechaVencimiento time.Time       `json:"fecha_vencimiento"`
}

// FacturaProveedorResponse proyección de una factura de proveedor.
type FacturaProveedorResponse struct {
	ID               string          `json:"id"`
	ClienteID        string          `json:"cliente_id"`
	ProveedorID      string          `json:"proveedor_id"`
	OrdenCompraID    *string         `json:"orden_compra_id"`
	NumeroFactura    string          `json:"numero_factura"`
	Estado           string          `json:"estado"`
	Subtotal         decimal.Decimal `json:"subtotal"`
	Impuestos        decimal.Decimal `json:"impuestos"`
	Total            decimal.Decimal `json:"total"`
	SaldoPendiente   decimal.Decimal `json:"saldo_pendiente"`
	FechaEmision     time.Time       `json:"fecha_emision"`
	FechaVencimiento time.Time       `json:"fecha_vencimiento"`
}
