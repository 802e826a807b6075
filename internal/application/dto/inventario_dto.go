package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CategoriaCreateRequest alta de categoría. PadreID opcional (subcategoría).
type CategoriaCreateRequest struct {
	Nombre      string  `json:"nombre"`
	Descripcion string  `json:"descripcion"`
	PadreID     *string `json:"padre_id"`
}

// CategoriaResponse proyección de una categoría.
type CategoriaResponse struct {
	ID          string  `json:"id"`
	ClienteID   string  `json:"cliente_id"`
	Nombre      string  `json:"nombre"`
	Descripcion string  `json:"descripcion"`
	PadreID     *string `json:"padre_id"`
}

// ProductoCreateRequest alta de producto. El stock arranca en cero.
type ProductoCreateRequest struct {
	CategoriaID    *string         `json:"categoria_id"`
	ProveedorID    *string         `json:"proveedor_id"`
	CodigoProducto string          `json:"codigo_producto"`
	Nombre         string          `json:"nombre"`
	Descripcion    string          `json:"descripcion"`
	PrecioCompra   decimal.Decimal `json:"precio_compra"`
	PrecioVenta    decimal.Decimal `json:"precio_venta"`
	StockMinimo    int             `json:"stock_minimo"`
}

// ProductoResponse proyección de un producto con stock.
type ProductoResponse struct {
	ID              string          `json:"id"`
	ClienteID       string          `json:"cliente_id"`
	CategoriaID     *string         `json:"categoria_id"`
	ProveedorID     *string         `json:"proveedor_id"`
	CodigoProducto  string          `json:"codigo_producto"`
	Nombre          string          `json:"nombre"`
	Descripcion     string          `json:"descripcion"`
	PrecioCompra    decimal.Decimal `json:"precio_compra"`
	PrecioVenta     decimal.Decimal `json:"precio_venta"`
	StockActual     int             `json:"stock_actual"`
	StockReservado  int             `json:"stock_reservado"`
	StockDisponible int             `json:"stock_disponible"`
	StockMinimo     int             `json:"stock_minimo"`
	Estado          string          `json:"estado"`
}

// AjusteInventarioCreateRequest alta de ajuste manual de inventario.
type AjusteInventarioCreateRequest struct {
	NumeroAjuste string `json:"numero_ajuste"`
	TipoAjuste   string `json:"tipo_ajuste"`
	Motivo       string `json:"motivo"`
}

// AjusteInventarioResponse proyección de un ajuste.
type AjusteInventarioResponse struct {
	ID           string    `json:"id"`
	ClienteID    string    `json:"cliente_id"`
	NumeroAjuste string    `json:"numero_ajuste"`
	TipoAjuste   string    `json:"tipo_ajuste"`
	Estado       string    `json:"estado"`
	Motivo       string    `json:"motivo"`
	FechaAjuste  time.Time `json:"fecha_ajuste"`
}

// AlertaStockResponse alerta de stock de un producto.
type AlertaStockResponse struct {
	ID          string    `json:"id"`
	ClienteID   string    `json:"cliente_id"`
	ProductoID  string    `json:"producto_id"`
	TipoAlerta  string    `json:"tipo_alerta"`
	Mensaje     string    `json:"mensaje"`
	Leida       bool      `json:"leida"`
	FechaAlerta time.Time `json:"fecha_alerta"`
}
