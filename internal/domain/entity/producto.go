package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Producto del inventario de un cliente. CodigoProducto es único por cliente.
type Producto struct {
	ID              string
	ClienteID       string
	CategoriaID     *string
	ProveedorID     *string
	CodigoProducto  string
	Nombre          string
	Descripcion     string
	PrecioCompra    decimal.Decimal
	PrecioVenta     decimal.Decimal
	StockActual     int
	StockReservado  int
	StockDisponible int
	StockMinimo     int
	Estado          string // activo, inactivo
	FechaCreacion   time.Time
}
