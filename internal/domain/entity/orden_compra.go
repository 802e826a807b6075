package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados válidos para OrdenCompra.
const (
	OrdenPendiente = "pendiente"
	OrdenAprobada  = "aprobada"
	OrdenRecibida  = "recibida"
	OrdenAnulada   = "anulada"
)

// OrdenCompra orden de compra a un proveedor. NumeroOrden es único por cliente.
// Los totales se recalculan a partir de los items cada vez que se agrega uno.
type OrdenCompra struct {
	ID               string
	ClienteID        string
	ProveedorID      string
	UsuarioCreadorID string
	NumeroOrden      string
	Estado           string
	Subtotal         decimal.Decimal
	Impuestos        decimal.Decimal
	Total            decimal.Decimal
	FechaOrden       time.Time
	FechaEntrega     *time.Time
	Observaciones    string
}

// OrdenCompraItem línea de una orden de compra.
// Subtotal = cantidad solicitada × precio unitario; Total = subtotal + impuestos.
type OrdenCompraItem struct {
	ID                 string
	OrdenCompraID      string
	ProductoID         string
	CantidadSolicitada int
	CantidadRecibida   int
	PrecioUnitario     decimal.Decimal
	Impuestos          decimal.Decimal
	Subtotal           decimal.Decimal
	Total              decimal.Decimal
}
