package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// FacturaProveedor factura recibida de un proveedor. NumeroFactura es único
// por proveedor dentro del cliente. SaldoPendiente arranca igual al total.
type FacturaProveedor struct {
	ID               string
	ClienteID        string
	ProveedorID      string
	OrdenCompraID    *string
	NumeroFactura    string
	Estado           string // pendiente, pagada, vencida, anulada
	Subtotal         decimal.Decimal
	Impuestos        decimal.Decimal
	Total            decimal.Decimal
	SaldoPendiente   decimal.Decimal
	FechaEmision     time.Time
	FechaVencimiento time.Time
}
