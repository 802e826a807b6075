package repository

import "github.com/nexusgestion/admin-api/internal/domain/entity"

// FacturaProveedorRepository define el puerto de persistencia para FacturaProveedor.
type FacturaProveedorRepository interface {
	Create(factura *entity.FacturaProveedor) error
	GetByNumero(clienteID, proveedorID, numeroFactura string) (*entity.FacturaProveedor, error)
	ListByCliente(clienteID string, estado string, proveedorID *string) ([]*entity.FacturaProveedor, error)
}
