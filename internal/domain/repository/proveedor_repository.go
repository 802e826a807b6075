package repository

import "github.com/nexusgestion/admin-api/internal/domain/entity"

// ProveedorRepository define el puerto de persistencia para Proveedor.
// Todas las consultas están acotadas al cliente del llamador.
type ProveedorRepository interface {
	Create(proveedor *entity.Proveedor) error
	GetByID(id, clienteID string) (*entity.Proveedor, error)
	GetByCodigo(clienteID, codigo string) (*entity.Proveedor, error)
	ListByCliente(clienteID, estado string) ([]*entity.Proveedor, error)
	Update(proveedor *entity.Proveedor) error
}
