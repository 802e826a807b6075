package repository

import "github.com/nexusgestion/admin-api/internal/domain/entity"

// FiltroProductos filtros opcionales para el listado de productos.
type FiltroProductos struct {
	CategoriaID *string
	ProveedorID *string
	Estado      string
}

// ProductoRepository define el puerto de persistencia para Producto.
type ProductoRepository interface {
	Create(producto *entity.Producto) error
	GetByID(id, clienteID string) (*entity.Producto, error)
	GetByCodigo(clienteID, codigo string) (*entity.Producto, error)
	ListByCliente(clienteID string, filtro FiltroProductos) ([]*entity.Producto, error)
	Update(producto *entity.Producto) error
}

// CategoriaRepository persistencia de categorías de producto (árbol plano por padre_id).
type CategoriaRepository interface {
	Create(categoria *entity.CategoriaProducto) error
	GetByNombre(clienteID, nombre string) (*entity.CategoriaProducto, error)
	ListByCliente(clienteID string) ([]*entity.CategoriaProducto, error)
}
