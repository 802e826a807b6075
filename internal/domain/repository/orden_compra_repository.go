package repository

import "github.com/nexusgestion/admin-api/internal/domain/entity"

// FiltroOrdenes filtros opcionales para el listado de órdenes de compra.
type FiltroOrdenes struct {
	Estado      string
	ProveedorID *string
}

// OrdenCompraRepository define el puerto de persistencia para OrdenCompra y sus items.
type OrdenCompraRepository interface {
	Create(orden *entity.OrdenCompra) error
	GetByID(id, clienteID string) (*entity.OrdenCompra, error)
	GetByNumero(clienteID, numeroOrden string) (*entity.OrdenCompra, error)
	ListByCliente(clienteID string, filtro FiltroOrdenes) ([]*entity.OrdenCompra, error)
	CreateItem(item *entity.OrdenCompraItem) error
	ListItems(ordenID string) ([]*entity.OrdenCompraItem, error)
	// ActualizarTotales persiste subtotal/impuestos/total recalculados de la orden.
	ActualizarTotales(orden *entity.OrdenCompra) error
}
