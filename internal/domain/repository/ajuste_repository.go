package repository

import "github.com/nexusgestion/admin-api/internal/domain/entity"

// AjusteInventarioRepository persistencia de ajustes manuales de inventario.
type AjusteInventarioRepository interface {
	Create(ajuste *entity.AjusteInventario) error
	GetByNumero(clienteID, numeroAjuste string) (*entity.AjusteInventario, error)
	ListByCliente(clienteID, estado, tipoAjuste string) ([]*entity.AjusteInventario, error)
}

// AlertaStockRepository persistencia de alertas de stock.
type AlertaStockRepository interface {
	ListByCliente(clienteID string, leida *bool, tipoAlerta string) ([]*entity.AlertaStock, error)
	GetByID(id, clienteID string) (*entity.AlertaStock, error)
	MarcarLeida(id string) error
}
