package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/nexusgestion/admin-api/internal/domain"
	"github.com/nexusgestion/admin-api/internal/domain/entity"
	"github.com/nexusgestion/admin-api/internal/domain/repository"
)

var _ repository.AjusteInventarioRepository = (*AjusteInventarioRepo)(nil)
var _ repository.AlertaStockRepository = (*AlertaStockRepo)(nil)

// AjusteInventarioRepo implementación del puerto AjusteInventarioRepository sobre PostgreSQL (usable con pool o tx).
type AjusteInventarioRepo struct {
	q Querier
}

// NewAjusteInventarioRepository construye el adaptador de persistencia para ajustes. Pasar pool o tx (Querier).
func NewAjusteInventarioRepository(q Querier) *AjusteInventarioRepo {
	return &AjusteInventarioRepo{q: q}
}

const ajusteColumns = `id, cliente_id, usuario_creador_id, numero_ajuste, tipo_ajuste, estado, motivo, fecha_ajuste`

// Create persiste un nuevo ajuste de inventario.
func (r *AjusteInventarioRepo) Create(ajuste *entity.AjusteInventario) error {
	query := `
		INSERT INTO ajustes_inventario (` + ajusteColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(context.Background(), query,
		ajuste.ID, ajuste.ClienteID, ajuste.UsuarioCreadorID, ajuste.NumeroAjuste,
		ajuste.TipoAjuste, ajuste.Estado, ajuste.Motivo, ajuste.FechaAjuste,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicado
		}
		return fmt.Errorf("insert ajuste: %w", err)
	}
	return nil
}

// GetByNumero obtiene un ajuste por su número dentro del cliente.
func (r *AjusteInventarioRepo) GetByNumero(clienteID, numeroAjuste string) (*entity.AjusteInventario, error) {
	query := `SELECT ` + ajusteColumns + ` FROM ajustes_inventario WHERE cliente_id = $1 AND numero_ajuste = $2`
	var a entity.AjusteInventario
	err := r.q.QueryRow(context.Background(), query, clienteID, numeroAjuste).Scan(
		&a.ID, &a.ClienteID, &a.UsuarioCreadorID, &a.NumeroAjuste,
		&a.TipoAjuste, &a.Estado, &a.Motivo, &a.FechaAjuste,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get ajuste: %w", err)
	}
	return &a, nil
}

// ListByCliente lista los ajustes del cliente con filtros opcionales.
func (r *AjusteInventarioRepo) ListByCliente(clienteID, estado, tipoAjuste string) ([]*entity.AjusteInventario, error) {
	query := `SELECT ` + ajusteColumns + ` FROM ajustes_inventario WHERE cliente_id = $1`
	args := []any{clienteID}
	if estado != "" {
		args = append(args, estado)
		query += fmt.Sprintf(` AND estado = $%d`, len(args))
	}
	if tipoAjuste != "" {
		args = append(args, tipoAjuste)
		query += fmt.Sprintf(` AND tipo_ajuste = $%d`, len(args))
	}
	query += ` ORDER BY fecha_ajuste DESC`
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list ajustes: %w", err)
	}
	defer rows.Close()
	var list []*entity.AjusteInventario
	for rows.Next() {
		var a entity.AjusteInventario
		if err := rows.Scan(
			&a.ID, &a.ClienteID, &a.UsuarioCreadorID, &a.NumeroAjuste,
			&a.TipoAjuste, &a.Estado, &a.Motivo, &a.FechaAjuste,
		); err != nil {
			return nil, fmt.Errorf("scan ajuste: %w", err)
		}
		list = append(list, &a)
	}
	return list, rows.Err()
}

// AlertaStockRepo implementación del puerto AlertaStockRepository sobre PostgreSQL (usable con pool o tx).
type AlertaStockRepo struct {
	q Querier
}

// NewAlertaStockRepository construye el adaptador de persistencia para alertas de stock. Pasar pool o tx (Querier).
func NewAlertaStockRepository(q Querier) *AlertaStockRepo {
	return &AlertaStockRepo{q: q}
}

const alertaColumns = `id, cliente_id, producto_id, tipo_alerta, mensaje, leida, fecha_alerta`

// ListByCliente lista las alertas del cliente con filtros opcionales.
func (r *AlertaStockRepo) ListByCliente(clienteID string, leida *bool, tipoAlerta string) ([]*entity.AlertaStock, error) {
	query := `SELECT ` + alertaColumns + ` FROM alertas_stock WHERE cliente_id = $1`
	args := []any{clienteID}
	if leida != nil {
		args = append(args, *leida)
		query += fmt.Sprintf(` AND leida = $%d`, len(args))
	}
	if tipoAlerta != "" {
		args = append(args, tipoAlerta)
		query += fmt.Sprintf(` AND tipo_alerta = $%d`, len(args))
	}
	query += ` ORDER BY fecha_alerta DESC`
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list alertas: %w", err)
	}
	defer rows.Close()
	var list []*entity.AlertaStock
	for rows.Next() {
		var a entity.AlertaStock
		if err := rows.Scan(&a.ID, &a.ClienteID, &a.ProductoID, &a.TipoAlerta, &a.Mensaje, &a.Leida, &a.FechaAlerta); err != nil {
			return nil, fmt.Errorf("scan alerta: %w", err)
		}
		list = append(list, &a)
	}
	return list, rows.Err()
}

// GetByID obtiene una alerta por ID dentro del cliente.
func (r *AlertaStockRepo) GetByID(id, clienteID string) (*entity.AlertaStock, error) {
	query := `SELECT ` + alertaColumns + ` FROM alertas_stock WHERE id = $1 AND cliente_id = $2`
	var a entity.AlertaStock
	err := r.q.QueryRow(context.Background(), query, id, clienteID).Scan(
		&a.ID, &a.ClienteID, &a.ProductoID, &a.TipoAlerta, &a.Mensaje, &a.Leida, &a.FechaAlerta,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get alerta: %w", err)
	}
	return &a, nil
}

// MarcarLeida marca la alerta como leída.
func (r *AlertaStockRepo) MarcarLeida(id string) error {
	_, err := r.q.Exec(context.Background(), `UPDATE alertas_stock SET leida = TRUE WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("marcar alerta leida: %w", err)
	}
	return nil
}
