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

var _ repository.OrdenCompraRepository = (*OrdenCompraRepo)(nil)

// OrdenCompraRepo implementación del puerto OrdenCompraRepository sobre PostgreSQL (usable con pool o tx).
type OrdenCompraRepo struct {
	q Querier
}

// NewOrdenCompraRepository construye el adaptador de persistencia para órdenes de compra. Pasar pool o tx (Querier).
func NewOrdenCompraRepository(q Querier) *OrdenCompraRepo {
	return &OrdenCompraRepo{q: q}
}

const ordenColumns = `id, cliente_id, proveedor_id, usuario_creador_id, numero_orden, estado, subtotal, impuestos, total, fecha_orden, fecha_entrega, observaciones`

// Create persiste una nueva orden de compra (sin items, totales en cero).
func (r *OrdenCompraRepo) Create(orden *entity.OrdenCompra) error {
	query := `
		INSERT INTO ordenes_compra (` + ordenColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`
	_, err := r.q.Exec(context.Background(), query,
		orden.ID, orden.ClienteID, orden.ProveedorID, orden.UsuarioCreadorID,
		orden.NumeroOrden, orden.Estado, orden.Subtotal, orden.Impuestos, orden.Total,
		orden.FechaOrden, orden.FechaEntrega, orden.Observaciones,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicado
		}
		return fmt.Errorf("insert orden de compra: %w", err)
	}
	return nil
}

// GetByID obtiene una orden por ID dentro del cliente.
func (r *OrdenCompraRepo) GetByID(id, clienteID string) (*entity.OrdenCompra, error) {
	query := `SELECT ` + ordenColumns + ` FROM ordenes_compra WHERE id = $1 AND cliente_id = $2`
	return r.scanOne(r.q.QueryRow(context.Background(), query, id, clienteID))
}

// GetByNumero obtiene una orden por su número dentro del cliente.
func (r *OrdenCompraRepo) GetByNumero(clienteID, numeroOrden string) (*entity.OrdenCompra, error) {
	query := `SELECT ` + ordenColumns + ` FROM ordenes_compra WHERE cliente_id = $1 AND numero_orden = $2`
	return r.scanOne(r.q.QueryRow(context.Background(), query, clienteID, numeroOrden))
}

func (r *OrdenCompraRepo) scanOne(row pgx.Row) (*entity.OrdenCompra, error) {
	var o entity.OrdenCompra
	err := row.Scan(
		&o.ID, &o.ClienteID, &o.ProveedorID, &o.UsuarioCreadorID, &o.NumeroOrden,
		&o.Estado, &o.Subtotal, &o.Impuestos, &o.Total,
		&o.FechaOrden, &o.FechaEntrega, &o.Observaciones,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get orden de compra: %w", err)
	}
	return &o, nil
}

// ListByCliente lista las órdenes del cliente aplicando los filtros opcionales.
func (r *OrdenCompraRepo) ListByCliente(clienteID string, filtro repository.FiltroOrdenes) ([]*entity.OrdenCompra, error) {
	query := `SELECT ` + ordenColumns + ` FROM ordenes_compra WHERE cliente_id = $1`
	args := []any{clienteID}
	if filtro.Estado != "" {
		args = append(args, filtro.Estado)
		query += fmt.Sprintf(` AND estado = $%d`, len(args))
	}
	if filtro.ProveedorID != nil {
		args = append(args, *filtro.ProveedorID)
		query += fmt.Sprintf(` AND proveedor_id = $%d`, len(args))
	}
	query += ` ORDER BY fecha_orden DESC`
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list ordenes de compra: %w", err)
	}
	defer rows.Close()
	var list []*entity.OrdenCompra
	for rows.Next() {
		var o entity.OrdenCompra
		if err := rows.Scan(
			&o.ID, &o.ClienteID, &o.ProveedorID, &o.UsuarioCreadorID, &o.NumeroOrden,
			&o.Estado, &o.Subtotal, &o.Impuestos, &o.Total,
			&o.FechaOrden, &o.FechaEntrega, &o.Observaciones,
		); err != nil {
			return nil, fmt.Errorf("scan orden de compra: %w", err)
		}
		list = append(list, &o)
	}
	return list, rows.Err()
}

// CreateItem persiste una línea de la orden.
func (r *OrdenCompraRepo) CreateItem(item *entity.OrdenCompraItem) error {
	query := `
		INSERT INTO ordenes_compra_items (id, orden_compra_id, producto_id, cantidad_solicitada, cantidad_recibida, precio_unitario, impuestos, subtotal, total)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(context.Background(), query,
		item.ID, item.OrdenCompraID, item.ProductoID,
		item.CantidadSolicitada, item.CantidadRecibida,
		item.PrecioUnitario, item.Impuestos, item.Subtotal, item.Total,
	)
	if err != nil {
		return fmt.Errorf("insert item de orden: %w", err)
	}
	return nil
}

// ListItems lista las líneas de una orden.
func (r *OrdenCompraRepo) ListItems(ordenID string) ([]*entity.OrdenCompraItem, error) {
	query := `
		SELECT id, orden_compra_id, producto_id, cantidad_solicitada, cantidad_recibida, precio_unitario, impuestos, subtotal, total
		FROM ordenes_compra_items WHERE orden_compra_id = $1`
	rows, err := r.q.Query(context.Background(), query, ordenID)
	if err != nil {
		return nil, fmt.Errorf("list items de orden: %w", err)
	}
	defer rows.Close()
	var list []*entity.OrdenCompraItem
	for rows.Next() {
		var it entity.OrdenCompraItem
		if err := rows.Scan(
			&it.ID, &it.OrdenCompraID, &it.ProductoID,
			&it.CantidadSolicitada, &it.CantidadRecibida,
			&it.PrecioUnitario, &it.Impuestos, &it.Subtotal, &it.Total,
		); err != nil {
			return nil, fmt.Errorf("scan item de orden: %w", err)
		}
		list = append(list, &it)
	}
	return list, rows.Err()
}

// ActualizarTotales persiste los totales recalculados de la orden.
func (r *OrdenCompraRepo) ActualizarTotales(orden *entity.OrdenCompra) error {
	query := `UPDATE ordenes_compra SET subtotal = $2, impuestos = $3, total = $4 WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		orden.ID, orden.Subtotal, orden.Impuestos, orden.Total,
	)
	if err != nil {
		return fmt.Errorf("update totales de orden: %w", err)
	}
	return nil
}
