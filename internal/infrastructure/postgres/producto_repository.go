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

var _ repository.ProductoRepository = (*ProductoRepo)(nil)

// ProductoRepo implementación del puerto ProductoRepository sobre PostgreSQL (usable con pool o tx).
type ProductoRepo struct {
	q Querier
}

// NewProductoRepository construye el adaptador de persistencia para productos. Pasar pool o tx (Querier).
func NewProductoRepository(q Querier) *ProductoRepo {
	return &ProductoRepo{q: q}
}

const productoColumns = `id, cliente_id, categoria_id, proveedor_id, codigo_producto, nombre, descripcion, precio_compra, precio_venta, stock_actual, stock_reservado, stock_disponible, stock_minimo, estado, fecha_creacion`

// Create persiste un nuevo producto. Los stocks inician en 0.
func (r *ProductoRepo) Create(producto *entity.Producto) error {
	query := `
		INSERT INTO productos (` + productoColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)`
	_, err := r.q.Exec(context.Background(), query,
		producto.ID, producto.ClienteID, producto.CategoriaID, producto.ProveedorID,
		producto.CodigoProducto, producto.Nombre, producto.Descripcion,
		producto.PrecioCompra, producto.PrecioVenta,
		producto.StockActual, producto.StockReservado, producto.StockDisponible, producto.StockMinimo,
		producto.Estado, producto.FechaCreacion,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicado
		}
		return fmt.Errorf("insert producto: %w", err)
	}
	return nil
}

// GetByID obtiene un producto por ID dentro del cliente.
func (r *ProductoRepo) GetByID(id, clienteID string) (*entity.Producto, error) {
	query := `SELECT ` + productoColumns + ` FROM productos WHERE id = $1 AND cliente_id = $2`
	return r.scanOne(r.q.QueryRow(context.Background(), query, id, clienteID))
}

// GetByCodigo obtiene un producto por su código dentro del cliente.
func (r *ProductoRepo) GetByCodigo(clienteID, codigo string) (*entity.Producto, error) {
	query := `SELECT ` + productoColumns + ` FROM productos WHERE cliente_id = $1 AND codigo_producto = $2`
	return r.scanOne(r.q.QueryRow(context.Background(), query, clienteID, codigo))
}

func (r *ProductoRepo) scanOne(row pgx.Row) (*entity.Producto, error) {
	var p entity.Producto
	err := row.Scan(
		&p.ID, &p.ClienteID, &p.CategoriaID, &p.ProveedorID, &p.CodigoProducto,
		&p.Nombre, &p.Descripcion, &p.PrecioCompra, &p.PrecioVenta,
		&p.StockActual, &p.StockReservado, &p.StockDisponible, &p.StockMinimo,
		&p.Estado, &p.FechaCreacion,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get producto: %w", err)
	}
	return &p, nil
}

// ListByCliente lista los productos del cliente aplicando los filtros opcionales.
func (r *ProductoRepo) ListByCliente(clienteID string, filtro repository.FiltroProductos) ([]*entity.Producto, error) {
	query := `SELECT ` + productoColumns + ` FROM productos WHERE cliente_id = $1`
	args := []any{clienteID}
	if filtro.CategoriaID != nil {
		args = append(args, *filtro.CategoriaID)
		query += fmt.Sprintf(` AND categoria_id = $%d`, len(args))
	}
	if filtro.ProveedorID != nil {
		args = append(args, *filtro.ProveedorID)
		query += fmt.Sprintf(` AND proveedor_id = $%d`, len(args))
	}
	if filtro.Estado != "" {
		args = append(args, filtro.Estado)
		query += fmt.Sprintf(` AND estado = $%d`, len(args))
	}
	query += ` ORDER BY nombre`
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list productos: %w", err)
	}
	defer rows.Close()
	var list []*entity.Producto
	for rows.Next() {
		var p entity.Producto
		if err := rows.Scan(
			&p.ID, &p.ClienteID, &p.CategoriaID, &p.ProveedorID, &p.CodigoProducto,
			&p.Nombre, &p.Descripcion, &p.PrecioCompra, &p.PrecioVenta,
			&p.StockActual, &p.StockReservado, &p.StockDisponible, &p.StockMinimo,
			&p.Estado, &p.FechaCreacion,
		); err != nil {
			return nil, fmt.Errorf("scan producto: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}

// Update actualiza los datos y stocks de un producto.
func (r *ProductoRepo) Update(producto *entity.Producto) error {
	query := `
		UPDATE productos SET categoria_id = $2, proveedor_id = $3, nombre = $4, descripcion = $5,
			precio_compra = $6, precio_venta = $7, stock_actual = $8, stock_reservado = $9,
			stock_disponible = $10, stock_minimo = $11, estado = $12
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		producto.ID, producto.CategoriaID, producto.ProveedorID, producto.Nombre, producto.Descripcion,
		producto.PrecioCompra, producto.PrecioVenta, producto.StockActual, producto.StockReservado,
		producto.StockDisponible, producto.StockMinimo, producto.Estado,
	)
	if err != nil {
		return fmt.Errorf("update producto: %w", err)
	}
	return nil
}
