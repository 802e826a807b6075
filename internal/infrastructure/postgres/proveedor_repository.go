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

var _ repository.ProveedorRepository = (*ProveedorRepo)(nil)

// ProveedorRepo implementación del puerto ProveedorRepository sobre PostgreSQL (usable con pool o tx).
type ProveedorRepo struct {
	q Querier
}

// NewProveedorRepository construye el adaptador de persistencia para proveedores. Pasar pool o tx (Querier).
func NewProveedorRepository(q Querier) *ProveedorRepo {
	return &ProveedorRepo{q: q}
}

const proveedorColumns = `id, cliente_id, codigo_proveedor, nombre, razon_social, ruc, telefono, email, direccion, estado, fecha_creacion`

// Create persiste un nuevo proveedor.
func (r *ProveedorRepo) Create(proveedor *entity.Proveedor) error {
	query := `
		INSERT INTO proveedores (` + proveedorColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	_, err := r.q.Exec(context.Background(), query,
		proveedor.ID, proveedor.ClienteID, proveedor.CodigoProveedor, proveedor.Nombre,
		proveedor.RazonSocial, proveedor.RUC, proveedor.Telefono, proveedor.Email,
		proveedor.Direccion, proveedor.Estado, proveedor.FechaCreacion,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicado
		}
		return fmt.Errorf("insert proveedor: %w", err)
	}
	return nil
}

// GetByID obtiene un proveedor por ID dentro del cliente.
func (r *ProveedorRepo) GetByID(id, clienteID string) (*entity.Proveedor, error) {
	query := `SELECT ` + proveedorColumns + ` FROM proveedores WHERE id = $1 AND cliente_id = $2`
	return r.scanOne(r.q.QueryRow(context.Background(), query, id, clienteID))
}

// GetByCodigo obtiene un proveedor por su código dentro del cliente.
func (r *ProveedorRepo) GetByCodigo(clienteID, codigo string) (*entity.Proveedor, error) {
	query := `SELECT ` + proveedorColumns + ` FROM proveedores WHERE cliente_id = $1 AND codigo_proveedor = $2`
	return r.scanOne(r.q.QueryRow(context.Background(), query, clienteID, codigo))
}

func (r *ProveedorRepo) scanOne(row pgx.Row) (*entity.Proveedor, error) {
	var p entity.Proveedor
	err := row.Scan(
		&p.ID, &p.ClienteID, &p.CodigoProveedor, &p.Nombre, &p.RazonSocial,
		&p.RUC, &p.Telefono, &p.Email, &p.Direccion, &p.Estado, &p.FechaCreacion,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get proveedor: %w", err)
	}
	return &p, nil
}

// ListByCliente lista los proveedores del cliente, opcionalmente filtrados por estado.
func (r *ProveedorRepo) ListByCliente(clienteID, estado string) ([]*entity.Proveedor, error) {
	query := `SELECT ` + proveedorColumns + ` FROM proveedores WHERE cliente_id = $1`
	args := []any{clienteID}
	if estado != "" {
		query += ` AND estado = $2`
		args = append(args, estado)
	}
	query += ` ORDER BY nombre`
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list proveedores: %w", err)
	}
	defer rows.Close()
	var list []*entity.Proveedor
	for rows.Next() {
		var p entity.Proveedor
		if err := rows.Scan(
			&p.ID, &p.ClienteID, &p.CodigoProveedor, &p.Nombre, &p.RazonSocial,
			&p.RUC, &p.Telefono, &p.Email, &p.Direccion, &p.Estado, &p.FechaCreacion,
		); err != nil {
			return nil, fmt.Errorf("scan proveedor: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}

// Update actualiza los datos de un proveedor.
func (r *ProveedorRepo) Update(proveedor *entity.Proveedor) error {
	query := `
		UPDATE proveedores SET nombre = $2, razon_social = $3, ruc = $4, telefono = $5,
			email = $6, direccion = $7, estado = $8
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		proveedor.ID, proveedor.Nombre, proveedor.RazonSocial, proveedor.RUC,
		proveedor.Telefono, proveedor.Email, proveedor.Direccion, proveedor.Estado,
	)
	if err != nil {
		return fmt.Errorf("update proveedor: %w", err)
	}
	return nil
}
