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

var _ repository.FacturaProveedorRepository = (*FacturaProveedorRepo)(nil)

// FacturaProveedorRepo implementación del puerto FacturaProveedorRepository sobre PostgreSQL (usable con pool o tx).
type FacturaProveedorRepo struct {
	q Querier
}

// NewFacturaProveedorRepository construye el adaptador de persistencia para facturas de proveedor. Pasar pool o tx (Querier).
func NewFacturaProveedorRepository(q Querier) *FacturaProveedorRepo {
	return &FacturaProveedorRepo{q: q}
}

const facturaColumns = `id, cliente_id, proveedor_id, orden_compra_id, numero_factura, estado, subtotal, impuestos, total, saldo_pendiente, fecha_emision, fecha_vencimiento`

// Create persiste una nueva factura de proveedor.
func (r *FacturaProveedorRepo) Create(factura *entity.FacturaProveedor) error {
	query := `
		INSERT INTO facturas_proveedores (` + facturaColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`
	_, err := r.q.Exec(context.Background(), query,
		factura.ID, factura.ClienteID, factura.ProveedorID, factura.OrdenCompraID,
		factura.NumeroFactura, factura.Estado,
		factura.Subtotal, factura.Impuestos, factura.Total, factura.SaldoPendiente,
		factura.FechaEmision, factura.FechaVencimiento,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicado
		}
		return fmt.Errorf("insert factura de proveedor: %w", err)
	}
	return nil
}

// GetByNumero obtiene una factura por número dentro del proveedor y cliente.
func (r *FacturaProveedorRepo) GetByNumero(clienteID, proveedorID, numeroFactura string) (*entity.FacturaProveedor, error) {
	query := `
		SELECT ` + facturaColumns + ` FROM facturas_proveedores
		WHERE cliente_id = $1 AND proveedor_id = $2 AND numero_factura = $3`
	var f entity.FacturaProveedor
	err := r.q.QueryRow(context.Background(), query, clienteID, proveedorID, numeroFactura).Scan(
		&f.ID, &f.ClienteID, &f.ProveedorID, &f.OrdenCompraID, &f.NumeroFactura, &f.Estado,
		&f.Subtotal, &f.Impuestos, &f.Total, &f.SaldoPendiente,
		&f.FechaEmision, &f.FechaVencimiento,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get factura de proveedor: %w", err)
	}
	return &f, nil
}

// ListByCliente lista las facturas del cliente, opcionalmente por estado y proveedor.
func (r *FacturaProveedorRepo) ListByCliente(clienteID string, estado string, proveedorID *string) ([]*entity.FacturaProveedor, error) {
	query := `SELECT ` + facturaColumns + ` FROM facturas_proveedores WHERE cliente_id = $1`
	args := []any{clienteID}
	if estado != "" {
		args = append(args, estado)
		query += fmt.Sprintf(` AND estado = $%d`, len(args))
	}
	if proveedorID != nil {
		args = append(args, *proveedorID)
		query += fmt.Sprintf(` AND proveedor_id = $%d`, len(args))
	}
	query += ` ORDER BY fecha_emision DESC`
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list facturas de proveedor: %w", err)
	}
	defer rows.Close()
	var list []*entity.FacturaProveedor
	for rows.Next() {
		var f entity.FacturaProveedor
		if err := rows.Scan(
			&f.ID, &f.ClienteID, &f.ProveedorID, &f.OrdenCompraID, &f.NumeroFactura, &f.Estado,
			&f.Subtotal, &f.Impuestos, &f.Total, &f.SaldoPendiente,
			&f.FechaEmision, &f.FechaVencimiento,
		); err != nil {
			return nil, fmt.Errorf("scan factura de proveedor: %w", err)
		}
		list = append(list, &f)
	}
	return list, rows.Err()
}
