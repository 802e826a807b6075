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

var _ repository.ClienteRepository = (*ClienteRepo)(nil)

// ClienteRepo implementación del puerto ClienteRepository sobre PostgreSQL (usable con pool o tx).
type ClienteRepo struct {
	q Querier
}

// NewClienteRepository construye el adaptador de persistencia para clientes. Pasar pool o tx (Querier).
func NewClienteRepository(q Querier) *ClienteRepo {
	return &ClienteRepo{q: q}
}

// Create persiste un nuevo cliente.
func (r *ClienteRepo) Create(cliente *entity.Cliente) error {
	query := `
		INSERT INTO clientes (id, nombre, subdominio, estado, configuracion, fecha_creacion)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.q.Exec(context.Background(), query,
		cliente.ID, cliente.Nombre, cliente.Subdominio, cliente.Estado,
		cliente.Configuracion, cliente.FechaCreacion,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrSubdominioExiste
		}
		return fmt.Errorf("insert cliente: %w", err)
	}
	return nil
}

// GetByID obtiene un cliente por ID.
func (r *ClienteRepo) GetByID(id string) (*entity.Cliente, error) {
	query := `
		SELECT id, nombre, subdominio, estado, configuracion, fecha_creacion
		FROM clientes WHERE id = $1`
	return r.scanOne(r.q.QueryRow(context.Background(), query, id))
}

// GetBySubdominio obtiene un cliente por su subdominio canónico.
func (r *ClienteRepo) GetBySubdominio(subdominio string) (*entity.Cliente, error) {
	query := `
		SELECT id, nombre, subdominio, estado, configuracion, fecha_creacion
		FROM clientes WHERE subdominio = $1`
	return r.scanOne(r.q.QueryRow(context.Background(), query, subdominio))
}

func (r *ClienteRepo) scanOne(row pgx.Row) (*entity.Cliente, error) {
	var c entity.Cliente
	err := row.Scan(&c.ID, &c.Nombre, &c.Subdominio, &c.Estado, &c.Configuracion, &c.FechaCreacion)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get cliente: %w", err)
	}
	return &c, nil
}

// List lista todos los clientes del sistema.
func (r *ClienteRepo) List() ([]*entity.Cliente, error) {
	query := `
		SELECT id, nombre, subdominio, estado, configuracion, fecha_creacion
		FROM clientes ORDER BY fecha_creacion DESC`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list clientes: %w", err)
	}
	defer rows.Close()
	var list []*entity.Cliente
	for rows.Next() {
		var c entity.Cliente
		if err := rows.Scan(&c.ID, &c.Nombre, &c.Subdominio, &c.Estado, &c.Configuracion, &c.FechaCreacion); err != nil {
			return nil, fmt.Errorf("scan cliente: %w", err)
		}
		list = append(list, &c)
	}
	return list, rows.Err()
}

// Update actualiza nombre, estado y configuración de un cliente.
func (r *ClienteRepo) Update(cliente *entity.Cliente) error {
	query := `
		UPDATE clientes SET nombre = $2, estado = $3, configuracion = $4
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		cliente.ID, cliente.Nombre, cliente.Estado, cliente.Configuracion,
	)
	if err != nil {
		return fmt.Errorf("update cliente: %w", err)
	}
	return nil
}

// CreateContacto persiste un contacto de cliente.
func (r *ClienteRepo) CreateContacto(contacto *entity.ContactoCliente) error {
	query := `
		INSERT INTO contactos_clientes (id, cliente_id, nombre_contacto, rol, telefono, email)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.q.Exec(context.Background(), query,
		contacto.ID, contacto.ClienteID, contacto.NombreContacto,
		contacto.Rol, contacto.Telefono, contacto.Email,
	)
	if err != nil {
		return fmt.Errorf("insert contacto: %w", err)
	}
	return nil
}

// ListContactos lista los contactos de un cliente.
func (r *ClienteRepo) ListContactos(clienteID string) ([]*entity.ContactoCliente, error) {
	query := `
		SELECT id, cliente_id, nombre_contacto, rol, telefono, email
		FROM contactos_clientes WHERE cliente_id = $1 ORDER BY nombre_contacto`
	rows, err := r.q.Query(context.Background(), query, clienteID)
	if err != nil {
		return nil, fmt.Errorf("list contactos: %w", err)
	}
	defer rows.Close()
	var list []*entity.ContactoCliente
	for rows.Next() {
		var c entity.ContactoCliente
		if err := rows.Scan(&c.ID, &c.ClienteID, &c.NombreContacto, &c.Rol, &c.Telefono, &c.Email); err != nil {
			return nil, fmt.Errorf("scan contacto: %w", err)
		}
		list = append(list, &c)
	}
	return list, rows.Err()
}
