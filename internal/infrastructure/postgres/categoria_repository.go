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

var _ repository.CategoriaRepository = (*CategoriaRepo)(nil)

// CategoriaRepo implementación del puerto CategoriaRepository sobre PostgreSQL (usable con pool o tx).
type CategoriaRepo struct {
	q Querier
}

// NewCategoriaRepository construye el adaptador de persistencia para categorías. Pasar pool o tx (Querier).
func NewCategoriaRepository(q Querier) *CategoriaRepo {
	return &CategoriaRepo{q: q}
}

// Create persiste una nueva categoría.
func (r *CategoriaRepo) Create(categoria *entity.CategoriaProducto) error {
	query := `
		INSERT INTO categorias_productos (id, cliente_id, nombre, descripcion, padre_id, fecha_creacion)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.q.Exec(context.Background(), query,
		categoria.ID, categoria.ClienteID, categoria.Nombre, categoria.Descripcion,
		categoria.PadreID, categoria.FechaCreacion,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicado
		}
		return fmt.Errorf("insert categoria: %w", err)
	}
	return nil
}

// GetByNombre obtiene una categoría por nombre dentro del cliente.
func (r *CategoriaRepo) GetByNombre(clienteID, nombre string) (*entity.CategoriaProducto, error) {
	query := `
		SELECT id, cliente_id, nombre, descripcion, padre_id, fecha_creacion
		FROM categorias_productos WHERE cliente_id = $1 AND nombre = $2`
	var c entity.CategoriaProducto
	err := r.q.QueryRow(context.Background(), query, clienteID, nombre).Scan(
		&c.ID, &c.ClienteID, &c.Nombre, &c.Descripcion, &c.PadreID, &c.FechaCreacion,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get categoria: %w", err)
	}
	return &c, nil
}

// ListByCliente lista las categorías del cliente (árbol plano, el orden lo da el nombre).
func (r *CategoriaRepo) ListByCliente(clienteID string) ([]*entity.CategoriaProducto, error) {
	query := `
		SELECT id, cliente_id, nombre, descripcion, padre_id, fecha_creacion
		FROM categorias_productos WHERE cliente_id = $1 ORDER BY nombre`
	rows, err := r.q.Query(context.Background(), query, clienteID)
	if err != nil {
		return nil, fmt.Errorf("list categorias: %w", err)
	}
	defer rows.Close()
	var list []*entity.CategoriaProducto
	for rows.Next() {
		var c entity.CategoriaProducto
		if err := rows.Scan(&c.ID, &c.ClienteID, &c.Nombre, &c.Descripcion, &c.PadreID, &c.FechaCreacion); err != nil {
			return nil, fmt.Errorf("scan categoria: %w", err)
		}
		list = append(list, &c)
	}
	return list, rows.Err()
}
