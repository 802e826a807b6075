package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/nexusgestion/admin-api/internal/domain"
	"github.com/nexusgestion/admin-api/internal/domain/entity"
	"github.com/nexusgestion/admin-api/internal/domain/repository"
)

var _ repository.PermisoRepository = (*PermisoRepo)(nil)

// PermisoRepo acceso de solo lectura al catálogo de permisos.
type PermisoRepo struct {
	q Querier
}

// NewPermisoRepository construye el adaptador del catálogo de permisos. Pasar pool o tx (Querier).
func NewPermisoRepository(q Querier) *PermisoRepo {
	return &PermisoRepo{q: q}
}

// Create inserta un permiso del catálogo (solo lo usa la carga inicial).
func (r *PermisoRepo) Create(permiso *entity.Permiso) error {
	query := `
		INSERT INTO permisos (id, codigo, descripcion, modulo)
		VALUES ($1, $2, $3, $4)`
	_, err := r.q.Exec(context.Background(), query,
		permiso.ID, permiso.Codigo, permiso.Descripcion, permiso.Modulo)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicado
		}
		return fmt.Errorf("insert permiso: %w", err)
	}
	return nil
}

// List retorna el catálogo completo ordenado por módulo y código.
func (r *PermisoRepo) List() ([]*entity.Permiso, error) {
	query := `
		SELECT id, codigo, descripcion, modulo
		FROM permisos ORDER BY modulo, codigo`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list permisos: %w", err)
	}
	defer rows.Close()
	return scanPermisos(rows)
}

// GetByIDs retorna los permisos cuyos IDs están en la lista (los inexistentes
// simplemente no aparecen; el llamador compara longitudes para validar).
func (r *PermisoRepo) GetByIDs(ids []string) ([]*entity.Permiso, error) {
	if len(ids) == 0 {
		return []*entity.Permiso{}, nil
	}
	query := `
		SELECT id, codigo, descripcion, modulo
		FROM permisos WHERE id = ANY($1)`
	rows, err := r.q.Query(context.Background(), query, ids)
	if err != nil {
		return nil, fmt.Errorf("get permisos por ids: %w", err)
	}
	defer rows.Close()
	return scanPermisos(rows)
}

func scanPermisos(rows pgx.Rows) ([]*entity.Permiso, error) {
	var list []*entity.Permiso
	for rows.Next() {
		var p entity.Permiso
		if err := rows.Scan(&p.ID, &p.Codigo, &p.Descripcion, &p.Modulo); err != nil {
			return nil, fmt.Errorf("scan permiso: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}
