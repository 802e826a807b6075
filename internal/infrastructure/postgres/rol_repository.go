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

var _ repository.RolRepository = (*RolRepo)(nil)

// RolRepo implementación del puerto RolRepository sobre PostgreSQL (usable con pool o tx).
// Las operaciones que tocan roles y permisos_roles a la vez corren en una
// transacción propia (savepoint si el Querier ya es una tx).
type RolRepo struct {
	q Querier
}

// NewRolRepository construye el adaptador de persistencia para roles. Pasar pool o tx (Querier).
func NewRolRepository(q Querier) *RolRepo {
	return &RolRepo{q: q}
}

// Create persiste el rol y sus permisos iniciales en una sola transacción.
func (r *RolRepo) Create(rol *entity.Rol, permisoIDs []string) error {
	ctx := context.Background()
	tx, err := r.q.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	query := `
		INSERT INTO roles (id, cliente_id, nombre, descripcion, es_rol_sistema, fecha_creacion)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err = tx.Exec(ctx, query,
		rol.ID, rol.ClienteID, rol.Nombre, rol.Descripcion, rol.EsRolSistema, rol.FechaCreacion,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrRolExiste
		}
		return fmt.Errorf("insert rol: %w", err)
	}
	if err := insertarPermisosRol(ctx, tx, rol.ID, permisoIDs); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

const rolColumns = `id, cliente_id, nombre, descripcion, es_rol_sistema, fecha_creacion`

// GetByID retorna el rol solo si es global o pertenece al cliente indicado.
func (r *RolRepo) GetByID(id string, clienteID *string) (*entity.Rol, error) {
	query := `
		SELECT ` + rolColumns + ` FROM roles
		WHERE id = $1 AND (cliente_id IS NULL OR $2::uuid IS NULL OR cliente_id = $2)`
	return r.scanOne(r.q.QueryRow(context.Background(), query, id, clienteID))
}

// GetByNombre busca un rol por nombre dentro del ámbito exacto (cliente o global).
func (r *RolRepo) GetByNombre(nombre string, clienteID *string) (*entity.Rol, error) {
	query := `
		SELECT ` + rolColumns + ` FROM roles
		WHERE nombre = $1 AND cliente_id IS NOT DISTINCT FROM $2`
	return r.scanOne(r.q.QueryRow(context.Background(), query, nombre, clienteID))
}

func (r *RolRepo) scanOne(row pgx.Row) (*entity.Rol, error) {
	var rol entity.Rol
	err := row.Scan(&rol.ID, &rol.ClienteID, &rol.Nombre, &rol.Descripcion, &rol.EsRolSistema, &rol.FechaCreacion)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get rol: %w", err)
	}
	return &rol, nil
}

// ListByCliente retorna los roles del cliente más los globales. Con clienteID
// nil (super admin) retorna todos los roles del sistema.
func (r *RolRepo) ListByCliente(clienteID *string) ([]*entity.Rol, error) {
	query := `
		SELECT ` + rolColumns + ` FROM roles
		WHERE $1::uuid IS NULL OR cliente_id IS NULL OR cliente_id = $1
		ORDER BY es_rol_sistema DESC, nombre`
	rows, err := r.q.Query(context.Background(), query, clienteID)
	if err != nil {
		return nil, fmt.Errorf("list roles: %w", err)
	}
	defer rows.Close()
	var list []*entity.Rol
	for rows.Next() {
		var rol entity.Rol
		if err := rows.Scan(&rol.ID, &rol.ClienteID, &rol.Nombre, &rol.Descripcion, &rol.EsRolSistema, &rol.FechaCreacion); err != nil {
			return nil, fmt.Errorf("scan rol: %w", err)
		}
		list = append(list, &rol)
	}
	return list, rows.Err()
}

// Update actualiza nombre y descripción de un rol.
func (r *RolRepo) Update(rol *entity.Rol) error {
	query := `UPDATE roles SET nombre = $2, descripcion = $3 WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query, rol.ID, rol.Nombre, rol.Descripcion)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrRolExiste
		}
		return fmt.Errorf("update rol: %w", err)
	}
	return nil
}

// ReemplazarPermisos sustituye el conjunto completo de permisos del rol. El
// delete y los inserts corren en una transacción para que ningún lector
// observe una asignación parcial.
func (r *RolRepo) ReemplazarPermisos(rolID string, permisoIDs []string) error {
	ctx := context.Background()
	tx, err := r.q.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if _, err := tx.Exec(ctx, `DELETE FROM permisos_roles WHERE rol_id = $1`, rolID); err != nil {
		return fmt.Errorf("delete permisos_roles: %w", err)
	}
	if err := insertarPermisosRol(ctx, tx, rolID, permisoIDs); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

func insertarPermisosRol(ctx context.Context, tx pgx.Tx, rolID string, permisoIDs []string) error {
	for _, permisoID := range permisoIDs {
		_, err := tx.Exec(ctx,
			`INSERT INTO permisos_roles (rol_id, permiso_id) VALUES ($1, $2)`,
			rolID, permisoID)
		if err != nil {
			return fmt.Errorf("insert permisos_roles: %w", err)
		}
	}
	return nil
}

// Delete elimina el rol y en cascada sus filas de permisos_roles y roles_usuarios.
func (r *RolRepo) Delete(id string) error {
	ctx := context.Background()
	tx, err := r.q.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if _, err := tx.Exec(ctx, `DELETE FROM permisos_roles WHERE rol_id = $1`, id); err != nil {
		return fmt.Errorf("delete permisos_roles: %w", err)
	}
	if _, err := tx.Exec(ctx, `DELETE FROM roles_usuarios WHERE rol_id = $1`, id); err != nil {
		return fmt.Errorf("delete roles_usuarios: %w", err)
	}
	if _, err := tx.Exec(ctx, `DELETE FROM roles WHERE id = $1`, id); err != nil {
		return fmt.Errorf("delete rol: %w", err)
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// ListPermisosDeRol lista los permisos asignados a un rol.
func (r *RolRepo) ListPermisosDeRol(rolID string) ([]*entity.Permiso, error) {
	query := `
		SELECT p.id, p.codigo, p.descripcion, p.modulo
		FROM permisos p
		JOIN permisos_roles pr ON pr.permiso_id = p.id
		WHERE pr.rol_id = $1
		ORDER BY p.codigo`
	rows, err := r.q.Query(context.Background(), query, rolID)
	if err != nil {
		return nil, fmt.Errorf("list permisos de rol: %w", err)
	}
	defer rows.Close()
	return scanPermisos(rows)
}

// AsignarRolAUsuario registra la asignación en roles_usuarios.
func (r *RolRepo) AsignarRolAUsuario(asignacion *entity.AsignacionRol) error {
	query := `
		INSERT INTO roles_usuarios (usuario_id, rol_id, asignado_por, fecha_asignacion)
		VALUES ($1, $2, $3, $4)`
	_, err := r.q.Exec(context.Background(), query,
		asignacion.UsuarioID, asignacion.RolID, asignacion.AsignadoPor, asignacion.FechaAsignacion,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicado
		}
		return fmt.Errorf("insert roles_usuarios: %w", err)
	}
	return nil
}

// QuitarRolAUsuario elimina la asignación usuario-rol.
func (r *RolRepo) QuitarRolAUsuario(usuarioID, rolID string) error {
	_, err := r.q.Exec(context.Background(),
		`DELETE FROM roles_usuarios WHERE usuario_id = $1 AND rol_id = $2`,
		usuarioID, rolID)
	if err != nil {
		return fmt.Errorf("delete roles_usuarios: %w", err)
	}
	return nil
}

// RolesDeUsuario resuelve los nombres de rol del usuario vía roles_usuarios.
func (r *RolRepo) RolesDeUsuario(usuarioID string) ([]string, error) {
	query := `
		SELECT ro.nombre
		FROM roles ro
		JOIN roles_usuarios ru ON ru.rol_id = ro.id
		WHERE ru.usuario_id = $1
		ORDER BY ro.nombre`
	return r.scanStrings(query, usuarioID, "roles de usuario")
}

// PermisosDeUsuario resuelve los códigos de permiso efectivos del usuario:
// la unión deduplicada de los permisos de todos sus roles.
func (r *RolRepo) PermisosDeUsuario(usuarioID string) ([]string, error) {
	query := `
		SELECT DISTINCT p.codigo
		FROM permisos p
		JOIN permisos_roles pr ON pr.permiso_id = p.id
		JOIN roles_usuarios ru ON ru.rol_id = pr.rol_id
		WHERE ru.usuario_id = $1
		ORDER BY p.codigo`
	return r.scanStrings(query, usuarioID, "permisos de usuario")
}

func (r *RolRepo) scanStrings(query, usuarioID, op string) ([]string, error) {
	rows, err := r.q.Query(context.Background(), query, usuarioID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()
	out := []string{}
	for rows.Next() {
		var s string
		if err := rows.Scan(&s); err != nil {
			return nil, fmt.Errorf("scan %s: %w", op, err)
		}
		out = append(out, s)
	}
	return out, rows.Err()
}
