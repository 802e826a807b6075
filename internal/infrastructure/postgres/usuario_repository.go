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

var _ repository.UsuarioRepository = (*UsuarioRepo)(nil)

// UsuarioRepo implementación del puerto UsuarioRepository sobre PostgreSQL (usable con pool o tx).
type UsuarioRepo struct {
	q Querier
}

// NewUsuarioRepository construye el adaptador de persistencia para usuarios. Pasar pool o tx (Querier).
func NewUsuarioRepository(q Querier) *UsuarioRepo {
	return &UsuarioRepo{q: q}
}

const usuarioColumns = `id, cliente_id, nombre_usuario, email, contrasena_hash, nombre, apellido, estado, ultimo_login, fecha_creacion, fecha_actualizacion`

// Create persiste un nuevo usuario.
func (r *UsuarioRepo) Create(usuario *entity.Usuario) error {
	query := `
		INSERT INTO usuarios (` + usuarioColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	_, err := r.q.Exec(context.Background(), query,
		usuario.ID, usuario.ClienteID, usuario.NombreUsuario, usuario.Email,
		usuario.ContrasenaHash, usuario.Nombre, usuario.Apellido, usuario.Estado,
		usuario.UltimoLogin, usuario.FechaCreacion, usuario.FechaActualizacion,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrUsuarioExiste
		}
		return fmt.Errorf("insert usuario: %w", err)
	}
	return nil
}

// GetByID obtiene un usuario por ID.
func (r *UsuarioRepo) GetByID(id string) (*entity.Usuario, error) {
	query := `SELECT ` + usuarioColumns + ` FROM usuarios WHERE id = $1`
	return r.scanOne(r.q.QueryRow(context.Background(), query, id))
}

// FindByNombreUsuario obtiene un usuario por su nombre de login (único global).
func (r *UsuarioRepo) FindByNombreUsuario(nombreUsuario string) (*entity.Usuario, error) {
	query := `SELECT ` + usuarioColumns + ` FROM usuarios WHERE nombre_usuario = $1 LIMIT 1`
	return r.scanOne(r.q.QueryRow(context.Background(), query, nombreUsuario))
}

func (r *UsuarioRepo) scanOne(row pgx.Row) (*entity.Usuario, error) {
	var u entity.Usuario
	err := row.Scan(
		&u.ID, &u.ClienteID, &u.NombreUsuario, &u.Email, &u.ContrasenaHash,
		&u.Nombre, &u.Apellido, &u.Estado, &u.UltimoLogin,
		&u.FechaCreacion, &u.FechaActualizacion,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get usuario: %w", err)
	}
	return &u, nil
}

// ListByCliente lista los usuarios de un cliente; con clienteID nil lista todos.
func (r *UsuarioRepo) ListByCliente(clienteID *string) ([]*entity.Usuario, error) {
	query := `SELECT ` + usuarioColumns + ` FROM usuarios`
	args := []any{}
	if clienteID != nil {
		query += ` WHERE cliente_id = $1`
		args = append(args, *clienteID)
	}
	query += ` ORDER BY fecha_creacion DESC`
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list usuarios: %w", err)
	}
	defer rows.Close()
	var list []*entity.Usuario
	for rows.Next() {
		var u entity.Usuario
		if err := rows.Scan(
			&u.ID, &u.ClienteID, &u.NombreUsuario, &u.Email, &u.ContrasenaHash,
			&u.Nombre, &u.Apellido, &u.Estado, &u.UltimoLogin,
			&u.FechaCreacion, &u.FechaActualizacion,
		); err != nil {
			return nil, fmt.Errorf("scan usuario: %w", err)
		}
		list = append(list, &u)
	}
	return list, rows.Err()
}

// Update actualiza un usuario.
func (r *UsuarioRepo) Update(usuario *entity.Usuario) error {
	query := `
		UPDATE usuarios SET email = $2, contrasena_hash = $3, nombre = $4, apellido = $5,
			estado = $6, fecha_actualizacion = $7
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		usuario.ID, usuario.Email, usuario.ContrasenaHash, usuario.Nombre,
		usuario.Apellido, usuario.Estado, usuario.FechaActualizacion,
	)
	if err != nil {
		return fmt.Errorf("update usuario: %w", err)
	}
	return nil
}

// ActualizarUltimoLogin marca el instante del último login exitoso.
func (r *UsuarioRepo) ActualizarUltimoLogin(id string) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE usuarios SET ultimo_login = NOW() WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("actualizar ultimo_login: %w", err)
	}
	return nil
}
