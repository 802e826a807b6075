package repository

import "github.com/nexusgestion/admin-api/internal/domain/entity"

// RolRepository define el puerto de persistencia para Rol y sus asociaciones.
//
// ReemplazarPermisos sustituye el conjunto completo de permisos de un rol; la
// implementación debe hacerlo de forma atómica para que lectores concurrentes
// nunca observen una asignación parcial.
type RolRepository interface {
	Create(rol *entity.Rol, permisoIDs []string) error
	// GetByID retorna el rol solo si pertenece al cliente o es global (cliente nil).
	GetByID(id string, clienteID *string) (*entity.Rol, error)
	GetByNombre(nombre string, clienteID *string) (*entity.Rol, error)
	// ListByCliente retorna los roles del cliente más los roles globales.
	ListByCliente(clienteID *string) ([]*entity.Rol, error)
	Update(rol *entity.Rol) error
	ReemplazarPermisos(rolID string, permisoIDs []string) error
	// Delete elimina el rol y, en cascada, sus filas de permisos_roles.
	Delete(id string) error
	ListPermisosDeRol(rolID string) ([]*entity.Permiso, error)

	AsignarRolAUsuario(asignacion *entity.AsignacionRol) error
	QuitarRolAUsuario(usuarioID, rolID string) error

	// RolesDeUsuario resuelve los nombres de rol vía roles_usuarios → roles.
	// Un usuario sin asignaciones produce un slice vacío, no un error.
	RolesDeUsuario(usuarioID string) ([]string, error)
	// PermisosDeUsuario resuelve los códigos de permiso vía
	// roles_usuarios → permisos_roles → permisos, deduplicados.
	PermisosDeUsuario(usuarioID string) ([]string, error)
}

// PermisoRepository catálogo estático de permisos (solo lectura vía API;
// Create existe únicamente para la carga inicial de datos).
type PermisoRepository interface {
	Create(permiso *entity.Permiso) error
	List() ([]*entity.Permiso, error)
	GetByIDs(ids []string) ([]*entity.Permiso, error)
}
