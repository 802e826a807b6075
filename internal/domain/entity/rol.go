package entity

import "time"

// SuperAdminRol es el nombre reservado del rol con bypass total de autorización.
// Nunca está asociado a un cliente.
const SuperAdminRol = "Super Admin"

// Rol definido por el sistema o por un cliente. ClienteID nil = rol global
// (visible para todos los tenants). Los roles de sistema son inmutables para
// actores de cliente.
type Rol struct {
	ID            string
	ClienteID     *string
	Nombre        string // único dentro del ámbito del cliente
	Descripcion   string
	EsRolSistema  bool
	FechaCreacion time.Time
}

// Permiso acción granular permitida (ej. "compras.crear"). Catálogo estático
// sembrado por el sistema, solo lectura vía API.
type Permiso struct {
	ID          string
	Codigo      string // único global, con namespace por puntos
	Descripcion string
	Modulo      string
}

// AsignacionRol registro de la tabla roles_usuarios: qué rol tiene un usuario,
// quién lo asignó y cuándo.
type AsignacionRol struct {
	UsuarioID       string
	RolID           string
	AsignadoPor     string
	FechaAsignacion time.Time
}
