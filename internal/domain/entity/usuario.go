package entity

import "time"

// Estados válidos para Usuario.
const (
	UsuarioActivo    = "activo"
	UsuarioInactivo  = "inactivo"
	UsuarioBloqueado = "bloqueado"
	UsuarioEliminado = "eliminado"
)

// Usuario del sistema. ClienteID es nil únicamente para el super admin global;
// cualquier otro usuario debe referenciar un cliente existente.
type Usuario struct {
	ID                 string
	ClienteID          *string
	NombreUsuario      string // único global
	Email              string // único global
	ContrasenaHash     string // bcrypt, nunca en claro después de persistir
	Nombre             string
	Apellido           string
	Estado             string // activo, inactivo, bloqueado, eliminado
	UltimoLogin        *time.Time
	FechaCreacion      time.Time
	FechaActualizacion time.Time
}
