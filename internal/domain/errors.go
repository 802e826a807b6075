package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNoEncontrado          = errors.New("recurso no encontrado")
	ErrCredencialesInvalidas = errors.New("nombre de usuario o contraseña incorrectos")
	ErrNoAutorizado          = errors.New("no autorizado")
	ErrProhibido             = errors.New("acceso denegado")
	ErrSinCliente            = errors.New("el usuario operativo no está asignado a un cliente")
	ErrSubdominioExiste      = errors.New("el subdominio ya está registrado")
	ErrUsuarioExiste         = errors.New("el nombre de usuario o email ya existen")
	ErrRolExiste             = errors.New("ya existe un rol con ese nombre para este cliente")
	ErrRolDeSistema          = errors.New("no se puede modificar o eliminar un rol de sistema")
	ErrPermisoInvalido       = errors.New("uno o más IDs de permiso no son válidos")
	ErrDuplicado             = errors.New("recurso duplicado")
	ErrConflicto             = errors.New("conflicto con el estado actual")
)
