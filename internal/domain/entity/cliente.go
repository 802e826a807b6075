package entity

import "time"

// Estados válidos para Cliente.
const (
	ClienteActivo     = "activo"
	ClienteSuspendido = "suspendido"
	ClienteInactivo   = "inactivo"
)

// Cliente representa una empresa/tenant. Es la raíz del aislamiento: toda
// entidad de negocio lleva su ClienteID, salvo el super admin global.
type Cliente struct {
	ID            string
	Nombre        string
	Subdominio    string // único en todo el sistema
	Estado        string // activo, suspendido, inactivo
	Configuracion map[string]any
	FechaCreacion time.Time
}

// ContactoCliente contacto clave de una empresa cliente (propietario, gerente, técnico).
type ContactoCliente struct {
	ID             string
	ClienteID      string
	NombreContacto string
	Rol            string
	Telefono       string
	Email          string
}
